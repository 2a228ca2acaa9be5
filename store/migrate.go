package store

import (
	"log/slog"
	"strconv"

	bolt "go.etcd.io/bbolt"
)

// migrate brings an older envelope forward to the current schema version.
// Migration is forward-only: incompatible legacy entries are discarded and
// the version is rewritten. The theme entry is left untouched.
func (c *Client) migrate() error {
	stored := c.Version()
	if stored >= SchemaVersion {
		return nil
	}

	slog.Info("migrating storage schema",
		slog.Int("from", stored),
		slog.Int("to", SchemaVersion),
	)

	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)

		if err := b.Delete([]byte(legacyHistoryKey)); err != nil {
			return err
		}

		return b.Put(
			[]byte(KeySchemaVersion),
			[]byte(strconv.Itoa(SchemaVersion)),
		)
	})
}
