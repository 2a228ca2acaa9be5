// Package store persists the attendance envelope in a BoltDB database keyed
// like the historical storage: schema version, state label, today's session,
// settings, and theme.
package store

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("otc")

// ErrAlreadyRunning indicates the database file is locked by another
// instance, usually a running watch dashboard.
var ErrAlreadyRunning = errors.New(
	"is otc already running? Only one instance can be active at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// NewClient opens (or creates) the database at dbPath, ensures the bucket
// exists, and migrates older envelopes forward.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)

		return err
	})
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	if err := c.migrate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) Get(key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			value = string(v)
			found = true
		}

		return nil
	})

	return value, found, err
}

func (c *Client) Set(key, value string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
}

func (c *Client) Remove(key string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

// Version returns the stored schema version, defaulting to 1 when the entry
// is missing or unreadable.
func (c *Client) Version() int {
	value, found, err := c.Get(KeySchemaVersion)
	if err != nil || !found {
		return 1
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 1
	}

	return n
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		dbPath,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseNotOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}
