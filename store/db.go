package store

// SchemaVersion is the current version of the persisted envelope. Older
// stored versions are migrated forward on open; downgrades never happen.
const SchemaVersion = 3

// Storage keys for the persisted envelope. The theme entry sits outside
// schema versioning.
const (
	KeySchemaVersion = "otc_schema_version"
	KeyCurrentState  = "otc_current_state"
	KeyTodayData     = "otc_today_data"
	KeySettings      = "otc_settings"
	KeyTheme         = "otc_theme"

	legacyHistoryKey = "otc_history"
)

// DB is the keyed storage interface. Get reports absence through its second
// return value rather than an error.
type DB interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}
