package store

import "log/slog"

// Fallback wraps a DB so that storage failures never reach the caller.
// Writes always land in an in-memory overlay first; a failed write to the
// underlying database is logged and the overlay remains authoritative until
// the next successful write of that key.
type Fallback struct {
	db  DB
	mem map[string]string
}

func NewFallback(db DB) *Fallback {
	return &Fallback{
		db:  db,
		mem: make(map[string]string),
	}
}

func (f *Fallback) Get(key string) (string, bool) {
	if value, found := f.mem[key]; found {
		return value, true
	}

	value, found, err := f.db.Get(key)
	if err != nil {
		slog.Error("storage read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", false
	}

	return value, found
}

func (f *Fallback) Set(key, value string) {
	f.mem[key] = value

	if err := f.db.Set(key, value); err != nil {
		slog.Error("storage write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return
	}

	delete(f.mem, key)
}

func (f *Fallback) Remove(key string) {
	delete(f.mem, key)

	if err := f.db.Remove(key); err != nil {
		slog.Error("storage delete failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (f *Fallback) Close() error {
	return f.db.Close()
}
