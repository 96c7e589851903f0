package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Collection names a table of records keyed by a primary key.
type Collection struct {
	Name string
	// AutoKey collections use an auto-incrementing primary key instead of
	// a caller-supplied string key.
	AutoKey bool
}

// The three collections of the studio schema.
var (
	GenerationHistory = Collection{Name: "generation_history"}
	Notes             = Collection{Name: "notes"}
	PromptHistory     = Collection{Name: "prompt_history", AutoKey: true}
)

// schemaVersion is the schema version this build expects. Opening a store
// with an older on-disk version creates any missing collections and indexes
// in a single upgrade transaction.
const schemaVersion = 1

// collections lists every collection the upgrade step must ensure exists.
var collections = []Collection{GenerationHistory, Notes, PromptHistory}

// Record is a row in a collection: an opaque payload plus the metadata the
// store indexes on. Payload is a JSON-encoded domain record owned by the
// repository layer.
type Record struct {
	Key       string // empty for auto-key collections
	Timestamp int64  // epoch millis, the recency sort key
	Payload   []byte
}

// Usage reports best-effort storage consumption.
type Usage struct {
	UsedBytes  int64 `json:"usage"`
	QuotaBytes int64 `json:"quota"`
}

type connState int

const (
	stateUninitialized connState = iota
	stateOpen
	stateClosed
)

// Store is a schema-versioned, transactional record store over named
// collections, backed by a single SQLite handle. It holds at most one open
// connection; Init is idempotent and safe to call from concurrent call
// sites, and all operations lazily initialize on first use.
type Store struct {
	mu    sync.Mutex
	path  string
	quota int64
	state connState
	db    *sql.DB
}

// Option configures a Store.
type Option func(*Store)

// WithQuota sets the advisory quota reported by EstimateUsage.
func WithQuota(bytes int64) Option {
	return func(s *Store) {
		s.quota = bytes
	}
}

// NewStore creates a Store for the SQLite database at path. The connection
// is not opened until Init or the first operation.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init opens the connection and upgrades the schema if needed. Calling it
// when already open is a no-op. A closed store cannot be reopened.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.conn(ctx)
	return err
}

// conn returns the open handle, opening it first if necessary.
// Callers must hold s.mu.
func (s *Store) conn(ctx context.Context) (*sql.DB, error) {
	switch s.state {
	case stateOpen:
		return s.db, nil
	case stateClosed:
		return nil, fmt.Errorf("%w: store is closed", ErrStorageUnavailable)
	}

	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	// Model the single shared connection of the record store: every
	// operation is serialized by the pool rather than racing raw handles.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := upgradeSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s.db = db
	s.state = stateOpen
	return db, nil
}

// upgradeSchema creates missing collections and their timestamp indexes in
// one transaction, then bumps the stored version. A failure rolls back and
// leaves the on-disk schema untouched.
func upgradeSchema(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version;").Scan(&version); err != nil {
		return fmt.Errorf("%w: read version: %v", ErrSchemaUpgradeFailed, err)
	}
	if version >= schemaVersion {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrSchemaUpgradeFailed, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, col := range collections {
		for _, stmt := range col.schema() {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%w: collection %s: %v", ErrSchemaUpgradeFailed, col.Name, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d;", schemaVersion)); err != nil {
		return fmt.Errorf("%w: set version: %v", ErrSchemaUpgradeFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrSchemaUpgradeFailed, err)
	}
	return nil
}

// schema returns the DDL for a collection. Collection names are package
// constants, never user input, so building SQL with Sprintf is safe here.
func (c Collection) schema() []string {
	if c.AutoKey {
		return []string{
			fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				ts INTEGER NOT NULL,
				payload BLOB NOT NULL
			);`, c.Name),
			fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_ts ON %s(ts);", c.Name, c.Name),
		}
	}
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			key TEXT PRIMARY KEY,
			ts INTEGER NOT NULL,
			payload BLOB NOT NULL
		);`, c.Name),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_ts ON %s(ts);", c.Name, c.Name),
	}
}

// Put inserts or overwrites a record by primary key. Either the record is
// fully written or the collection is left unchanged.
func (s *Store) Put(ctx context.Context, col Collection, rec Record) error {
	s.mu.Lock()
	db, err := s.conn(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if col.AutoKey {
		_, err = db.ExecContext(ctx,
			fmt.Sprintf("INSERT INTO %s (ts, payload) VALUES (?, ?)", col.Name),
			rec.Timestamp, rec.Payload,
		)
	} else {
		if rec.Key == "" {
			return fmt.Errorf("%w: empty key for collection %s", ErrWriteFailed, col.Name)
		}
		_, err = db.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO %s (key, ts, payload) VALUES (?, ?, ?)
				ON CONFLICT (key) DO UPDATE SET ts = excluded.ts, payload = excluded.payload`, col.Name),
			rec.Key, rec.Timestamp, rec.Payload,
		)
	}
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", ErrWriteFailed, col.Name, err)
	}
	return nil
}

// GetByKey returns the single record stored under key. A missing key is
// ErrNotFound; keyed reads bypass any listing limit, so records the display
// cap hides are still reachable.
func (s *Store) GetByKey(ctx context.Context, col Collection, key string) (Record, error) {
	s.mu.Lock()
	db, err := s.conn(ctx)
	s.mu.Unlock()
	if err != nil {
		return Record{}, err
	}

	if col.AutoKey {
		return Record{}, fmt.Errorf("%w: collection %s has no string key", ErrReadFailed, col.Name)
	}

	rec := Record{Key: key}
	err = db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT ts, payload FROM %s WHERE key = ?", col.Name), key,
	).Scan(&rec.Timestamp, &rec.Payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrNotFound, col.Name, key)
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: get %s: %v", ErrReadFailed, col.Name, err)
	}
	return rec, nil
}

// ListByRecency returns up to limit records ordered newest first. Ties in
// timestamp are broken by insertion order (rowid ascending). A limit <= 0
// returns every record.
func (s *Store) ListByRecency(ctx context.Context, col Collection, limit int) ([]Record, error) {
	s.mu.Lock()
	db, err := s.conn(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = -1 // no limit
	}

	var rows *sql.Rows
	if col.AutoKey {
		rows, err = db.QueryContext(ctx,
			fmt.Sprintf("SELECT ts, payload FROM %s ORDER BY ts DESC, seq ASC LIMIT ?", col.Name),
			limit,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			fmt.Sprintf("SELECT key, ts, payload FROM %s ORDER BY ts DESC, rowid ASC LIMIT ?", col.Name),
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrReadFailed, col.Name, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var recs []Record
	for rows.Next() {
		var rec Record
		if col.AutoKey {
			err = rows.Scan(&rec.Timestamp, &rec.Payload)
		} else {
			err = rows.Scan(&rec.Key, &rec.Timestamp, &rec.Payload)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", ErrReadFailed, col.Name, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrReadFailed, col.Name, err)
	}
	return recs, nil
}

// DeleteByKey removes a single record. Deleting a key that does not exist
// is a no-op, not an error.
func (s *Store) DeleteByKey(ctx context.Context, col Collection, key string) error {
	s.mu.Lock()
	db, err := s.conn(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if col.AutoKey {
		return fmt.Errorf("%w: collection %s has no string key", ErrWriteFailed, col.Name)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE key = ?", col.Name), key); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrWriteFailed, col.Name, err)
	}
	return nil
}

// Clear removes all records from a collection in one transaction.
func (s *Store) Clear(ctx context.Context, col Collection) error {
	s.mu.Lock()
	db, err := s.conn(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", col.Name)); err != nil {
		return fmt.Errorf("%w: clear %s: %v", ErrWriteFailed, col.Name, err)
	}
	return nil
}

// ReplaceAll atomically swaps the full contents of a collection. The delete
// and every insert run in one transaction: a failure partway rolls back, so
// readers observe either the old contents or the new contents in full.
func (s *Store) ReplaceAll(ctx context.Context, col Collection, recs []Record) error {
	s.mu.Lock()
	db, err := s.conn(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: replace %s: begin: %v", ErrWriteFailed, col.Name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", col.Name)); err != nil {
		return fmt.Errorf("%w: replace %s: clear: %v", ErrWriteFailed, col.Name, err)
	}

	for _, rec := range recs {
		if col.AutoKey {
			_, err = tx.ExecContext(ctx,
				fmt.Sprintf("INSERT INTO %s (ts, payload) VALUES (?, ?)", col.Name),
				rec.Timestamp, rec.Payload,
			)
		} else {
			_, err = tx.ExecContext(ctx,
				fmt.Sprintf("INSERT INTO %s (key, ts, payload) VALUES (?, ?, ?)", col.Name),
				rec.Key, rec.Timestamp, rec.Payload,
			)
		}
		if err != nil {
			return fmt.Errorf("%w: replace %s: insert: %v", ErrWriteFailed, col.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: replace %s: commit: %v", ErrWriteFailed, col.Name, err)
	}
	return nil
}

// EstimateUsage reports best-effort byte usage and the configured quota.
// It never fails; zeros mean the store could not report.
func (s *Store) EstimateUsage(ctx context.Context) Usage {
	s.mu.Lock()
	db, err := s.conn(ctx)
	s.mu.Unlock()
	if err != nil {
		return Usage{}
	}

	var pageCount, pageSize int64
	if err := db.QueryRowContext(ctx, "PRAGMA page_count;").Scan(&pageCount); err != nil {
		return Usage{}
	}
	if err := db.QueryRowContext(ctx, "PRAGMA page_size;").Scan(&pageSize); err != nil {
		return Usage{}
	}
	return Usage{UsedBytes: pageCount * pageSize, QuotaBytes: s.quota}
}

// Close releases the connection. Safe to call when already closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateOpen {
		s.state = stateClosed
		return nil
	}
	s.state = stateClosed
	db := s.db
	s.db = nil
	return db.Close()
}
