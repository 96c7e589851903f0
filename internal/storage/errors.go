package storage

import "errors"

var (
	// ErrStorageUnavailable is returned when the persistent store cannot be
	// opened at all (bad path, missing driver support, closed store).
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrSchemaUpgradeFailed is returned when collection or index creation
	// is rejected during a schema upgrade.
	ErrSchemaUpgradeFailed = errors.New("schema upgrade failed")
	// ErrWriteFailed is returned when a mutation cannot be committed,
	// e.g. the disk is full. The store is left unchanged.
	ErrWriteFailed = errors.New("write failed")
	// ErrReadFailed is returned when a query fails. Callers treat this as
	// "no history available" rather than a hard error.
	ErrReadFailed = errors.New("read failed")
	// ErrNotFound is returned by keyed reads when no record exists under
	// the requested key.
	ErrNotFound = errors.New("record not found")
)
