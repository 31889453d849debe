// Package storage defines the persistence interfaces of the study tracker.
// Backends (pkg/storage/postgres) implement them; services depend only on
// these interfaces so they can be tested against gomock doubles.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every domain-specific storage capability.
type AllStorage interface {
	SubjectStorage
	TaskStorage
	SessionStorage
	StreakStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the non-transactional handle, able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
