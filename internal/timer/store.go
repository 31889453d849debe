package timer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/jx"
	"go.etcd.io/bbolt"
)

var (
	timerBucket = []byte("timer") //nolint: gochecknoglobals
	stateKey    = []byte("state") //nolint: gochecknoglobals
)

// Store persists the timer snapshot.
type Store interface {
	// Load returns nil when nothing was saved yet.
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state State) error
	Close() error
}

// BoltStore keeps the snapshot in a single bbolt key.
type BoltStore struct {
	db *bbolt.DB
}

var _ Store = (*BoltStore)(nil)

// OpenStore opens (or creates) the bbolt file at path.
func OpenStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create timer state directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("could not open timer state: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(timerBucket)

		return err
	}); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not create timer bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load(_ context.Context) (*State, error) {
	var state *State
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(timerBucket).Get(stateKey)
		if raw == nil {
			return nil
		}

		state = &State{}

		return state.Decode(jx.DecodeBytes(raw))
	})
	if err != nil {
		return nil, fmt.Errorf("could not load timer state: %w", err)
	}

	return state, nil
}

func (s *BoltStore) Save(_ context.Context, state State) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	state.Encode(e)

	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(timerBucket).Put(stateKey, e.Bytes())
	}); err != nil {
		return fmt.Errorf("could not save timer state: %w", err)
	}

	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
