// Package store keeps terminal attribute snapshots in a bbolt database.
package store

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"src.ttyattr.dev/pkg/logutil"
	"src.ttyattr.dev/pkg/termios"
)

var logger = logutil.GetLogger("[store] ")

// ErrNoSnapshot is returned when there is no snapshot with the requested name.
var ErrNoSnapshot = errors.New("no such snapshot")

const (
	bucketSnapshot = "snapshot"
	bucketUndo     = "undo"
)

var initDB = map[string](func(*bolt.Tx) error){}

// Store is the interface of the snapshot store.
type Store interface {
	SaveAttrs(name string, a *termios.Attrs) error
	Attrs(name string) (termios.Attrs, error)
	DelAttrs(name string) error
	AttrsNames() ([]string, error)

	PutUndo(dev string, a *termios.Attrs) error
	Undo(dev string) (termios.Attrs, error)
}

// DBStore is the permanent storage backend.
type DBStore interface {
	Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

func dbWithDefaultOptions(dbname string) (*bolt.DB, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: 1 * time.Second})
	return db, err
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := dbWithDefaultOptions(dbname)
	if err != nil {
		return nil, errors.Wrapf(err, "open database %s", dbname)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Infow("initializing store", "path", db.Path())
	st := &dbStore{db}
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the database.
func (s *dbStore) Close() error {
	return s.db.Close()
}

func marshalAttrs(a *termios.Attrs) []byte {
	// MarshalBinary never fails.
	data, _ := a.MarshalBinary()
	return data
}

func unmarshalAttrs(data []byte) (termios.Attrs, error) {
	var a termios.Attrs
	err := a.UnmarshalBinary(data)
	return a, err
}
