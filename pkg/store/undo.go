package store

import (
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"src.ttyattr.dev/pkg/termios"
)

func init() {
	initDB["initialize undo table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketUndo))
		return err
	}
}

// PutUndo records the attributes dev had before a change.
func (s *dbStore) PutUndo(dev string, a *termios.Attrs) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUndo))
		return b.Put([]byte(dev), marshalAttrs(a))
	})
}

// Undo returns the attributes recorded for dev by PutUndo. It returns
// ErrNoSnapshot if nothing has been recorded.
func (s *dbStore) Undo(dev string) (termios.Attrs, error) {
	var a termios.Attrs
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUndo))
		v := b.Get([]byte(dev))
		if v == nil {
			return ErrNoSnapshot
		}
		var err error
		a, err = unmarshalAttrs(v)
		return errors.Wrapf(err, "undo record for %s", dev)
	})
	return a, err
}
