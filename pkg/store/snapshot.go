package store

import (
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"src.ttyattr.dev/pkg/termios"
)

func init() {
	initDB["initialize snapshot table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSnapshot))
		return err
	}
}

// SaveAttrs saves a snapshot under the given name, replacing any existing
// snapshot with the same name.
func (s *dbStore) SaveAttrs(name string, a *termios.Attrs) error {
	if name == "" {
		return errors.New("empty snapshot name")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshot))
		return b.Put([]byte(name), marshalAttrs(a))
	})
}

// Attrs returns the snapshot with the given name.
func (s *dbStore) Attrs(name string) (termios.Attrs, error) {
	var a termios.Attrs
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshot))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoSnapshot
		}
		var err error
		a, err = unmarshalAttrs(v)
		return errors.Wrapf(err, "snapshot %s", name)
	})
	return a, err
}

// DelAttrs deletes a snapshot. Deleting a snapshot that doesn't exist is not an
// error.
func (s *dbStore) DelAttrs(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshot))
		return b.Delete([]byte(name))
	})
}

// AttrsNames returns the names of all snapshots, in lexicographical order.
func (s *dbStore) AttrsNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshot))
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
