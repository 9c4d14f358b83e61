// Package localstorage is a fixreg.Storage and fixreg.PersistenceLayer backed by a local BoltDB file.
package localstorage

import (
	"bytes"
	"context"
	"encoding/gob"
	"strconv"

	"github.com/boltdb/bolt"

	"github.com/adamluzsi/fixreg"
	"github.com/adamluzsi/fixreg/internal/reflects"
)

func NewLocal(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	return &Local{DB: db}, nil
}

type Local struct {
	DB *bolt.DB
	// Cleanup is the storage side flag that allows schema reset at the end of a suite.
	Cleanup bool
}

// Close the Local database and release the file lock
func (storage *Local) Close() error {
	return storage.DB.Close()
}

func (storage *Local) Save(ctx context.Context, t fixreg.EntityType, ptr fixreg.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := reflects.LookupID(ptr)

	if !ok {
		return fixreg.ErrIDRequired
	}

	return storage.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(storage.bucketName(t))

		if err != nil {
			return err
		}

		if id == "" {
			seq, err := bucket.NextSequence()

			if err != nil {
				return err
			}

			id = strconv.FormatUint(seq, 10)

			if err := reflects.SetID(ptr, id); err != nil {
				return err
			}
		}

		value, err := storage.encode(ptr)

		if err != nil {
			return err
		}

		return bucket.Put([]byte(id), value)
	})
}

func (storage *Local) FindByID(ctx context.Context, t fixreg.EntityType, id string, ptr fixreg.Entity) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var found bool

	err := storage.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.bucketName(t))

		if bucket == nil {
			return nil
		}

		encodedValue := bucket.Get([]byte(id))

		if encodedValue == nil {
			return nil
		}

		found = true
		return storage.decode(encodedValue, ptr)
	})

	return found, err
}

func (storage *Local) Config(key string) (interface{}, bool) {
	switch key {
	case fixreg.CleanupConfigKey:
		return storage.Cleanup, true
	case "driver":
		return "bolt", true
	case "path":
		return storage.DB.Path(), true
	default:
		return nil, false
	}
}

// ResetSchema deletes every bucket of the database.
func (storage *Local) ResetSchema(ctx context.Context, _ fixreg.Container) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return storage.DB.Update(func(tx *bolt.Tx) error {
		var names [][]byte

		if err := tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, append([]byte(nil), name...))
			return nil
		}); err != nil {
			return err
		}

		for _, name := range names {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}

		return nil
	})
}

func (storage *Local) bucketName(t fixreg.EntityType) []byte {
	return []byte(t)
}

func (storage *Local) encode(e fixreg.Entity) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (storage *Local) decode(data []byte, ptr fixreg.Entity) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(ptr)
}
