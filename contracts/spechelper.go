// Package contracts holds the behavioural specifications that implementations of the fixreg interfaces must pass.
//
//	func TestMyStorage(t *testing.T) {
//		contracts.Storage{Subject: func(tb testing.TB) contracts.StorageSubject {
//			return mystorage.New()
//		}}.Test(t)
//	}
package contracts

import (
	"github.com/adamluzsi/fixreg"
)

// Entity is the entity type the contracts exercise implementations with.
type Entity struct {
	ID     string `ext:"ID"`
	Name   string
	Age    int
	Active bool
}

const EntityType fixreg.EntityType = "contracts.Entity"

// OtherEntity shares its shape with Entity, but is stored under a different type.
type OtherEntity struct {
	ID   string `ext:"ID"`
	Name string
}

const OtherEntityType fixreg.EntityType = "contracts.OtherEntity"

type WithoutID struct {
	Name string
}
