package reflects

import (
	"fmt"
	"reflect"
)

const idTagKey = "ext"

// LookupID returns the string identity of an entity.
// The identity is a string field tagged with `ext:"ID"`, or the field named ID.
func LookupID(i interface{}) (string, bool) {
	val, ok := idReflectValue(reflect.ValueOf(i))

	if ok {
		return val.String(), true
	}

	return "", false
}

// SetID sets the identity field of the entity that ptr points to.
func SetID(ptr interface{}, id string) error {
	r := reflect.ValueOf(ptr)

	if r.Kind() != reflect.Ptr {
		return fmt.Errorf("pointer expected, got %T", ptr)
	}

	val, ok := idReflectValue(r)

	if !ok {
		return fmt.Errorf("can't find ID in %T", ptr)
	}

	if !val.CanSet() {
		return fmt.Errorf("ID field of %T is not settable", ptr)
	}

	val.SetString(id)
	return nil
}

// IsIDField tells whether the given struct field holds the entity identity.
func IsIDField(field reflect.StructField) bool {
	if field.Type.Kind() != reflect.String {
		return false
	}
	if field.Tag.Get(idTagKey) == "ID" {
		return true
	}
	return field.Name == "ID"
}

func idReflectValue(val reflect.Value) (reflect.Value, bool) {
	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, false
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	if byTag, ok := lookupByTag(val); ok {
		return byTag, true
	}

	// a promoted ID behind a nil embedded pointer is not reachable
	if sf, ok := val.Type().FieldByName("ID"); ok && sf.Type.Kind() == reflect.String {
		if byName, err := val.FieldByIndexErr(sf.Index); err == nil {
			return byName, true
		}
	}

	return reflect.Value{}, false
}

func lookupByTag(val reflect.Value) (reflect.Value, bool) {
	for i := 0; i < val.NumField(); i++ {
		typeField := val.Type().Field(i)

		if typeField.Type.Kind() == reflect.String && typeField.Tag.Get(idTagKey) == "ID" {
			return val.Field(i), true
		}
	}

	return reflect.Value{}, false
}
