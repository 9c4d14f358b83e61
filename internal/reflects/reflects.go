// Package reflects holds the reflection helpers used to introspect entities.
package reflects

import (
	"errors"
	"fmt"
	"reflect"
)

func BaseTypeOf(i interface{}) reflect.Type {
	t := reflect.TypeOf(i)

	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}

func BaseValueOf(i interface{}) reflect.Value {
	v := reflect.ValueOf(i)

	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return v
}

// Name returns the name of the base type of the given value.
func Name(i interface{}) string {
	t := BaseTypeOf(i)
	if t == nil {
		return ""
	}
	return t.Name()
}

// Link will make the value the dst pointer points to a copy of src.
// if the src is a pointer to a value, the value will be linked
func Link(src, dst interface{}) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New(fmt.Sprint(recovered))
		}
	}()

	value := reflect.ValueOf(src)

	if value.Kind() != reflect.Ptr {
		ptr := reflect.New(reflect.TypeOf(src))
		ptr.Elem().Set(value)
		value = ptr
	}

	reflect.ValueOf(dst).Elem().Set(value.Elem())

	return nil
}
