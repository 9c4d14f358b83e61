package factory

import (
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"

	"github.com/adamluzsi/fixreg/internal/reflects"
)

// randomize populates every settable field of the struct ptr points to with random data.
// The identity field is left empty, including one promoted from an embedded struct,
// so the storage can assign it on persisting.
// Reference kinds (pointers, slices, maps, channels, functions and interfaces) keep their zero value.
func randomize(ptr reflect.Value) {
	elem := ptr.Elem()

	for i := 0; i < elem.NumField(); i++ {
		fv := elem.Field(i)

		if !fv.CanSet() || reflects.IsIDField(elem.Type().Field(i)) {
			continue
		}

		if newValue := newValue(fv.Type()); newValue.IsValid() {
			fv.Set(newValue)
		}
	}

	// the identity may be promoted from an embedded struct that got random values above
	if id, ok := reflects.LookupID(ptr.Interface()); ok && id != "" {
		_ = reflects.SetID(ptr.Interface(), "")
	}
}

var mutex sync.Mutex

var timeType = reflect.TypeOf(time.Time{})

func newValue(typ reflect.Type) reflect.Value {
	mutex.Lock()
	defer mutex.Unlock()
	return newValueOf(typ)
}

func newValueOf(typ reflect.Type) reflect.Value {
	switch typ.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(randomdata.Boolean()).Convert(typ)

	case reflect.String:
		return reflect.ValueOf(randomdata.SillyName()).Convert(typ)

	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		if typ == reflect.TypeOf(time.Duration(0)) {
			return reflect.ValueOf(time.Duration(randomdata.Number(1, 3600)) * time.Second)
		}
		return reflect.ValueOf(randomdata.Number(1, 32767)).Convert(typ)

	case reflect.Int8:
		return reflect.ValueOf(int8(randomdata.Number(1, 127))).Convert(typ)

	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.ValueOf(uint(randomdata.Number(1, 65535))).Convert(typ)

	case reflect.Uint8:
		return reflect.ValueOf(uint8(randomdata.Number(1, 255))).Convert(typ)

	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(randomdata.Decimal(1, 1000, 2)).Convert(typ)

	case reflect.Complex64, reflect.Complex128:
		return reflect.ValueOf(complex(rand.Float64(), rand.Float64())).Convert(typ)

	case reflect.Array:
		arr := reflect.New(typ).Elem()
		for i := 0; i < arr.Len(); i++ {
			if v := newValueOf(typ.Elem()); v.IsValid() {
				arr.Index(i).Set(v)
			}
		}
		return arr

	case reflect.Struct:
		if typ == timeType {
			return reflect.ValueOf(randomTimeUTC())
		}
		ptr := reflect.New(typ)
		for i := 0; i < typ.NumField(); i++ {
			fv := ptr.Elem().Field(i)
			if !fv.CanSet() {
				continue
			}
			if v := newValueOf(fv.Type()); v.IsValid() {
				fv.Set(v)
			}
		}
		return ptr.Elem()

	default:
		return reflect.Value{}
	}
}

func randomTimeUTC() time.Time {
	hours := time.Duration(randomdata.Number(1, 24*365*10)) * time.Hour
	return time.Now().UTC().Add(hours).Truncate(time.Second)
}
