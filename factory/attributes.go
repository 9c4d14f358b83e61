package factory

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/adamluzsi/fixreg"
)

// Lazy is an override value that is evaluated for every instantiated entity.
// It is the explicit way to have per-item variation within a batch.
type Lazy func() interface{}

const attributeTagKey = "fixture"

func applyOverrides(ptr reflect.Value, overrides fixreg.Overrides) error {
	elem := ptr.Elem()

	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fv, ok := fieldByAttribute(elem, key)
		if !ok {
			return fixreg.ErrUnknownAttribute.F("%s has no %q attribute", elem.Type().Name(), key)
		}
		val := overrides[key]
		if lazy, ok := val.(Lazy); ok {
			val = lazy()
		}
		if err := assign(fv, val); err != nil {
			return fixreg.ErrAttributeType.F("%s.%s: %s", elem.Type().Name(), key, err.Error())
		}
	}
	return nil
}

// fieldByAttribute matches the attribute name against the fixture tag,
// then the json tag, then the field name without case and underscores.
// Fields promoted from embedded structs are matched as well.
func fieldByAttribute(elem reflect.Value, name string) (reflect.Value, bool) {
	var byName []int
	for _, sf := range reflect.VisibleFields(elem.Type()) {
		if !sf.IsExported() {
			continue
		}
		if tagName(sf.Tag.Get(attributeTagKey)) == name || tagName(sf.Tag.Get("json")) == name {
			return fieldByIndex(elem, sf.Index)
		}
		if byName == nil && normalize(sf.Name) == normalize(name) {
			byName = sf.Index
		}
	}
	if byName == nil {
		return reflect.Value{}, false
	}
	return fieldByIndex(elem, byName)
}

// fieldByIndex doesn't reach through a nil embedded pointer.
func fieldByIndex(elem reflect.Value, index []int) (reflect.Value, bool) {
	fv, err := elem.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, false
	}
	return fv, true
}

func tagName(tag string) string {
	if i := strings.Index(tag, ","); 0 <= i {
		tag = tag[:i]
	}
	if tag == "-" {
		return ""
	}
	return tag
}

func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

func assign(field reflect.Value, val interface{}) error {
	ft := field.Type()
	if val == nil {
		field.Set(reflect.Zero(ft))
		return nil
	}
	rv := reflect.ValueOf(val)
	switch {
	case rv.Type().AssignableTo(ft):
		field.Set(rv)
	case ft.Kind() == reflect.Ptr && rv.Type().AssignableTo(ft.Elem()):
		ptr := reflect.New(ft.Elem())
		ptr.Elem().Set(rv)
		field.Set(ptr)
	case isNumber(rv.Kind()) && isNumber(ft.Kind()):
		return convertNumber(field, rv)
	case isConvertible(rv.Type(), ft):
		field.Set(rv.Convert(ft))
	default:
		return fmt.Errorf("%T value is not assignable to %s", val, ft)
	}
	return nil
}

// isConvertible rejects the conversions between string and non-string kinds,
// such as an int converted to a string.
func isConvertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if (to.Kind() == reflect.String) != (from.Kind() == reflect.String) {
		return false
	}
	return true
}

// convertNumber sets a numeric field only when the value fits into it unchanged.
// Floats are never converted into integers, so a fraction can't be truncated.
func convertNumber(field reflect.Value, rv reflect.Value) error {
	ft := field.Type()
	out := reflect.New(ft).Elem()
	switch {
	case isInt(ft.Kind()):
		var i int64
		switch {
		case isInt(rv.Kind()):
			i = rv.Int()
		case isUint(rv.Kind()):
			if rv.Uint() > math.MaxInt64 {
				return fmt.Errorf("%v overflows %s", rv.Interface(), ft)
			}
			i = int64(rv.Uint())
		default:
			return fmt.Errorf("%s value %v can't be used as %s", rv.Type(), rv.Interface(), ft)
		}
		if out.OverflowInt(i) {
			return fmt.Errorf("%v overflows %s", rv.Interface(), ft)
		}
		out.SetInt(i)

	case isUint(ft.Kind()):
		var u uint64
		switch {
		case isInt(rv.Kind()):
			if rv.Int() < 0 {
				return fmt.Errorf("negative %v can't be used as %s", rv.Interface(), ft)
			}
			u = uint64(rv.Int())
		case isUint(rv.Kind()):
			u = rv.Uint()
		default:
			return fmt.Errorf("%s value %v can't be used as %s", rv.Type(), rv.Interface(), ft)
		}
		if out.OverflowUint(u) {
			return fmt.Errorf("%v overflows %s", rv.Interface(), ft)
		}
		out.SetUint(u)

	default: // float
		var f float64
		switch {
		case isInt(rv.Kind()):
			f = float64(rv.Int())
		case isUint(rv.Kind()):
			f = float64(rv.Uint())
		default:
			f = rv.Float()
		}
		if out.OverflowFloat(f) {
			return fmt.Errorf("%v overflows %s", rv.Interface(), ft)
		}
		out.SetFloat(f)
	}
	field.Set(out)
	return nil
}

func isNumber(k reflect.Kind) bool { return isInt(k) || isUint(k) || isFloat(k) }

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
