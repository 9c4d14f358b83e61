package logger

import (
	"errors"
	"reflect"

	"github.com/adamluzsi/fixreg"
)

type LoggingDetail interface{ addTo(*Logger, logEntry) }

func Field(key string, value interface{}) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value interface{}
}

func (f field) addTo(l *Logger, e logEntry) {
	e[l.getKeyFormatter()(f.Key)] = l.toFieldValue(f.Value)
}

type Fields map[string]interface{}

func (fields Fields) addTo(l *Logger, e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// ErrField logs the error message, and the error constant it belongs to when there is one.
func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	details := Fields{
		"message": err.Error(),
	}
	var code fixreg.Error
	if errors.As(err, &code) {
		details["code"] = code.Error()
	}
	return Field("error", details)
}

func (l *Logger) toFieldValue(val interface{}) interface{} {
	switch val := val.(type) {
	case nil:
		return nil
	case fixreg.EntityType:
		return val.String()
	case Fields:
		le := logEntry{}
		val.addTo(l, le)
		return map[string]interface{}(le)
	case error:
		return val.Error()
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		vs := map[string]interface{}{}
		for _, key := range rv.MapKeys() {
			vs[l.getKeyFormatter()(key.String())] = l.toFieldValue(rv.MapIndex(key).Interface())
		}
		return vs
	}
	return val
}

type logEntry map[string]interface{}

func (le logEntry) addTo(l *Logger, entry logEntry) { entry.Merge(le) }

func (le logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		le[k] = v
	}
	return le
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(*Logger, logEntry) {}
