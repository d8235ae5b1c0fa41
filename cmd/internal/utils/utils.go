package utils

import (
	"reflect"
	"strings"
)

// Sanitize trims every string field of the struct o points to.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		if field := v.Field(i); field.Kind() == reflect.String {
			field.SetString(sanitizeString(field.String()))
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
