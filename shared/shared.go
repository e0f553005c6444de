package shared

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ConvertStringToInt parses an optional numeric query value. Empty or malformed input
// yields nil.
func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

// ApplyFields copies every non-nil pointer field of patch onto the field with the same name
// in target. target must be a pointer to a struct. It reports whether any field was set.
func ApplyFields(target any, patch any) bool {
	dst := reflect.ValueOf(target)
	if dst.Kind() != reflect.Pointer || dst.Elem().Kind() != reflect.Struct {
		return false
	}
	dst = dst.Elem()

	src := reflect.ValueOf(patch)
	if src.Kind() == reflect.Pointer {
		src = src.Elem()
	}
	if src.Kind() != reflect.Struct {
		return false
	}

	typ := src.Type()
	applied := false

	for index := range src.NumField() {
		field := src.Field(index)
		if field.Kind() != reflect.Pointer || field.IsNil() {
			continue
		}

		dstField := dst.FieldByName(typ.Field(index).Name)
		if !dstField.IsValid() || !dstField.CanSet() {
			continue
		}

		value := field.Elem()
		if !value.Type().AssignableTo(dstField.Type()) {
			continue
		}

		dstField.Set(value)
		applied = true
	}

	return applied
}

// BuildKey joins parts into a colon separated storage key.
func BuildKey(parts ...string) string {
	return strings.Join(parts, ":")
}
