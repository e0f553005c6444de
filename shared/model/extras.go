package model

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Extras holds the JSON members of a stored record that the admin service does not model.
// They are written back untouched so fields owned by the storefront survive admin edits.
type Extras map[string]json.RawMessage

var knownFieldsCache sync.Map

// DecodeWithExtras decodes data into target, a pointer to a struct, and returns the members
// target has no field for.
func DecodeWithExtras(data []byte, target any) (Extras, error) {
	if err := json.Unmarshal(data, target); err != nil {
		return nil, err //nolint:wrapcheck
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("failed to read record members: %w", err)
	}

	known := knownFields(reflect.TypeOf(target))

	var extras Extras

	for name, value := range members {
		if _, ok := known[name]; ok {
			continue
		}

		if extras == nil {
			extras = make(Extras)
		}

		extras[name] = value
	}

	return extras, nil
}

// EncodeWithExtras encodes value and adds the extras it does not already contain.
func EncodeWithExtras(value any, extras Extras) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil || len(extras) == 0 {
		return data, err //nolint:wrapcheck
	}

	var members map[string]json.RawMessage
	if err = json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("failed to merge record members: %w", err)
	}

	for name, raw := range extras {
		if _, ok := members[name]; !ok {
			members[name] = raw
		}
	}

	return json.Marshal(members) //nolint:wrapcheck
}

func knownFields(typ reflect.Type) map[string]struct{} {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if cached, ok := knownFieldsCache.Load(typ); ok {
		return cached.(map[string]struct{}) //nolint:forcetypeassert
	}

	fields := make(map[string]struct{})

	for index := range typ.NumField() {
		field := typ.Field(index)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		fields[name] = struct{}{}
	}

	knownFieldsCache.Store(typ, fields)

	return fields
}
