package validator

import (
	"errors"
	"fmt"
	"reflect"
	"saapadu/shared/constant"
	"strings"

	val "github.com/go-playground/validator/v10"
)

type describe func(fe val.FieldError) string

var messages = map[string]describe{
	"required": plain("is required"),
	"email":    plain("must be a valid email address"),
	"url":      plain("must be a valid url"),
	"oneof":    bounded("must be one of"),
	"gt":       bounded("must be greater than"),
	"gte":      bounded("must be at least"),
	"lte":      bounded("must be at most"),
	"min":      sized("at least"),
	"max":      sized("at most"),

	"mimetypes":   bounded("must be one of"),
	"maxfilesize": func(fe val.FieldError) string { return fmt.Sprintf("%s must not exceed %s MB", name(fe), fe.Param()) },
	"category":    oneOf(constant.MenuCategories),
	"orderstatus": oneOf(constant.OrderStatuses),
}

// name is the json field name, or "value" for ValidateVar.
func name(fe val.FieldError) string {
	if fe.Field() == constant.Empty {
		return "value"
	}

	return fe.Field()
}

func plain(text string) describe {
	return func(fe val.FieldError) string {
		return name(fe) + " " + text
	}
}

func bounded(text string) describe {
	return func(fe val.FieldError) string {
		return fmt.Sprintf("%s %s %s", name(fe), text, strings.Join(strings.Fields(fe.Param()), ", "))
	}
}

// sized words min and max by kind: a length for strings and lists, a value otherwise.
func sized(bound string) describe {
	return func(fe val.FieldError) string {
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be %s %s characters", name(fe), bound, fe.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("%s must have %s %s items", name(fe), bound, fe.Param())
		default:
			return fmt.Sprintf("%s must be %s %s", name(fe), bound, fe.Param())
		}
	}
}

func oneOf(values []string) describe {
	return func(fe val.FieldError) string {
		return fmt.Sprintf("%s must be one of %s", name(fe), strings.Join(values, ", "))
	}
}

// message describes every failed field, in struct order, joined by "; ".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, fe := range valErrors {
		if fn, ok := messages[fe.Tag()]; ok {
			parts = append(parts, fn(fe))
			continue
		}

		parts = append(parts, fmt.Sprintf("%s failed %s validation", name(fe), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
