package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"saapadu/shared/base64"
	"saapadu/shared/constant"
	"saapadu/shared/failure"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	// remote urls and the placeholder pass through
	if !base64.IsDataURL(str) {
		return true
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, base64.MediaType(str))
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return len(str) <= maxSizeBytes
}

func registerCategoryValidation(field val.FieldLevel) bool {
	return slices.Contains(constant.MenuCategories, field.Field().String())
}

func registerOrderStatusValidation(field val.FieldLevel) bool {
	return slices.Contains(constant.OrderStatuses, field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Messages name fields as clients send them.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == constant.Empty {
			return field.Name
		}

		return name
	})

	rules := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
		"category":    registerCategoryValidation,
		"orderstatus": registerOrderStatusValidation,
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON request body into data and validates it. Both decode and
// validation problems come back as a 400 failure.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
