package validator

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"conectapro/shared/constant"
	"conectapro/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

const megabyte = 1 << 20

// dataURIContentType returns the media type of a "data:<type>;base64,<payload>" string.
func dataURIContentType(uri string) (string, bool) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", false
	}

	contentType, _, ok := strings.Cut(rest, ";base64,")
	if !ok || contentType == "" {
		return "", false
	}

	return contentType, true
}

// upload describes an uploaded file field, either a multipart part or a base64 data URI.
// Data URI sizes are the decoded payload size.
func upload(field val.FieldLevel) (contentType string, size int64, ok bool) {
	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return v.Header.Get(constant.RequestHeaderContentType), v.Size, true
	case string:
		contentType, ok = dataURIContentType(v)
		if !ok {
			return "", 0, false
		}

		_, payload, _ := strings.Cut(v, ";base64,")

		return contentType, int64(base64.StdEncoding.DecodedLen(len(payload))), true
	default:
		return "", 0, false
	}
}

func mimetypesValidation(field val.FieldLevel) bool {
	contentType, _, ok := upload(field)
	if !ok {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

func maxFileSizeValidation(field val.FieldLevel) bool {
	_, size, ok := upload(field)
	if !ok {
		return false
	}

	maxMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(size) <= maxMB*megabyte
}

func layoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, str)

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// report json names so messages match what the client sent
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	custom := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"mimetypes":   mimetypesValidation,
		"maxfilesize": maxFileSizeValidation,
		"date":        layoutValidation(constant.DateOnlyFormat),
		"timeofday":   layoutValidation(constant.TimeOfDay),
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	// an empty body validates the zero value
	if err != nil && !errors.Is(err, io.EOF) {
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
