// Package scheduleio decodes and encodes the core's input/output
// shapes at the caller boundary. The core itself never touches JSON,
// files, or the network; this package does the JSON decoding,
// validation, and encoding for callers.
package scheduleio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/icedraw/schedgen/internal/core/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeInput reads a ScheduleInput from r as a closed record,
// rejecting unknown fields, and runs struct validation before
// returning.
func DecodeInput(r io.Reader) (models.ScheduleInput, error) {
	var input models.ScheduleInput

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return models.ScheduleInput{}, fmt.Errorf("scheduleio: decode input: %w", err)
	}

	if err := validate.Struct(&input); err != nil {
		return models.ScheduleInput{}, fmt.Errorf("scheduleio: validate input: %w", err)
	}

	if err := input.Validate(); err != nil {
		return models.ScheduleInput{}, fmt.Errorf("scheduleio: input: %w", err)
	}

	return input, nil
}

// DecodeInputBytes is a convenience wrapper around DecodeInput for
// already-buffered payloads.
func DecodeInputBytes(data []byte) (models.ScheduleInput, error) {
	return DecodeInput(bytes.NewReader(data))
}

// EncodeResult writes result as indented JSON to w.
func EncodeResult(w io.Writer, result models.ScheduleResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("scheduleio: encode result: %w", err)
	}
	return nil
}
