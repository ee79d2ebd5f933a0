package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sample-hr/employee-admin/internal/model"
)

// Mode selects how absent form keys are treated.
type Mode int

const (
	// Complete treats an absent key as an empty submission.
	Complete Mode = iota
	// Partial skips rules whose key was not submitted at all.
	Partial
)

var errOutOfRange = errors.New("is out of range")

// Rule binds a form field to a validator tag and a setter that converts the
// accepted raw value into the target.
type Rule[T any] struct {
	Field string
	Tag   string
	set   func(dst *T, raw string) error
}

// Text stores the trimmed value as is.
func Text[T any](field, tag string, set func(*T, string)) Rule[T] {
	return Rule[T]{Field: field, Tag: tag, set: func(dst *T, raw string) error {
		set(dst, raw)
		return nil
	}}
}

// Int converts the value to an int in [0, 2147483647], the range of the
// INTEGER columns it is stored in.
func Int[T any](field, tag string, set func(*T, int)) Rule[T] {
	return Rule[T]{Field: field, Tag: tag, set: func(dst *T, raw string) error {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			return errOutOfRange
		}
		set(dst, int(n))
		return nil
	}}
}

// Date converts a YYYY-MM-DD value to a calendar date.
func Date[T any](field, tag string, set func(*T, model.Date)) Rule[T] {
	return Rule[T]{Field: field, Tag: tag, set: func(dst *T, raw string) error {
		d, err := model.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("must be a date formatted as %s", model.DateLayout)
		}
		set(dst, d)
		return nil
	}}
}

// Apply runs every rule against raw and either returns a fully populated T
// or a *ValidationError holding one message per failing field. It never
// returns a partially populated value. Values are trimmed before they are
// checked, and the trimmed value is the one stored.
func Apply[T any](rules []Rule[T], raw map[string]string, mode Mode) (T, error) {
	Setup()

	var out T
	fields := make(map[string]string)
	for _, r := range rules {
		value, present := raw[r.Field]
		if !present && mode == Partial {
			continue
		}

		value = strings.TrimSpace(value)
		if msg := check(r.Field, value, r.Tag); msg != "" {
			fields[r.Field] = msg
			continue
		}
		if err := r.set(&out, value); err != nil {
			fields[r.Field] = r.Field + " " + err.Error()
		}
	}

	if len(fields) > 0 {
		var zero T
		return zero, &ValidationError{Fields: fields}
	}
	return out, nil
}
