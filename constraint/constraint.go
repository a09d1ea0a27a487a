package constraint

import (
	"cmp"
	"errors"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

type Validator[T any] func(v T) error

// ValidateFunc pairs a validator with the short name used in error messages.
type ValidateFunc[T any] func() (string, Validator[T])

var (
	ErrLengthBetween = errors.New("length must be between")
	ErrNotValidEmail = errors.New("not valid email address")
	ErrNotOneOf      = errors.New("value must be one of")
	ErrMustGt        = errors.New("must be greater than")
	ErrMustBetween   = errors.New("must be between")
)

// LengthBetween validates that a string's length in runes is within a given range (inclusive).
func LengthBetween(min, max int) ValidateFunc[string] {
	return func() (string, Validator[string]) {
		return "length_between", func(str string) error {
			n := utf8.RuneCountInString(str)
			return lo.Ternary(n < min || n > max, fmt.Errorf("%w %d and %d characters", ErrLengthBetween, min, max), nil)
		}
	}
}

// Email validates that a string is a bare email address, without a display name.
func Email() ValidateFunc[string] {
	return func() (string, Validator[string]) {
		return "email", func(str string) error {
			addr := mo.TupleToResult[*mail.Address](mail.ParseAddress(str))
			bad := addr.IsError() || addr.MustGet().Address != str
			return lo.Ternary(bad, fmt.Errorf("%w: %s", ErrNotValidEmail, str), nil)
		}
	}
}

// OneOf validates that a value is one of the allowed values.
func OneOf[T comparable](allowed ...T) ValidateFunc[T] {
	return func() (string, Validator[T]) {
		return "one_of", func(val T) error {
			return lo.Ternary(!lo.Contains(allowed, val), fmt.Errorf("%w: %v", ErrNotOneOf, allowed), nil)
		}
	}
}

// Gt validates that a value is greater than min.
func Gt[T cmp.Ordered](min T) ValidateFunc[T] {
	return func() (string, Validator[T]) {
		return "gt", func(val T) error {
			return lo.Ternary(val <= min, fmt.Errorf("%w %v", ErrMustGt, min), nil)
		}
	}
}

// Between validates that a value is within a given range (inclusive of min and max).
func Between[T cmp.Ordered](min, max T) ValidateFunc[T] {
	return func() (string, Validator[T]) {
		return "between", func(val T) error {
			return lo.Ternary(val < min || val > max, fmt.Errorf("%w %v and %v", ErrMustBetween, min, max), nil)
		}
	}
}

// Check runs every validator against val and joins the failures, each prefixed with
// the field name. It returns nil when all pass.
func Check[T any](field string, val T, vfs ...ValidateFunc[T]) error {
	var errs []error
	for _, vf := range vfs {
		name, v := vf()
		if err := v(val); err != nil {
			errs = append(errs, fmt.Errorf("%s (%s): %w", field, name, err))
		}
	}
	return errors.Join(errs...)
}
