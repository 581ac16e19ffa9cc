package untagged

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch matches every *DecodeError via errors.Is.
	ErrNoMatch = errors.New("untagged: no candidate matched")
	// ErrEmpty matches every *EncodeError via errors.Is.
	ErrEmpty = errors.New("untagged: empty value")
)

// DecodeError is returned when the input decoded as neither candidate.
type DecodeError struct {
	A, B string // candidate names, in the order they were tried
	ErrA error
	ErrB error
}

func (e *DecodeError) Error() string {
	switch {
	case e.ErrA != nil && e.ErrB != nil:
		return fmt.Sprintf("untagged: unable to decode value as either %s or %s: %s: %v; %s: %v",
			e.A, e.B, e.A, e.ErrA, e.B, e.ErrB)
	default:
		return fmt.Sprintf("untagged: unable to decode value as either %s or %s", e.A, e.B)
	}
}

func (e *DecodeError) Is(target error) bool { return target == ErrNoMatch }

func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.ErrA != nil {
		errs = append(errs, e.ErrA)
	}
	if e.ErrB != nil {
		errs = append(errs, e.ErrB)
	}
	return errs
}

// EncodeError is returned when encoding a value with no populated slot.
type EncodeError struct {
	A, B string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("untagged: value is neither %s nor %s", e.A, e.B)
}

func (e *EncodeError) Is(target error) bool { return target == ErrEmpty }
