package contact

import (
	"errors"
	"fmt"
)

// PhoneLength is the exact number of decimal digits a phone number consists of.
const PhoneLength = 10

var (
	// ErrInvalidPhone is returned whenever a value doesn't satisfy the phone number format.
	ErrInvalidPhone = errors.New("phone number must consist of exactly 10 digits")

	// ErrPhoneNotFound is returned by operations that require an existing phone number of a record.
	ErrPhoneNotFound = errors.New("phone number not found")
)

// Field is a single labeled value of a contact record.
type Field interface {
	fmt.Stringer

	// Value returns the raw value held by this field.
	Value() string
}

// Name is the display name of a contact and also its identity within an address book.
type Name string

// Value implements the Field interface.
func (n Name) Value() string {
	return string(n)
}

func (n Name) String() string {
	return string(n)
}

// Phone is a validated phone number. Use NewPhone to create one.
type Phone struct {
	value string
}

// NewPhone creates a new Phone from the given value.
//
// Returns an error wrapping ErrInvalidPhone if the value is not made up of exactly PhoneLength decimal digits.
func NewPhone(value string) (*Phone, error) {
	if err := ValidatePhone(value); err != nil {
		return nil, err
	}

	return &Phone{value: value}, nil
}

// Value implements the Field interface.
func (p *Phone) Value() string {
	return p.value
}

func (p *Phone) String() string {
	return p.value
}

// IsValidPhone reports whether value is a well-formed phone number.
func IsValidPhone(value string) bool {
	if len(value) != PhoneLength {
		return false
	}

	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}

	return true
}

// ValidatePhone is like IsValidPhone but returns a descriptive error wrapping ErrInvalidPhone instead.
func ValidatePhone(value string) error {
	if !IsValidPhone(value) {
		return fmt.Errorf("%w, got %q", ErrInvalidPhone, value)
	}

	return nil
}

// Assert interface compliance.
var (
	_ Field = Name("")
	_ Field = (*Phone)(nil)
)
