package contact

import (
	"fmt"
	"github.com/icinga/icinga-addressbook/internal/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
	"strings"
)

// Record holds a single contact, i.e. its name and an ordered list of phone numbers.
//
// Phones are kept in insertion order. The same number may be added more than once.
type Record struct {
	name   Name
	phones []*Phone
}

// NewRecord creates a new Record for the given name without any phone numbers.
func NewRecord(name string) *Record {
	return &Record{name: Name(name)}
}

// Name returns the name of this contact.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []*Phone {
	return slices.Clone(r.phones)
}

// AddPhone validates the given number and appends it to the phone list.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}

	r.phones = append(r.phones, phone)
	return nil
}

// AddPhones appends all given numbers in order.
//
// All numbers are validated upfront. If any of them is invalid, nothing is added and the validation errors of all
// invalid numbers are returned combined.
func (r *Record) AddPhones(numbers ...string) error {
	phones := make([]*Phone, 0, len(numbers))

	var errs error
	for _, number := range numbers {
		phone, err := NewPhone(number)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		phones = append(phones, phone)
	}

	if errs != nil {
		return errs
	}

	r.phones = append(r.phones, phones...)
	return nil
}

// RemovePhone removes every phone equal to number. Unknown numbers are silently ignored.
func (r *Record) RemovePhone(number string) {
	r.phones = utils.RemoveIf(r.phones, func(p *Phone) bool {
		return p.value == number
	})
}

// EditPhone replaces the first phone equal to oldNumber with newNumber, keeping its position in the list.
//
// Returns an error wrapping ErrPhoneNotFound if oldNumber isn't present or one wrapping ErrInvalidPhone if newNumber
// is malformed. The record is left unchanged in both cases.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	phone := r.FindPhone(oldNumber)
	if phone == nil {
		return fmt.Errorf("%w: contact %q has no phone %q", ErrPhoneNotFound, r.name, oldNumber)
	}

	if err := ValidatePhone(newNumber); err != nil {
		return err
	}

	phone.value = newNumber
	return nil
}

// FindPhone returns the first phone equal to number or nil if there is none.
func (r *Record) FindPhone(number string) *Phone {
	i := slices.IndexFunc(r.phones, func(p *Phone) bool {
		return p.value == number
	})
	if i < 0 {
		return nil
	}

	return r.phones[i]
}

func (r *Record) String() string {
	numbers := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		numbers = append(numbers, p.value)
	}

	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(numbers, "; "))
}

// MarshalLogObject implements the zapcore.ObjectMarshaler interface.
func (r *Record) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("name", r.name.Value())
	return encoder.AddArray("phones", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, p := range r.phones {
			arr.AppendString(p.value)
		}
		return nil
	}))
}

var _ zapcore.ObjectMarshaler = (*Record)(nil)
