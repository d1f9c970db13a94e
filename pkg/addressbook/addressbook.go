// Package addressbook provides an in-memory collection of contact records keyed by their name.
package addressbook

import (
	"github.com/icinga/icinga-addressbook/internal/utils"
	"github.com/icinga/icinga-addressbook/pkg/contact"
	"github.com/icinga/icingadb/pkg/logging"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// AddressBook maps contact names to their records.
//
// Iteration follows insertion order. Replacing a record keeps the position of the name it is stored under.
// An AddressBook is not safe for concurrent use.
type AddressBook struct {
	records map[string]*contact.Record
	names   []string

	logger *logging.Logger
}

// New creates an empty AddressBook. A nil logger disables logging.
func New(logger *logging.Logger) *AddressBook {
	if logger == nil {
		logger = logging.NewLogger(zap.NewNop().Sugar(), 0)
	}

	return &AddressBook{
		records: make(map[string]*contact.Record),
		logger:  logger,
	}
}

// AddRecord stores the record under its name, replacing any record previously stored under that name.
func (b *AddressBook) AddRecord(record *contact.Record) {
	name := record.Name().Value()

	if old, ok := b.records[name]; ok {
		b.logger.Debugw("replacing contact record", zap.Object("old", old), zap.Object("new", record))
	} else {
		b.names = append(b.names, name)
		b.logger.Debugw("added contact record", zap.Object("record", record))
	}

	b.records[name] = record
}

// Find returns the record stored under name or nil if there is none.
func (b *AddressBook) Find(name string) *contact.Record {
	return b.records[name]
}

// Delete removes the record stored under name. Unknown names are silently ignored.
func (b *AddressBook) Delete(name string) {
	record, ok := b.records[name]
	if !ok {
		return
	}

	delete(b.records, name)
	b.names = utils.RemoveIf(b.names, func(n string) bool { return n == name })

	b.logger.Debugw("deleted contact record", zap.Object("record", record))
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.names)
}

// Names returns the names of all records in insertion order.
func (b *AddressBook) Names() []string {
	return slices.Clone(b.names)
}

// Iterate returns an iterator over all records and the names they are stored under, in insertion order.
//
// Once rangefuncs are available, this can be used as:
//
//	for name, record := range book.Iterate() {
//	}
//
// Until then, invoke the returned function with a yield callback returning false to stop early.
// The book must not be modified while iterating.
func (b *AddressBook) Iterate() func(yield func(string, *contact.Record) bool) {
	return func(yield func(string, *contact.Record) bool) {
		for _, name := range b.names {
			if !yield(name, b.records[name]) {
				return
			}
		}
	}
}
