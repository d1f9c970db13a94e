package main

import (
	"errors"
	"fmt"
	"github.com/icinga/icinga-addressbook/internal/config"
	"github.com/icinga/icinga-addressbook/pkg/addressbook"
	"github.com/icinga/icinga-addressbook/pkg/contact"
	"github.com/icinga/icingadb/pkg/logging"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"io"
	"os"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Flags defines the CLI flags supported by the demo.
type Flags struct {
	// Config is the path to the config file. Built-in defaults are used if it's empty.
	Config string `short:"c" long:"config" description:"path to config file"`
}

func main() {
	var f Flags
	if _, err := flags.NewParser(&f, flags.Default).Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(ExitSuccess)
		}

		// flags.Default already printed the error.
		os.Exit(ExitFailure)
	}

	conf, err := loadConfig(f.Config)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(ExitFailure)
	}

	logs, err := logging.NewLogging("addressbook", conf.Logging.Level, conf.Logging.Output, conf.Logging.Options, conf.Logging.Interval)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "cannot initialize logging:", err)
		os.Exit(ExitFailure)
	}

	logger := logs.GetLogger()
	defer func() { _ = logger.Sync() }()

	if err := run(os.Stdout, addressbook.New(logs.GetChildLogger("addressbook"))); err != nil {
		logger.Fatalw("address book demo failed", zap.Error(err))
	}
}

func loadConfig(path string) (*config.ConfigFile, error) {
	if path == "" {
		return config.Default()
	}

	return config.FromFile(path)
}

// run fills the given book with a few contacts, modifies them and prints the intermediate states to w.
func run(w io.Writer, book *addressbook.AddressBook) error {
	john := contact.NewRecord("John")
	if err := john.AddPhones("1234567890", "5555555555"); err != nil {
		return err
	}
	book.AddRecord(john)

	jane := contact.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		return err
	}
	book.AddRecord(jane)

	if err := printAll(w, book); err != nil {
		return err
	}

	john = book.Find("John")
	if john == nil {
		return errors.New("contact John vanished from the address book")
	}

	if err := john.EditPhone("1234567890", "1112223333"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, john); err != nil {
		return err
	}

	phone := john.FindPhone("5555555555")
	if phone == nil {
		return errors.New("phone 5555555555 of contact John not found")
	}
	if _, err := fmt.Fprintf(w, "%s: %s\n", john.Name(), phone); err != nil {
		return err
	}

	book.Delete("Jane")

	return printAll(w, book)
}

func printAll(w io.Writer, book *addressbook.AddressBook) (err error) {
	book.Iterate()(func(_ string, record *contact.Record) bool {
		_, err = fmt.Fprintln(w, record)
		return err == nil
	})

	return
}
