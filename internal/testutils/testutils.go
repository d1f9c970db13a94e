package testutils

import (
	"github.com/icinga/icingadb/pkg/logging"
	"go.uber.org/zap/zaptest"
	"testing"
	"time"
)

// NewTestLogger creates a debug logger writing through the given testing.T.
//
// The output is only shown for failed tests or when running with -v.
func NewTestLogger(t *testing.T) *logging.Logger {
	return logging.NewLogger(zaptest.NewLogger(t).Sugar(), time.Hour)
}
