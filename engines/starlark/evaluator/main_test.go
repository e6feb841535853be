package evaluator

import (
	"testing"

	"go.uber.org/goleak"
)

// Cancelled evaluations must not leave the cancellation hook running.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
