package db_test

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// every test closes the databases it opens
	goleak.VerifyTestMain(m)
}
