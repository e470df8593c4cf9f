package db

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"modernc.org/sqlite"
)

// ContainsFold is the SQL name of the Unicode aware substring match:
// contains_fold(haystack, needle) is 1 when needle occurs in haystack ignoring
// case, 0 otherwise and NULL when either side is NULL. SQLite's built-in
// lower() only folds ASCII.
const ContainsFold = "contains_fold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(ContainsFold, 2, containsFold)
}

func containsFold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	haystack, ok, err := textArg(args[0])
	if err != nil || !ok {
		return nil, err
	}
	needle, ok, err := textArg(args[1])
	if err != nil || !ok {
		return nil, err
	}

	if strings.Contains(strings.ToLower(haystack), strings.ToLower(needle)) {
		return int64(1), nil
	}
	return int64(0), nil
}

func textArg(v driver.Value) (string, bool, error) {
	switch t := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return t, true, nil
	case []byte:
		return string(t), true, nil
	default:
		return "", false, fmt.Errorf("%s: unsupported argument type %T", ContainsFold, v)
	}
}
