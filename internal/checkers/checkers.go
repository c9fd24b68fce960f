// Package checkers provides custom quicktest checkers shared by the tests.
package checkers

import (
	"encoding/json"
	"fmt"
	"reflect"

	qt "github.com/frankban/quicktest"
	"github.com/yalp/jsonpath"
)

// JSONPathEquals returns a checker asserting that the value at the given
// JSONPath expression inside the got document (a JSON string or []byte)
// equals the want argument.
//
//	c.Assert(out, checkers.JSONPathEquals("$[0].name"), "demo")
func JSONPathEquals(path string) qt.Checker {
	return &jsonPathChecker{path: path}
}

type jsonPathChecker struct {
	path string
}

// ArgNames implements qt.Checker.
func (c *jsonPathChecker) ArgNames() []string {
	return []string{"got", "want"}
}

// Check implements qt.Checker.
func (c *jsonPathChecker) Check(got interface{}, args []interface{}, note func(key string, value interface{})) error {
	var raw []byte
	switch v := got.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("expected a JSON string or []byte, got %T", got)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %v", err)
	}

	val, err := jsonpath.Read(doc, c.path)
	if err != nil {
		return fmt.Errorf("cannot read path %q: %v", c.path, err)
	}
	note("path value", val)
	if !reflect.DeepEqual(val, args[0]) {
		return fmt.Errorf("value at %q does not equal the want argument", c.path)
	}
	return nil
}
