// Package fieldmap reads one logical field out of loosely shaped upstream JSON.
//
// The open-data APIs publish the same information under different keys depending
// on endpoint and API version. Each field is described by an ordered list of
// gjson paths; the first path holding a non-null value wins.
package fieldmap

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Candidates is the precedence list of paths for a single field.
type Candidates []string

// Lookup returns the value at the first path that exists and is not null.
// An empty string counts as present.
func (c Candidates) Lookup(doc gjson.Result) (gjson.Result, bool) {
	for _, path := range c {
		if v := doc.Get(path); v.Exists() && v.Type != gjson.Null {
			return v, true
		}
	}
	return gjson.Result{}, false
}

// String returns the matched value as text, or fallback when no path matched.
// Numbers keep their upstream textual form.
func (c Candidates) String(doc gjson.Result, fallback string) string {
	v, ok := c.Lookup(doc)
	if !ok {
		return fallback
	}
	return v.String()
}

// Int coerces the matched value to an integer. Numeric strings are accepted;
// anything else reports false.
func (c Candidates) Int(doc gjson.Result) (int64, bool) {
	v, ok := c.Lookup(doc)
	if !ok {
		return 0, false
	}
	switch v.Type {
	case gjson.Number:
		return v.Int(), true
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}

// List returns the records found at the first matching path. The Senado API
// collapses single-element arrays into a bare object, so an object becomes a
// one-element list.
func (c Candidates) List(doc gjson.Result) []gjson.Result {
	v, ok := c.Lookup(doc)
	if !ok {
		return nil
	}
	switch {
	case v.IsArray():
		return v.Array()
	case v.IsObject():
		return []gjson.Result{v}
	}
	return nil
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
