// Package sequence mints the human-facing identifiers of the back office:
// GR numbers, challan and crossing numbers, and customer codes.
//
// An identifier is a namespace prefix followed by a zero-padded counter.
// Counters are kept per namespace (see PostgresCounter and RedisCounter)
// and seeded from the numeric maximum of identifiers already stored.
package sequence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrExhausted is returned when a counter no longer fits its width.
	ErrExhausted = errors.New("identifier namespace exhausted")
	ErrEmptyName = errors.New("name is required to derive a customer code")
)

// Namespace describes one independent identifier sequence and the table
// column its identifiers are stored in.
type Namespace struct {
	Prefix string
	Width  int
	Table  string
	Column string
}

func GR() Namespace {
	return Namespace{Prefix: "GR", Width: 5, Table: "transport_records", Column: "gr_no"}
}

// Challan numbers restart every calendar year: 25CH00001, 26CH00001.
func Challan(t time.Time) Namespace {
	return Namespace{Prefix: t.Format("06") + "CH", Width: 5, Table: "challan", Column: "challan_no"}
}

func Crossing(t time.Time) Namespace {
	return Namespace{Prefix: t.Format("06") + "CX", Width: 5, Table: "crossing_statement", Column: "cx_number"}
}

// Customer derives the namespace from the first letter of the name.
func Customer(name string) (Namespace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Namespace{}, ErrEmptyName
	}
	r, _ := utf8.DecodeRuneInString(name)
	return Namespace{
		Prefix: string(unicode.ToUpper(r)),
		Width:  4,
		Table:  "customers",
		Column: "customer_code",
	}, nil
}

// Key identifies the counter. The table is part of the key so that a
// customer letter never shares a counter with another document type.
func (ns Namespace) Key() string {
	return ns.Table + ":" + ns.Prefix
}

// Max is the largest counter value the width can hold.
func (ns Namespace) Max() int64 {
	m := int64(1)
	for i := 0; i < ns.Width; i++ {
		m *= 10
	}
	return m - 1
}

// Format renders counter value n as an identifier.
func Format(ns Namespace, n int64) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("sequence %s: invalid counter value %d", ns.Key(), n)
	}
	if n > ns.Max() {
		return "", fmt.Errorf("%w: %s reached %d", ErrExhausted, ns.Key(), n)
	}
	return fmt.Sprintf("%s%0*d", ns.Prefix, ns.Width, n), nil
}

// Suffix parses the numeric part of id. It reports false when id is not
// in the namespace or its remainder is not all digits.
func Suffix(ns Namespace, id string) (int64, bool) {
	rest, ok := strings.CutPrefix(id, ns.Prefix)
	if !ok || rest == "" {
		return 0, false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxOf returns the largest suffix among ids that belong to ns, compared
// numerically. Zero means no identifier has been issued.
func MaxOf(ns Namespace, ids []string) int64 {
	var highest int64
	for _, id := range ids {
		if n, ok := Suffix(ns, id); ok && n > highest {
			highest = n
		}
	}
	return highest
}

// NextAfter returns the identifier following lastID. An empty or
// unparsable lastID starts the namespace at 1.
func NextAfter(ns Namespace, lastID string) (string, error) {
	n, _ := Suffix(ns, lastID)
	return Format(ns, n+1)
}
