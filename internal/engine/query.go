package engine

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/itemdeck/internal/catalog"
)

// Query selects a subset of the catalog. The concrete types are TextQuery and
// RangeQuery; a nil Query means no query is active.
type Query interface {
	// Describe returns a short human label for the query.
	Describe() string
	matcher() func(catalog.Item) bool
}

// TextQuery matches by ID substring when Term looks numeric, otherwise by
// case-insensitive name substring.
type TextQuery struct {
	Term string
}

// RangeQuery matches Low <= id <= High, inclusive on both ends. Bounds are
// floats so coerced form input (fractions, NaN) keeps well-defined results.
type RangeQuery struct {
	Low  float64
	High float64
}

// NewTextQuery normalises raw search input. It returns nil when the trimmed
// input is empty.
func NewTextQuery(raw string) Query {
	term := lower(strings.TrimSpace(raw))
	if term == "" {
		return nil
	}
	return TextQuery{Term: term}
}

// Numeric reports whether the term is matched against IDs instead of names.
func (q TextQuery) Numeric() bool {
	return isNumeric(q.Term)
}

func (q TextQuery) Describe() string {
	if q.Numeric() {
		return "id search " + strconv.Quote(q.Term)
	}
	return "search " + strconv.Quote(q.Term)
}

func (q TextQuery) matcher() func(catalog.Item) bool {
	term := q.Term
	if q.Numeric() {
		return func(it catalog.Item) bool {
			return strings.Contains(it.IDText(), term)
		}
	}
	caser := cases.Lower(language.Und)
	return func(it catalog.Item) bool {
		if !it.HasName() {
			return false
		}
		return strings.Contains(caser.String(it.Name), term)
	}
}

func (q RangeQuery) Describe() string {
	return "range " + formatBound(q.Low) + "–" + formatBound(q.High)
}

func (q RangeQuery) matcher() func(catalog.Item) bool {
	low, high := q.Low, q.High
	return func(it catalog.Item) bool {
		id := float64(it.ID)
		return low <= id && id <= high
	}
}

// ParseBound coerces range form input to a number: blank input is 0 and
// anything unparseable is NaN, which matches nothing.
func ParseBound(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	if v, ok := parseNumber(trimmed); ok {
		return v
	}
	return math.NaN()
}

func formatBound(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// isNumeric follows the number-literal rules of a web form: decimal with
// optional sign, fraction and exponent, or an unsigned 0x/0o/0b integer.
// Words such as "inf" and "nan" are not numbers.
func isNumeric(term string) bool {
	_, ok := parseNumber(term)
	return ok
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if strings.ContainsRune(digits, '_') {
				return 0, false
			}
			v, err := strconv.ParseUint(digits, base, 64)
			if errors.Is(err, strconv.ErrRange) {
				return parseWideInt(digits, base)
			}
			if err != nil {
				return 0, false
			}
			return float64(v), true
		}
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out-of-range literals are still numbers, just infinite.
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// parseWideInt handles prefixed integers too large for uint64.
func parseWideInt(digits string, base int) (float64, bool) {
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f, true
}
