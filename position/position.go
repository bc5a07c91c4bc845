/*
Package position evaluates ordinal conditions and number ranges.

Hosts use ordinal conditions to let selectors address nodes by their
position among siblings. A condition is a label starting with '$':

   $first  $last       first or last sibling
   $even   $odd        by 1-based ordinal: the 2nd, 4th, … sibling is even
   $n  $=n             ordinal equals n
   $<>n                ordinal differs from n
   $<n $<=n $>n $>=n   ordinal comparisons

Ordinals are 1-based. n is either a decimal number or spreadsheet-style
letters ("A"=1, "Z"=26, "AA"=27).

Number ranges are comma-separated lists of numbers, letters, ranges "a-b"
and references ":name" to named ranges, e.g. "1, 3-5, C-E, :totals".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package position

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tss.position'.
func tracer() tracing.Trace {
	return tracing.Select("tss.position")
}

// ErrMalformedRange is returned for range items with more than one '-'.
var ErrMalformedRange = errors.New("malformed number range")

// ErrRangeTooLarge is returned when a number range expands to more than
// MaxRangeSize numbers.
var ErrRangeTooLarge = errors.New("number range too large")

// ErrNumberOverflow is returned for column letters exceeding the int range.
var ErrNumberOverflow = errors.New("column letters overflow")

// MaxRangeSize is the maximum count of numbers a range expression may
// expand to.
const MaxRangeSize = 1 << 16

// Position is the position of a node among its siblings.
type Position struct {
	Index int  // 0-based
	Last  bool // no sibling follows
}

// Single is the position of an only child.
var Single = Position{Index: 0, Last: true}

// Matches reports whether the position satisfies an ordinal condition.
// Labels which are not ordinal conditions, or are malformed, never match.
func (p Position) Matches(label string) bool {
	if !strings.HasPrefix(label, "$") || len(label) == 1 {
		return false
	}
	cond := label[1:]
	switch cond {
	case "first":
		return p.Index == 0
	case "last":
		return p.Last
	case "even":
		return p.Index%2 == 1
	case "odd":
		return p.Index%2 == 0
	}
	ordinal := p.Index + 1
	compare := func(prefix string, op func(a, b int) bool) (bool, bool) {
		if !strings.HasPrefix(cond, prefix) {
			return false, false
		}
		n, err := NumberFromExpression(cond[len(prefix):])
		if err != nil {
			return false, true
		}
		return op(ordinal, n), true
	}
	ops := []struct {
		prefix string
		op     func(a, b int) bool
	}{ // longer prefixes first
		{"<>", func(a, b int) bool { return a != b }},
		{"<=", func(a, b int) bool { return a <= b }},
		{"<", func(a, b int) bool { return a < b }},
		{">=", func(a, b int) bool { return a >= b }},
		{">", func(a, b int) bool { return a > b }},
		{"=", func(a, b int) bool { return a == b }},
		{"", func(a, b int) bool { return a == b }},
	}
	for _, o := range ops {
		if result, ok := compare(o.prefix, o.op); ok {
			return result
		}
	}
	return false
}

// IsCondition reports whether label has the syntax of an ordinal condition.
func IsCondition(label string) bool {
	return len(label) > 1 && label[0] == '$'
}

// NumberFromExpression converts a decimal number or spreadsheet letters.
func NumberFromExpression(expr string) (int, error) {
	if n, err := strconv.Atoi(expr); err == nil {
		return n, nil
	}
	return NumberFromLetters(expr)
}

// NumberFromLetters converts spreadsheet column letters to a number:
// "A"=1, "Z"=26, "AA"=27. Letters are case-insensitive.
func NumberFromLetters(letters string) (int, error) {
	if letters == "" {
		return 0, errors.New("empty column letters")
	}
	sum := 0
	for _, r := range strings.ToUpper(letters) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid symbol %q in column letters", r)
		}
		if sum > (math.MaxInt-26)/26 {
			return 0, fmt.Errorf("%w: %q", ErrNumberOverflow, letters)
		}
		sum = sum*26 + int(r-'A') + 1
	}
	return sum, nil
}

// LettersFromNumber converts a number to spreadsheet column letters.
// Numbers < 1 yield the empty string.
func LettersFromNumber(n int) string {
	var letters []byte
	for n > 0 {
		m := (n - 1) % 26
		letters = append([]byte{byte('A' + m)}, letters...)
		n = (n - m) / 26
	}
	return string(letters)
}

// ParseNumberRange expands a number range expression. refs resolves
// ":name" items, where ";;" in name stands for a comma. Unresolved
// references are skipped with a warning. Ranges with start > end are empty.
// Expressions expanding to more than MaxRangeSize numbers are rejected with
// ErrRangeTooLarge.
func ParseNumberRange(expr string, refs map[string][]int) ([]int, error) {
	var numbers []int
	for _, item := range strings.Split(expr, ",") {
		item = strings.TrimSpace(item)
		switch {
		case strings.HasPrefix(item, ":"):
			name := strings.ReplaceAll(item[1:], ";;", ",")
			r, ok := refs[name]
			if !ok {
				tracer().Infof("number range: reference %q not found", item)
				continue
			}
			if len(numbers)+len(r) > MaxRangeSize {
				return nil, fmt.Errorf("%w: %q", ErrRangeTooLarge, expr)
			}
			numbers = append(numbers, r...)
		case strings.Contains(item, "-"):
			bounds := strings.Split(item, "-")
			if len(bounds) != 2 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedRange, item)
			}
			start, err := NumberFromExpression(strings.TrimSpace(bounds[0]))
			if err != nil {
				return nil, err
			}
			end, err := NumberFromExpression(strings.TrimSpace(bounds[1]))
			if err != nil {
				return nil, err
			}
			if end >= start && end-start >= MaxRangeSize-len(numbers) {
				return nil, fmt.Errorf("%w: %q", ErrRangeTooLarge, item)
			}
			for i := start; i <= end; i++ {
				numbers = append(numbers, i)
			}
		default:
			n, err := NumberFromExpression(item)
			if err != nil {
				return nil, err
			}
			if len(numbers) >= MaxRangeSize {
				return nil, fmt.Errorf("%w: %q", ErrRangeTooLarge, expr)
			}
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}
