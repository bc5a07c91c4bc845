package position

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOrdinalConditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.position")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	second := Position{Index: 1}
	third := Position{Index: 2, Last: true}
	cases := []struct {
		p     Position
		label string
		match bool
	}{
		{Single, "$first", true},
		{Single, "$last", true},
		{second, "$first", false},
		{second, "$even", true},
		{second, "$odd", false},
		{third, "$odd", true},
		{third, "$last", true},
		{second, "$2", true},
		{second, "$=2", true},
		{second, "$B", true},
		{second, "$<>2", false},
		{third, "$<>2", true},
		{second, "$<2", false},
		{second, "$<=2", true},
		{third, "$>2", true},
		{second, "$>=3", false},
		{second, "$", false},
		{second, "first", false},
		{second, "$<x1", false},
		{second, "$middle", false},
	}
	for _, c := range cases {
		if m := c.p.Matches(c.label); m != c.match {
			t.Errorf("expected %v for %q at index %d, have %v", c.match, c.label, c.p.Index, m)
		}
	}
}

func TestLetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.position")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for n, letters := range map[int]string{1: "A", 26: "Z", 27: "AA", 52: "AZ", 703: "AAA"} {
		if l := LettersFromNumber(n); l != letters {
			t.Errorf("expected %d to be %q, have %q", n, letters, l)
		}
		if x, err := NumberFromLetters(letters); err != nil || x != n {
			t.Errorf("expected %q to be %d, have %d (%v)", letters, n, x, err)
		}
	}
	if x, _ := NumberFromLetters("ab"); x != 28 {
		t.Errorf("expected letters to be case-insensitive, have %d", x)
	}
	if _, err := NumberFromLetters("A1"); err == nil {
		t.Error("expected error for invalid letters")
	}
	if LettersFromNumber(0) != "" {
		t.Error("expected no letters for 0")
	}
}

func TestNumberRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.position")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	refs := map[string][]int{"totals": {10, 11}, "a,b": {99}}
	numbers, err := ParseNumberRange("1, 3-5, C-D, 7-6, :totals, :missing, :a;;b", refs)
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{1, 3, 4, 5, 3, 4, 10, 11, 99}
	if len(numbers) != len(expected) {
		t.Fatalf("expected %v, have %v", expected, numbers)
	}
	for i := range expected {
		if numbers[i] != expected[i] {
			t.Fatalf("expected %v, have %v", expected, numbers)
		}
	}
	if _, err := ParseNumberRange("1-2-3", nil); !errors.Is(err, ErrMalformedRange) {
		t.Errorf("expected malformed range error, have %v", err)
	}
	if _, err := ParseNumberRange("1,?", nil); err == nil {
		t.Error("expected error for invalid item")
	}
}

func TestNumberRangeLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tss.position")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	numbers, err := ParseNumberRange(fmt.Sprintf("1-%d", MaxRangeSize), nil)
	if err != nil || len(numbers) != MaxRangeSize {
		t.Fatalf("expected %d numbers, have %d (%v)", MaxRangeSize, len(numbers), err)
	}
	for _, expr := range []string{
		fmt.Sprintf("1-%d", MaxRangeSize+1),
		fmt.Sprintf("0, 1-%d", MaxRangeSize),
		fmt.Sprintf("1-%d", math.MaxInt),
		"A-ZZZZZZZZ",
		fmt.Sprintf("1-%d, :big", MaxRangeSize-1),
	} {
		refs := map[string][]int{"big": {1, 2}}
		if _, err := ParseNumberRange(expr, refs); !errors.Is(err, ErrRangeTooLarge) {
			t.Errorf("expected range too large for %q, have %v", expr, err)
		}
	}
	if _, err := NumberFromLetters("ZZZZZZZZZZZZZZZZZZZZ"); !errors.Is(err, ErrNumberOverflow) {
		t.Errorf("expected overflow error, have %v", err)
	}
	if _, err := ParseNumberRange("1-ZZZZZZZZZZZZZZZZZZZZ", nil); !errors.Is(err, ErrNumberOverflow) {
		t.Errorf("expected overflow error in range, have %v", err)
	}
}
