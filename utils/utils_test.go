package utils

import (
	"strings"
	"testing"
)

func TestParseDateLayouts(t *testing.T) {
	cases := []string{
		"2015-01-02",
		"01/02/2015",
		"2015/01/02",
		"Jan 2, 2015",
	}
	for _, dateString := range cases {
		parsed, err := ParseDate(dateString)
		if err != nil {
			t.Errorf("Bad parse of %q: %v", dateString, err)
			continue
		}
		if parsed.Year() != 2015 || int(parsed.Month()) != 1 || parsed.Day() != 2 {
			t.Errorf("Bad date for %q: %v, expected 2015-01-02", dateString, parsed)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("yesterday"); err == nil {
		t.Errorf("Bad parse: no error for garbage input")
	}
}

func TestToFixed(t *testing.T) {
	if v := ToFixed(1.23456, 3); v != 1.235 {
		t.Errorf("Bad ToFixed: %v, expected 1.235", v)
	}
	if v := ToFixed(-1.23456, 2); v != -1.23 {
		t.Errorf("Bad ToFixed: %v, expected -1.23", v)
	}
}

func TestConstrainFloat(t *testing.T) {
	if v := ConstrainFloat(5.0, 0, 1, 4); v != 1.0 {
		t.Errorf("Bad constrain: %v, expected 1.0", v)
	}
	if v := ConstrainFloat(-5.0, 0, 1, 4); v != 0.0 {
		t.Errorf("Bad constrain: %v, expected 0.0", v)
	}
	if v := ConstrainFloat(0.55555, 0, 1, 2); v != 0.56 {
		t.Errorf("Bad constrain: %v, expected 0.56", v)
	}
}

func TestSumArr(t *testing.T) {
	if v := SumArr([]float64{1, 2, 3.5}); v != 6.5 {
		t.Errorf("Bad sum: %v, expected 6.5", v)
	}
}

func TestCreateKeyValuePairs(t *testing.T) {
	m := map[string]interface{}{
		"Mean":   2.0,
		"Median": 1.5,
		"hidden": 9.9,
	}
	out := CreateKeyValuePairs(m, true)
	if strings.Contains(out, "hidden") {
		t.Errorf("Bad key/value output: lowercase key printed: %v", out)
	}
	if !strings.Contains(out, `Mean="2"`) {
		t.Errorf("Bad key/value output: %v", out)
	}
	// Sorted keys keep repeated reports identical.
	if strings.Index(out, "Mean") > strings.Index(out, "Median") {
		t.Errorf("Bad key order: %v", out)
	}
}
