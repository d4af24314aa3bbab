package utils

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// The date layouts accepted in investment datasets.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// ParseDate parses a date string in one of the four accepted layouts.
func ParseDate(dateString string) (time.Time, error) {
	dateString = strings.TrimSpace(dateString)
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, dateString)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", dateString)
}

// ConstrainFloat clamps x to the range [min, max] at the given precision.
func ConstrainFloat(x float64, min float64, max float64, decimals int) float64 {
	return ToFixed(math.Max(min, math.Min(x, max)), decimals)
}

func ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func SumArr(arr []float64) float64 {
	sum := 0.0
	for _, val := range arr {
		sum += val
	}
	return sum
}

// CreateKeyValuePairs formats a map for console reports. Keys are sorted so
// repeated runs print identically.
func CreateKeyValuePairs(m map[string]interface{}, ignoreLowerCase bool) string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	b := new(bytes.Buffer)
	fmt.Fprint(b, "\n")
	for _, key := range keys {
		if ignoreLowerCase && key[:1] == strings.ToLower(key[:1]) {
			continue
		}
		fmt.Fprintf(b, "%s=\"%v\"\n", key, m[key])
	}
	return b.String()
}
