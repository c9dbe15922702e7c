package subset

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

var meaningful = regexp.MustCompile(`[A-Za-z0-9]`)

// Kind classifies a feature.
type Kind int

const (
	Numeric Kind = iota
	Nominal
)

// Frequency is the share of one nominal value among non-missing cells.
type Frequency struct {
	Value string
	Count int
	Share float64
}

// FeatureSummary describes one feature of a subset.
type FeatureSummary struct {
	Name    string
	Kind    Kind
	Count   int
	Missing int

	Mean float64
	Std  float64
	Min  float64
	Max  float64

	Frequencies []Frequency
}

// Summary describes a whole subset.
type Summary struct {
	Key      string
	Rows     int
	Features []FeatureSummary
}

// IsMissing reports whether a cell carries no data. Strings without any
// alphanumeric character (for example "----") count as missing.
func IsMissing(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return !meaningful.MatchString(t)
	case float64:
		return math.IsNaN(t)
	case float32:
		return math.IsNaN(float64(t))
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}

// Summarize computes per-feature statistics. Features are reported in
// alphabetical order.
func Summarize(key string, records Records) Summary {
	names := map[string]struct{}{}
	for _, r := range records {
		for name := range r {
			names[name] = struct{}{}
		}
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	summary := Summary{Key: key, Rows: len(records)}
	for _, name := range ordered {
		summary.Features = append(summary.Features, summarizeFeature(name, records))
	}
	return summary
}

func summarizeFeature(name string, records Records) FeatureSummary {
	fs := FeatureSummary{Name: name, Kind: Numeric}
	var values []any
	for _, r := range records {
		v := r[name]
		if IsMissing(v) {
			fs.Missing++
			continue
		}
		if _, ok := toFloat(v); !ok {
			fs.Kind = Nominal
		}
		values = append(values, v)
	}
	fs.Count = len(values)

	if fs.Kind == Nominal {
		fs.Frequencies = frequencies(values)
		return fs
	}
	if fs.Count == 0 {
		return fs
	}

	fs.Min = math.Inf(1)
	fs.Max = math.Inf(-1)
	var sum float64
	for _, v := range values {
		f, _ := toFloat(v)
		sum += f
		fs.Min = math.Min(fs.Min, f)
		fs.Max = math.Max(fs.Max, f)
	}
	fs.Mean = sum / float64(fs.Count)
	if fs.Count > 1 {
		var sq float64
		for _, v := range values {
			f, _ := toFloat(v)
			sq += (f - fs.Mean) * (f - fs.Mean)
		}
		fs.Std = math.Sqrt(sq / float64(fs.Count-1))
	}
	return fs
}

func frequencies(values []any) []Frequency {
	counts := map[string]int{}
	for _, v := range values {
		counts[strings.TrimSpace(fmt.Sprint(v))]++
	}
	out := make([]Frequency, 0, len(counts))
	for value, count := range counts {
		out = append(out, Frequency{
			Value: value,
			Count: count,
			Share: float64(count) / float64(len(values)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Distinct returns the number of distinct nominal values.
func (f FeatureSummary) Distinct() int {
	return len(f.Frequencies)
}
