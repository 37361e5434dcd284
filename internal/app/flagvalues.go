package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/spf13/pflag"
)

// The flag values below implement pflag.Value so that unset flags leave the
// advanced filter at its zero value.

// splitRange splits "lo..hi". Either side may be empty.
func splitRange(raw string) (lo, hi string, err error) {
	lo, hi, ok := strings.Cut(raw, "..")
	if !ok {
		return "", "", fmt.Errorf("invalid range %q, want lo..hi", raw)
	}
	return strings.TrimSpace(lo), strings.TrimSpace(hi), nil
}

type intRangeValue struct{ target **filter.IntRange }

func (v intRangeValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	return fmt.Sprintf("%d..%d", (*v.target).Min, (*v.target).Max)
}

func (v intRangeValue) Set(raw string) error {
	lo, hi, err := splitRange(raw)
	if err != nil {
		return err
	}
	r := filter.IntRange{Min: 0, Max: 1<<31 - 1}
	if lo != "" {
		if r.Min, err = strconv.Atoi(lo); err != nil {
			return fmt.Errorf("invalid range start %q", lo)
		}
	}
	if hi != "" {
		if r.Max, err = strconv.Atoi(hi); err != nil {
			return fmt.Errorf("invalid range end %q", hi)
		}
	}
	if r.Min > r.Max {
		return fmt.Errorf("empty range %q", raw)
	}
	*v.target = &r
	return nil
}

func (intRangeValue) Type() string { return "lo..hi" }

type floatRangeValue struct{ target **filter.FloatRange }

func (v floatRangeValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	return fmt.Sprintf("%g..%g", (*v.target).Min, (*v.target).Max)
}

func (v floatRangeValue) Set(raw string) error {
	lo, hi, err := splitRange(raw)
	if err != nil {
		return err
	}
	r := filter.FloatRange{Min: 0, Max: 1e12}
	if lo != "" {
		if r.Min, err = strconv.ParseFloat(lo, 64); err != nil {
			return fmt.Errorf("invalid range start %q", lo)
		}
	}
	if hi != "" {
		if r.Max, err = strconv.ParseFloat(hi, 64); err != nil {
			return fmt.Errorf("invalid range end %q", hi)
		}
	}
	if r.Min > r.Max {
		return fmt.Errorf("empty range %q", raw)
	}
	*v.target = &r
	return nil
}

func (floatRangeValue) Type() string { return "lo..hi" }

type dateRangeValue struct{ target **filter.DateRange }

func (v dateRangeValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	r := *v.target
	return r.From.Format(catalog.DateLayout) + ".." + r.To.Format(catalog.DateLayout)
}

func (v dateRangeValue) Set(raw string) error {
	lo, hi, err := splitRange(raw)
	if err != nil {
		return err
	}
	r := filter.DateRange{To: time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)}
	if lo != "" {
		if r.From, err = time.Parse(catalog.DateLayout, lo); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", lo)
		}
	}
	if hi != "" {
		if r.To, err = time.Parse(catalog.DateLayout, hi); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", hi)
		}
	}
	if r.To.Before(r.From) {
		return fmt.Errorf("empty range %q", raw)
	}
	*v.target = &r
	return nil
}

func (dateRangeValue) Type() string { return "date..date" }

// triBoolValue is a bool that distinguishes "unset" from false.
type triBoolValue struct{ target **bool }

func (v triBoolValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	return strconv.FormatBool(**v.target)
}

func (v triBoolValue) Set(raw string) error {
	var b bool
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1":
		b = true
	case "no", "n", "false", "0":
		b = false
	default:
		return fmt.Errorf("invalid value %q, want yes or no", raw)
	}
	*v.target = &b
	return nil
}

func (triBoolValue) Type() string { return "yes|no" }

type floatPtrValue struct{ target **float64 }

func (v floatPtrValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	return strconv.FormatFloat(**v.target, 'g', -1, 64)
}

func (v floatPtrValue) Set(raw string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", raw)
	}
	*v.target = &f
	return nil
}

func (floatPtrValue) Type() string { return "float" }

// quantityValue parses ">=3", "=2" or "<=2".
type quantityValue struct{ target **filter.QuantityFilter }

func (v quantityValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	q := *v.target
	return q.Comparator.Symbol() + strconv.Itoa(q.Value)
}

func (v quantityValue) Set(raw string) error {
	raw = strings.TrimSpace(raw)
	prefixes := []struct {
		prefix string
		cmp    filter.Comparator
	}{
		{">=", filter.AtLeast},
		{"<=", filter.AtMost},
		{"=", filter.Equal},
	}
	for _, p := range prefixes {
		rest, ok := strings.CutPrefix(raw, p.prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid quantity %q", raw)
		}
		*v.target = &filter.QuantityFilter{Comparator: p.cmp, Value: n}
		return nil
	}
	return fmt.Errorf("invalid quantity %q, want >=N, =N or <=N", raw)
}

func (quantityValue) Type() string { return "cmpN" }

// enumValue parses a single value of a closed vocabulary.
type enumValue[T ~string] struct {
	target *T
	parse  func(string) (T, error)
	kind   string
}

func (v enumValue[T]) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v enumValue[T]) Set(raw string) error {
	parsed, err := v.parse(raw)
	if err != nil {
		return err
	}
	*v.target = parsed
	return nil
}

func (v enumValue[T]) Type() string { return v.kind }

// enumSliceValue accumulates comma separated or repeated enum values.
type enumSliceValue[T ~string] struct {
	target *[]T
	parse  func(string) (T, error)
	kind   string
}

func (v enumSliceValue[T]) String() string {
	if v.target == nil {
		return ""
	}
	parts := make([]string, len(*v.target))
	for i, t := range *v.target {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func (v enumSliceValue[T]) Set(raw string) error {
	for _, part := range strings.Split(raw, ",") {
		parsed, err := v.parse(part)
		if err != nil {
			return err
		}
		*v.target = append(*v.target, parsed)
	}
	return nil
}

func (v enumSliceValue[T]) Type() string { return v.kind }

// quickValue accumulates repeated --quick category:value flags.
type quickValue struct{ target *[]filter.QuickOption }

func (v quickValue) String() string {
	if v.target == nil {
		return ""
	}
	parts := make([]string, len(*v.target))
	for i, o := range *v.target {
		parts[i] = o.String()
	}
	return strings.Join(parts, ",")
}

func (v quickValue) Set(raw string) error {
	o, err := filter.ParseQuickOption(raw)
	if err != nil {
		return err
	}
	if !containsOption(*v.target, o) {
		*v.target = append(*v.target, o)
	}
	return nil
}

func (quickValue) Type() string { return "category:value" }

func containsOption(options []filter.QuickOption, o filter.QuickOption) bool {
	for _, existing := range options {
		if existing == o {
			return true
		}
	}
	return false
}

// enumParser adapts a closed vocabulary to a parse function.
func enumParser[T ~string](kind string, all []T) func(string) (T, error) {
	return func(raw string) (T, error) {
		return filter.ParseEnum(kind, raw, all)
	}
}

var (
	_ pflag.Value = intRangeValue{}
	_ pflag.Value = floatRangeValue{}
	_ pflag.Value = dateRangeValue{}
	_ pflag.Value = triBoolValue{}
	_ pflag.Value = floatPtrValue{}
	_ pflag.Value = quantityValue{}
	_ pflag.Value = quickValue{}
	_ pflag.Value = enumValue[filter.Preset]{}
	_ pflag.Value = enumSliceValue[catalog.Style]{}
)
