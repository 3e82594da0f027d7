// Package series loads ordered numeric series that drive terrain height.
//
// A series file is a YAML (or JSON) mapping whose keys are kept in file
// order. Each value is either a number, a numeric string, or a nested
// mapping holding the number under a named field:
//
//	"2023-01-03": { "4. close": "125.07" }
//	"2023-01-04": 126.36
package series

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultField is the nested field read from daily price records.
const DefaultField = "4. close"

var (
	// ErrEmptySeries is returned when a series has no entries.
	ErrEmptySeries = errors.New("series: no entries")
	// ErrInvalidValue is returned for values that are not finite numbers.
	ErrInvalidValue = errors.New("series: invalid value")
)

//go:embed sample.yaml
var sampleData []byte

// Entry is one keyed value of a series.
type Entry struct {
	Key   string
	Value float64
}

// Series is an ordered list of entries.
type Series []Entry

// Values returns the entry values in series order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, e := range s {
		out[i] = e.Value
	}
	return out
}

// MinMax returns the smallest and largest value.
func (s Series) MinMax() (lo, hi float64, err error) {
	if len(s) == 0 {
		return 0, 0, ErrEmptySeries
	}
	lo, hi = s[0].Value, s[0].Value
	for _, e := range s[1:] {
		lo = math.Min(lo, e.Value)
		hi = math.Max(hi, e.Value)
	}
	return lo, hi, nil
}

// Sample returns the built-in series (AAPL closes, January 2023).
func Sample() Series {
	s, err := Parse(sampleData, DefaultField)
	if err != nil {
		panic(fmt.Sprintf("series: embedded sample: %v", err))
	}
	return s
}

// Load reads a series file. An empty field selects DefaultField.
func Load(path, field string) (Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, field)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a series document, keeping the key order of the source.
func Parse(data []byte, field string) (Series, error) {
	if field == "" {
		field = DefaultField
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding series: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, ErrEmptySeries
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return nil, ErrEmptySeries
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("series: expected a mapping at line %d", root.Line)
	}

	s := make(Series, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		v, err := nodeValue(val, field)
		if err != nil {
			return nil, fmt.Errorf("entry %q (line %d): %w", key.Value, key.Line, err)
		}
		s = append(s, Entry{Key: key.Value, Value: v})
	}
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	return s, nil
}

func nodeValue(n *yaml.Node, field string) (float64, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return parseNumber(n.Value)
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == field {
				return nodeValue(n.Content[i+1], field)
			}
		}
		return 0, fmt.Errorf("%w: missing field %q", ErrInvalidValue, field)
	default:
		return 0, fmt.Errorf("%w: unsupported node at line %d", ErrInvalidValue, n.Line)
	}
}

// parseNumber reads prices as decimals so quoted and bare values round the
// same way.
func parseNumber(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	v := d.InexactFloat64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidValue, s)
	}
	return v, nil
}
