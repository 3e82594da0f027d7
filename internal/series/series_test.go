package series

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseKeepsOrder(t *testing.T) {
	data := `
"2023-01-05": { "4. close": "127.12" }
"2023-01-03": { "4. close": "125.07" }
"2023-01-04": { "4. close": "126.36" }
`
	s, err := Parse([]byte(data), "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantKeys := []string{"2023-01-05", "2023-01-03", "2023-01-04"}
	if len(s) != len(wantKeys) {
		t.Fatalf("got %d entries, want %d", len(s), len(wantKeys))
	}
	for i, k := range wantKeys {
		if s[i].Key != k {
			t.Errorf("entry %d key = %s, want %s", i, s[i].Key, k)
		}
	}
	if s[0].Value != 127.12 {
		t.Errorf("first value = %v, want 127.12", s[0].Value)
	}
}

func TestParseJSON(t *testing.T) {
	data := `{"b": {"close": 2}, "a": {"close": "1.5"}}`
	s, err := Parse([]byte(data), "close")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(s) != 2 || s[0].Key != "b" || s[1].Value != 1.5 {
		t.Errorf("Parse() = %+v", s)
	}
}

func TestParsePlainValues(t *testing.T) {
	s, err := Parse([]byte("A: 10\nB: 20\nC: 15\n"), "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := s.Values()
	want := []float64{10, 20, 15}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty document", "", ErrEmptySeries},
		{"empty mapping", "{}", ErrEmptySeries},
		{"not a number", "A: abc", ErrInvalidValue},
		{"missing field", `A: {"open": 1}`, ErrInvalidValue},
		{"infinite", "A: .inf", ErrInvalidValue},
		{"sequence value", "A: [1, 2]", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "")
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseNotMapping(t *testing.T) {
	if _, err := Parse([]byte("- 1\n- 2\n"), ""); err == nil {
		t.Error("expected error for top-level sequence")
	}
}

func TestMinMax(t *testing.T) {
	s := Series{{"a", 3}, {"b", -1}, {"c", 8}}
	lo, hi, err := s.MinMax()
	if err != nil {
		t.Fatalf("MinMax() error = %v", err)
	}
	if lo != -1 || hi != 8 {
		t.Errorf("MinMax() = (%v, %v), want (-1, 8)", lo, hi)
	}

	if _, _, err := (Series{}).MinMax(); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("MinMax() on empty error = %v, want ErrEmptySeries", err)
	}
}

func TestSample(t *testing.T) {
	s := Sample()
	if len(s) != 20 {
		t.Fatalf("Sample() has %d entries, want 20", len(s))
	}
	if s[0].Key != "2023-01-03" || s[0].Value != 125.07 {
		t.Errorf("first entry = %+v", s[0])
	}
	if s[19].Key != "2023-01-31" || s[19].Value != 144.29 {
		t.Errorf("last entry = %+v", s[19])
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	if err := os.WriteFile(path, []byte(`{"x": 1, "y": 2}`), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(s) != 2 {
		t.Errorf("Load() returned %d entries, want 2", len(s))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("expected error loading missing file")
	}
}
