package pairs

import (
	"errors"
	"testing"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		value  float64
		result string
	}{
		{12.5, "12.500000"},
		{-180, "-180.000000"},
		{90, "90.000000"},
		{0, "0.000000"},
		{1.23456789, "1.234568"},
		{-33.8567844, "-33.856784"},
		{179.9999996, "180.000000"},
		// exact binary ties round to even
		{0.0078125, "0.007812"},
		{0.0234375, "0.023438"},
		{-0.0078125, "-0.007812"},
	}

	for _, test := range tests {
		t.Run(test.result, func(t *testing.T) {
			if result := FormatCoord(test.value); result != test.result {
				t.Errorf("FormatCoord(%v) = %s, want %s", test.value, result, test.result)
			}
		})
	}
}

func TestRounded(t *testing.T) {
	p := Pair{1.23456789, -2.0000004, 3.9999996, 4}.Rounded()
	want := Pair{1.234568, -2, 4, 4}
	if p != want {
		t.Errorf("Rounded() = %+v, want %+v", p, want)
	}
}

func TestPairInRange(t *testing.T) {
	tests := []struct {
		name string
		pair Pair
		want bool
	}{
		{"corners", Pair{-180, -90, 180, 90}, true},
		{"x0 too small", Pair{-180.000001, 0, 0, 0}, false},
		{"y1 too big", Pair{0, 0, 0, 90.000001}, false},
		{"latitude as longitude", Pair{0, 120, 0, 0}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.pair.inRange(); got != test.want {
				t.Errorf("inRange(%+v) = %v, want %v", test.pair, got, test.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int
		err   bool
	}{
		{"2", 2, false},
		{"0", 0, false},
		{" 7 ", 7, false},
		{"-3", -3, false},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
		{"10e3", 0, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseSize(test.input)
			if test.err {
				if !errors.Is(err, ErrInvalidSize) {
					t.Fatalf("ParseSize(%q) error = %v, want ErrInvalidSize", test.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q): %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("ParseSize(%q) = %d, want %d", test.input, got, test.want)
			}
		})
	}
}
