package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{
			name:  "black with hash",
			input: "#000000",
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "white without hash",
			input: "ffffff",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "lowercase",
			input: "#abcdef",
			want:  RGB{R: 0xab, G: 0xcd, B: 0xef},
		},
		{
			name:  "uppercase",
			input: "#ABCDEF",
			want:  RGB{R: 0xab, G: 0xcd, B: 0xef},
		},
		{
			name:  "mixed case",
			input: "AbCdEf",
			want:  RGB{R: 0xab, G: 0xcd, B: 0xef},
		},
		{
			name:  "mid-range values",
			input: "#1a2b3c",
			want:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bare hash", input: "#"},
		{name: "non-hex digits", input: "zzzzzz"},
		{name: "five digits", input: "#12345"},
		{name: "nine digits", input: "123456789"},
		{name: "three digit shorthand", input: "#fff"},
		{name: "eight digits with alpha", input: "#11223344"},
		{name: "leading whitespace", input: " 112233"},
		{name: "trailing whitespace", input: "112233 "},
		{name: "double hash", input: "##12345"},
		{name: "css name", input: "tomato"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			if err == nil {
				t.Fatalf("ParseHex(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrInvalidColourFormat) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColourFormat", tt.input, err)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#ffffff", "#1a2b3c", "#ABCDEF", "#808080", "#ff007f"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			rgb, err := ParseHex(input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", input, err)
			}
			if got, want := rgb.Hex(), strings.ToLower(input); got != want {
				t.Errorf("Hex() = %q, want %q", got, want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 255, G: 128, B: 0}
	if got, want := rgb.String(), "rgb(255, 128, 0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRGBToStdColor(t *testing.T) {
	rgb := RGB{R: 10, G: 20, B: 30}
	r, g, b, a := rgb.ToStdColor().RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Errorf("ToStdColor() = rgba(%d, %d, %d, %d), want rgba(10, 20, 30, 255)", r>>8, g>>8, b>>8, a>>8)
	}
}
