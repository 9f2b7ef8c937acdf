package colour

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "hex with hash",
			input: "#ff0000",
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "hex without hash",
			input: "1db954",
			want:  RGB{R: 0x1d, G: 0xb9, B: 0x54},
		},
		{
			name:  "short hex",
			input: "#f0a",
			want:  RGB{R: 255, G: 0, B: 170},
		},
		{
			name:  "rgb function",
			input: "rgb(20, 120, 200)",
			want:  RGB{R: 20, G: 120, B: 200},
		},
		{
			name:  "rgb function without spaces",
			input: "rgb(255,255,255)",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "#ffff",
			wantErr: true,
		},
		{
			name:    "channel out of range",
			input:   "rgb(300, 0, 0)",
			wantErr: true,
		},
		{
			name:    "not a colour",
			input:   "nanjakore",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "red",
			color: color.RGBA{R: 255, A: 255},
			want:  RGB{R: 255},
		},
		{
			name:  "alpha discarded",
			color: color.NRGBA{R: 10, G: 20, B: 30, A: 128},
			want:  RGB{R: 10, G: 20, B: 30},
		},
		{
			name:  "premultiplied alpha divided out",
			color: color.RGBA{R: 64, G: 32, B: 16, A: 128},
			want:  RGB{R: 127, G: 63, B: 31},
		},
		{
			name:  "white",
			color: color.White,
			want:  RGB{R: 255, G: 255, B: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGB(tt.color); got != tt.want {
				t.Errorf("ToRGB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	rgb := RGB{R: 0x1a, G: 0x2b, B: 0x3c}
	if got := rgb.Hex(); got != "#1a2b3c" {
		t.Errorf("Hex() = %q, want %q", got, "#1a2b3c")
	}
	if got := rgb.String(); got != "rgb(26, 43, 60)" {
		t.Errorf("String() = %q, want %q", got, "rgb(26, 43, 60)")
	}
}
