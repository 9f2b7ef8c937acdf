package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ekuinox/find-track-by-color/internal/catalog"
	"github.com/ekuinox/find-track-by-color/internal/colour"
	"github.com/ekuinox/find-track-by-color/internal/finder"
)

func TestPrintMatches(t *testing.T) {
	matches := []finder.Match{
		{
			TrackID:  "4iV5W9uYEdYUVa79Axb7Ra",
			Path:     "images/4iV5W9uYEdYUVa79Axb7Ra.jpg",
			Color:    colour.RGB{R: 255},
			Distance: 0.0,
			Coverage: 0.9,
			Track:    &catalog.Track{Name: "First Song"},
		},
		{
			TrackID:  "4iV5W9uYEdYUVa79Axb7Rb",
			Path:     "images/4iV5W9uYEdYUVa79Axb7Rb.jpg",
			Color:    colour.RGB{R: 200, G: 30, B: 30},
			Distance: 0.1234,
			Coverage: 0.5,
			Track:    &catalog.Track{Name: "Second Song"},
		},
		{
			// A match whose metadata carried no name still prints.
			TrackID:  "4iV5W9uYEdYUVa79Axb7Rc",
			Path:     "images/4iV5W9uYEdYUVa79Axb7Rc.jpg",
			Distance: 0.4,
			Coverage: 0.25,
		},
	}

	var buf bytes.Buffer
	printMatches(&buf, matches, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}

	want := []string{
		"First Song ... 4iV5W9uYEdYUVa79Axb7Ra, images/4iV5W9uYEdYUVa79Axb7Ra.jpg, 0.0000, 0.90",
		"Second Song ... 4iV5W9uYEdYUVa79Axb7Rb, images/4iV5W9uYEdYUVa79Axb7Rb.jpg, 0.1234, 0.50",
		" ... 4iV5W9uYEdYUVa79Axb7Rc, images/4iV5W9uYEdYUVa79Axb7Rc.jpg, 0.4000, 0.25",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestPrintMatchesEmpty(t *testing.T) {
	var buf bytes.Buffer
	printMatches(&buf, nil, false)
	if buf.Len() != 0 {
		t.Errorf("expected no output for no matches, got %q", buf.String())
	}
}
