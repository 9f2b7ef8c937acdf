package scanner

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/ekuinox/find-track-by-color/internal/colour"
	imageutil "github.com/ekuinox/find-track-by-color/internal/image"
	"github.com/ekuinox/find-track-by-color/internal/progress"
)

func writePNG(t *testing.T, dir, name string, c color.RGBA) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}

	file, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
}

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()

	extractor, err := imageutil.NewExtractor(colour.Config{
		Clusters:      3,
		MaxIterations: 10,
		Runs:          1,
		Convergence:   0.0025,
		Seed:          0,
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(extractor, hclog.NewNullLogger())
}

func TestScanSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writePNG(t, dir, fmt.Sprintf("valid-%d.png", i), color.RGBA{R: uint8(40 * i), G: 10, B: 200, A: 255})
	}
	if err := os.WriteFile(filepath.Join(dir, "corrupt.jpg"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	counter := &progress.Counter{}
	candidates, err := newTestScanner(t).Scan(dir, 10, counter)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}

	if len(candidates) != 5 {
		t.Errorf("expected 5 candidates, got %d", len(candidates))
	}
	if counter.Done() != 6 {
		t.Errorf("expected 6 completed entries, got %d", counter.Done())
	}
	if counter.Total() != 6 {
		t.Errorf("expected total of 6, got %d", counter.Total())
	}

	for _, candidate := range candidates {
		if len(candidate.Colors) == 0 {
			t.Errorf("candidate %s has no colours", candidate.Path)
		}
	}
}

func TestScanHonoursLimit(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		writePNG(t, dir, fmt.Sprintf("valid-%d.png", i), color.RGBA{R: 200, A: 255})
	}

	counter := &progress.Counter{}
	candidates, err := newTestScanner(t).Scan(dir, 2, counter)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}

	// Which two entries are taken depends on enumeration order; only
	// the count is guaranteed.
	if len(candidates) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(candidates))
	}
	if counter.Done() != 2 {
		t.Errorf("expected 2 completed entries, got %d", counter.Done())
	}
}

func TestScanLimitLargerThanDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "only.png", color.RGBA{B: 255, A: 255})

	candidates, err := newTestScanner(t).Scan(dir, 100, nil)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("expected 1 candidate, got %d", len(candidates))
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	candidates, err := newTestScanner(t).Scan(t.TempDir(), 10, nil)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := newTestScanner(t).Scan(filepath.Join(t.TempDir(), "missing"), 10, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestScanInvalidLimit(t *testing.T) {
	if _, err := newTestScanner(t).Scan(t.TempDir(), 0, nil); err == nil {
		t.Error("expected error for zero limit")
	}
}
