package image

import (
	"github.com/ekuinox/find-track-by-color/internal/colour"
)

// Extractor decodes one image file and reduces it to representative
// colours. Decode and processing failures stay scoped to the file: the
// caller drops the file and the scan continues.
type Extractor struct {
	loader Loader
	colors *colour.Extractor
}

// NewExtractor creates an Extractor with the given clustering
// configuration. Returns an error if the configuration is invalid.
func NewExtractor(cfg colour.Config) (*Extractor, error) {
	colors, err := colour.NewExtractor(cfg)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		loader: NewFileLoader(),
		colors: colors,
	}, nil
}

// ExtractFile loads the image at path and returns its representative
// colours, ordered by descending coverage. An unreadable or
// undecodable file returns an error wrapping ErrDecode; an image with
// zero pixels returns an empty slice.
func (e *Extractor) ExtractFile(path string) ([]colour.RepresentativeColor, error) {
	img, err := e.loader.Load(path)
	if err != nil {
		return nil, err
	}
	return e.colors.Extract(img)
}
