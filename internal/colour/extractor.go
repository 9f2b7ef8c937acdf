package colour

import (
	"fmt"
	"image"
)

// Extractor turns a decoded image into its representative colours.
type Extractor struct {
	engine *ClusterEngine
}

// NewExtractor creates an Extractor for the given clustering
// configuration. Returns an error if the configuration is invalid.
func NewExtractor(cfg Config) (*Extractor, error) {
	engine, err := NewClusterEngine(cfg)
	if err != nil {
		return nil, err
	}
	return &Extractor{engine: engine}, nil
}

// Extract converts the image's pixels into Lab samples and clusters
// them. An image that decodes to zero pixels yields an empty slice,
// which downstream stages treat as "no match possible".
func (e *Extractor) Extract(img image.Image) ([]RepresentativeColor, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	return e.engine.Dominant(Samples(img)), nil
}
