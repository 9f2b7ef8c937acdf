package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ArtworkExtension is the extension the prepare step gives every
// downloaded artwork file. The find step relies on it to map files
// back to tracks.
const ArtworkExtension = ".jpg"

const trackIDLength = 22

// TrackIDFromFilename derives a track identifier from an artwork file
// name: the name must carry the artwork extension and its stem must be
// a valid base62 track ID.
func TrackIDFromFilename(name string) (string, error) {
	base := filepath.Base(name)
	stem, ok := strings.CutSuffix(base, ArtworkExtension)
	if !ok {
		return "", fmt.Errorf("file %q does not have the %s extension", base, ArtworkExtension)
	}
	if !ValidTrackID(stem) {
		return "", fmt.Errorf("%q is not a valid track ID", stem)
	}
	return stem, nil
}

// ValidTrackID reports whether s is a well-formed Spotify track ID:
// exactly 22 base62 characters.
func ValidTrackID(s string) bool {
	if len(s) != trackIDLength {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
