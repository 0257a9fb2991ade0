package audio

import (
	"path/filepath"
	"strings"
)

// Formats lists the recognized source containers.
var Formats = []string{"mp3", "wav", "flac", "m4a"}

// FormatOf returns the lowercased extension of filename without the dot.
func FormatOf(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// IsSupported reports whether format is one of Formats.
func IsSupported(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// IsAudioFile checks if the file has a supported audio extension
func IsAudioFile(path string) bool {
	return IsSupported(FormatOf(path))
}
