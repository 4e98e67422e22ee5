// Package detector handles ROM file type detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Detector handles ROM type detection from file extensions.
type Detector struct {
	logger     *log.Logger
	extensions set.Set[string]
}

// New creates a new ROM detector.
func New(logger *log.Logger) *Detector {
	extensions := set.New[string]()
	for _, ext := range []string{".ch8", ".c8", ".rom"} {
		extensions.Add(ext)
	}

	return &Detector{
		logger:     logger,
		extensions: extensions,
	}
}

// Detect returns whether the file name has a known CHIP-8 ROM extension.
// Unknown extensions are logged, the file is still processed as raw ROM.
func (d *Detector) Detect(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if d.extensions.Contains(ext) {
		return true
	}

	d.logger.Warn("Unknown ROM file extension, processing as raw CHIP-8 ROM",
		log.String("file", filename))
	return false
}
