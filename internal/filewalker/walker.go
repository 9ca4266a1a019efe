package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"locstrings/internal/filetype"

	"github.com/rs/zerolog/log"
)

// Walker traverses directories and dispatches files to the file-type plugin
// that handles them.
type Walker struct {
	types []filetype.FileType
}

// NewWalker creates a Walker over the given plugins. With no arguments it
// registers the default Objective-C plugin.
func NewWalker(types ...filetype.FileType) *Walker {
	if len(types) == 0 {
		types = []filetype.FileType{
			filetype.NewObjectiveCFileType(filetype.DefaultObjectiveCConfig()),
		}
	}
	return &Walker{types: types}
}

// Entry represents a discovered file ready for extraction.
type Entry struct {
	Path string
	Type filetype.FileType
}

// Walk discovers all handled files under the given root directory.
func (w *Walker) Walk(root string) ([]Entry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []Entry

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		for _, ft := range w.types {
			if ft.Handles(ext) {
				entries = append(entries, Entry{Path: path, Type: ft})
				break
			}
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered files")
	return entries, nil
}
