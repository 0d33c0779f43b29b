package app

import (
	"encoding/json"
	"fmt"
	"os"

	"screenmap/internal/catalog"
	"screenmap/internal/core/errors"
)

// loadMetadata reads the user-authored screen overlay. No configured
// file means an empty overlay; a configured but unreadable file is an
// error, not a silent skip.
func loadMetadata(path string) (catalog.Metadata, error) {
	if path == "" {
		return catalog.Metadata{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			wrapped := errors.Wrap(err, errors.CodeNotFound, "metadata file does not exist")
			return catalog.Metadata{}, errors.AddContext(wrapped, errors.CtxPath, path)
		}
		return catalog.Metadata{}, fmt.Errorf("read metadata file: %w", err)
	}

	var meta catalog.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return catalog.Metadata{}, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	return meta, nil
}
