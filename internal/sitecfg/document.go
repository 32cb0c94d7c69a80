// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyogo Technologies

package sitecfg

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is a JSON configuration object as a flat-keyed map. Values the
// tools write are strings and numbers; values other writers put there are
// carried through untouched.
type Document map[string]any

// Load reads the JSON object at path. A missing file is an expected
// condition and yields an empty Document; a present but malformed file is an
// error the caller is expected to treat as fatal, so a half-broken config is
// never silently discarded.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	doc := Document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return doc, nil
}

// Merge applies overlay on top of doc in place. Overlay keys overwrite
// existing values, an empty overlay value still claims its key, and every
// other key in doc is retained.
func Merge(doc Document, overlay Document) {
	for key, value := range overlay {
		doc[key] = value
	}
}

// Write serializes doc as 2-space-indented JSON and overwrites path in full.
func Write(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config file %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file %s: %w", path, err)
	}

	return nil
}
