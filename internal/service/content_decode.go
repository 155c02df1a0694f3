package service

import (
	"encoding/json"
	"regexp"
)

// Models regularly deviate from "return a JSON array": they wrap the array in
// an object under some key, return a single object instead of an array, or
// surround the JSON with prose. decodeItems applies those recoveries in a
// fixed order and fails when none yields at least one item.
//
// wrapperKeys are checked in addition to the generic "data" and "content"
// keys every artifact tolerates.

var embeddedArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

func decodeItems[T any](raw string, wrapperKeys ...string) ([]T, bool) {
	// Direct array.
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return items, true
	}

	// Object wrapping the array under a known key, or a single bare item.
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &wrapper); err == nil {
		keys := append([]string{"data", "content"}, wrapperKeys...)
		for _, key := range keys {
			inner, ok := wrapper[key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(inner, &items); err == nil {
				return items, true
			}
		}

		var single T
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			return []T{single}, true
		}
		return nil, false
	}

	// Not valid JSON at all: try to pull an array out of surrounding prose.
	if match := embeddedArrayPattern.FindString(raw); match != "" {
		if err := json.Unmarshal([]byte(match), &items); err == nil {
			return items, true
		}
	}

	return nil, false
}
