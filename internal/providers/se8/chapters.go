package se8

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/brogergvhs/se8/internal/providers"
)

var ErrMalformedChapterList = errors.New("malformed chapter list")

// ParseChapterList decodes the /api/comic/chapter response. The API lists
// the newest chapter first; the result is oldest first, numbered by the
// API position counted from the newest (entry i gets i+1) before reversal.
func ParseChapterList(body []byte) ([]providers.Chapter, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedChapterList, err)
	}

	raw, ok := root["data"]
	if !ok {
		return nil, fmt.Errorf("%w: missing data field", ErrMalformedChapterList)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: data is not an array", ErrMalformedChapterList)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedChapterList, err)
	}

	out := make([]providers.Chapter, 0, len(entries))
	for i, e := range entries {
		if ch, ok := parseChapterEntry(e, i); ok {
			out = append(out, ch)
		}
	}

	slices.Reverse(out)

	return out, nil
}

func parseChapterEntry(raw json.RawMessage, index int) (providers.Chapter, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return providers.Chapter{}, false
	}

	id, ok := idField(obj["id"])
	if !ok || id == "" {
		return providers.Chapter{}, false
	}

	name, _ := stringField(obj["name"])
	link, _ := stringField(obj["link"])

	return providers.Chapter{
		ID:     id,
		Title:  strings.TrimSpace(DecodeEntities(name)),
		Number: float64(index + 1),
		URL:    link,
	}, true
}

func stringField(raw json.RawMessage) (string, bool) {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return "", false
	}

	return s, true
}

// idField accepts both "123" and 123; the API is not consistent.
func idField(raw json.RawMessage) (string, bool) {
	if s, ok := stringField(raw); ok {
		return s, true
	}

	var n json.Number
	if len(raw) == 0 || json.Unmarshal(raw, &n) != nil {
		return "", false
	}

	return n.String(), true
}
