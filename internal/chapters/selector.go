package chapters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotFound     = errors.New("chapter not found")
	ErrBadSelection = errors.New("invalid chapter selection")
)

// Selection narrows a chapter list. Only the first non-empty field is
// used, in the order One, Range, List.
//
// One matches a chapter label or site id first and falls back to a
// 1-based position. Range ("from-to") and List ("a,b,c") are positions.
type Selection struct {
	One   string
	Range string
	List  string
}

func (s Selection) Empty() bool {
	return s.One == "" && s.Range == "" && s.List == ""
}

// Apply returns the selected chapters in list order.
func (s Selection) Apply(all []Chapter) ([]Chapter, error) {
	switch {
	case s.One != "":
		return pickOne(all, s.One)
	case s.Range != "":
		return pickRange(all, s.Range)
	case s.List != "":
		return pickList(all, s.List)
	}

	return all, nil
}

func pickOne(all []Chapter, key string) ([]Chapter, error) {
	key = strings.TrimSpace(key)

	var out []Chapter
	for _, ch := range all {
		if ch.Label == key || ch.ID == key {
			out = append(out, ch)
		}
	}
	if len(out) > 0 {
		return out, nil
	}

	if pos, err := strconv.Atoi(key); err == nil && pos > 0 && pos <= len(all) {
		return []Chapter{all[pos-1]}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
}

// pickRange clamps the upper bound to the list length.
func pickRange(all []Chapter, rng string) ([]Chapter, error) {
	start, end, ok := strings.Cut(rng, "-")
	if !ok {
		return nil, fmt.Errorf("%w: range %q is not from-to", ErrBadSelection, rng)
	}

	from, err1 := strconv.Atoi(strings.TrimSpace(start))
	to, err2 := strconv.Atoi(strings.TrimSpace(end))
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("%w: range %q", ErrBadSelection, rng)
	}
	if from <= 0 || from > to {
		return nil, fmt.Errorf("%w: range %q", ErrBadSelection, rng)
	}
	if from > len(all) {
		return nil, fmt.Errorf("%w: range %q starts past %d chapters", ErrNotFound, rng, len(all))
	}

	return all[from-1 : min(to, len(all))], nil
}

// pickList skips entries that are not numbers or fall outside the list
// and drops duplicates.
func pickList(all []Chapter, list string) ([]Chapter, error) {
	var out []Chapter
	seen := make(map[int]struct{})

	for part := range strings.SplitSeq(list, ",") {
		pos, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || pos <= 0 || pos > len(all) {
			continue
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, all[pos-1])
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: list %q matched nothing", ErrNotFound, list)
	}

	return out, nil
}
