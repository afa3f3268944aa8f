package util

import "net/url"

// Resolve makes raw absolute against base. Unparseable input is returned
// unchanged.
func Resolve(base, raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u == nil {
		return raw
	}

	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(base)
	if err != nil || b == nil {
		return raw
	}

	return b.ResolveReference(u).String()
}
