package semver

import "strings"

// Precedence method orders v against w by the semantic-versioning precedence
// rules: major, minor, patch numerically, then the prerelease identifiers
// pairwise. Build metadata is never consulted, so precedence alone is not a
// total order. The result is negative, zero or positive.
func (v Version) Precedence(w Version) int {
	if c := compareInt(v.major, w.major); c != 0 {
		return c
	}
	if c := compareInt(v.minor, w.minor); c != 0 {
		return c
	}
	if c := compareInt(v.patch, w.patch); c != 0 {
		return c
	}

	// A prerelease ranks below the stable version it precedes.
	switch {
	case v.prerelease == "" && w.prerelease == "":
		return 0
	case v.prerelease == "":
		return 1
	case w.prerelease == "":
		return -1
	}
	return comparePrerelease(v.preFields, w.preFields)
}

// Compare method is the strict total order: precedence first, then the raw
// metadata strings lexically. It exists only to place precedence-equal
// versions deterministically in sorted collections; it must never be used to
// judge semantic compatibility - that is what Precedence is for.
func (v Version) Compare(w Version) int {
	if c := v.Precedence(w); c != 0 {
		return c
	}
	return strings.Compare(v.metadata, w.metadata)
}

func comparePrerelease(a, b []Ident) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compareIdent(a[i], b[i]); c != 0 {
			return c
		}
	}
	// All shared identifiers equal: the larger set ranks higher.
	return compareInt(len(a), len(b))
}

// compareIdent orders two prerelease identifiers: numerics numerically,
// alphanumerics in ASCII order, and a numeric always below an alphanumeric
// regardless of value.
func compareIdent(a, b Ident) int {
	switch {
	case a.Numeric && b.Numeric:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		}
		return 0
	case !a.Numeric && !b.Numeric:
		return strings.Compare(a.Str, b.Str)
	case a.Numeric:
		return -1
	}
	return 1
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
