package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Ident is one dot-separated prerelease identifier. Numeric selects which
// representation holds the value: an unsigned integer for all-digit
// identifiers, the raw string otherwise. An otherwise digit-like token that
// carries a hyphen (e.g. '-1') is alphanumeric, which is why classification
// checks "unsigned integer" and not merely "parses as integer".
type Ident struct {
	Numeric bool
	Num     uint64
	Str     string
}

// String method returns the canonical text of the identifier.
func (id Ident) String() string {
	if id.Numeric {
		return strconv.FormatUint(id.Num, 10)
	}
	return id.Str
}

// Version represents one immutable semantic version. The zero value is the
// stable version '0.0.0'. There is no in-place mutation: every derivation
// (Next, With) returns a new value. Identifier decompositions are computed
// once at construction, so concurrent readers share only fixed state.
type Version struct {
	major, minor, patch  int
	prerelease, metadata string
	preFields            []Ident
	metaFields           []string
}

// New assembles a Version from five already-normalized components and
// validates the result by re-serializing and re-parsing it. On failure the
// reported offset is mapped back onto the field that caused it.
func New(major, minor, patch int, prerelease, metadata string) (Version, error) {
	text := format(major, minor, patch, prerelease, metadata)
	v, err := Parse(text)
	if err == nil {
		return v, nil
	}
	field, value := fieldAt(err.(*ParseError).Offset, major, minor, patch, prerelease)
	if field == FieldMetadata {
		value = metadata
	}
	return Version{}, &FieldError{Field: field, Value: value}
}

// fieldAt maps a failure offset in the assembled text back onto the field
// whose segment contains it. Separator and end-of-string offsets belong to
// the nearest enclosing field.
func fieldAt(offset, major, minor, patch int, prerelease string) (Field, string) {
	majEnd := len(strconv.Itoa(major))
	minEnd := majEnd + 1 + len(strconv.Itoa(minor))
	patEnd := minEnd + 1 + len(strconv.Itoa(patch))
	preEnd := patEnd
	if prerelease != "" {
		preEnd += 1 + len(prerelease)
	}
	switch {
	case offset <= majEnd:
		return FieldMajor, strconv.Itoa(major)
	case offset <= minEnd:
		return FieldMinor, strconv.Itoa(minor)
	case offset <= patEnd:
		return FieldPatch, strconv.Itoa(patch)
	case offset <= preEnd:
		return FieldPrerelease, prerelease
	}
	return FieldMetadata, ""
}

// format assembles the canonical text form, omitting the '-' and '+'
// sections when their field is empty.
func format(major, minor, patch int, prerelease, metadata string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", major, minor, patch)
	if prerelease != "" {
		b.WriteByte('-')
		b.WriteString(prerelease)
	}
	if metadata != "" {
		b.WriteByte('+')
		b.WriteString(metadata)
	}
	return b.String()
}

// String method returns the canonical
// 'MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]' text; parsing it yields an
// equal Version back.
func (v Version) String() string {
	return format(v.major, v.minor, v.patch, v.prerelease, v.metadata)
}

// Major method returns integer value of the major version segment (e.g. '?.0.0')
func (v Version) Major() int {
	return v.major
}

// Minor method returns integer value of the minor version segment (e.g. '0.?.0')
func (v Version) Minor() int {
	return v.minor
}

// Patch method returns integer value of the patch version segment (e.g. '0.0.?')
func (v Version) Patch() int {
	return v.patch
}

// Prerelease method returns the raw prerelease section ('' when stable).
func (v Version) Prerelease() string {
	return v.prerelease
}

// Metadata method returns the raw build metadata section.
func (v Version) Metadata() string {
	return v.metadata
}

// IsStable method reports whether the prerelease section is empty.
func (v Version) IsStable() bool {
	return v.prerelease == ""
}

// Get method returns the value keyed by the field: int for the numeric
// fields, string for prerelease and metadata. Unknown fields yield nil.
func (v Version) Get(f Field) interface{} {
	switch f {
	case FieldMajor:
		return v.major
	case FieldMinor:
		return v.minor
	case FieldPatch:
		return v.patch
	case FieldPrerelease:
		return v.prerelease
	case FieldMetadata:
		return v.metadata
	}
	return nil
}

// PrereleaseFields method returns the typed prerelease identifiers in order.
// The slice is a copy, the Version itself stays immutable.
func (v Version) PrereleaseFields() []Ident {
	out := make([]Ident, len(v.preFields))
	copy(out, v.preFields)
	return out
}

// MetadataFields method returns the metadata identifiers in order.
// The slice is a copy, the Version itself stays immutable.
func (v Version) MetadataFields() []string {
	out := make([]string, len(v.metaFields))
	copy(out, v.metaFields)
	return out
}
