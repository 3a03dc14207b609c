package semver

import (
	"fmt"
	"strings"
)

// Field identifies one of the five version fields for Get, Next and With.
type Field int

// The five version fields in significance order.
const (
	FieldMajor Field = iota
	FieldMinor
	FieldPatch
	FieldPrerelease
	FieldMetadata
)

// String method returns the lower-case field name.
func (f Field) String() string {
	switch f {
	case FieldMajor:
		return "major"
	case FieldMinor:
		return "minor"
	case FieldPatch:
		return "patch"
	case FieldPrerelease:
		return "prerelease"
	case FieldMetadata:
		return "metadata"
	}
	return "unknown"
}

// kind names the value kind the field expects in With.
func (f Field) kind() string {
	switch f {
	case FieldMajor, FieldMinor, FieldPatch:
		return "int"
	}
	return "string"
}

// Next method derives the successor version for the field. The numeric
// fields increment by one and reset every less-significant field; prerelease
// advances its last identifier (incrementing a numeric one, appending '1'
// after an alphanumeric one) and clears metadata. A stable version has no
// next prerelease and metadata has no successor at all - both fail with an
// *OpError.
func (v Version) Next(f Field) (Version, error) {
	switch f {
	case FieldMajor:
		return Version{major: v.major + 1}, nil
	case FieldMinor:
		return Version{major: v.major, minor: v.minor + 1}, nil
	case FieldPatch:
		return Version{major: v.major, minor: v.minor, patch: v.patch + 1}, nil
	case FieldPrerelease:
		if v.IsStable() {
			return Version{}, &OpError{Field: f, Reason: "stable version has no next prerelease"}
		}
		fields := make([]Ident, len(v.preFields))
		copy(fields, v.preFields)
		if last := &fields[len(fields)-1]; last.Numeric {
			last.Num++
		} else {
			fields = append(fields, Ident{Numeric: true, Num: 1})
		}
		return New(v.major, v.minor, v.patch, joinIdents(fields), "")
	case FieldMetadata:
		return Version{}, &OpError{Field: f, Reason: "metadata has no successor"}
	}
	return Version{}, &OpError{Field: f, Reason: "unknown field"}
}

// With method replaces the field with an explicit value, resetting every
// less-significant field exactly as Next does: a numeric field clears
// everything below it, a prerelease clears metadata, metadata clears
// nothing. The value kind must match the field (int for the numeric fields,
// string for prerelease and metadata), otherwise a *KindError is returned;
// values that fail the grammar surface as *FieldError through validation.
func (v Version) With(f Field, value interface{}) (Version, error) {
	switch f {
	case FieldMajor, FieldMinor, FieldPatch:
		n, ok := value.(int)
		if !ok {
			return Version{}, &KindError{Field: f, Kind: fmt.Sprintf("%T", value)}
		}
		switch f {
		case FieldMajor:
			return New(n, 0, 0, "", "")
		case FieldMinor:
			return New(v.major, n, 0, "", "")
		}
		return New(v.major, v.minor, n, "", "")
	case FieldPrerelease:
		s, ok := value.(string)
		if !ok {
			return Version{}, &KindError{Field: f, Kind: fmt.Sprintf("%T", value)}
		}
		return New(v.major, v.minor, v.patch, s, "")
	case FieldMetadata:
		s, ok := value.(string)
		if !ok {
			return Version{}, &KindError{Field: f, Kind: fmt.Sprintf("%T", value)}
		}
		return New(v.major, v.minor, v.patch, v.prerelease, s)
	}
	return Version{}, &OpError{Field: f, Reason: "unknown field"}
}

// joinIdents assembles a prerelease section back from its identifiers.
func joinIdents(ids []Ident) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ".")
}
