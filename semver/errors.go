package semver

import "fmt"

// ParseError reports a version string that fails the grammar. Offset is the
// byte position of first divergence: every shorter prefix is either a valid
// version or could still be extended into one.
type ParseError struct {
	Text   string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed version text %q at offset %d", e.Text, e.Offset)
}

// FieldError reports component-wise construction where one field value made
// the assembled version fail validation.
type FieldError struct {
	Field Field
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

// OpError reports a derivation operation that has no defined result.
type OpError struct {
	Field  Field
	Reason string
}

func (e *OpError) Error() string {
	return fmt.Sprintf("illegal operation on %s: %s", e.Field, e.Reason)
}

// KindError reports a replacement value whose kind does not match the field.
type KindError struct {
	Field Field
	Kind  string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s expects %s value, got %s", e.Field, e.Field.kind(), e.Kind)
}
