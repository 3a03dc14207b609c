package semver

import (
	"errors"
	"testing"
)

func TestNext_NumericFields(t *testing.T) {
	cases := []struct {
		Text     string
		Field    Field
		Expected string
	}{
		{"1.2.5-alpha", FieldMajor, "2.0.0"},
		{"1.2.5-alpha", FieldMinor, "1.3.0"},
		{"1.2.5-alpha", FieldPatch, "1.2.6"},
		{"1.2.3+build.9", FieldMajor, "2.0.0"},
		{"1.2.3-rc.1+build.9", FieldMinor, "1.3.0"},
		{"0.0.0", FieldPatch, "0.0.1"},
	}

	for _, tcase := range cases {
		v := mustParse(t, tcase.Text)
		next, err := v.Next(tcase.Field)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.String() != tcase.Expected {
			t.Errorf("expected next(%s) of %q to be %q, got %q", tcase.Field, tcase.Text, tcase.Expected, next)
		}
		if v.String() != tcase.Text {
			t.Errorf("expected original version to stay untouched, got %q", v)
		}
	}
}

func TestNext_Prerelease(t *testing.T) {
	// A numeric trailing identifier increments, an alphanumeric one gets a
	// numeric '1' appended; metadata is dropped either way.
	cases := []struct {
		Text     string
		Expected string
	}{
		{"1.0.0-alpha", "1.0.0-alpha.1"},
		{"1.0.0-alpha.1", "1.0.0-alpha.2"},
		{"1.0.0-alpha.beta", "1.0.0-alpha.beta.1"},
		{"1.0.0-rc.9+build.3", "1.0.0-rc.10"},
		{"1.0.0-0", "1.0.0-1"},
	}

	for _, tcase := range cases {
		next, err := mustParse(t, tcase.Text).Next(FieldPrerelease)
		if err != nil {
			t.Fatalf("unexpected error on %q: %v", tcase.Text, err)
		}
		if next.String() != tcase.Expected {
			t.Errorf("expected next prerelease of %q to be %q, got %q", tcase.Text, tcase.Expected, next)
		}
	}
}

func TestNext_Chained(t *testing.T) {
	v := mustParse(t, "1.0.0-alpha")
	v, err := v.Next(FieldPrerelease)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err = v.Next(FieldPrerelease)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "1.0.0-alpha.2" {
		t.Errorf("expected '1.0.0-alpha.2', got %q", v)
	}
}

func TestNext_IllegalOperations(t *testing.T) {
	var oerr *OpError

	// There is no next prerelease of a released version.
	_, err := mustParse(t, "1.0.0").Next(FieldPrerelease)
	if !errors.As(err, &oerr) {
		t.Fatalf("expected *OpError on stable prerelease bump, got %v", err)
	}
	if oerr.Field != FieldPrerelease {
		t.Errorf("expected prerelease field in error, got %s", oerr.Field)
	}

	// Metadata has no successor at all.
	_, err = mustParse(t, "1.0.0-rc.1+build").Next(FieldMetadata)
	if !errors.As(err, &oerr) {
		t.Fatalf("expected *OpError on metadata bump, got %v", err)
	}
}

func TestWith_ResetCascade(t *testing.T) {
	base := mustParse(t, "1.2.3-rc.1+build.5")

	cases := []struct {
		Field    Field
		Value    interface{}
		Expected string
	}{
		{FieldMajor, 7, "7.0.0"},
		{FieldMinor, 7, "1.7.0"},
		{FieldPatch, 7, "1.2.7"},
		{FieldPrerelease, "beta.2", "1.2.3-beta.2"},
		{FieldMetadata, "001", "1.2.3-rc.1+001"},
	}

	for _, tcase := range cases {
		v, err := base.With(tcase.Field, tcase.Value)
		if err != nil {
			t.Fatalf("unexpected error on %s: %v", tcase.Field, err)
		}
		if v.String() != tcase.Expected {
			t.Errorf("expected with(%s) to yield %q, got %q", tcase.Field, tcase.Expected, v)
		}
	}
}

func TestWith_KindMismatch(t *testing.T) {
	base := mustParse(t, "1.2.3")

	cases := []struct {
		Field Field
		Value interface{}
	}{
		{FieldMajor, "7"},
		{FieldMinor, 1.5},
		{FieldPatch, nil},
		{FieldPrerelease, 1},
		{FieldMetadata, 1},
	}

	for _, tcase := range cases {
		_, err := base.With(tcase.Field, tcase.Value)
		var kerr *KindError
		if !errors.As(err, &kerr) {
			t.Fatalf("expected *KindError for %s, got %v", tcase.Field, err)
		}
		if kerr.Field != tcase.Field {
			t.Errorf("expected field %s in error, got %s", tcase.Field, kerr.Field)
		}
	}
}

func TestWith_InvalidValues(t *testing.T) {
	base := mustParse(t, "1.2.3")
	var ferr *FieldError

	// A leading-zero numeric identifier is invalid in prerelease...
	_, err := base.With(FieldPrerelease, "01")
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	if ferr.Field != FieldPrerelease || ferr.Value != "01" {
		t.Errorf("unexpected field error '%+v'", ferr)
	}

	// ...but perfectly fine in metadata.
	v, err := base.With(FieldMetadata, "001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "1.2.3+001" {
		t.Errorf("expected '1.2.3+001', got %q", v)
	}

	_, err = base.With(FieldMajor, -1)
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *FieldError on negative major, got %v", err)
	}
}
