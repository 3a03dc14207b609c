package semver

import "strconv"

/*
Hand-written walk over the anchored SemVer grammar:

	major "." minor "." patch ["-" prerelease] ["+" metadata]
	major/minor/patch := "0" | [1-9][0-9]*
	prerelease-ident  := numeric-ident | alphanumeric-ident
	metadata-ident    := [0-9A-Za-z-]+
*/

// Parse recognizes the canonical 'MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA]'
// form and constructs a Version from it. On failure the returned error is a
// *ParseError whose offset pinpoints the first divergence from the grammar.
func Parse(text string) (Version, error) {
	s := &scanner{text: text}

	major, err := s.number()
	if err != nil {
		return Version{}, err
	}
	if err := s.dot(); err != nil {
		return Version{}, err
	}
	minor, err := s.number()
	if err != nil {
		return Version{}, err
	}
	if err := s.dot(); err != nil {
		return Version{}, err
	}
	patch, err := s.number()
	if err != nil {
		return Version{}, err
	}

	v := Version{major: major, minor: minor, patch: patch}

	if !s.eos() && s.peek() == '-' {
		s.pos++
		start := s.pos
		for {
			id, err := s.prereleaseIdent()
			if err != nil {
				return Version{}, err
			}
			v.preFields = append(v.preFields, id)
			if s.eos() || s.peek() != '.' {
				break
			}
			s.pos++
		}
		v.prerelease = text[start:s.pos]
	}

	if !s.eos() && s.peek() == '+' {
		s.pos++
		start := s.pos
		for {
			id, err := s.metadataIdent()
			if err != nil {
				return Version{}, err
			}
			v.metaFields = append(v.metaFields, id)
			if s.eos() || s.peek() != '.' {
				break
			}
			s.pos++
		}
		v.metadata = text[start:s.pos]
	}

	if !s.eos() {
		return Version{}, s.err()
	}
	return v, nil
}

// Check validates text against the grammar and returns it unchanged.
func Check(text string) (string, error) {
	if _, err := Parse(text); err != nil {
		return "", err
	}
	return text, nil
}

// scanner walks the version grammar left to right, tracking the current byte
// offset directly so failures report their position without re-scanning.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) err() error {
	return &ParseError{Text: s.text, Offset: s.pos}
}

func (s *scanner) eos() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) peek() byte {
	return s.text[s.pos]
}

func (s *scanner) dot() error {
	if s.eos() || s.peek() != '.' {
		return s.err()
	}
	s.pos++
	return nil
}

// number scans the major/minor/patch production: '0' or a digit run with no
// leading zero.
func (s *scanner) number() (int, error) {
	start := s.pos
	if s.eos() || !isDigit(s.peek()) {
		return 0, s.err()
	}
	zero := s.peek() == '0'
	s.pos++
	if zero {
		// '0' must stand alone, no version can continue it with a digit.
		if !s.eos() && isDigit(s.peek()) {
			return 0, s.err()
		}
		return 0, nil
	}
	for !s.eos() && isDigit(s.peek()) {
		s.pos++
	}
	n, err := strconv.Atoi(s.text[start:s.pos])
	if err != nil {
		// Digit run too large for the numeric field.
		s.pos = start
		return 0, s.err()
	}
	return n, nil
}

// prereleaseIdent scans one dot-separated prerelease identifier and
// classifies it: numeric when the run is all digits, alphanumeric otherwise.
func (s *scanner) prereleaseIdent() (Ident, error) {
	start := s.pos
	digitsOnly := true
	for !s.eos() && isIdentChar(s.peek()) {
		if !isDigit(s.peek()) {
			digitsOnly = false
		}
		s.pos++
	}
	if s.pos == start {
		return Ident{}, s.err()
	}
	raw := s.text[start:s.pos]
	if !digitsOnly {
		return Ident{Str: raw}, nil
	}
	if len(raw) > 1 && raw[0] == '0' {
		// A leading-zero digit run could still have grown into an
		// alphanumeric identifier, so it only diverges where the run ends.
		return Ident{}, s.err()
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		s.pos = start
		return Ident{}, s.err()
	}
	return Ident{Numeric: true, Num: n}, nil
}

// metadataIdent scans one metadata identifier; unlike prerelease numerics,
// leading zeros are allowed here.
func (s *scanner) metadataIdent() (string, error) {
	start := s.pos
	for !s.eos() && isIdentChar(s.peek()) {
		s.pos++
	}
	if s.pos == start {
		return "", s.err()
	}
	return s.text[start:s.pos], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return isDigit(c) || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
