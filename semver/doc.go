/*
Package semver implements the Semantic Versioning 2.0 value type: parsing
and validation with exact failure offsets, spec-defined precedence, a strict
total ordering for deterministic sorting, and version derivation (Next/With).

Usage:
	v, err := semver.Parse("1.2.3-alpha.1+linux")
	if err != nil {
		// err is a *semver.ParseError carrying the failure offset
	}
	next, _ := v.Next(semver.FieldPrerelease) // 1.2.3-alpha.2
*/
package semver
