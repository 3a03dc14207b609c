package relhub

import (
	"context"
	"fmt"
	"sort"

	"github.com/dephub/semver-core/semver"
)

// ReleaseChecker represents checkers interface.
type ReleaseChecker interface {
	// History returns every release in ascending strict order.
	History(ctx context.Context) ([]Release, error)
	// Latest returns the highest-precedence release; prereleases are only
	// considered when includePrereleases is set.
	Latest(ctx context.Context, includePrereleases bool) (*Release, error)
	// Suggest proposes the next version for the field, derived from the
	// latest release.
	Suggest(ctx context.Context, field semver.Field) (semver.Version, error)
}

// NewReleaseChecker constructs a checker over the specified source.
func NewReleaseChecker(source ReleaseSource) ReleaseChecker {
	return &SourceReleaseChecker{source: source}
}

// SourceReleaseChecker represents ReleaseChecker implementation over one ReleaseSource.
type SourceReleaseChecker struct {
	source ReleaseSource
}

// History returns releases in ascending strict order, exact duplicates
// dropped. The strict order only places precedence-equal versions
// deterministically, it carries no compatibility meaning.
func (rc SourceReleaseChecker) History(ctx context.Context) ([]Release, error) {
	rels, err := rc.source.Releases(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rels, func(i, j int) bool {
		return rels[i].Version.Compare(rels[j].Version) < 0
	})

	result := make([]Release, 0, len(rels))
	for _, rel := range rels {
		if len(result) > 0 && result[len(result)-1].Version.Compare(rel.Version) == 0 {
			continue
		}
		result = append(result, rel)
	}
	return result, nil
}

// Latest returns the highest-precedence release from the source.
func (rc SourceReleaseChecker) Latest(ctx context.Context, includePrereleases bool) (*Release, error) {
	rels, err := rc.History(ctx)
	if err != nil {
		return nil, err
	}

	for i := len(rels) - 1; i >= 0; i-- {
		if includePrereleases || rels[i].Version.IsStable() {
			return &rels[i], nil
		}
	}
	return nil, fmt.Errorf("no releases found")
}

// Suggest derives the next version for the field from the latest release.
// Prerelease suggestions start from the latest release of any kind, the
// numeric fields start from the latest stable one.
func (rc SourceReleaseChecker) Suggest(ctx context.Context, field semver.Field) (semver.Version, error) {
	latest, err := rc.Latest(ctx, field == semver.FieldPrerelease)
	if err != nil {
		return semver.Version{}, err
	}

	next, err := latest.Version.Next(field)
	if err != nil {
		return semver.Version{}, fmt.Errorf("unable to derive next version from %q: %w", latest.Version, err)
	}
	return next, nil
}
