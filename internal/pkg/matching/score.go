package matching

import (
	"sort"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
)

// DefaultMatchLimit caps a ranked match listing
const DefaultMatchLimit = 10

// IDSet is a membership set over vocabulary identifiers
type IDSet map[int64]struct{}

// NewIDSet builds an IDSet from a slice of identifiers
func NewIDSet(ids []int64) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports membership
func (s IDSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Score computes the affinity between a candidate's skill/interest identifiers
// and the reference sets: +1 for every candidate skill present in refSkills and
// +1 for every candidate interest present in refInterests. No weighting or
// normalization; linear in the candidate's association count.
func Score(skillIDs, interestIDs []int64, refSkills, refInterests IDSet) int {
	score := 0
	for _, id := range skillIDs {
		if refSkills.Contains(id) {
			score++
		}
	}
	for _, id := range interestIDs {
		if refInterests.Contains(id) {
			score++
		}
	}
	return score
}

// ScoredProfile pairs a candidate profile with its affinity score
type ScoredProfile struct {
	Profile *models.Profile
	Score   int
}

// RankProfiles scores every candidate against the reference sets and returns
// them sorted by descending score, ties preserving the candidates' input
// order, truncated to limit entries. A non-positive limit falls back to
// DefaultMatchLimit.
func RankProfiles(candidates []*models.Profile, refSkills, refInterests IDSet, limit int) []ScoredProfile {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	scored := make([]ScoredProfile, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, ScoredProfile{
			Profile: candidate,
			Score:   Score(candidate.SkillIDs(), candidate.InterestIDs(), refSkills, refInterests),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
