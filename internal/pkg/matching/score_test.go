package matching

import (
	"testing"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
)

func profileWith(id int64, skillIDs, interestIDs []int64) *models.Profile {
	p := &models.Profile{ID: id, UserID: id}
	for _, sid := range skillIDs {
		p.Skills = append(p.Skills, models.Skill{ID: sid})
	}
	for _, iid := range interestIDs {
		p.Interests = append(p.Interests, models.Interest{ID: iid})
	}
	return p
}

func TestScore(t *testing.T) {
	t.Run("counts skill and interest overlap", func(t *testing.T) {
		// candidate skills {2,3}, interests {5,6} against references
		// skills {1,2}, interests {5}: one skill hit plus one interest hit
		got := Score([]int64{2, 3}, []int64{5, 6}, NewIDSet([]int64{1, 2}), NewIDSet([]int64{5}))
		if got != 2 {
			t.Errorf("expected score 2, got %d", got)
		}
	})

	t.Run("no overlap scores zero", func(t *testing.T) {
		got := Score([]int64{7, 8}, []int64{9}, NewIDSet([]int64{1, 2}), NewIDSet([]int64{5}))
		if got != 0 {
			t.Errorf("expected score 0, got %d", got)
		}
	})

	t.Run("empty reference sets score zero", func(t *testing.T) {
		got := Score([]int64{1, 2, 3}, []int64{4}, NewIDSet(nil), NewIDSet(nil))
		if got != 0 {
			t.Errorf("expected score 0, got %d", got)
		}
	})
}

func TestRankProfiles(t *testing.T) {
	refSkills := NewIDSet([]int64{1, 2, 3})
	refInterests := NewIDSet([]int64{10})

	t.Run("sorts descending by score", func(t *testing.T) {
		candidates := []*models.Profile{
			profileWith(1, []int64{1}, nil),           // score 1
			profileWith(2, []int64{1, 2, 3}, []int64{10}), // score 4
			profileWith(3, nil, []int64{10}),          // score 1
			profileWith(4, []int64{1, 2}, nil),        // score 2
		}

		ranked := RankProfiles(candidates, refSkills, refInterests, DefaultMatchLimit)
		if len(ranked) != 4 {
			t.Fatalf("expected 4 ranked profiles, got %d", len(ranked))
		}

		wantOrder := []int64{2, 4, 1, 3}
		for i, want := range wantOrder {
			if ranked[i].Profile.ID != want {
				t.Errorf("position %d: expected profile %d, got %d", i, want, ranked[i].Profile.ID)
			}
		}
	})

	t.Run("ties preserve input order", func(t *testing.T) {
		candidates := []*models.Profile{
			profileWith(5, []int64{1}, nil),
			profileWith(6, []int64{2}, nil),
			profileWith(7, []int64{3}, nil),
		}

		ranked := RankProfiles(candidates, refSkills, refInterests, DefaultMatchLimit)
		for i, want := range []int64{5, 6, 7} {
			if ranked[i].Profile.ID != want {
				t.Errorf("position %d: expected profile %d, got %d", i, want, ranked[i].Profile.ID)
			}
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		var candidates []*models.Profile
		for i := int64(1); i <= 15; i++ {
			candidates = append(candidates, profileWith(i, []int64{1}, nil))
		}

		ranked := RankProfiles(candidates, refSkills, refInterests, DefaultMatchLimit)
		if len(ranked) != DefaultMatchLimit {
			t.Errorf("expected %d results, got %d", DefaultMatchLimit, len(ranked))
		}
	})

	t.Run("empty candidate pool yields empty ranking", func(t *testing.T) {
		ranked := RankProfiles(nil, refSkills, refInterests, DefaultMatchLimit)
		if len(ranked) != 0 {
			t.Errorf("expected empty ranking, got %d entries", len(ranked))
		}
	})
}
