package models

import "time"

// DefaultAvatarURL is used when a profile is created without an avatar
const DefaultAvatarURL = "https://www.pngall.com/wp-content/uploads/5/Profile-PNG-File.png"

// Profile defines the profile model based on the 'profiles' table.
// Each user owns at most one profile; skills and interests are join rows
// into the global vocabulary tables.
type Profile struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Bio        string    `json:"bio" db:"bio"`
	AvatarURL  string    `json:"avatarUrl" db:"avatar_url"`
	IsComplete bool      `json:"isComplete" db:"is_complete"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	User      *User      `json:"user,omitempty"`
	Skills    []Skill    `json:"skills,omitempty"`
	Interests []Interest `json:"interests,omitempty"`
}

// Skill is a global deduplicated vocabulary entity identified by its
// normalized (lower-cased) unique name.
type Skill struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Interest is a global deduplicated vocabulary entity identified by its
// normalized (lower-cased) unique name.
type Interest struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// SkillIDs returns the profile's skill identifiers
func (p *Profile) SkillIDs() []int64 {
	ids := make([]int64, 0, len(p.Skills))
	for _, s := range p.Skills {
		ids = append(ids, s.ID)
	}
	return ids
}

// InterestIDs returns the profile's interest identifiers
func (p *Profile) InterestIDs() []int64 {
	ids := make([]int64, 0, len(p.Interests))
	for _, i := range p.Interests {
		ids = append(ids, i.ID)
	}
	return ids
}
