package dto

// CreateProfileRequest represents profile creation data. Skills and interests
// are submitted as plain names; unknown names are added to the vocabulary.
type CreateProfileRequest struct {
	Name      string   `json:"name" binding:"required"`
	Bio       string   `json:"bio"`
	AvatarURL string   `json:"avatarUrl"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// UpdateProfileRequest represents profile update data. Nil skill/interest
// slices leave the existing associations untouched; a password rotates the
// user credential.
type UpdateProfileRequest struct {
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatarUrl"`
	Skills    *[]string `json:"skills"`
	Interests *[]string `json:"interests"`
	Password  string    `json:"password,omitempty"`
}

// ProfileResponse represents a user's own profile
type ProfileResponse struct {
	ID         int64    `json:"id"`
	UserID     int64    `json:"userId"`
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	AvatarURL  string   `json:"avatarUrl"`
	IsComplete bool     `json:"isComplete"`
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
}

// PublicProfile is the projection of another user's profile shown in
// connection listings, matches and discovery results.
type PublicProfile struct {
	Name      string   `json:"name" example:"Jane Doe"`
	Bio       string   `json:"bio"`
	AvatarURL string   `json:"avatarUrl"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}
