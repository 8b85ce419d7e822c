package dto

// MatchResponse is one ranked matchmaking candidate
type MatchResponse struct {
	User      UserResponse `json:"user"`
	Name      string       `json:"name"`
	Bio       string       `json:"bio"`
	AvatarURL string       `json:"avatarUrl"`
	Skills    []string     `json:"skills"`
	Interests []string     `json:"interests"`
	Score     int          `json:"score"`
}
