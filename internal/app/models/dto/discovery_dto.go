package dto

// DiscoveryFilter captures the optional discovery filters
type DiscoveryFilter struct {
	Role      string
	Skills    string
	Interests string
}

// DiscoveredUser is one discovery listing entry
type DiscoveredUser struct {
	ID      int64         `json:"id"`
	Email   string        `json:"email"`
	Role    string        `json:"role"`
	Profile PublicProfile `json:"profile"`
}

// DiscoveryResponse is the paginated discovery listing
type DiscoveryResponse struct {
	Users      []DiscoveredUser `json:"users"`
	Pagination PaginationInfo   `json:"pagination"`
}
