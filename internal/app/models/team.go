package models

// TeamMember represents one person in the union directory.
// IsChoosed is set once the member is assigned as a faculty union head
// and excludes them from the available-heads picker.
type TeamMember struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Position  string         `json:"position"`
	Type      TeamMemberType `json:"type"`
	Email     string         `json:"email,omitempty"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	OrderInd  int            `json:"orderInd"`
	IsActive  bool           `json:"isActive"`
	IsChoosed bool           `json:"isChoosed"`
}
