package models

// FacultyUnion represents one profburo: the union branch of a single
// academic faculty, headed by a TeamMember of type ProfburoHead.
type FacultyUnion struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	HeadID        int64       `json:"headId"`
	Head          *TeamMember `json:"head,omitempty"`
	Address       string      `json:"address,omitempty"`
	Room          string      `json:"room,omitempty"`
	Schedule      string      `json:"schedule,omitempty"`
	Summary       string      `json:"summary,omitempty"`
	TelegramLink  string      `json:"telegram_link,omitempty"`
	InstagramLink string      `json:"instagram_link,omitempty"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	IsActive      bool        `json:"isActive"`
	OrderInd      int         `json:"orderInd"`
}
