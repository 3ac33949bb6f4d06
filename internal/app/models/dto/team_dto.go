package dto

// TeamMemberForm is the multipart body for team member create/update.
type TeamMemberForm struct {
	Name     string `form:"Name" binding:"required"`
	Position string `form:"Position"`
	Type     int    `form:"Type"`
	Email    string `form:"Email"`
	OrderInd int    `form:"OrderInd"`
	IsActive bool   `form:"IsActive"`
	ImageURL string `form:"ImageUrl"`
}
