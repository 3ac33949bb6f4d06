package dto

// ProfForm is the multipart body for faculty union create/update.
// HeadId must reference a team member of type ProfburoHead.
type ProfForm struct {
	Name          string `form:"Name" binding:"required"`
	HeadID        int64  `form:"HeadId" binding:"required"`
	Address       string `form:"Address"`
	Room          string `form:"Room"`
	Schedule      string `form:"Schedule"`
	Summary       string `form:"Summary"`
	TelegramLink  string `form:"TelegramLink"`
	InstagramLink string `form:"InstagramLink"`
	OrderInd      int    `form:"OrderInd"`
	IsActive      bool   `form:"IsActive"`
	ImageURL      string `form:"ImageUrl"`
}
