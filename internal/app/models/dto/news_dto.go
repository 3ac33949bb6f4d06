package dto

// NewsForm is the multipart body for news create/update. Field names
// are PascalCase on the wire. The image arrives either as an uploaded
// "Image" file (read separately from the multipart form) or as an
// "ImageUrl" string; on update the caller resends the previous
// ImageUrl when no new file is chosen.
type NewsForm struct {
	Title       string `form:"Title" binding:"required"`
	Content     string `form:"Content" binding:"required"`
	IsImportant bool   `form:"IsImportant"`
	ImageURL    string `form:"ImageUrl"`
}
