package dto

// UnitForm is the multipart body for unit create/update.
type UnitForm struct {
	Name     string `form:"Name" binding:"required"`
	Content  string `form:"Content"`
	OrderInd int    `form:"OrderInd"`
	IsActive bool   `form:"IsActive"`
	ImageURL string `form:"ImageUrl"`
}
