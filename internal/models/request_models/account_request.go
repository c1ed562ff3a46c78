package request_models

// Account create/update arrive as multipart forms because the profile
// picture rides along with the fields.
type CreateAccountRequest struct {
	Name       string `form:"name" binding:"required,min=2,max=100"`
	Email      string `form:"email" binding:"required,email"`
	Position   string `form:"position" binding:"required"`
	Password   string `form:"password" binding:"required,min=6"`
	Phone      string `form:"phone"`
	Department string `form:"department"`
}

type UpdateAccountRequest struct {
	Name       string `form:"name" binding:"required,min=2,max=100"`
	Email      string `form:"email" binding:"required,email"`
	Position   string `form:"position" binding:"required"`
	Phone      string `form:"phone"`
	Department string `form:"department"`
}
