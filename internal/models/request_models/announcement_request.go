package request_models

type CreateAnnouncementRequest struct {
	Title   string `form:"title" binding:"required,min=1,max=200"`
	Content string `form:"content" binding:"required,min=1"`
}
