package request

type RegisterSiteRequest struct {
	Name        string `json:"name" binding:"required" validate:"required"`
	URL         string `json:"url" binding:"required,url" validate:"required,url"`
	NotifyEmail string `json:"notify_email" binding:"omitempty,email" validate:"omitempty,email"`
}
