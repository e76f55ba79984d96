package request_models

type SignUpRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo" binding:"omitempty,url"`
}
