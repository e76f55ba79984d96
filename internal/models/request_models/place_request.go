package request_models

type ListPlacesQuery struct {
	Q        string `form:"q"`
	City     string `form:"city"`
	ID       string `form:"id"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

type CreateReviewRequest struct {
	UserID     string   `json:"user_id" binding:"max=64"`
	Rating     int      `json:"rating"`
	SafetyTags []string `json:"safety_tags"`
	Comment    string   `json:"comment"`
	NightSafe  bool     `json:"night_safe"`
	Harassment bool     `json:"harassment"`
}
