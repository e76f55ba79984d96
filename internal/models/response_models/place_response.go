package response_models

type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	MainTags    []string `json:"main_tags"`
	SafetyScore *float64 `json:"safety_score"`
	ReviewCount int      `json:"review_count"`
}

type Review struct {
	ID         string   `json:"id"`
	PlaceID    string   `json:"place_id"`
	UserID     string   `json:"user_id,omitempty"`
	Rating     int      `json:"rating"`
	SafetyTags []string `json:"safety_tags"`
	Comment    string   `json:"comment"`
	NightSafe  bool     `json:"night_safe"`
	Harassment bool     `json:"harassment"`
	CreatedAt  string   `json:"created_at"`
}
