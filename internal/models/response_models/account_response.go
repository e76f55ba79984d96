package response_models

type Account struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Photo     string `json:"photo,omitempty"`
	CreatedAt string `json:"created_at"`
}
