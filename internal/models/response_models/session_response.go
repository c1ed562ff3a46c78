package response_models

type SessionResponse struct {
	Token      string `json:"token"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	ProfileURL string `json:"profile_url,omitempty"`
}
