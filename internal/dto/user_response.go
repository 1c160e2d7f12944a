package dto

type UserResponse struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"isAdmin"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	IsAdmin bool         `json:"isAdmin"`
	Profile UserResponse `json:"profile"`
}
