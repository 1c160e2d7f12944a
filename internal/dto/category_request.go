package dto

type CategoryRequest struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
