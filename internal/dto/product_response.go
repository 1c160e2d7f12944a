package dto

type OptionResponse struct {
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Choices []string `json:"choices"`
}

type ProductResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Price        float64           `json:"price"`
	Images       []string          `json:"images"`
	CountInStock int64             `json:"countInStock"`
	Category     *CategoryResponse `json:"category"`
	Options      []OptionResponse  `json:"options"`
	CreatedAt    int64             `json:"createdAt"`
	UpdatedAt    int64             `json:"updatedAt"`
}
