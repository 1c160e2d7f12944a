package dto

type OptionRequest struct {
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Choices []string `json:"choices"`
}

type ProductRequest struct {
	ID           string          `json:"-"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Images       []string        `json:"images"`
	CountInStock int64           `json:"countInStock"`
	Category     string          `json:"category"`
	Options      []OptionRequest `json:"options"`
}
