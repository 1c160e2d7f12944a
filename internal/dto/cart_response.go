package dto

type CartItemResponse struct {
	CartLineID      string            `json:"cartLineId"`
	ProductID       string            `json:"productId"`
	Name            string            `json:"name"`
	Price           float64           `json:"price"`
	Images          []string          `json:"images"`
	SelectedOptions map[string]string `json:"selectedOptions"`
	Quantity        int64             `json:"quantity"`
	Subtotal        float64           `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type CheckoutResponse struct {
	OrderNumber string             `json:"orderNumber"`
	Items       []CartItemResponse `json:"items"`
	Total       float64            `json:"total"`
}
