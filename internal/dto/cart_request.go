package dto

type AddCartItemRequest struct {
	ProductID       string            `json:"productId"`
	SelectedOptions map[string]string `json:"selectedOptions"`
	Quantity        int64             `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}
