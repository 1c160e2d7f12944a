package dto

// AdminTool is one entry of the fixed admin-console capability list.
// The list is a static enumeration; tools are added here, not registered
// at runtime.
type AdminTool struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Path        string `json:"path"`
}
