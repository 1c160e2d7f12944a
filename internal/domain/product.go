package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	OptionTypeButton   = "button"
	OptionTypeDropdown = "dropdown"
)

// Option is an admin-defined configurable attribute of a product, e.g.
// {Label: "Frets", Type: "button", Choices: ["21", "22", "24"]}. Label is
// the selection key and must be unique within one product's option list.
// Type only affects presentation; selection semantics are identical for
// both variants.
type Option struct {
	Label   string   `bson:"label" json:"label"`
	Type    string   `bson:"type" json:"type"`
	Choices []string `bson:"choices" json:"choices"`
}

type Product struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Description  string              `bson:"description" json:"description"`
	Price        float64             `bson:"price" json:"price"`
	Images       []string            `bson:"images" json:"images"`
	CountInStock int64               `bson:"countInStock" json:"countInStock"`
	CategoryID   *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Options      []Option            `bson:"options" json:"options"`
	CreatedAt    int64               `bson:"createdAt" json:"createdAt"`
	UpdatedAt    int64               `bson:"updatedAt" json:"updatedAt"`
}

// Clone returns a fully independent copy: the images, options and choices
// sequences are deep-copied so mutating the clone never touches the original.
func (p Product) Clone() Product {
	clone := p

	clone.Images = append([]string(nil), p.Images...)

	if p.CategoryID != nil {
		categoryID := *p.CategoryID
		clone.CategoryID = &categoryID
	}

	clone.Options = make([]Option, len(p.Options))
	for i, opt := range p.Options {
		clone.Options[i] = Option{
			Label:   opt.Label,
			Type:    opt.Type,
			Choices: append([]string(nil), opt.Choices...),
		}
	}

	return clone
}

// HasOptionLabel reports whether the product defines an option addressed
// by the given label.
func (p Product) HasOptionLabel(label string) bool {
	for _, opt := range p.Options {
		if opt.Label == label {
			return true
		}
	}
	return false
}

// DefaultSelections returns the default shopper selection for a freshly
// viewed product: the first choice of every option. Options with no
// choices offer nothing to select and are omitted.
func (p Product) DefaultSelections() map[string]string {
	selections := make(map[string]string, len(p.Options))
	for _, opt := range p.Options {
		if len(opt.Choices) > 0 {
			selections[opt.Label] = opt.Choices[0]
		}
	}
	return selections
}
