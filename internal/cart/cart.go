// Package cart implements the shopper's cart and its line-identity rules.
// A line is identified by the product plus the exact combination of
// selected option values; adding the same combination twice merges into
// one line, any differing value splits into a new one. The package does
// no I/O: persistence of a cart between requests is the Store's job.
package cart

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mondragon/guitar-shop/storefront-service/internal/domain"
)

// Line is one cart entry. Name, Price and Images are snapshots taken when
// the line was created; later edits to the product in the catalog must not
// change an already-added line.
type Line struct {
	ID              string            `json:"cartLineId"`
	ProductID       string            `json:"productId"`
	Name            string            `json:"name"`
	Price           float64           `json:"price"`
	Images          []string          `json:"images"`
	SelectedOptions map[string]string `json:"selectedOptions"`
	Quantity        int64             `json:"quantity"`
}

// Subtotal is the line's snapshot price times its quantity.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart holds one shopper session's lines in insertion order.
type Cart struct {
	Lines []Line `json:"lines"`
}

// LineID derives the identity key for a product and a selection mapping.
// Labels are sorted before serialization so two mappings with the same
// (label, value) pairs produce the same key regardless of the order the
// shopper clicked through the options. Labels and values are quoted to
// keep free-form strings from colliding with the separators.
func LineID(productID string, selections map[string]string) string {
	labels := make([]string, 0, len(selections))
	for label := range selections {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var b strings.Builder
	b.WriteString(productID)
	for _, label := range labels {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(label))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(selections[label]))
	}
	return b.String()
}

// Add records an addition of the given product with the given selections.
// Selections for labels the product does not define are dropped. If a line
// with the same identity key exists its quantity is incremented, otherwise
// a new line holding a snapshot of the product's display fields is
// appended. Quantities below one count as one. The affected line is
// returned.
func (c *Cart) Add(product domain.Product, selections map[string]string, quantity int64) Line {
	if quantity < 1 {
		quantity = 1
	}

	selected := make(map[string]string, len(selections))
	for label, value := range selections {
		if product.HasOptionLabel(label) {
			selected[label] = value
		}
	}

	productID := product.ID.Hex()
	id := LineID(productID, selected)

	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Quantity += quantity
			return c.Lines[i]
		}
	}

	line := Line{
		ID:              id,
		ProductID:       productID,
		Name:            product.Name,
		Price:           product.Price,
		Images:          append([]string(nil), product.Images...),
		SelectedOptions: selected,
		Quantity:        quantity,
	}
	c.Lines = append(c.Lines, line)
	return line
}

// Remove deletes the line with the given id. Removing an unknown id is a
// no-op, not an error.
func (c *Cart) Remove(lineID string) {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces (not adds to) the line's quantity. Quantities
// below one are rejected and the line stays unchanged; the return value
// reports whether the mutation was applied.
func (c *Cart) UpdateQuantity(lineID string, quantity int64) bool {
	if quantity < 1 {
		return false
	}
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Find returns the line with the given id, if present.
func (c *Cart) Find(lineID string) (Line, bool) {
	for _, line := range c.Lines {
		if line.ID == lineID {
			return line, true
		}
	}
	return Line{}, false
}

// Total is recomputed from the lines on every call so it can never go
// stale across mutations. It uses the snapshot prices, not the catalog's
// current ones.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}
