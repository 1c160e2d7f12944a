package cart

import (
	"testing"

	"github.com/mondragon/guitar-shop/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func neckProduct() domain.Product {
	return domain.Product{
		ID:          primitive.NewObjectID(),
		Name:        "Maple Neck",
		Description: "One-piece roasted maple neck",
		Price:       199.99,
		Images:      []string{"/uploads/neck-front.webp", "/uploads/neck-back.webp"},
		Options: []domain.Option{
			{Label: "Frets", Type: domain.OptionTypeButton, Choices: []string{"21", "22", "24"}},
			{Label: "Wood", Type: domain.OptionTypeDropdown, Choices: []string{"Maple", "Rosewood"}},
		},
	}
}

func TestLineID_CommutativeOverSelectionOrder(t *testing.T) {
	productID := primitive.NewObjectID().Hex()

	s1 := map[string]string{}
	s1["Frets"] = "24"
	s1["Wood"] = "Maple"

	s2 := map[string]string{}
	s2["Wood"] = "Maple"
	s2["Frets"] = "24"

	assert.Equal(t, LineID(productID, s1), LineID(productID, s2))
}

func TestLineID_DistinguishesValues(t *testing.T) {
	productID := primitive.NewObjectID().Hex()

	id21 := LineID(productID, map[string]string{"Frets": "21"})
	id22 := LineID(productID, map[string]string{"Frets": "22"})

	assert.NotEqual(t, id21, id22)
}

func TestLineID_QuotingPreventsSeparatorCollisions(t *testing.T) {
	productID := primitive.NewObjectID().Hex()

	a := LineID(productID, map[string]string{`a"=`: "b"})
	b := LineID(productID, map[string]string{"a": `"=b`})

	assert.NotEqual(t, a, b)
}

func TestAdd_MergesSameSelection(t *testing.T) {
	product := neckProduct()
	c := Cart{}

	c.Add(product, map[string]string{"Frets": "24", "Wood": "Maple"}, 1)
	c.Add(product, map[string]string{"Wood": "Maple", "Frets": "24"}, 2)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(3), c.Lines[0].Quantity)
}

func TestAdd_SplitsDifferentSelection(t *testing.T) {
	product := neckProduct()
	c := Cart{}

	c.Add(product, map[string]string{"Frets": "21"}, 1)
	c.Add(product, map[string]string{"Frets": "22"}, 1)

	assert.Len(t, c.Lines, 2)
}

func TestAdd_DropsUnknownLabels(t *testing.T) {
	product := neckProduct()
	c := Cart{}

	line := c.Add(product, map[string]string{"Frets": "24", "Pickups": "HSS"}, 1)

	assert.Equal(t, map[string]string{"Frets": "24"}, line.SelectedOptions)
	// the dropped label must not influence identity either
	assert.Equal(t, LineID(product.ID.Hex(), map[string]string{"Frets": "24"}), line.ID)
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	product := neckProduct()
	c := Cart{}

	line := c.Add(product, nil, 0)

	assert.Equal(t, int64(1), line.Quantity)
}

func TestAdd_SnapshotIsIndependentOfProduct(t *testing.T) {
	product := neckProduct()
	c := Cart{}

	c.Add(product, map[string]string{"Frets": "24"}, 1)

	product.Price = 150
	product.Images[0] = "/uploads/changed.webp"

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 199.99, c.Lines[0].Price)
	assert.Equal(t, "/uploads/neck-front.webp", c.Lines[0].Images[0])
	assert.Equal(t, 199.99, c.Total())
}

func TestUpdateQuantity_RejectsBelowOne(t *testing.T) {
	product := neckProduct()
	c := Cart{}
	line := c.Add(product, map[string]string{"Frets": "24"}, 2)

	assert.False(t, c.UpdateQuantity(line.ID, 0))
	assert.False(t, c.UpdateQuantity(line.ID, -1))

	got, ok := c.Find(line.ID)
	require.True(t, ok)
	assert.Equal(t, int64(2), got.Quantity)
}

func TestUpdateQuantity_ReplacesExactly(t *testing.T) {
	product := neckProduct()
	c := Cart{}
	line := c.Add(product, map[string]string{"Frets": "24"}, 2)

	assert.True(t, c.UpdateQuantity(line.ID, 5))

	got, ok := c.Find(line.ID)
	require.True(t, ok)
	assert.Equal(t, int64(5), got.Quantity)
}

func TestUpdateQuantity_UnknownLineIsNoOp(t *testing.T) {
	c := Cart{}
	assert.False(t, c.UpdateQuantity("missing", 3))
}

func TestRemove_UnknownLineIsNoOp(t *testing.T) {
	product := neckProduct()
	c := Cart{}
	c.Add(product, map[string]string{"Frets": "24"}, 1)

	c.Remove("missing")

	assert.Len(t, c.Lines, 1)
}

func TestRemove_DeletesLine(t *testing.T) {
	product := neckProduct()
	c := Cart{}
	keep := c.Add(product, map[string]string{"Frets": "21"}, 1)
	drop := c.Add(product, map[string]string{"Frets": "22"}, 1)

	c.Remove(drop.ID)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, keep.ID, c.Lines[0].ID)
}

func TestClear_EmptiesCart(t *testing.T) {
	product := neckProduct()
	c := Cart{}
	c.Add(product, map[string]string{"Frets": "21"}, 1)
	c.Add(product, map[string]string{"Frets": "22"}, 1)

	c.Clear()

	assert.Empty(t, c.Lines)
	assert.Equal(t, float64(0), c.Total())
}

func TestTotal_SumsSnapshotSubtotals(t *testing.T) {
	c := Cart{Lines: []Line{
		{ID: "a", Price: 10, Quantity: 2},
		{ID: "b", Price: 5, Quantity: 3},
	}}

	assert.Equal(t, float64(35), c.Total())
}

func TestTotal_TracksEveryMutation(t *testing.T) {
	product := neckProduct()
	c := Cart{}

	line := c.Add(product, map[string]string{"Frets": "24"}, 1)
	assert.InDelta(t, 199.99, c.Total(), 1e-9)

	c.UpdateQuantity(line.ID, 3)
	assert.InDelta(t, 3*199.99, c.Total(), 1e-9)

	c.Remove(line.ID)
	assert.Equal(t, float64(0), c.Total())
}
