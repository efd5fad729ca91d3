package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

// Item pairs a product snapshot with the quantity in the cart. The snapshot
// is taken at add time; price changes after that do not retroactively change
// the cart until the product is re-added.
type Item struct {
	Product  models.Product `bson:"product" json:"product"`
	Quantity int            `bson:"quantity" json:"quantity"`
	AddedAt  time.Time      `bson:"added_at" json:"added_at"`
}

// Cart is an ordered list of items, unique by product id.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Items     []Item             `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func New() *Cart {
	now := time.Now()
	return &Cart{
		ID:        primitive.NewObjectID(),
		Items:     []Item{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem appends the product, or increments the existing entry when the
// product id is already present. Quantities below 1 count as 1.
func (c *Cart) AddItem(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			c.touch()
			return
		}
	}

	c.Items = append(c.Items, Item{
		Product:  product,
		Quantity: quantity,
		AddedAt:  time.Now(),
	})
	c.touch()
}

// UpdateQuantity sets the quantity for the product. A quantity below 1
// removes the entry entirely.
func (c *Cart) UpdateQuantity(productID primitive.ObjectID, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// RemoveItem deletes the entry for the product; missing ids are a no-op.
func (c *Cart) RemoveItem(productID primitive.ObjectID) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = []Item{}
	c.touch()
}

// TotalItems is the sum of quantities, recomputed on every call.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity over all entries.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
