package cart

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

func testProduct(price int64) models.Product {
	return models.Product{
		ID:       primitive.NewObjectID(),
		Name:     "Test Figure",
		Price:    price,
		Category: "figures",
		InStock:  true,
	}
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	c := New()
	p := testProduct(500)

	c.AddItem(p, 1)
	c.AddItem(p, 2)
	c.AddItem(p, 3)

	if len(c.Items) != 1 {
		t.Fatalf("expected a single entry, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 6 {
		t.Fatalf("expected quantity 6, got %d", c.Items[0].Quantity)
	}
}

func TestAddItemTreatsNonPositiveQuantityAsOne(t *testing.T) {
	c := New()
	c.AddItem(testProduct(100), 0)

	if len(c.Items) != 1 || c.Items[0].Quantity != 1 {
		t.Fatalf("expected single entry with quantity 1, got %+v", c.Items)
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	c := New()
	p := testProduct(100)
	c.AddItem(p, 2)

	c.UpdateQuantity(p.ID, 7)

	if c.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", c.Items[0].Quantity)
	}
}

func TestUpdateQuantityBelowOneRemovesEntry(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		c := New()
		p := testProduct(100)
		c.AddItem(p, 2)

		c.UpdateQuantity(p.ID, quantity)

		if len(c.Items) != 0 {
			t.Fatalf("expected empty cart for quantity=%d, got %+v", quantity, c.Items)
		}
	}
}

func TestUpdateQuantityUnknownProductIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(testProduct(100), 1)

	c.UpdateQuantity(primitive.NewObjectID(), 5)

	if len(c.Items) != 1 || c.Items[0].Quantity != 1 {
		t.Fatalf("expected cart untouched, got %+v", c.Items)
	}
}

func TestRemoveItemMissingIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(testProduct(100), 1)

	c.RemoveItem(primitive.NewObjectID())

	if len(c.Items) != 1 {
		t.Fatalf("expected one entry, got %d", len(c.Items))
	}
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.AddItem(testProduct(100), 2)
	c.AddItem(testProduct(200), 1)

	c.Clear()

	if len(c.Items) != 0 || c.TotalItems() != 0 || c.TotalPrice() != 0 {
		t.Fatalf("expected empty cart, got %+v", c)
	}
}

func TestTotalsMatchSpecScenario(t *testing.T) {
	c := New()
	c.AddItem(testProduct(500), 2)
	c.AddItem(testProduct(300), 1)

	if got := c.TotalItems(); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	if got := c.TotalPrice(); got != 1300 {
		t.Fatalf("expected total 1300, got %d", got)
	}
}

func TestTotalsAreIdempotent(t *testing.T) {
	c := New()
	c.AddItem(testProduct(250), 4)

	first := c.TotalPrice()
	second := c.TotalPrice()

	if first != second || first != 1000 {
		t.Fatalf("expected stable total 1000, got %d then %d", first, second)
	}
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	c := New()
	a := testProduct(100)
	b := testProduct(200)
	d := testProduct(300)

	c.AddItem(a, 1)
	c.AddItem(b, 1)
	c.AddItem(d, 1)
	c.RemoveItem(b.ID)

	if len(c.Items) != 2 || c.Items[0].Product.ID != a.ID || c.Items[1].Product.ID != d.ID {
		t.Fatalf("expected [a, d] order, got %+v", c.Items)
	}
}
