package cart

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bft-labs/shopcart/pkg/catalog"
)

func entries(prices ...string) []catalog.Entry {
	es := make([]catalog.Entry, len(prices))
	for i, p := range prices {
		es[i] = catalog.Entry{Price: decimal.RequireFromString(p)}
	}
	return es
}

func newTestCart() *Cart {
	return New(entries("10", "25"), decimal.NewFromInt(30), decimal.NewFromInt(5))
}

func TestCart_Scenario(t *testing.T) {
	c := newTestCart()

	c.Increment(0)
	c.Increment(0)

	if got := c.TotalPrice(); !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("TotalPrice = %s, want 20", got)
	}
	if c.MeetsDeliveryThreshold() {
		t.Error("MeetsDeliveryThreshold = true, want false")
	}
	if !c.HasSelection() {
		t.Error("HasSelection = false, want true")
	}
	if c.TotalQuantity() != 2 {
		t.Errorf("TotalQuantity = %d, want 2", c.TotalQuantity())
	}
	if got := c.Shortfall(); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Shortfall = %s, want 10", got)
	}

	c.Increment(1)

	if got := c.TotalPrice(); !got.Equal(decimal.NewFromInt(45)) {
		t.Errorf("TotalPrice = %s, want 45", got)
	}
	if !c.MeetsDeliveryThreshold() {
		t.Error("MeetsDeliveryThreshold = false, want true")
	}
	if !c.Shortfall().IsZero() {
		t.Errorf("Shortfall = %s, want 0", c.Shortfall())
	}
}

func TestCart_DecrementFresh(t *testing.T) {
	c := newTestCart()
	c.Decrement(0)

	if c.Quantity(0) != 0 {
		t.Errorf("Quantity(0) = %d, want 0", c.Quantity(0))
	}
	if c.HasSelection() {
		t.Error("HasSelection = true, want false")
	}
	if c.IsSelected(0) {
		t.Error("IsSelected(0) = true, want false")
	}
}

func TestCart_ThresholdBoundary(t *testing.T) {
	c := New(entries("15"), decimal.NewFromInt(30), decimal.Zero)
	c.Increment(0)
	c.Increment(0)
	if !c.MeetsDeliveryThreshold() {
		t.Error("total equal to threshold should meet it")
	}
}

func TestCart_ExactDecimalTotals(t *testing.T) {
	c := New(entries("0.1", "0.2"), decimal.RequireFromString("0.3"), decimal.Zero)
	c.Increment(0)
	c.Increment(1)
	if got := c.TotalPrice(); !got.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("TotalPrice = %s, want 0.3", got)
	}
	if !c.MeetsDeliveryThreshold() {
		t.Error("0.1 + 0.2 should meet a 0.3 threshold")
	}
}

func TestCart_FeeNotInTotals(t *testing.T) {
	c := newTestCart()
	c.Increment(1)
	if got := c.TotalPrice(); !got.Equal(decimal.NewFromInt(25)) {
		t.Errorf("TotalPrice = %s, want 25 (fee excluded)", got)
	}
	if !c.DeliveryFee().Equal(decimal.NewFromInt(5)) {
		t.Errorf("DeliveryFee = %s, want 5", c.DeliveryFee())
	}
	if !c.DeliveryThreshold().Equal(decimal.NewFromInt(30)) {
		t.Errorf("DeliveryThreshold = %s, want 30", c.DeliveryThreshold())
	}
}

// TestCart_RandomSequences checks the derived values against a model after
// random mutation sequences.
func TestCart_RandomSequences(t *testing.T) {
	prices := []string{"3.5", "12", "0.99", "7.25"}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		c := New(entries(prices...), decimal.NewFromInt(20), decimal.Zero)
		model := make([]int, len(prices))

		for step := 0; step < 200; step++ {
			i := rng.Intn(len(prices))
			if rng.Intn(2) == 0 {
				c.Increment(i)
				model[i]++
			} else {
				c.Decrement(i)
				if model[i] > 0 {
					model[i]--
				}
			}

			want := decimal.Zero
			wantQty := 0
			for j, q := range model {
				if c.Quantity(j) < 0 {
					t.Fatalf("run %d step %d: Quantity(%d) = %d, negative", run, step, j, c.Quantity(j))
				}
				if c.Quantity(j) != q {
					t.Fatalf("run %d step %d: Quantity(%d) = %d, want %d", run, step, j, c.Quantity(j), q)
				}
				want = want.Add(decimal.RequireFromString(prices[j]).Mul(decimal.NewFromInt(int64(q))))
				wantQty += q
			}

			if !c.TotalPrice().Equal(want) {
				t.Fatalf("run %d step %d: TotalPrice = %s, want %s", run, step, c.TotalPrice(), want)
			}
			if c.HasSelection() != (wantQty > 0) {
				t.Fatalf("run %d step %d: HasSelection = %v, want %v", run, step, c.HasSelection(), wantQty > 0)
			}
			if c.MeetsDeliveryThreshold() != want.GreaterThanOrEqual(decimal.NewFromInt(20)) {
				t.Fatalf("run %d step %d: MeetsDeliveryThreshold mismatch at total %s", run, step, want)
			}
		}
	}
}

func TestCart_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *Cart)
	}{
		{"increment", func(c *Cart) { c.Increment(2) }},
		{"decrement", func(c *Cart) { c.Decrement(-1) }},
		{"is selected", func(c *Cart) { c.IsSelected(5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for out-of-range index")
				}
			}()
			tt.fn(newTestCart())
		})
	}
}

func TestCart_Subscribe(t *testing.T) {
	c := newTestCart()

	var got []Change
	c.Subscribe(func(ch Change) {
		// Listener sees the state after the mutation.
		if c.Quantity(ch.Index) != ch.Quantity {
			t.Errorf("listener saw Quantity(%d) = %d, change says %d", ch.Index, c.Quantity(ch.Index), ch.Quantity)
		}
		got = append(got, ch)
	})
	c.Subscribe(nil)

	c.Increment(1)
	c.Decrement(1)
	c.Decrement(1)

	want := []Change{
		{Index: 1, Op: OpIncrement, Quantity: 1},
		{Index: 1, Op: OpDecrement, Quantity: 0},
		{Index: 1, Op: OpDecrement, Quantity: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d changes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCart_QuantitiesRestore(t *testing.T) {
	c := newTestCart()
	c.Increment(0)
	c.Increment(1)
	c.Increment(1)

	qs := c.Quantities()
	qs[0] = 99 // copy must not alias the cart

	if c.Quantity(0) != 1 {
		t.Fatalf("Quantities aliased cart state: Quantity(0) = %d", c.Quantity(0))
	}

	fresh := newTestCart()
	if err := fresh.Restore([]int{1, 2}); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !fresh.TotalPrice().Equal(c.TotalPrice()) {
		t.Errorf("restored TotalPrice = %s, want %s", fresh.TotalPrice(), c.TotalPrice())
	}

	tests := []struct {
		name    string
		qs      []int
		wantErr error
	}{
		{"too few", []int{1}, ErrQuantityCount},
		{"too many", []int{1, 2, 3}, ErrQuantityCount},
		{"negative", []int{1, -1}, ErrNegativeQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fresh.Restore(tt.qs)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Restore error = %v, want %v", err, tt.wantErr)
			}
			if fresh.Quantity(0) != 1 || fresh.Quantity(1) != 2 {
				t.Errorf("failed Restore modified cart: %v", fresh.Quantities())
			}
		})
	}
}

func TestCart_LenFixed(t *testing.T) {
	es := entries("1", "2", "3")
	c := New(es, decimal.Zero, decimal.Zero)
	es[0].Price = decimal.NewFromInt(100)

	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
	if !c.Item(0).Entry().Price.Equal(decimal.NewFromInt(1)) {
		t.Error("cart should not observe edits to the caller's entry slice")
	}
}
