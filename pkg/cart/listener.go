package cart

// Op identifies the mutation that produced a Change.
type Op int

const (
	OpIncrement Op = iota
	OpDecrement
)

// String returns a human-readable representation of the op.
func (o Op) String() string {
	switch o {
	case OpIncrement:
		return "increment"
	case OpDecrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// Change describes one mutation of a cart item. Quantity is the item's
// quantity after the mutation; a decrement at zero still produces a Change
// with Quantity 0.
type Change struct {
	Index    int
	Op       Op
	Quantity int
}

// Listener observes cart changes. Listeners are called synchronously, in
// subscription order, after the mutation has been applied.
type Listener func(Change)

// Subscribe registers l to be called after every Increment and Decrement.
func (c *Cart) Subscribe(l Listener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
}

func (c *Cart) notify(ch Change) {
	for _, l := range c.listeners {
		l(ch)
	}
}
