package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bft-labs/shopcart/pkg/cart"
	"github.com/bft-labs/shopcart/pkg/log"
	"github.com/bft-labs/shopcart/pkg/state"
)

// Session applies commands to a single cart.
type Session struct {
	cart   *cart.Cart
	logger log.Logger
	repo   state.Repository
	id     string
	snap   state.Snapshot

	fixedID bool
}

// Option configures optional behavior of a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRepository enables snapshot restore on Start and save after each command.
func WithRepository(r state.Repository) Option {
	return func(s *Session) {
		s.repo = r
	}
}

// WithSessionID fixes the session id instead of generating one. A fixed id
// is kept when Start resumes a snapshot saved under another id. An empty id
// is ignored.
func WithSessionID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
			s.fixedID = true
		}
	}
}

// New creates a session over c.
func New(c *cart.Cart, opts ...Option) *Session {
	s := &Session{
		cart:   c,
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	s.snap.SessionID = s.id
	return s
}

// Cart returns the cart the session drives.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// ID returns the session id. Unless the id was fixed with WithSessionID, a
// successful resume adopts the id stored in the snapshot.
func (s *Session) ID() string {
	return s.id
}

// Start restores the last snapshot when a repository is configured. A
// snapshot taken over a catalog of a different size is ignored.
func (s *Session) Start(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	snap, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap.IsEmpty() {
		return nil
	}

	if !snap.Matches(s.cart.Len()) {
		s.logger.Warn("snapshot does not match catalog, starting fresh",
			log.Int("snapshot_items", len(snap.Quantities)),
			log.Int("catalog_items", s.cart.Len()))
		return nil
	}

	if err := s.cart.Restore(snap.Quantities); err != nil {
		s.logger.Warn("snapshot rejected, starting fresh", log.Err(err))
		return nil
	}

	if snap.SessionID != "" && !s.fixedID {
		s.id = snap.SessionID
	}
	snap.SessionID = s.id
	s.snap = snap

	s.logger.Info("resumed session",
		log.String("session", s.id),
		log.Int("items", s.cart.TotalQuantity()),
		log.Decimal("total", s.cart.TotalPrice()))
	return nil
}

// Apply validates cmd against the cart and applies it.
func (s *Session) Apply(ctx context.Context, cmd Command) error {
	if cmd.Index < 0 || cmd.Index >= s.cart.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, cmd.Index, s.cart.Len())
	}

	switch cmd.Op {
	case cart.OpIncrement:
		s.cart.Increment(cmd.Index)
	case cart.OpDecrement:
		s.cart.Decrement(cmd.Index)
	default:
		return fmt.Errorf("%w: op %d", ErrUnknownCommand, cmd.Op)
	}

	s.logger.Debug("applied",
		log.String("command", cmd.String()),
		log.Int("quantity", s.cart.Quantity(cmd.Index)),
		log.Decimal("total", s.cart.TotalPrice()),
		log.Bool("deliverable", s.cart.MeetsDeliveryThreshold()))

	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	s.snap.Update(s.cart.Quantities())
	if err := s.repo.Save(ctx, s.snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
