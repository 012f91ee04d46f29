// Package token implements the charity token orchestrator: token issuance,
// the gift catalog and the redemption workflow over the in-memory ledger.
//
// Every public operation runs to completion under one lock against the
// single shared state, so calls are linearizable and all-or-nothing: a
// failed check anywhere leaves balances, catalog and ledger untouched.
package token

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"charity_token/internal/domain"
	"charity_token/internal/domain/access"
	"charity_token/internal/domain/entity"
	"charity_token/internal/domain/ledger"
	"charity_token/internal/domain/value"
	"charity_token/pkg/contextx"
	"charity_token/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// OrderArchive records finished orders for audit. Archive write failures
// never fail the operation that triggered them.
type OrderArchive interface {
	Record(ctx context.Context, order entity.Order, fulfilledAt time.Time) error
	ListRecent(ctx context.Context, limit int) ([]entity.ArchivedOrder, error)
}

type Service struct {
	mu sync.Mutex

	accessControl access.Control
	balances      *ledger.Balances
	catalog       *ledger.Catalog
	orders        *ledger.Orders
	basisRate     uint64

	existenceFirst bool
	notifications  chan<- entity.Notification
	archive        OrderArchive
}

// NewService builds the orchestrator around a fresh ledger. The initial
// basis rate is required at construction; the administrator identity is
// fixed for the lifetime of the service.
func NewService(admin value.Identity, basisRate uint64) *Service {
	return &Service{
		accessControl: access.NewControl(admin),
		balances:      ledger.NewBalances(),
		catalog:       ledger.NewCatalog(),
		orders:        ledger.NewOrders(),
		basisRate:     basisRate,
	}
}

// WithNotifications publishes ledger events to the channel. Publishing is
// fire-and-forget: when the channel is full the event is dropped.
func (s *Service) WithNotifications(ch chan<- entity.Notification) *Service {
	s.notifications = ch
	return s
}

// WithExistenceFirst makes RedeemTokens report an unknown gift before an
// insufficient balance. The default keeps the balance guard first.
func (s *Service) WithExistenceFirst() *Service {
	s.existenceFirst = true
	return s
}

func (s *Service) WithArchive(archive OrderArchive) *Service {
	s.archive = archive
	return s
}

// SetBasisRate overwrites the divisor converting received currency units to
// tokens. A zero rate is accepted as-is; the mint path fails on it instead.
func (s *Service) SetBasisRate(ctx context.Context, caller value.Identity, rate uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return s.observe("set_basis_rate", err)
	}

	s.basisRate = rate

	s.notify(ctx, entity.Notification{
		Kind:    entity.NotificationBasisRateChange,
		NewRate: rate,
	})

	return s.observe("set_basis_rate", nil)
}

// SendTokens mints receivedAmount / basisRate tokens (integer division, the
// remainder is discarded) into the recipient's balance.
func (s *Service) SendTokens(ctx context.Context, caller, to value.Identity, receivedAmount uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return 0, s.observe("send_tokens", err)
	}

	if s.basisRate == 0 {
		return 0, s.observe("send_tokens",
			domain.NewError(errcodes.DivisionByZero, "basis rate is zero"))
	}

	tokens := receivedAmount / s.basisRate

	if err := s.balances.Credit(to, tokens); err != nil {
		return 0, s.observe("send_tokens", err)
	}

	s.notify(ctx, entity.Notification{
		Kind:      entity.NotificationTokensSent,
		Recipient: to,
		Tokens:    tokens,
	})

	return tokens, s.observe("send_tokens", nil)
}

// RedeemTokens debits the caller by the gift price and queues a fulfillment
// order. Open to any identity, acting on its own balance only.
func (s *Service) RedeemTokens(ctx context.Context, caller value.Identity, giftID int64) (entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gift, exists := s.catalog.Lookup(giftID)

	if s.existenceFirst && !exists {
		return entity.Order{}, s.observe("redeem_tokens",
			domain.NewError(errcodes.UnknownGift, "no such gift"))
	}

	// A caller holding no tokens fails the balance guard even for a zero
	// price, so an unknown id (zero-valued entry) reports an insufficient
	// balance before the existence check runs.
	balance := s.balances.BalanceOf(caller)
	if balance == 0 || balance < gift.Price {
		return entity.Order{}, s.observe("redeem_tokens",
			domain.NewError(errcodes.InsufficientBalance, "balance below gift price"))
	}

	if !exists {
		return entity.Order{}, s.observe("redeem_tokens",
			domain.NewError(errcodes.UnknownGift, "no such gift"))
	}

	if err := s.balances.Debit(caller, gift.Price); err != nil {
		return entity.Order{}, s.observe("redeem_tokens", err)
	}

	order := s.orders.Insert(caller, gift.Description)

	s.notify(ctx, entity.Notification{
		Kind:        entity.NotificationTokensRedeem,
		Price:       gift.Price,
		Description: gift.Description,
	})

	return order, s.observe("redeem_tokens", nil)
}

// CheckBalance reports the caller's own balance; unknown accounts hold zero.
func (s *Service) CheckBalance(_ context.Context, caller value.Identity) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balances.BalanceOf(caller)
}

// AddGift upserts a catalog entry, overwriting any previous one.
func (s *Service) AddGift(_ context.Context, caller value.Identity, giftID int64, gift entity.Gift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return s.observe("add_gift", err)
	}

	s.catalog.Upsert(giftID, gift)

	return s.observe("add_gift", nil)
}

// RemoveGift clears a catalog entry back to the zero value.
func (s *Service) RemoveGift(_ context.Context, caller value.Identity, giftID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return s.observe("remove_gift", err)
	}

	s.catalog.Remove(giftID)

	return s.observe("remove_gift", nil)
}

// ViewOrders lists every pending order in ledger order.
func (s *Service) ViewOrders(_ context.Context, caller value.Identity) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return nil, s.observe("view_orders", err)
	}

	return s.orders.List(), s.observe("view_orders", nil)
}

// FindOrderID returns the first pending order matching recipient and
// description, or found=false.
func (s *Service) FindOrderID(
	_ context.Context,
	caller value.Identity,
	recipient value.Identity,
	description string,
) (value.OrderID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return "", false, s.observe("find_order_id", err)
	}

	id, found := s.orders.FindID(recipient, description)

	return id, found, s.observe("find_order_id", nil)
}

// FinishOrder removes the order from the pending ledger, preserving the
// relative order of the remaining entries. An unknown id is a silent no-op.
func (s *Service) FinishOrder(ctx context.Context, caller value.Identity, id value.OrderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return s.observe("finish_order", err)
	}

	order, removed := s.orders.Remove(id)

	if removed && s.archive != nil {
		if err := s.archive.Record(ctx, order, time.Now()); err != nil {
			logger(ctx).Error("order archive record failed",
				slog.String("order_id", id.String()),
				slog.Any("error", err),
			)
		}
	}

	return s.observe("finish_order", nil)
}

// ArchivedOrders lists recently fulfilled orders from the audit archive.
func (s *Service) ArchivedOrders(ctx context.Context, caller value.Identity, limit int) ([]entity.ArchivedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return nil, s.observe("archived_orders", err)
	}

	if s.archive == nil {
		return nil, s.observe("archived_orders",
			domain.NewError(errcodes.ArchiveDisabled, "order archive is not configured"))
	}

	orders, err := s.archive.ListRecent(ctx, limit)
	if err != nil {
		return nil, s.observe("archived_orders",
			domain.WrapError(err, errcodes.InternalServerError, "archive list"))
	}

	return orders, s.observe("archived_orders", nil)
}

// BasisRate reads the current conversion rate.
func (s *Service) BasisRate() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.basisRate
}

func (s *Service) requireAdmin(caller value.Identity) error {
	if !s.accessControl.IsAdministrator(caller) {
		return domain.NewError(errcodes.Unauthorized, "administrator only")
	}

	return nil
}

func (s *Service) notify(ctx context.Context, n entity.Notification) {
	logger(ctx).Info("ledger event",
		slog.String("kind", string(n.Kind)),
		slog.String("recipient", n.Recipient.String()),
		slog.Uint64("tokens", n.Tokens),
		slog.Uint64("new_rate", n.NewRate),
		slog.Uint64("price", n.Price),
		slog.String("description", n.Description),
	)

	if s.notifications == nil {
		return
	}

	select {
	case s.notifications <- n:
	default:
		logger(ctx).Warn("notification dropped", slog.String("kind", string(n.Kind)))
	}
}
