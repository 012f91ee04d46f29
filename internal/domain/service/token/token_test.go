package token_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"charity_token/internal/domain"
	"charity_token/internal/domain/entity"
	"charity_token/internal/domain/service/token"
	"charity_token/internal/domain/value"
	"charity_token/pkg/errcodes"

	"git.appkode.ru/pub/go/failure"
)

const admin = value.Identity("admin")

func requireCode(t *testing.T, err error, want failure.ErrorCode) {
	t.Helper()

	rq := require.New(t)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(want, code)
}

func TestSendTokensMintsByBasisRate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	// 105 / 10 = 10 tokens, the remainder is discarded.
	tokens, err := service.SendTokens(ctx, admin, "alice", 105)
	rq.NoError(err)
	rq.EqualValues(10, tokens)
	rq.EqualValues(10, service.CheckBalance(ctx, "alice"))

	// Mints accumulate.
	_, err = service.SendTokens(ctx, admin, "alice", 50)
	rq.NoError(err)
	rq.EqualValues(15, service.CheckBalance(ctx, "alice"))
}

func TestSendTokensZeroRate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	// Setting the rate to zero is accepted; minting fails on it.
	rq.NoError(service.SetBasisRate(ctx, admin, 0))
	rq.EqualValues(0, service.BasisRate())

	_, err := service.SendTokens(ctx, admin, "alice", 100)
	requireCode(t, err, errcodes.DivisionByZero)
	rq.EqualValues(0, service.CheckBalance(ctx, "alice"))
}

func TestRedeemTokensFullScenario(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	_, err := service.SendTokens(ctx, admin, "alice", 105)
	rq.NoError(err)

	rq.NoError(service.AddGift(ctx, admin, 1, entity.Gift{Price: 10, Description: "Book"}))

	order, err := service.RedeemTokens(ctx, "alice", 1)
	rq.NoError(err)
	rq.Equal(value.Identity("alice"), order.Recipient)
	rq.Equal("Book", order.GiftDescription)

	// The exact price is enough; the balance drains to zero.
	rq.EqualValues(0, service.CheckBalance(ctx, "alice"))

	orders, err := service.ViewOrders(ctx, admin)
	rq.NoError(err)
	rq.Len(orders, 1)
	rq.Equal(order.ID, orders[0].ID)

	id, found, err := service.FindOrderID(ctx, admin, "alice", "Book")
	rq.NoError(err)
	rq.True(found)
	rq.Equal(order.ID, id)

	rq.NoError(service.FinishOrder(ctx, admin, order.ID))

	orders, err = service.ViewOrders(ctx, admin)
	rq.NoError(err)
	rq.Empty(orders)
}

func TestRedeemTokensInsufficientBalance(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	rq.NoError(service.AddGift(ctx, admin, 1, entity.Gift{Price: 10, Description: "Book"}))

	_, err := service.SendTokens(ctx, admin, "alice", 50)
	rq.NoError(err)

	_, err = service.RedeemTokens(ctx, "alice", 1)
	requireCode(t, err, errcodes.InsufficientBalance)

	// The failed redemption changes nothing.
	rq.EqualValues(5, service.CheckBalance(ctx, "alice"))

	orders, err := service.ViewOrders(ctx, admin)
	rq.NoError(err)
	rq.Empty(orders)
}

func TestRedeemTokensBalanceCheckedBeforeExistence(t *testing.T) {
	ctx := context.Background()

	service := token.NewService(admin, 10)

	// A caller with no tokens gets an insufficient balance even though the
	// gift does not exist: the balance guard runs first.
	_, err := service.RedeemTokens(ctx, "alice", 99)
	requireCode(t, err, errcodes.InsufficientBalance)
}

func TestRedeemTokensUnknownGift(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	_, err := service.SendTokens(ctx, admin, "alice", 100)
	rq.NoError(err)

	_, err = service.RedeemTokens(ctx, "alice", 99)
	requireCode(t, err, errcodes.UnknownGift)
	rq.EqualValues(10, service.CheckBalance(ctx, "alice"))
}

func TestRedeemTokensRemovedGift(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	_, err := service.SendTokens(ctx, admin, "alice", 100)
	rq.NoError(err)

	rq.NoError(service.AddGift(ctx, admin, 1, entity.Gift{Price: 5, Description: "Book"}))
	rq.NoError(service.RemoveGift(ctx, admin, 1))

	// A removed gift is indistinguishable from one that never existed.
	_, err = service.RedeemTokens(ctx, "alice", 1)
	requireCode(t, err, errcodes.UnknownGift)
}

func TestRedeemTokensExistenceFirst(t *testing.T) {
	ctx := context.Background()

	service := token.NewService(admin, 10).WithExistenceFirst()

	// With the existence check hoisted, a broke caller asking for an
	// unknown gift hears about the gift, not the balance.
	_, err := service.RedeemTokens(ctx, "alice", 99)
	requireCode(t, err, errcodes.UnknownGift)
}

func TestAdministratorGating(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	requireCode(t, service.SetBasisRate(ctx, "alice", 5), errcodes.Unauthorized)

	_, err := service.SendTokens(ctx, "alice", "alice", 100)
	requireCode(t, err, errcodes.Unauthorized)

	requireCode(t,
		service.AddGift(ctx, "alice", 1, entity.Gift{Price: 1, Description: "Book"}),
		errcodes.Unauthorized)
	requireCode(t, service.RemoveGift(ctx, "alice", 1), errcodes.Unauthorized)

	_, err = service.ViewOrders(ctx, "alice")
	requireCode(t, err, errcodes.Unauthorized)

	_, _, err = service.FindOrderID(ctx, "alice", "alice", "Book")
	requireCode(t, err, errcodes.Unauthorized)

	requireCode(t, service.FinishOrder(ctx, "alice", "some-id"), errcodes.Unauthorized)

	_, err = service.ArchivedOrders(ctx, "alice", 10)
	requireCode(t, err, errcodes.Unauthorized)

	// Nothing leaked through the denied calls.
	rq.EqualValues(10, service.BasisRate())
	rq.EqualValues(0, service.CheckBalance(ctx, "alice"))
}

func TestCheckBalanceOpenToEveryone(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	// No admin gate and no error path: an unknown account simply holds zero.
	rq.EqualValues(0, service.CheckBalance(ctx, "nobody"))
}

func TestFinishOrderUnknownIDIsSilent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	service := token.NewService(admin, 10)

	rq.NoError(service.FinishOrder(ctx, admin, "no-such-order"))
}

func TestNotifications(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	events := make(chan entity.Notification, 10)
	service := token.NewService(admin, 10).WithNotifications(events)

	rq.NoError(service.SetBasisRate(ctx, admin, 5))

	_, err := service.SendTokens(ctx, admin, "alice", 50)
	rq.NoError(err)

	rq.NoError(service.AddGift(ctx, admin, 1, entity.Gift{Price: 10, Description: "Book"}))

	_, err = service.RedeemTokens(ctx, "alice", 1)
	rq.NoError(err)

	rateChange := <-events
	rq.Equal(entity.NotificationBasisRateChange, rateChange.Kind)
	rq.EqualValues(5, rateChange.NewRate)

	sent := <-events
	rq.Equal(entity.NotificationTokensSent, sent.Kind)
	rq.Equal(value.Identity("alice"), sent.Recipient)
	rq.EqualValues(10, sent.Tokens)

	redeem := <-events
	rq.Equal(entity.NotificationTokensRedeem, redeem.Kind)
	rq.EqualValues(10, redeem.Price)
	rq.Equal("Book", redeem.Description)
}

func TestNotificationsDroppedWhenFull(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	// Nobody drains the channel; every publish past the first must be
	// dropped without blocking the operation.
	events := make(chan entity.Notification, 1)
	service := token.NewService(admin, 10).WithNotifications(events)

	for i := uint64(1); i <= 5; i++ {
		rq.NoError(service.SetBasisRate(ctx, admin, i))
	}

	rq.EqualValues(5, service.BasisRate())
	rq.Len(events, 1)
}

type archiveRecorder struct {
	records []entity.ArchivedOrder
	err     error
}

func (a *archiveRecorder) Record(_ context.Context, order entity.Order, fulfilledAt time.Time) error {
	if a.err != nil {
		return a.err
	}

	a.records = append(a.records, entity.ArchivedOrder{Order: order, FulfilledAt: fulfilledAt})

	return nil
}

func (a *archiveRecorder) ListRecent(_ context.Context, limit int) ([]entity.ArchivedOrder, error) {
	if a.err != nil {
		return nil, a.err
	}

	if limit > len(a.records) {
		limit = len(a.records)
	}

	return a.records[:limit], nil
}

func TestFinishOrderArchivesRemoved(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	archive := &archiveRecorder{}
	service := token.NewService(admin, 10).WithArchive(archive)

	_, err := service.SendTokens(ctx, admin, "alice", 100)
	rq.NoError(err)
	rq.NoError(service.AddGift(ctx, admin, 1, entity.Gift{Price: 10, Description: "Book"}))

	order, err := service.RedeemTokens(ctx, "alice", 1)
	rq.NoError(err)

	rq.NoError(service.FinishOrder(ctx, admin, order.ID))
	rq.Len(archive.records, 1)
	rq.Equal(order.ID, archive.records[0].ID)

	// A no-op removal records nothing.
	rq.NoError(service.FinishOrder(ctx, admin, "no-such-order"))
	rq.Len(archive.records, 1)

	archived, err := service.ArchivedOrders(ctx, admin, 10)
	rq.NoError(err)
	rq.Len(archived, 1)
}

func TestFinishOrderArchiveFailureIsNotFatal(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	archive := &archiveRecorder{err: errors.New("archive down")}
	service := token.NewService(admin, 10).WithArchive(archive)

	_, err := service.SendTokens(ctx, admin, "alice", 100)
	rq.NoError(err)
	rq.NoError(service.AddGift(ctx, admin, 1, entity.Gift{Price: 10, Description: "Book"}))

	order, err := service.RedeemTokens(ctx, "alice", 1)
	rq.NoError(err)

	// The order still leaves the pending ledger.
	rq.NoError(service.FinishOrder(ctx, admin, order.ID))

	orders, err := service.ViewOrders(ctx, admin)
	rq.NoError(err)
	rq.Empty(orders)
}

func TestArchivedOrdersWithoutArchive(t *testing.T) {
	ctx := context.Background()

	service := token.NewService(admin, 10)

	_, err := service.ArchivedOrders(ctx, admin, 10)
	requireCode(t, err, errcodes.ArchiveDisabled)
}
