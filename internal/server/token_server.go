package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"charity_token/internal/domain"
	"charity_token/internal/domain/entity"
	"charity_token/internal/domain/value"
	"charity_token/pkg/contextx"
	"charity_token/pkg/errcodes"
	"charity_token/pkg/httpx/reply"
	"charity_token/pkg/httpx/req"
	"charity_token/pkg/rest"
)

const archiveListLimit = 100

type tokenService interface {
	SetBasisRate(ctx context.Context, caller value.Identity, rate uint64) error
	SendTokens(ctx context.Context, caller, to value.Identity, receivedAmount uint64) (uint64, error)
	RedeemTokens(ctx context.Context, caller value.Identity, giftID int64) (entity.Order, error)
	CheckBalance(ctx context.Context, caller value.Identity) uint64
	AddGift(ctx context.Context, caller value.Identity, giftID int64, gift entity.Gift) error
	RemoveGift(ctx context.Context, caller value.Identity, giftID int64) error
	ViewOrders(ctx context.Context, caller value.Identity) ([]entity.Order, error)
	FindOrderID(ctx context.Context, caller, recipient value.Identity, description string) (value.OrderID, bool, error)
	FinishOrder(ctx context.Context, caller value.Identity, id value.OrderID) error
	ArchivedOrders(ctx context.Context, caller value.Identity, limit int) ([]entity.ArchivedOrder, error)
}

type TokenServer struct {
	tokenService tokenService
}

func NewTokenServer(tokenService tokenService) TokenServer {
	return TokenServer{
		tokenService: tokenService,
	}
}

func (s TokenServer) getV1Orders(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	orders, err := s.tokenService.ViewOrders(ctx, caller)
	if err != nil {
		return fmt.Errorf("tokenService.ViewOrders: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTOrders(orders))

	return nil
}

func (s TokenServer) getV1OrderID(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	recipient := r.URL.Query().Get("recipient")
	description := r.URL.Query().Get("description")

	if recipient == "" || description == "" {
		return domain.NewError(errcodes.ValidationError, "recipient and description are required")
	}

	id, found, err := s.tokenService.FindOrderID(ctx, caller, value.Identity(recipient), description)
	if err != nil {
		return fmt.Errorf("tokenService.FindOrderID: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.OrderID{
		OrderID: id.String(),
		Found:   found,
	})

	return nil
}

func (s TokenServer) getV1OrdersArchive(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	orders, err := s.tokenService.ArchivedOrders(ctx, caller, archiveListLimit)
	if err != nil {
		return fmt.Errorf("tokenService.ArchivedOrders: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTArchivedOrders(orders))

	return nil
}

func (s TokenServer) deleteV1Order(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	id := r.PathValue("id")
	if id == "" {
		return domain.NewError(errcodes.InvalidOrderID, "empty order id")
	}

	// Finishing an unknown order is a no-op, not an error.
	if err := s.tokenService.FinishOrder(ctx, caller, value.OrderID(id)); err != nil {
		return fmt.Errorf("tokenService.FinishOrder: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s TokenServer) putV1Rate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	var request rest.SetRate

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := s.tokenService.SetBasisRate(ctx, caller, *request.Rate); err != nil {
		return fmt.Errorf("tokenService.SetBasisRate: %w", err)
	}

	reply.OK(w)

	return nil
}

func (s TokenServer) putV1Gift(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	giftID, err := giftIDFromPath(r)
	if err != nil {
		return err
	}

	var request rest.Gift

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := s.tokenService.AddGift(ctx, caller, giftID, newDomainGift(request)); err != nil {
		return fmt.Errorf("tokenService.AddGift: %w", err)
	}

	reply.OK(w)

	return nil
}

func (s TokenServer) deleteV1Gift(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	giftID, err := giftIDFromPath(r)
	if err != nil {
		return err
	}

	if err := s.tokenService.RemoveGift(ctx, caller, giftID); err != nil {
		return fmt.Errorf("tokenService.RemoveGift: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s TokenServer) postV1TokensSend(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	var request rest.SendTokens

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	tokens, err := s.tokenService.SendTokens(ctx, caller, value.Identity(request.To), request.ReceivedAmount)
	if err != nil {
		return fmt.Errorf("tokenService.SendTokens: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.TokensSent{Tokens: tokens})

	return nil
}

func (s TokenServer) postV1TokensRedeem(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	var request rest.RedeemTokens

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	order, err := s.tokenService.RedeemTokens(ctx, caller, *request.GiftID)
	if err != nil {
		return fmt.Errorf("tokenService.RedeemTokens: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTOrder(order))

	return nil
}

func (s TokenServer) getV1Balance(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	caller, err := callerIdentity(ctx)
	if err != nil {
		return err
	}

	balance := s.tokenService.CheckBalance(ctx, caller)

	reply.JSON(ctx, w, http.StatusOK, rest.Balance{
		Account: caller.String(),
		Balance: balance,
	})

	return nil
}

// callerIdentity resolves the environment-supplied caller identity. Every
// endpoint acts on behalf of some account, so an anonymous request is
// rejected before it reaches the ledger.
func callerIdentity(ctx context.Context) (value.Identity, error) {
	accountID, err := contextx.AccountIDFromContext(ctx)
	if err != nil {
		return "", domain.NewError(errcodes.MissingAccount, "missing X-Account-Id header")
	}

	return value.Identity(accountID), nil
}

func giftIDFromPath(r *http.Request) (int64, error) {
	giftID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InvalidGiftID, "gift id is not an integer")
	}

	return giftID, nil
}
