package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"charity_token/internal/domain"
	"charity_token/pkg/contextx"
	"charity_token/pkg/errcodes"
	"charity_token/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Status codes for ledger error codes. Every ledger failure is fatal to the
// attempted operation; the body carries the stable code for the caller.
//
//nolint:gochecknoglobals
var ledgerStatusCodes = map[failure.ErrorCode]int{
	errcodes.Unauthorized:        http.StatusForbidden,
	errcodes.InsufficientBalance: http.StatusUnprocessableEntity,
	errcodes.UnknownGift:         http.StatusNotFound,
	errcodes.DivisionByZero:      http.StatusUnprocessableEntity,
	errcodes.Overflow:            http.StatusUnprocessableEntity,
	errcodes.MissingAccount:      http.StatusUnauthorized,
	errcodes.ArchiveDisabled:     http.StatusNotImplemented,
	errcodes.NotFound:            http.StatusNotFound,
	errcodes.ValidationError:     http.StatusBadRequest,
	errcodes.InvalidGiftID:       http.StatusBadRequest,
	errcodes.InvalidOrderID:      http.StatusBadRequest,
	errcodes.InvalidAccount:      http.StatusBadRequest,
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		logger(ctx).Error("error", logx.Error(err), logx.Code(appErr.Code))

		status, ok := ledgerStatusCodes[appErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}

		JSON(ctx, w, status, errorResponse{
			Code:      appErr.Code.String(),
			Message:   appErr.Message,
			SupportID: supportID(ctx),
		})

		return
	}

	logger(ctx).Error("error", logx.Error(err), logx.Code(failure.Code(err)))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsForbiddenError(err):
		response.WithDefaultCode(errcodes.Forbidden)
		JSON(ctx, w, http.StatusForbidden, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
