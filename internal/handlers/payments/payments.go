package payments

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/monopolygame/monopolybot/internal/service/depositservice"
	"github.com/monopolygame/monopolybot/pkg/payment"
	"github.com/monopolygame/monopolybot/pkg/utils"
)

// SignatureHeader carries the provider's HMAC over the payload.
const SignatureHeader = "x-nowpayments-sig"

type Service interface {
	HandleIPN(ctx context.Context, body []byte, signature string) error
}

type PaymentHandler struct {
	deposits Service
}

func New(deposits Service) *PaymentHandler {
	return &PaymentHandler{
		deposits: deposits,
	}
}

// IPN ingests the provider's asynchronous payment notification. Validation
// failures map to client errors; everything unexpected becomes a generic
// 500 so the provider retries later.
func (h *PaymentHandler) IPN(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing signature header")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.deposits.HandleIPN(r.Context(), body, signature)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusForbidden, "invalid signature")
		case errors.Is(err, depositservice.ErrInvalidPayload):
			utils.RespondWithError(w, http.StatusBadRequest, "invalid payload")
		case errors.Is(err, depositservice.ErrUnknownDeposit):
			utils.RespondWithError(w, http.StatusNotFound, "unknown order")
		case errors.Is(err, depositservice.ErrAmountMismatch), errors.Is(err, depositservice.ErrUnderpaid):
			utils.RespondWithError(w, http.StatusBadRequest, "amount verification failed")
		default:
			zap.L().Error("ipn processing failed", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
