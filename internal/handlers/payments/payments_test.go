package payments

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/monopolygame/monopolybot/internal/service/depositservice"
	"github.com/monopolygame/monopolybot/pkg/payment"
)

func TestIPN(t *testing.T) {
	ctrl := gomock.NewController(t)
	deposits := NewMockService(ctrl)
	handler := New(deposits)

	body := []byte(`{"payment_id":"pay-1","payment_status":"finished","order_id":"order-1"}`)

	tests := []struct {
		name         string
		signature    string
		body         []byte
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Valid notification",
			signature: "sig",
			body:      body,
			prepareMock: func() {
				deposits.EXPECT().HandleIPN(gomock.Any(), body, "sig").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing signature header",
			signature:    "",
			body:         body,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Empty body",
			signature:    "sig",
			body:         nil,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Invalid signature",
			signature: "bad",
			body:      body,
			prepareMock: func() {
				deposits.EXPECT().HandleIPN(gomock.Any(), body, "bad").Return(payment.ErrInvalidSignature)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:      "Invalid payload",
			signature: "sig",
			body:      body,
			prepareMock: func() {
				deposits.EXPECT().HandleIPN(gomock.Any(), body, "sig").Return(depositservice.ErrInvalidPayload)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Unknown order",
			signature: "sig",
			body:      body,
			prepareMock: func() {
				deposits.EXPECT().HandleIPN(gomock.Any(), body, "sig").Return(depositservice.ErrUnknownDeposit)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Amount mismatch",
			signature: "sig",
			body:      body,
			prepareMock: func() {
				deposits.EXPECT().HandleIPN(gomock.Any(), body, "sig").Return(depositservice.ErrAmountMismatch)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Underpayment",
			signature: "sig",
			body:      body,
			prepareMock: func() {
				deposits.EXPECT().HandleIPN(gomock.Any(), body, "sig").Return(depositservice.ErrUnderpaid)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Unexpected failure",
			signature: "sig",
			body:      body,
			prepareMock: func() {
				deposits.EXPECT().HandleIPN(gomock.Any(), body, "sig").Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/payments/ipn", bytes.NewReader(tt.body))
			if tt.signature != "" {
				req.Header.Set(SignatureHeader, tt.signature)
			}
			rec := httptest.NewRecorder()

			handler.IPN(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
