package withdraw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/model"
)

type fakeWithdrawService struct {
	result *model.WithdrawalResult
	err    error
}

func (s *fakeWithdrawService) Withdraw(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func doWithdraw(t *testing.T, service *fakeWithdrawService, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(service)
	req := httptest.NewRequest(http.MethodPost, "/api/withdraw", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Withdraw(rec, req)
	return rec
}

func TestWithdrawHandlerSuccess(t *testing.T) {
	service := &fakeWithdrawService{result: &model.WithdrawalResult{
		Amount:    0.25,
		Signature: "sig-abc",
	}}

	rec := doWithdraw(t, service, `{"wallet":"9xQeWv","requestId":"req-1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res struct {
		Success   bool    `json:"success"`
		Amount    float64 `json:"amount"`
		Signature string  `json:"signature"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Success || res.Amount != 0.25 || res.Signature != "sig-abc" {
		t.Errorf("response = %+v", res)
	}
}

func TestWithdrawHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing wallet",
			err:        fmt.Errorf("%w: wallet", apperr.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantError:  "Wallet address is required",
		},
		{
			name:       "unknown player",
			err:        fmt.Errorf("%w: wallet", apperr.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "Player not found",
		},
		{
			name:       "empty balance",
			err:        fmt.Errorf("%w: no coins", apperr.ErrInsufficientFunds),
			wantStatus: http.StatusBadRequest,
			wantError:  "No coins to withdraw",
		},
		{
			name:       "duplicate",
			err:        fmt.Errorf("%w: req", apperr.ErrDuplicateWithdrawal),
			wantStatus: http.StatusConflict,
			wantError:  "This withdrawal has already been processed",
		},
		{
			name:       "cooldown",
			err:        fmt.Errorf("%w: wallet", apperr.ErrCooldownActive),
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Please wait 1 minute before making another withdrawal",
		},
		{
			name:       "in flight",
			err:        fmt.Errorf("%w: wallet", apperr.ErrWithdrawalInFlight),
			wantStatus: http.StatusConflict,
			wantError:  "A withdrawal is already in progress",
		},
		{
			name:       "transfer failed",
			err:        fmt.Errorf("%w: rpc", apperr.ErrTransferFailed),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Transfer failed. It is safe to retry.",
		},
		{
			name:       "confirmation unknown",
			err:        fmt.Errorf("%w: sig", apperr.ErrTransferUnconfirmed),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Transfer not yet confirmed; status unknown. Do not resubmit this request blindly.",
		},
		{
			name:       "internal detail never leaks",
			err:        fmt.Errorf("pg pool exhausted"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error during withdrawal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doWithdraw(t, &fakeWithdrawService{err: tc.err}, `{"wallet":"9xQeWv"}`)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}

			var res struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if res.Success {
				t.Error("success = true on an error response")
			}
			if res.Error != tc.wantError {
				t.Errorf("error = %q, want %q", res.Error, tc.wantError)
			}
		})
	}
}
