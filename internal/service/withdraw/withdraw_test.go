package withdraw

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/internal/repository/withdraw_state_repo"
)

const testWallet = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"

type fakeUserRepo struct {
	user       *model.User
	setBalance []int64
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	return 0, errors.New("not supported")
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, apperr.ErrNotFound
}

func (r *fakeUserRepo) GetUserByWallet(ctx context.Context, wallet string) (*model.User, error) {
	if r.user == nil || r.user.Wallet != wallet {
		return nil, fmt.Errorf("%w: wallet %s", apperr.ErrNotFound, wallet)
	}
	return r.user, nil
}

func (r *fakeUserRepo) GetBalance(ctx context.Context, id int64) (int64, error) {
	return r.user.Balance, nil
}

func (r *fakeUserRepo) AdjustBalance(ctx context.Context, id int64, delta int64) (int64, error) {
	r.user.Balance += delta
	return r.user.Balance, nil
}

func (r *fakeUserRepo) SetBalance(ctx context.Context, id int64, value int64) error {
	r.user.Balance = value
	r.setBalance = append(r.setBalance, value)
	return nil
}

type fakeTransfer struct {
	buildErr     error
	broadcastErr error
	confirmErr   error
	confirmHangs bool

	builtLamports int64
	builtTo       string
	broadcasts    int
}

func (c *fakeTransfer) BuildTransfer(ctx context.Context, from, to string, lamports int64) (string, error) {
	if c.buildErr != nil {
		return "", c.buildErr
	}
	c.builtTo = to
	c.builtLamports = lamports
	return "signed-tx", nil
}

func (c *fakeTransfer) Broadcast(ctx context.Context, transaction string) (string, error) {
	if c.broadcastErr != nil {
		return "", c.broadcastErr
	}
	c.broadcasts++
	return "sig-abc", nil
}

func (c *fakeTransfer) Confirm(ctx context.Context, signature string) error {
	if c.confirmHangs {
		<-ctx.Done()
		return fmt.Errorf("confirmation of %s interrupted: %w", signature, ctx.Err())
	}
	return c.confirmErr
}

type fakeSolanaCfg struct {
	timeout time.Duration
}

func (c fakeSolanaCfg) GatewayURL() string            { return "http://gateway.test" }
func (c fakeSolanaCfg) TreasuryWallet() string        { return "treasury" }
func (c fakeSolanaCfg) ConfirmTimeout() time.Duration { return c.timeout }

func newTestService(user *model.User, transfer *fakeTransfer) (*serv, *fakeUserRepo) {
	userRepo := &fakeUserRepo{user: user}
	s := NewWithdrawService(
		userRepo,
		withdraw_state_repo.NewWithdrawStateRepository(time.Minute),
		transfer,
		fakeSolanaCfg{timeout: time.Second},
	).(*serv)
	return s, userRepo
}

func TestWithdrawRequiresWallet(t *testing.T) {
	s, _ := newTestService(nil, &fakeTransfer{})

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestWithdrawUnknownWallet(t *testing.T) {
	s, _ := newTestService(nil, &fakeTransfer{})

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	// The guard must have been released.
	if got := s.stateRepo.Admit(testWallet, "next"); got != model.Admitted {
		t.Errorf("guard still held after failure: %v", got)
	}
}

func TestWithdrawZeroBalance(t *testing.T) {
	transfer := &fakeTransfer{}
	s, _ := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 0}, transfer)

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet})
	if !errors.Is(err, apperr.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient-funds error, got %v", err)
	}
	if transfer.broadcasts != 0 {
		t.Error("transfer service contacted for an empty balance")
	}
}

func TestWithdrawSuccess(t *testing.T) {
	transfer := &fakeTransfer{}
	s, userRepo := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 2500}, transfer)

	res, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"})
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}

	// 2500 coins at 0.0001 SOL per coin.
	if res.Amount != 0.25 {
		t.Errorf("Amount = %v SOL, want 0.25", res.Amount)
	}
	if res.Signature != "sig-abc" {
		t.Errorf("Signature = %q, want sig-abc", res.Signature)
	}
	if transfer.builtTo != testWallet {
		t.Errorf("transfer addressed to %q, want %q", transfer.builtTo, testWallet)
	}
	if transfer.builtLamports != 250_000_000 {
		t.Errorf("transfer of %d lamports, want 250000000", transfer.builtLamports)
	}

	if len(userRepo.setBalance) != 1 || userRepo.setBalance[0] != 0 {
		t.Errorf("ledger writes = %v, want a single write of 0", userRepo.setBalance)
	}
}

func TestWithdrawReplayIsRejected(t *testing.T) {
	transfer := &fakeTransfer{}
	s, userRepo := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 100}, transfer)

	if _, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"}); err != nil {
		t.Fatalf("first Withdraw: %v", err)
	}

	userRepo.user.Balance = 100
	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"})
	if !errors.Is(err, apperr.ErrDuplicateWithdrawal) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}

	if transfer.broadcasts != 1 {
		t.Errorf("broadcasts = %d, the replay must not reach the chain", transfer.broadcasts)
	}
	if len(userRepo.setBalance) != 1 {
		t.Errorf("ledger writes = %v, the replay must not touch the ledger", userRepo.setBalance)
	}
}

func TestWithdrawCooldownAfterSettlement(t *testing.T) {
	s, userRepo := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 100}, &fakeTransfer{})

	if _, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"}); err != nil {
		t.Fatalf("first Withdraw: %v", err)
	}

	userRepo.user.Balance = 100
	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-2"})
	if !errors.Is(err, apperr.ErrCooldownActive) {
		t.Errorf("expected cooldown rejection, got %v", err)
	}
}

func TestWithdrawBuildFailureIsRetryable(t *testing.T) {
	transfer := &fakeTransfer{buildErr: errors.New("gateway down")}
	s, userRepo := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 100}, transfer)

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"})
	if !errors.Is(err, apperr.ErrTransferFailed) {
		t.Fatalf("expected transfer-failed error, got %v", err)
	}

	if userRepo.user.Balance != 100 {
		t.Errorf("balance = %d after a failed transfer, want 100", userRepo.user.Balance)
	}

	// Same key, guard released, key unconsumed: the retry goes through.
	transfer.buildErr = nil
	if _, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"}); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestWithdrawBroadcastFailure(t *testing.T) {
	transfer := &fakeTransfer{broadcastErr: errors.New("rpc rejected")}
	s, userRepo := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 100}, transfer)

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"})
	if !errors.Is(err, apperr.ErrTransferFailed) {
		t.Fatalf("expected transfer-failed error, got %v", err)
	}
	if len(userRepo.setBalance) != 0 {
		t.Errorf("ledger touched after a failed broadcast: %v", userRepo.setBalance)
	}
}

func TestWithdrawConfirmationTimeout(t *testing.T) {
	transfer := &fakeTransfer{confirmHangs: true}
	userRepo := &fakeUserRepo{user: &model.User{ID: 1, Wallet: testWallet, Balance: 100}}
	s := NewWithdrawService(
		userRepo,
		withdraw_state_repo.NewWithdrawStateRepository(time.Minute),
		transfer,
		fakeSolanaCfg{timeout: 20 * time.Millisecond},
	).(*serv)

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"})
	if !errors.Is(err, apperr.ErrTransferUnconfirmed) {
		t.Fatalf("expected unconfirmed error, got %v", err)
	}

	// Outcome unknown: ledger untouched, key unconsumed, guard released.
	if userRepo.user.Balance != 100 {
		t.Errorf("balance = %d, want untouched 100", userRepo.user.Balance)
	}
	if got := s.stateRepo.Admit(testWallet, "req-1"); got != model.Admitted {
		t.Errorf("Admit after timeout = %v, want Admitted", got)
	}
}

// A cancelled confirmation wait is just as indeterminate as a timed-out
// one: the transaction was already broadcast and may still land.
func TestWithdrawConfirmCancellationIsUnconfirmed(t *testing.T) {
	transfer := &fakeTransfer{confirmErr: fmt.Errorf("confirmation interrupted: %w", context.Canceled)}
	s, userRepo := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 100}, transfer)

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"})
	if !errors.Is(err, apperr.ErrTransferUnconfirmed) {
		t.Fatalf("expected unconfirmed error, got %v", err)
	}
	if errors.Is(err, apperr.ErrTransferFailed) {
		t.Error("a possibly-landed transfer must not be reported as safe to retry")
	}
	if userRepo.user.Balance != 100 {
		t.Errorf("balance = %d, want untouched 100", userRepo.user.Balance)
	}
}

// A definite gateway rejection of the transaction is a failed transfer:
// the ledger is untouched and a retry is safe.
func TestWithdrawConfirmRejectionIsFailed(t *testing.T) {
	transfer := &fakeTransfer{confirmErr: errors.New("blockhash expired")}
	s, userRepo := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 100}, transfer)

	_, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet, RequestID: "req-1"})
	if !errors.Is(err, apperr.ErrTransferFailed) {
		t.Fatalf("expected transfer-failed error, got %v", err)
	}
	if len(userRepo.setBalance) != 0 {
		t.Errorf("ledger touched after a rejected transfer: %v", userRepo.setBalance)
	}
	if got := s.stateRepo.Admit(testWallet, "req-1"); got != model.Admitted {
		t.Errorf("Admit after rejection = %v, want Admitted", got)
	}
}

func TestWithdrawGeneratesRequestID(t *testing.T) {
	s, _ := newTestService(&model.User{ID: 1, Wallet: testWallet, Balance: 100}, &fakeTransfer{})

	if _, err := s.Withdraw(context.Background(), model.WithdrawalRequest{Wallet: testWallet}); err != nil {
		t.Fatalf("Withdraw without requestId: %v", err)
	}
}
