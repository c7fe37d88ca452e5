package withdraw

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/model"
)

const (
	// One in-game coin pays out 0.0001 SOL; a lamport is 1e-9 SOL.
	lamportsPerCoin = 100_000
	solPerCoin      = 0.0001
)

// Withdraw cashes out a player's full coin balance to their wallet.
//
// Ordering matters: the transfer is built, broadcast, and confirmed before
// the coin ledger is zeroed, so a crash mid-flight can only leave the house
// owing the player, never the player shorted. Only one withdrawal per
// wallet may be in flight at a time.
func (s *serv) Withdraw(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalResult, error) {
	if req.Wallet == "" {
		return nil, fmt.Errorf("%w: wallet address is required", apperr.ErrValidation)
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	switch s.stateRepo.Admit(req.Wallet, requestID) {
	case model.RejectedDuplicate:
		return nil, fmt.Errorf("%w: request %s", apperr.ErrDuplicateWithdrawal, requestID)
	case model.RejectedCooldown:
		return nil, fmt.Errorf("%w: wallet %s", apperr.ErrCooldownActive, req.Wallet)
	case model.RejectedConcurrent:
		return nil, fmt.Errorf("%w: wallet %s", apperr.ErrWithdrawalInFlight, req.Wallet)
	}
	defer s.stateRepo.Release(req.Wallet)

	user, err := s.userRepo.GetUserByWallet(ctx, req.Wallet)
	if err != nil {
		return nil, err
	}

	coins := user.Balance
	if coins <= 0 {
		return nil, fmt.Errorf("%w: no coins to withdraw", apperr.ErrInsufficientFunds)
	}

	lamports := coins * lamportsPerCoin

	transaction, err := s.transfer.BuildTransfer(ctx, s.solanaCfg.TreasuryWallet(), req.Wallet, lamports)
	if err != nil {
		return nil, fmt.Errorf("%w: build: %v", apperr.ErrTransferFailed, err)
	}

	signature, err := s.transfer.Broadcast(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("%w: broadcast: %v", apperr.ErrTransferFailed, err)
	}

	confirmCtx, cancel := context.WithTimeout(ctx, s.solanaCfg.ConfirmTimeout())
	defer cancel()

	if err := s.transfer.Confirm(confirmCtx, signature); err != nil {
		// Past broadcast, only a definite gateway rejection means the
		// transfer failed. An interrupted wait, whether by the deadline or
		// by cancellation, means it may still land on chain; the request
		// stays unconsumed so the operator can reconcile before any retry.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("%w: signature %s", apperr.ErrTransferUnconfirmed, signature)
		}
		return nil, fmt.Errorf("%w: confirm: %v", apperr.ErrTransferFailed, err)
	}

	// The SOL has moved. Ledger or state bookkeeping failures past this
	// point must not turn a completed payout into a player-facing error.
	if err := s.userRepo.SetBalance(ctx, user.ID, 0); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"wallet":    req.Wallet,
			"signature": signature,
			"coins":     coins,
		}).Error("paid out but failed to zero coin balance, manual reconciliation required")
	}

	s.stateRepo.StampCooldown(req.Wallet)
	s.stateRepo.MarkProcessed(requestID)

	return &model.WithdrawalResult{
		Amount:    float64(coins) * solPerCoin,
		Signature: signature,
	}, nil
}
