package withdraw_state_repo

import (
	"sync"
	"time"

	"github.com/techted89/redtedcasino/internal/model"
)

// StateRepo tracks in-flight withdrawals, settled idempotency keys and
// per-wallet cooldown stamps. All three live under one mutex so that the
// check sequence in Admit cannot race with a concurrent insert.
//
// The state is process-local: with multiple instances the uniqueness and
// cooldown guarantees only hold per instance, and they reset on restart.
type StateRepo struct {
	mtx sync.Mutex
	now func() time.Time

	cooldown    time.Duration
	pending     map[string]struct{}
	processed   map[string]struct{}
	lastSettled map[string]time.Time
}

func NewWithdrawStateRepository(cooldown time.Duration) *StateRepo {
	return &StateRepo{
		now:         time.Now,
		cooldown:    cooldown,
		pending:     make(map[string]struct{}),
		processed:   make(map[string]struct{}),
		lastSettled: make(map[string]time.Time),
	}
}

// Admit decides whether a withdrawal attempt may proceed. Checks run in
// order and short-circuit: processed request, cooldown window, wallet
// already pending. On admission the wallet joins the pending set; the
// caller owns it until Release.
func (r *StateRepo) Admit(wallet, requestID string) model.Admission {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.processed[requestID]; ok {
		return model.RejectedDuplicate
	}

	if last, ok := r.lastSettled[wallet]; ok && r.now().Sub(last) < r.cooldown {
		return model.RejectedCooldown
	}

	if _, ok := r.pending[wallet]; ok {
		return model.RejectedConcurrent
	}

	r.pending[wallet] = struct{}{}
	return model.Admitted
}

// Release removes the wallet from the pending set. It must run on every
// exit path of a withdrawal attempt; releasing an absent wallet is a no-op.
func (r *StateRepo) Release(wallet string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.pending, wallet)
}

// MarkProcessed consumes the idempotency key after a confirmed settlement.
func (r *StateRepo) MarkProcessed(requestID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.processed[requestID] = struct{}{}
}

// StampCooldown records the settlement time for the wallet.
func (r *StateRepo) StampCooldown(wallet string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.lastSettled[wallet] = r.now()
}
