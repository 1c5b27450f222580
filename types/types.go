package types

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Bridge operation lifecycle. Transitions are monotonic:
// PENDING -> LOCKED -> RELEASING -> COMPLETED, with FAILED reachable
// from any non-terminal status.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusLocked    Status = "LOCKED"
	StatusReleasing Status = "RELEASING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// AllStatuses in lifecycle order, used for status-set iteration.
var AllStatuses = []Status{StatusPending, StatusLocked, StatusReleasing, StatusCompleted, StatusFailed}

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether s -> next is a legal move of the state
// machine. Same-status writes are allowed (field-only updates).
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return !s.Terminal()
	}
	switch s {
	case StatusPending:
		return next == StatusLocked || next == StatusFailed
	case StatusLocked:
		return next == StatusReleasing || next == StatusFailed
	case StatusReleasing:
		return next == StatusCompleted || next == StatusFailed
	}
	return false
}

// BridgeTransaction is the durable record of one bridge operation.
// Amounts are kept as decimal strings in the token's smallest unit so the
// record survives JSON round-trips without precision loss.
type BridgeTransaction struct {
	ID            string `json:"id"`
	SourceChainID int64  `json:"sourceChainId"`
	TargetChainID int64  `json:"targetChainId"`
	SourceToken   string `json:"sourceToken"`
	TargetToken   string `json:"targetToken"`
	Amount        string `json:"amount"`
	Sender        string `json:"sender"`
	Recipient     string `json:"recipient"`
	Nonce         uint64 `json:"nonce"`
	LockHash      string `json:"lockHash"`
	ReleaseHash   string `json:"releaseHash"`
	SourceTxHash  string `json:"sourceTxHash"`
	TargetTxHash  string `json:"targetTxHash"`
	Status        Status `json:"status"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

// AmountBig parses the amount field. Returns false on a corrupt record.
func (t *BridgeTransaction) AmountBig() (*big.Int, bool) {
	return new(big.Int).SetString(t.Amount, 10)
}

// Age is how long the operation has been in flight.
func (t *BridgeTransaction) Age(now time.Time) time.Duration {
	return now.Sub(time.Unix(t.CreatedAt, 0))
}

// LockEvent is a decoded bridge-contract lock occurrence. It is ephemeral;
// it drives a BridgeTransaction transition and is not persisted itself.
type LockEvent struct {
	SourceToken   common.Address
	TargetToken   common.Address
	Amount        *big.Int
	Sender        common.Address
	Recipient     common.Address
	SourceChainID int64
	TargetChainID int64
	LockHash      common.Hash
	TxHash        common.Hash
}

// ReleaseEvent is a decoded release occurrence on a target chain.
type ReleaseEvent struct {
	Token       common.Address
	Recipient   common.Address
	Amount      *big.Int
	ReleaseHash common.Hash
	TxHash      common.Hash
}

// FeeEvent is a decoded platform-fee deduction.
type FeeEvent struct {
	Token  common.Address
	Fee    *big.Int
	TxHash common.Hash
}

// TokenConfig describes one supported token on one chain.
type TokenConfig struct {
	Symbol   string
	Address  string
	Decimals int
}
