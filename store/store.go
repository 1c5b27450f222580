// Package store is the durable state machine for bridge operations and the
// single source of truth consulted for idempotency before any release is
// attempted. Records are append-only: a transaction is never deleted, only
// moved along PENDING -> LOCKED -> RELEASING -> {COMPLETED, FAILED}.
package store

import (
	"fmt"
	"time"

	"gotokenbridge/types"
)

// Notifier receives a callback after every successful update, addressed to
// the transaction's counterparty. Consumed by the pub/sub collaborator.
type Notifier interface {
	OnTransactionUpdated(tx *types.BridgeTransaction)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) OnTransactionUpdated(*types.BridgeTransaction) {}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Status       *types.Status
	SourceTxHash *string
	TargetTxHash *string
	ReleaseHash  *string
	TargetToken  *string
	ErrorMessage *string
}

// Store is the transaction store contract shared by the Redis and in-memory
// implementations.
type Store interface {
	Create(tx *types.BridgeTransaction) (*types.BridgeTransaction, error)
	Get(id string) (*types.BridgeTransaction, error)
	Update(id string, p Patch) (*types.BridgeTransaction, error)
	// FindByHash looks a transaction up by either its lock or release hash.
	FindByHash(hash string) ([]*types.BridgeTransaction, error)
	FindByStatus(status types.Status) ([]*types.BridgeTransaction, error)
	// AcquireHashLease is a conditional insert-if-absent on the correlation
	// hash. It returns false when another flow already holds the lease; the
	// caller must not proceed to any on-chain write in that case.
	AcquireHashLease(hash string, ttl time.Duration) (bool, error)
	ReleaseHashLease(hash string) error
}

// Cursor persists the last block scanned per chain, used by the watcher's
// backfill pass to close outage gaps.
type Cursor interface {
	GetScannedBlock(chainID int64) (int64, error)
	SetScannedBlock(chainID int64, height int64) error
}

// applyPatch mutates tx in place, enforcing the state machine's invariants:
// monotonic status transitions and write-once source/target hashes. Error
// messages accumulate rather than overwrite.
func applyPatch(tx *types.BridgeTransaction, p Patch) error {
	if p.Status != nil && !tx.Status.CanTransition(*p.Status) {
		return fmt.Errorf("%w: %s -> %s", types.ErrInvalidTransition, tx.Status, *p.Status)
	}
	if p.SourceTxHash != nil {
		if tx.SourceTxHash != "" && tx.SourceTxHash != *p.SourceTxHash {
			return fmt.Errorf("%w: sourceTxHash", types.ErrHashAlreadySet)
		}
		tx.SourceTxHash = *p.SourceTxHash
	}
	if p.TargetTxHash != nil {
		if tx.TargetTxHash != "" && tx.TargetTxHash != *p.TargetTxHash {
			return fmt.Errorf("%w: targetTxHash", types.ErrHashAlreadySet)
		}
		tx.TargetTxHash = *p.TargetTxHash
	}
	if p.ReleaseHash != nil {
		tx.ReleaseHash = *p.ReleaseHash
	}
	if p.TargetToken != nil {
		tx.TargetToken = *p.TargetToken
	}
	if p.ErrorMessage != nil {
		if tx.ErrorMessage == "" {
			tx.ErrorMessage = *p.ErrorMessage
		} else {
			tx.ErrorMessage += "; " + *p.ErrorMessage
		}
	}
	if p.Status != nil {
		tx.Status = *p.Status
	}
	tx.UpdatedAt = time.Now().Unix()
	return nil
}

// StatusPtr is a convenience for building patches.
func StatusPtr(s types.Status) *types.Status { return &s }

// StringPtr is a convenience for building patches.
func StringPtr(s string) *string { return &s }
