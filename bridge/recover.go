package bridge

import (
	"context"
	"time"

	"gotokenbridge/store"
	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// recoveryInterval paces the sweep for stuck records.
const recoveryInterval = 60 * time.Second

// minRecoveryAge keeps the sweep away from records a live event flow is
// still working on.
const minRecoveryAge = 3 * time.Minute

// RunRecovery periodically re-drives LOCKED and RELEASING records whose
// flow died before reaching a terminal status. Restart safety comes from
// the same mechanisms as the live path: the per-hash lease, the persisted
// release hash and the contract's processed-hash register.
func (o *Orchestrator) RunRecovery(ctx context.Context) {
	logger := o.logger.Named("recovery")
	ticker := time.NewTicker(recoveryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.recoverOnce(ctx, logger)
		}
	}
}

func (o *Orchestrator) recoverOnce(ctx context.Context, logger *zap.Logger) {
	now := time.Now()
	for _, status := range []types.Status{types.StatusLocked, types.StatusReleasing} {
		recs, err := o.store.FindByStatus(status)
		if err != nil {
			logger.Error("status scan failed", zap.String("status", string(status)), zap.Error(err))
			continue
		}
		for _, rec := range recs {
			if rec.Age(now) < minRecoveryAge {
				continue
			}
			if err := o.recoverRecord(ctx, rec); err != nil {
				logger.Warn("recovery attempt failed",
					zap.String("id", rec.ID),
					zap.String("status", string(rec.Status)),
					zap.Error(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}
}

// recoverRecord re-runs the release path of one stuck record under the
// hash lease, mirroring what HandleObservedLock would have done had the
// process survived.
func (o *Orchestrator) recoverRecord(ctx context.Context, rec *types.BridgeTransaction) error {
	held, err := o.store.AcquireHashLease(rec.LockHash, hashLeaseTTL)
	if err != nil {
		return err
	}
	if !held {
		return nil
	}
	defer func() {
		if err := o.store.ReleaseHashLease(rec.LockHash); err != nil {
			o.logger.Warn("lease release failed", zap.String("lockHash", rec.LockHash), zap.Error(err))
		}
	}()

	// re-read under the lease; the live flow may have finished meanwhile
	rec, err = o.store.Get(rec.ID)
	if err != nil {
		return err
	}
	if rec.Status.Terminal() || rec.Status == types.StatusPending {
		return nil
	}

	o.logger.Info("re-driving stuck operation",
		zap.String("id", rec.ID),
		zap.String("status", string(rec.Status)))

	if err := o.release(ctx, rec, common.HexToHash(rec.SourceTxHash)); err != nil {
		return o.fail(rec.ID, err)
	}
	return nil
}

// Stale returns operations older than maxAge that never reached a terminal
// status, for the operator surface.
func Stale(st store.Store, maxAge time.Duration, now time.Time) ([]*types.BridgeTransaction, error) {
	var out []*types.BridgeTransaction
	for _, status := range []types.Status{types.StatusPending, types.StatusLocked, types.StatusReleasing} {
		recs, err := st.FindByStatus(status)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			if rec.Age(now) > maxAge {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}
