package workers

import (
	"context"
	"errors"

	"gotokenbridge/bridge"
	"gotokenbridge/store"
	"gotokenbridge/types"
	"gotokenbridge/watcher"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Worker_Watch runs one chain's event watch and feeds observed locks into
// the orchestrator. It returns when ctx ends or the watcher exhausts its
// reconnect budget; the caller decides whether that takes the process down.
func Worker_Watch(ctx context.Context, w *watcher.Watcher, orch *bridge.Orchestrator, st store.Store, logger *zap.Logger) error {
	logger = logger.Named("watch")

	w.Subscribe(watcher.EventTokensLocked, func(ev *watcher.Event, err error) {
		if err != nil {
			if !errors.Is(err, types.ErrWatcherStopped) {
				logger.Error("lock subscription failed", zap.Error(err))
			}
			return
		}
		// release submission waits for inclusion; never block the
		// dispatch loop on it
		go func() {
			if err := orch.HandleObservedLock(ctx, ev.Lock); err != nil {
				logger.Error("observed lock processing failed",
					zap.String("lockHash", ev.Lock.LockHash.Hex()),
					zap.Error(err))
			}
		}()
	}, watcher.WithTimeout(0))

	w.Subscribe(watcher.EventNativeTokenLocked, func(ev *watcher.Event, err error) {
		if err != nil {
			if !errors.Is(err, types.ErrWatcherStopped) {
				logger.Error("native lock subscription failed", zap.Error(err))
			}
			return
		}
		go handleNativeLock(ctx, orch, st, ev, logger)
	}, watcher.WithTimeout(0))

	confirmRelease := func(ev *watcher.Event, err error) {
		if err != nil {
			return
		}
		logger.Info("release confirmed on chain",
			zap.Int64("chain", ev.ChainID),
			zap.String("releaseHash", ev.Release.ReleaseHash.Hex()),
			zap.String("tx", ev.Release.TxHash.Hex()))
	}
	w.Subscribe(watcher.EventTokensReleased, confirmRelease, watcher.WithTimeout(0))
	w.Subscribe(watcher.EventNativeTokenReleased, confirmRelease, watcher.WithTimeout(0))

	w.Subscribe(watcher.EventPlatformFeeDeducted, func(ev *watcher.Event, err error) {
		if err != nil {
			return
		}
		logger.Info("platform fee deducted",
			zap.Int64("chain", ev.ChainID),
			zap.String("token", ev.Fee.Token.Hex()),
			zap.String("fee", ev.Fee.Fee.String()))
	}, watcher.WithTimeout(0))

	defer w.Teardown()
	return w.Run(ctx)
}

// handleNativeLock routes a native-coin lock. The on-chain event does not
// carry the target chain, so routing requires a record created at submit
// time; native locks without one are logged and skipped.
func handleNativeLock(ctx context.Context, orch *bridge.Orchestrator, st store.Store, ev *watcher.Event, logger *zap.Logger) {
	recs, err := st.FindByHash(ev.Lock.LockHash.Hex())
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		logger.Error("native lock lookup failed", zap.Error(err))
		return
	}
	if len(recs) == 0 {
		logger.Warn("native lock with no matching record, cannot route",
			zap.String("lockHash", ev.Lock.LockHash.Hex()))
		return
	}

	rec := recs[0]
	full := &types.LockEvent{
		SourceToken:   common.HexToAddress(rec.SourceToken),
		TargetToken:   common.HexToAddress(rec.TargetToken),
		Amount:        ev.Lock.Amount,
		Sender:        ev.Lock.Sender,
		Recipient:     ev.Lock.Recipient,
		SourceChainID: rec.SourceChainID,
		TargetChainID: rec.TargetChainID,
		LockHash:      ev.Lock.LockHash,
		TxHash:        ev.Lock.TxHash,
	}
	if err := orch.HandleObservedLock(ctx, full); err != nil {
		logger.Error("native lock processing failed",
			zap.String("lockHash", full.LockHash.Hex()),
			zap.Error(err))
	}
}
