// Package watcher maintains one live subscription per chain to the bridge
// contract's events, dispatching decoded occurrences to registered callbacks.
// On transport failure it rebuilds the connection and re-registers every
// active subscription, with attempts bounded per chain; exceeding the bound
// is fatal for that chain and surfaced, never swallowed.
package watcher

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"gotokenbridge/config"
	"gotokenbridge/contracts/bridge"
	"gotokenbridge/types"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	EventTokensLocked        = "TokensLocked"
	EventNativeTokenLocked   = "NativeTokenLocked"
	EventTokensReleased      = "TokensReleased"
	EventNativeTokenReleased = "NativeTokenReleased"
	EventPlatformFeeDeducted = "PlatformFeeDeducted"
)

var (
	eventsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_watcher_events_delivered_total",
			Help: "Decoded bridge contract events dispatched to callbacks",
		}, []string{"chain", "event"})
	reconnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_watcher_reconnect_attempts_total",
			Help: "WebSocket reconnect attempts per chain",
		}, []string{"chain"})
	backfilledLogs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_watcher_backfilled_logs_total",
			Help: "Historical lock events recovered by the backfill scan",
		}, []string{"chain"})
)

// Event is one decoded contract occurrence. Exactly one of Lock, Release,
// Fee is set, matching Name.
type Event struct {
	Name    string
	ChainID int64
	Lock    *types.LockEvent
	Release *types.ReleaseEvent
	Fee     *types.FeeEvent
}

// Callback receives either a decoded event or a terminal error (timeout,
// watcher shutdown). After an error delivery the subscription is gone.
type Callback func(ev *Event, err error)

// Subscription is the cancellation handle returned by Subscribe.
type Subscription struct {
	id      uint64
	event   string
	cb      Callback
	oneShot bool
	timeout time.Duration
	timer   *time.Timer
	w       *Watcher
}

// Cancel deregisters the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.w.remove(s.event, s.id, false)
}

// SubOption configures a Subscribe call.
type SubOption func(*Subscription)

// OneShot deregisters the subscription after its first delivery.
func OneShot() SubOption {
	return func(s *Subscription) { s.oneShot = true }
}

// WithTimeout overrides the default wait timeout.
func WithTimeout(d time.Duration) SubOption {
	return func(s *Subscription) { s.timeout = d }
}

// Watcher owns one chain's subscription lifecycle: dial, subscribe,
// dispatch, reconnect, teardown.
type Watcher struct {
	cfg         config.ChainConfig
	dial        Dialer
	cursor      Cursor
	logger      *zap.Logger
	maxAttempts int

	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]*Subscription
	seen   map[string]struct{} // dedup of (txHash, logIndex)
	closed bool
}

// Cursor persists the last processed block per chain; the watcher's backfill
// pass resumes from it after an outage. Satisfied by store.RedisStore and
// store.MemoryStore.
type Cursor interface {
	GetScannedBlock(chainID int64) (int64, error)
	SetScannedBlock(chainID int64, height int64) error
}

// New builds a watcher for one chain. dial may be nil, defaulting to the
// WebSocket dialer; cursor may be nil, disabling backfill.
func New(cfg config.ChainConfig, dial Dialer, cursor Cursor, logger *zap.Logger) *Watcher {
	if dial == nil {
		dial = DialWS
	}
	return &Watcher{
		cfg:         cfg,
		dial:        dial,
		cursor:      cursor,
		logger:      logger.Named("watcher").With(zap.String("chain", cfg.Name)),
		maxAttempts: config.MaxReconnectAttempts,
		subs:        make(map[string]map[uint64]*Subscription),
		seen:        make(map[string]struct{}),
	}
}

// Subscribe registers cb for eventName occurrences on this watcher's chain.
// A companion timeout (default config.EventWaitTimeoutSeconds) delivers
// types.ErrEventTimeout and deregisters if no matching event arrives.
func (w *Watcher) Subscribe(eventName string, cb Callback, opts ...SubOption) *Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	sub := &Subscription{
		id:      w.nextID,
		event:   eventName,
		cb:      cb,
		timeout: config.EventWaitTimeoutSeconds * time.Second,
		w:       w,
	}
	for _, opt := range opts {
		opt(sub)
	}

	if w.subs[eventName] == nil {
		w.subs[eventName] = make(map[uint64]*Subscription)
	}
	w.subs[eventName][sub.id] = sub

	if sub.timeout > 0 {
		id := sub.id
		sub.timer = time.AfterFunc(sub.timeout, func() {
			if w.remove(eventName, id, true) {
				cb(nil, fmt.Errorf("%w: %s on %s", types.ErrEventTimeout, eventName, w.cfg.Name))
			}
		})
	}
	return sub
}

// remove deletes the subscription; reports whether it was still registered.
func (w *Watcher) remove(eventName string, id uint64, fromTimer bool) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	byID, ok := w.subs[eventName]
	if !ok {
		return false
	}
	sub, ok := byID[id]
	if !ok {
		return false
	}
	if !fromTimer && sub.timer != nil {
		sub.timer.Stop()
	}
	delete(byID, id)
	return true
}

// Run drives the watcher until ctx is cancelled or the reconnect bound is
// exceeded. Intended to be launched as one goroutine per chain; the returned
// error (other than ctx.Err()) is fatal for this chain and must reach an
// operator.
func (w *Watcher) Run(ctx context.Context) error {
	chainLabel := strconv.FormatInt(w.cfg.ChainID, 10)
	attempts := 0
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = time.Second
	retry.MaxInterval = 30 * time.Second

	for {
		established, err := w.runConnection(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if established {
			// a connection that got as far as a working subscription
			// resets the failure budget
			attempts = 0
			retry.Reset()
		}

		attempts++
		reconnectAttempts.WithLabelValues(chainLabel).Inc()
		if attempts >= w.maxAttempts {
			w.dropAll(fmt.Errorf("%w: chain %s", types.ErrMaxReconnectAttempts, w.cfg.Name))
			return fmt.Errorf("%w: chain %s after %d attempts: %v",
				types.ErrMaxReconnectAttempts, w.cfg.Name, attempts, err)
		}

		wait := retry.NextBackOff()
		w.logger.Warn("transport failed, reconnecting",
			zap.Int("attempt", attempts),
			zap.Duration("backoff", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// runConnection dials, subscribes all five contract events, runs the
// backfill pass, then dispatches until the transport errors or ctx ends.
// established reports whether the subscription setup completed.
func (w *Watcher) runConnection(ctx context.Context) (established bool, _ error) {
	conn, err := w.dial(ctx, w.cfg)
	if err != nil {
		return false, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lockedC := make(chan *bridge.BridgeTokensLocked, 16)
	nativeLockedC := make(chan *bridge.BridgeNativeTokenLocked, 16)
	releasedC := make(chan *bridge.BridgeTokensReleased, 16)
	nativeReleasedC := make(chan *bridge.BridgeNativeTokenReleased, 16)
	feeC := make(chan *bridge.BridgePlatformFeeDeducted, 16)

	subLocked, err := conn.WatchTokensLocked(cctx, lockedC)
	if err != nil {
		return false, fmt.Errorf("subscribe %s: %w", EventTokensLocked, err)
	}
	defer subLocked.Unsubscribe()
	subNativeLocked, err := conn.WatchNativeTokenLocked(cctx, nativeLockedC)
	if err != nil {
		return false, fmt.Errorf("subscribe %s: %w", EventNativeTokenLocked, err)
	}
	defer subNativeLocked.Unsubscribe()
	subReleased, err := conn.WatchTokensReleased(cctx, releasedC)
	if err != nil {
		return false, fmt.Errorf("subscribe %s: %w", EventTokensReleased, err)
	}
	defer subReleased.Unsubscribe()
	subNativeReleased, err := conn.WatchNativeTokenReleased(cctx, nativeReleasedC)
	if err != nil {
		return false, fmt.Errorf("subscribe %s: %w", EventNativeTokenReleased, err)
	}
	defer subNativeReleased.Unsubscribe()
	subFee, err := conn.WatchPlatformFeeDeducted(cctx, feeC)
	if err != nil {
		return false, fmt.Errorf("subscribe %s: %w", EventPlatformFeeDeducted, err)
	}
	defer subFee.Unsubscribe()

	w.logger.Info("subscribed to bridge events")

	if w.cursor != nil {
		if err := w.backfill(cctx, conn); err != nil {
			// a failed backfill is not fatal; live events still flow
			w.logger.Warn("backfill failed", zap.Error(err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.dropAll(types.ErrWatcherStopped)
			return true, ctx.Err()
		case ev := <-lockedC:
			w.dispatchLocked(ev)
		case ev := <-nativeLockedC:
			w.dispatch(&Event{
				Name:    EventNativeTokenLocked,
				ChainID: w.cfg.ChainID,
				Lock: &types.LockEvent{
					Amount:        ev.Amount,
					Sender:        ev.Sender,
					Recipient:     ev.Recipient,
					SourceChainID: w.cfg.ChainID,
					LockHash:      common.Hash(ev.LockHash),
					TxHash:        ev.Raw.TxHash,
				},
			}, ev.Raw.TxHash.Hex(), ev.Raw.Index)
		case ev := <-releasedC:
			w.dispatch(&Event{
				Name:    EventTokensReleased,
				ChainID: w.cfg.ChainID,
				Release: &types.ReleaseEvent{
					Token:       ev.Token,
					Recipient:   ev.Recipient,
					Amount:      ev.Amount,
					ReleaseHash: common.Hash(ev.ReleaseHash),
					TxHash:      ev.Raw.TxHash,
				},
			}, ev.Raw.TxHash.Hex(), ev.Raw.Index)
		case ev := <-nativeReleasedC:
			w.dispatch(&Event{
				Name:    EventNativeTokenReleased,
				ChainID: w.cfg.ChainID,
				Release: &types.ReleaseEvent{
					Recipient:   ev.Recipient,
					Amount:      ev.Amount,
					ReleaseHash: common.Hash(ev.ReleaseHash),
					TxHash:      ev.Raw.TxHash,
				},
			}, ev.Raw.TxHash.Hex(), ev.Raw.Index)
		case ev := <-feeC:
			w.dispatch(&Event{
				Name:    EventPlatformFeeDeducted,
				ChainID: w.cfg.ChainID,
				Fee: &types.FeeEvent{
					Token:  ev.Token,
					Fee:    ev.Fee,
					TxHash: ev.Raw.TxHash,
				},
			}, ev.Raw.TxHash.Hex(), ev.Raw.Index)
		case err := <-subLocked.Err():
			return true, err
		case err := <-subNativeLocked.Err():
			return true, err
		case err := <-subReleased.Err():
			return true, err
		case err := <-subNativeReleased.Err():
			return true, err
		case err := <-subFee.Err():
			return true, err
		}
	}
}

func (w *Watcher) dispatchLocked(ev *bridge.BridgeTokensLocked) {
	w.dispatch(&Event{
		Name:    EventTokensLocked,
		ChainID: w.cfg.ChainID,
		Lock: &types.LockEvent{
			SourceToken:   ev.SourceToken,
			TargetToken:   ev.TargetToken,
			Amount:        ev.Amount,
			Sender:        ev.Sender,
			Recipient:     ev.Recipient,
			SourceChainID: ev.SourceChainId.Int64(),
			TargetChainID: ev.TargetChainId.Int64(),
			LockHash:      common.Hash(ev.LockHash),
			TxHash:        ev.Raw.TxHash,
		},
	}, ev.Raw.TxHash.Hex(), ev.Raw.Index)
	if w.cursor != nil && ev.Raw.BlockNumber > 0 {
		if err := w.cursor.SetScannedBlock(w.cfg.ChainID, int64(ev.Raw.BlockNumber)); err != nil {
			w.logger.Warn("cursor write failed", zap.Error(err))
		}
	}
}

// dispatch delivers ev to the callbacks registered for its name, after
// best-effort de-duplication on (txHash, logIndex).
func (w *Watcher) dispatch(ev *Event, txHash string, logIndex uint) {
	dedupKey := fmt.Sprintf("%s:%d", txHash, logIndex)

	w.mu.Lock()
	if _, dup := w.seen[dedupKey]; dup {
		w.mu.Unlock()
		return
	}
	w.seen[dedupKey] = struct{}{}
	if len(w.seen) > 4096 {
		// crude bound; dedup is best-effort, the store's hash lease is
		// the authoritative guard
		w.seen = make(map[string]struct{})
	}

	var cbs []*Subscription
	for _, sub := range w.subs[ev.Name] {
		cbs = append(cbs, sub)
	}
	for _, sub := range cbs {
		if sub.timer != nil {
			if sub.oneShot {
				sub.timer.Stop()
			} else {
				sub.timer.Reset(sub.timeout)
			}
		}
		if sub.oneShot {
			delete(w.subs[ev.Name], sub.id)
		}
	}
	w.mu.Unlock()

	eventsDelivered.WithLabelValues(strconv.FormatInt(w.cfg.ChainID, 10), ev.Name).Inc()
	for _, sub := range cbs {
		sub.cb(ev, nil)
	}
}

// dropAll fails every registered subscription with err and clears the table.
func (w *Watcher) dropAll(err error) {
	w.mu.Lock()
	var cbs []*Subscription
	for _, byID := range w.subs {
		for _, sub := range byID {
			if sub.timer != nil {
				sub.timer.Stop()
			}
			cbs = append(cbs, sub)
		}
	}
	w.subs = make(map[string]map[uint64]*Subscription)
	w.mu.Unlock()

	for _, sub := range cbs {
		sub.cb(nil, err)
	}
}

// Teardown releases everything. Safe to call when the connection already
// failed or Run never started.
func (w *Watcher) Teardown() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()
	w.dropAll(types.ErrWatcherStopped)
}
