package watcher

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"gotokenbridge/config"
	"gotokenbridge/contracts/bridge"
	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSub struct {
	errC chan error
}

func newFakeSub() *fakeSub           { return &fakeSub{errC: make(chan error, 1)} }
func (s *fakeSub) Unsubscribe()      {}
func (s *fakeSub) Err() <-chan error { return s.errC }
func (s *fakeSub) fail(err error)    { s.errC <- err }

var _ event.Subscription = (*fakeSub)(nil)

// fakeConnector records its sinks so a test can push decoded events at
// will and fail the transport on demand.
type fakeConnector struct {
	mu      sync.Mutex
	lockedC chan<- *bridge.BridgeTokensLocked
	subs    []*fakeSub
	head    uint64
	history []*bridge.BridgeTokensLocked
	closed  bool
}

func (c *fakeConnector) sub() *fakeSub {
	s := newFakeSub()
	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()
	return s
}

func (c *fakeConnector) WatchTokensLocked(ctx context.Context, sink chan<- *bridge.BridgeTokensLocked) (event.Subscription, error) {
	c.mu.Lock()
	c.lockedC = sink
	c.mu.Unlock()
	return c.sub(), nil
}

func (c *fakeConnector) WatchNativeTokenLocked(ctx context.Context, sink chan<- *bridge.BridgeNativeTokenLocked) (event.Subscription, error) {
	return c.sub(), nil
}

func (c *fakeConnector) WatchTokensReleased(ctx context.Context, sink chan<- *bridge.BridgeTokensReleased) (event.Subscription, error) {
	return c.sub(), nil
}

func (c *fakeConnector) WatchNativeTokenReleased(ctx context.Context, sink chan<- *bridge.BridgeNativeTokenReleased) (event.Subscription, error) {
	return c.sub(), nil
}

func (c *fakeConnector) WatchPlatformFeeDeducted(ctx context.Context, sink chan<- *bridge.BridgePlatformFeeDeducted) (event.Subscription, error) {
	return c.sub(), nil
}

func (c *fakeConnector) FilterTokensLocked(ctx context.Context, from, to uint64) ([]*bridge.BridgeTokensLocked, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*bridge.BridgeTokensLocked
	for _, ev := range c.history {
		if ev.Raw.BlockNumber >= from && ev.Raw.BlockNumber <= to {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (c *fakeConnector) BlockNumber(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.head, nil
}

func (c *fakeConnector) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *fakeConnector) emitLocked(ev *bridge.BridgeTokensLocked) {
	c.mu.Lock()
	sink := c.lockedC
	c.mu.Unlock()
	sink <- ev
}

func (c *fakeConnector) failTransport(err error) {
	c.mu.Lock()
	subs := c.subs
	c.mu.Unlock()
	if len(subs) > 0 {
		subs[0].fail(err)
	}
}

// dialFactory hands out one fakeConnector per dial and counts calls.
type dialFactory struct {
	mu    sync.Mutex
	conns []*fakeConnector
	fail  int // fail the first N dials
}

func (f *dialFactory) dial(ctx context.Context, cfg config.ChainConfig) (Connector, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail > 0 {
		f.fail--
		return nil, errors.New("connection refused")
	}
	c := &fakeConnector{head: 100}
	f.conns = append(f.conns, c)
	return c, nil
}

func (f *dialFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conns)
}

func (f *dialFactory) latest() *fakeConnector {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.conns) == 0 {
		return nil
	}
	return f.conns[len(f.conns)-1]
}

func testChain() config.ChainConfig {
	return config.ChainConfig{
		Name:       "testchain",
		ChainID:    84532,
		BlockBatch: 512,
	}
}

func lockedEvent(tx byte, block uint64) *bridge.BridgeTokensLocked {
	return &bridge.BridgeTokensLocked{
		SourceToken:   common.HexToAddress("0x01"),
		TargetToken:   common.HexToAddress("0x02"),
		Amount:        big.NewInt(1e6),
		Sender:        common.HexToAddress("0x03"),
		Recipient:     common.HexToAddress("0x04"),
		SourceChainId: big.NewInt(84532),
		TargetChainId: big.NewInt(11155111),
		LockHash:      common.HexToHash("0xbeef"),
		Raw: ethtypes.Log{
			TxHash:      common.Hash{tx},
			Index:       0,
			BlockNumber: block,
		},
	}
}

func waitFor(t *testing.T, c <-chan *Event) *Event {
	t.Helper()
	select {
	case ev := <-c:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
		return nil
	}
}

func TestDeliversDecodedLockEvents(t *testing.T) {
	f := &dialFactory{}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))

	got := make(chan *Event, 1)
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		require.NoError(t, err)
		got <- ev
	}, WithTimeout(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return f.count() == 1 }, time.Second, 10*time.Millisecond)
	f.latest().emitLocked(lockedEvent(0xaa, 10))

	ev := waitFor(t, got)
	require.NotNil(t, ev.Lock)
	assert.Equal(t, EventTokensLocked, ev.Name)
	assert.Equal(t, int64(84532), ev.Lock.SourceChainID)
	assert.Equal(t, int64(11155111), ev.Lock.TargetChainID)
	assert.Equal(t, "1000000", ev.Lock.Amount.String())

	cancel()
	<-done
}

func TestDuplicateLogDeliveredOnce(t *testing.T) {
	f := &dialFactory{}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))

	var mu sync.Mutex
	deliveries := 0
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		require.NoError(t, err)
		mu.Lock()
		deliveries++
		mu.Unlock()
	}, WithTimeout(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return f.count() == 1 }, time.Second, 10*time.Millisecond)
	ev := lockedEvent(0xbb, 10)
	f.latest().emitLocked(ev)
	f.latest().emitLocked(ev)
	f.latest().emitLocked(lockedEvent(0xcc, 11))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return deliveries == 2
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 2, deliveries)
	mu.Unlock()
}

func TestReconnectRestoresSubscriptions(t *testing.T) {
	f := &dialFactory{}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))

	got := make(chan *Event, 2)
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		require.NoError(t, err)
		got <- ev
	}, WithTimeout(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return f.count() == 1 }, time.Second, 10*time.Millisecond)
	first := f.latest()
	first.emitLocked(lockedEvent(0x01, 10))
	waitFor(t, got)

	first.failTransport(errors.New("websocket: close 1006"))

	require.Eventually(t, func() bool { return f.count() == 2 }, 5*time.Second, 10*time.Millisecond)
	f.latest().emitLocked(lockedEvent(0x02, 20))

	ev := waitFor(t, got)
	assert.Equal(t, common.Hash{0x02}, ev.Lock.TxHash)
}

func TestGivesUpAfterMaxAttempts(t *testing.T) {
	f := &dialFactory{fail: config.MaxReconnectAttempts + 1}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))
	w.maxAttempts = 3 // keep backoff wall time short

	errs := make(chan error, 1)
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		if err != nil {
			errs <- err
		}
	}, WithTimeout(0))

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, types.ErrMaxReconnectAttempts)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not give up")
	}

	select {
	case err := <-errs:
		require.ErrorIs(t, err, types.ErrMaxReconnectAttempts)
	case <-time.After(time.Second):
		t.Fatal("subscription not failed")
	}
}

func TestSubscriptionTimeout(t *testing.T) {
	f := &dialFactory{}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))

	errs := make(chan error, 1)
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		errs <- err
	}, WithTimeout(50*time.Millisecond))

	select {
	case err := <-errs:
		require.ErrorIs(t, err, types.ErrEventTimeout)
	case <-time.After(time.Second):
		t.Fatal("timeout never fired")
	}
}

func TestCancelPreventsDelivery(t *testing.T) {
	f := &dialFactory{}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))

	fired := make(chan struct{}, 1)
	sub := w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		fired <- struct{}{}
	}, WithTimeout(0))
	sub.Cancel()
	sub.Cancel() // second cancel is a no-op

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return f.count() == 1 }, time.Second, 10*time.Millisecond)
	f.latest().emitLocked(lockedEvent(0xdd, 10))

	select {
	case <-fired:
		t.Fatal("cancelled subscription still delivered")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestOneShotDeliversOnce(t *testing.T) {
	f := &dialFactory{}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))

	var mu sync.Mutex
	deliveries := 0
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		require.NoError(t, err)
		mu.Lock()
		deliveries++
		mu.Unlock()
	}, OneShot(), WithTimeout(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool { return f.count() == 1 }, time.Second, 10*time.Millisecond)
	f.latest().emitLocked(lockedEvent(0x10, 10))
	f.latest().emitLocked(lockedEvent(0x11, 11))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return deliveries == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, deliveries)
	mu.Unlock()
}

func TestTeardownFailsPendingSubscriptions(t *testing.T) {
	f := &dialFactory{}
	w := New(testChain(), f.dial, nil, zaptest.NewLogger(t))

	errs := make(chan error, 1)
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		errs <- err
	}, WithTimeout(0))

	w.Teardown()
	w.Teardown() // idempotent

	select {
	case err := <-errs:
		require.ErrorIs(t, err, types.ErrWatcherStopped)
	case <-time.After(time.Second):
		t.Fatal("teardown did not fail subscription")
	}
}

type memCursor struct {
	mu     sync.Mutex
	blocks map[int64]int64
}

func (c *memCursor) GetScannedBlock(chainID int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.blocks[chainID]; ok {
		return b, nil
	}
	return -1, nil
}

func (c *memCursor) SetScannedBlock(chainID, height int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.blocks == nil {
		c.blocks = make(map[int64]int64)
	}
	c.blocks[chainID] = height
	return nil
}

func TestBackfillReplaysMissedLocks(t *testing.T) {
	cursor := &memCursor{}
	require.NoError(t, cursor.SetScannedBlock(84532, 40))

	f := &dialFactory{}
	w := New(testChain(), f.dial, cursor, zaptest.NewLogger(t))

	missed := lockedEvent(0x20, 60)
	old := lockedEvent(0x21, 5) // behind the cursor, must not replay

	got := make(chan *Event, 2)
	w.Subscribe(EventTokensLocked, func(ev *Event, err error) {
		require.NoError(t, err)
		got <- ev
	}, WithTimeout(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// pre-seed the connection's history before Run dials
	origDial := f.dial
	w.dial = func(ctx context.Context, cfg config.ChainConfig) (Connector, error) {
		conn, err := origDial(ctx, cfg)
		if err != nil {
			return nil, err
		}
		fc := conn.(*fakeConnector)
		fc.history = []*bridge.BridgeTokensLocked{old, missed}
		return conn, nil
	}
	go w.Run(ctx)

	ev := waitFor(t, got)
	assert.Equal(t, common.Hash{0x20}, ev.Lock.TxHash)

	last, err := cursor.GetScannedBlock(84532)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, last, int64(100))

	select {
	case <-got:
		t.Fatal("replayed a log behind the safety window")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBackfillFirstRunFastForwards(t *testing.T) {
	cursor := &memCursor{}
	f := &dialFactory{}
	w := New(testChain(), f.dial, cursor, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool {
		last, err := cursor.GetScannedBlock(84532)
		return err == nil && last == 100
	}, time.Second, 10*time.Millisecond)
}
