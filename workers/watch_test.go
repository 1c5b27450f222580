package workers

import (
	"context"
	"math/big"
	"testing"
	"time"

	"gotokenbridge/bridge"
	"gotokenbridge/config"
	contract "gotokenbridge/contracts/bridge"
	"gotokenbridge/store"
	"gotokenbridge/watcher"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubSub struct {
	errC chan error
}

func (s *stubSub) Unsubscribe()      {}
func (s *stubSub) Err() <-chan error { return s.errC }

func newStubSub() *stubSub { return &stubSub{errC: make(chan error)} }

// stubConnector hands the watcher never-failing subscriptions and records
// the sinks so the test can emit contract events.
type stubConnector struct {
	releasedC       chan<- *contract.BridgeTokensReleased
	nativeReleasedC chan<- *contract.BridgeNativeTokenReleased
	ready           chan struct{}
}

func newStubConnector() *stubConnector {
	return &stubConnector{ready: make(chan struct{})}
}

func (c *stubConnector) WatchTokensLocked(ctx context.Context, sink chan<- *contract.BridgeTokensLocked) (event.Subscription, error) {
	return newStubSub(), nil
}

func (c *stubConnector) WatchNativeTokenLocked(ctx context.Context, sink chan<- *contract.BridgeNativeTokenLocked) (event.Subscription, error) {
	return newStubSub(), nil
}

func (c *stubConnector) WatchTokensReleased(ctx context.Context, sink chan<- *contract.BridgeTokensReleased) (event.Subscription, error) {
	c.releasedC = sink
	return newStubSub(), nil
}

func (c *stubConnector) WatchNativeTokenReleased(ctx context.Context, sink chan<- *contract.BridgeNativeTokenReleased) (event.Subscription, error) {
	c.nativeReleasedC = sink
	return newStubSub(), nil
}

func (c *stubConnector) WatchPlatformFeeDeducted(ctx context.Context, sink chan<- *contract.BridgePlatformFeeDeducted) (event.Subscription, error) {
	close(c.ready)
	return newStubSub(), nil
}

func (c *stubConnector) FilterTokensLocked(ctx context.Context, fromBlock, toBlock uint64) ([]*contract.BridgeTokensLocked, error) {
	return nil, nil
}

func (c *stubConnector) BlockNumber(ctx context.Context) (uint64, error) { return 0, nil }

func (c *stubConnector) Close() {}

type stubReleaser struct{}

func (stubReleaser) Release(ctx context.Context, targetChainID int64, token common.Address, amount *big.Int, recipient common.Address, releaseHash common.Hash) (common.Hash, error) {
	return common.Hash{}, nil
}

func TestWatchLogsReleaseConfirmations(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	conn := newStubConnector()
	dial := func(ctx context.Context, cfg config.ChainConfig) (watcher.Connector, error) {
		return conn, nil
	}
	w := watcher.New(config.ChainConfig{Name: "base-sepolia", ChainID: 84532}, dial, nil, logger)

	st := store.NewMemoryStore(store.NopNotifier{})
	orch := bridge.NewOrchestrator(st, nil, stubReleaser{}, bridge.RateTable{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- Worker_Watch(ctx, w, orch, st, logger) }()

	select {
	case <-conn.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never subscribed")
	}

	conn.nativeReleasedC <- &contract.BridgeNativeTokenReleased{
		Recipient:   common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"),
		Amount:      big.NewInt(5),
		ReleaseHash: [32]byte{0x0d},
		Raw:         ethtypes.Log{TxHash: common.Hash{0x0e}, Index: 1},
	}
	require.Eventually(t, func() bool {
		return logs.FilterMessage("release confirmed on chain").Len() == 1
	}, 2*time.Second, 10*time.Millisecond, "native release not confirmed")

	entry := logs.FilterMessage("release confirmed on chain").All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, common.Hash{0x0d}.Hex(), fields["releaseHash"])
	assert.Equal(t, common.Hash{0x0e}.Hex(), fields["tx"])
	assert.Equal(t, int64(84532), fields["chain"])

	conn.releasedC <- &contract.BridgeTokensReleased{
		Token:       common.HexToAddress("0x22DD04E9a1922e9b6310035bD9b4800c17Bb77b7"),
		Recipient:   common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"),
		Amount:      big.NewInt(5),
		ReleaseHash: [32]byte{0x1d},
		Raw:         ethtypes.Log{TxHash: common.Hash{0x1e}, Index: 1},
	}
	require.Eventually(t, func() bool {
		return logs.FilterMessage("release confirmed on chain").Len() == 2
	}, 2*time.Second, 10*time.Millisecond, "erc20 release not confirmed")

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
