package watcher

import (
	"context"

	"gotokenbridge/config"
	"gotokenbridge/contracts/bridge"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
)

// Connector abstracts one chain's event transport so the watcher can be
// driven by a real WebSocket connection in production and by fakes in tests.
// A connector is single-use: after a transport failure it is closed and a
// fresh one is dialed.
type Connector interface {
	WatchTokensLocked(ctx context.Context, sink chan<- *bridge.BridgeTokensLocked) (event.Subscription, error)
	WatchNativeTokenLocked(ctx context.Context, sink chan<- *bridge.BridgeNativeTokenLocked) (event.Subscription, error)
	WatchTokensReleased(ctx context.Context, sink chan<- *bridge.BridgeTokensReleased) (event.Subscription, error)
	WatchNativeTokenReleased(ctx context.Context, sink chan<- *bridge.BridgeNativeTokenReleased) (event.Subscription, error)
	WatchPlatformFeeDeducted(ctx context.Context, sink chan<- *bridge.BridgePlatformFeeDeducted) (event.Subscription, error)

	// FilterTokensLocked retrieves historical lock events for the backfill
	// pass after a reconnect.
	FilterTokensLocked(ctx context.Context, fromBlock, toBlock uint64) ([]*bridge.BridgeTokensLocked, error)
	BlockNumber(ctx context.Context) (uint64, error)
	Close()
}

// Dialer opens a Connector for one chain. Injected so tests can supply
// failing or scripted transports.
type Dialer func(ctx context.Context, cfg config.ChainConfig) (Connector, error)

// wsConnector is the production Connector: one WebSocket-backed ethclient
// and one contract binding, both discarded on transport failure.
type wsConnector struct {
	client   *ethclient.Client
	contract *bridge.Bridge
}

// DialWS connects to the chain's WebSocket endpoint and binds the bridge
// contract. This is the default Dialer.
func DialWS(ctx context.Context, cfg config.ChainConfig) (Connector, error) {
	client, err := ethclient.DialContext(ctx, cfg.WSURL)
	if err != nil {
		return nil, err
	}
	contract, err := bridge.NewBridge(common.HexToAddress(cfg.BridgeAddress), client)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &wsConnector{client: client, contract: contract}, nil
}

func (c *wsConnector) WatchTokensLocked(ctx context.Context, sink chan<- *bridge.BridgeTokensLocked) (event.Subscription, error) {
	return c.contract.WatchTokensLocked(&bind.WatchOpts{Context: ctx}, sink)
}

func (c *wsConnector) WatchNativeTokenLocked(ctx context.Context, sink chan<- *bridge.BridgeNativeTokenLocked) (event.Subscription, error) {
	return c.contract.WatchNativeTokenLocked(&bind.WatchOpts{Context: ctx}, sink)
}

func (c *wsConnector) WatchTokensReleased(ctx context.Context, sink chan<- *bridge.BridgeTokensReleased) (event.Subscription, error) {
	return c.contract.WatchTokensReleased(&bind.WatchOpts{Context: ctx}, sink)
}

func (c *wsConnector) WatchNativeTokenReleased(ctx context.Context, sink chan<- *bridge.BridgeNativeTokenReleased) (event.Subscription, error) {
	return c.contract.WatchNativeTokenReleased(&bind.WatchOpts{Context: ctx}, sink)
}

func (c *wsConnector) WatchPlatformFeeDeducted(ctx context.Context, sink chan<- *bridge.BridgePlatformFeeDeducted) (event.Subscription, error) {
	return c.contract.WatchPlatformFeeDeducted(&bind.WatchOpts{Context: ctx}, sink)
}

func (c *wsConnector) FilterTokensLocked(ctx context.Context, fromBlock, toBlock uint64) ([]*bridge.BridgeTokensLocked, error) {
	it, err := c.contract.FilterTokensLocked(&bind.FilterOpts{Start: fromBlock, End: &toBlock, Context: ctx})
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []*bridge.BridgeTokensLocked
	for it.Next() {
		out = append(out, it.Event)
	}
	return out, it.Error()
}

func (c *wsConnector) BlockNumber(ctx context.Context) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

func (c *wsConnector) Close() {
	c.client.Close()
}
