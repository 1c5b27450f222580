// Package registry owns the per-chain connection material: one long-lived
// RPC client and one bridge-contract binding per configured chain, plus the
// operator signer bound to each chain's ID. Consumers resolve chain-specific
// resources here instead of dialing on their own.
package registry

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"gotokenbridge/config"
	"gotokenbridge/contracts/bridge"
	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Binding bundles everything a caller needs to talk to one chain.
type Binding struct {
	Config config.ChainConfig
	Client *ethclient.Client
	Bridge *bridge.Bridge
}

// BridgeAddress is the chain's bridge contract address.
func (b *Binding) BridgeAddress() common.Address {
	return common.HexToAddress(b.Config.BridgeAddress)
}

// Registry resolves per-chain bindings. Construction dials every configured
// chain once; endpoints unreachable at startup are a hard failure, not
// retried.
type Registry struct {
	logger   *zap.Logger
	bindings map[int64]*Binding

	mu      sync.RWMutex
	signers map[int64]*ecdsa.PrivateKey
}

// New dials the RPC list of every chain in cfgs, in order, keeping the first
// endpoint that answers with the expected chain ID. Any chain with no usable
// endpoint fails construction.
func New(ctx context.Context, cfgs map[int64]config.ChainConfig, logger *zap.Logger) (*Registry, error) {
	r := &Registry{
		logger:   logger.Named("registry"),
		bindings: make(map[int64]*Binding, len(cfgs)),
		signers:  make(map[int64]*ecdsa.PrivateKey),
	}

	for chainID, cfg := range cfgs {
		b, err := dialChain(ctx, cfg, r.logger)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("chain %d (%s): %w", chainID, cfg.Name, err)
		}
		r.bindings[chainID] = b
	}

	return r, nil
}

func dialChain(ctx context.Context, cfg config.ChainConfig, logger *zap.Logger) (*Binding, error) {
	var lastErr error
	for _, url := range cfg.RPCList {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			logger.Warn("endpoint unreachable", zap.String("chain", cfg.Name), zap.String("url", url), zap.Error(err))
			lastErr = err
			continue
		}

		got, err := client.ChainID(ctx)
		if err != nil || got.Int64() != cfg.ChainID {
			if err == nil {
				err = fmt.Errorf("endpoint %s reports chain id %d, want %d", url, got.Int64(), cfg.ChainID)
			}
			logger.Warn("endpoint rejected", zap.String("chain", cfg.Name), zap.String("url", url), zap.Error(err))
			client.Close()
			lastErr = err
			continue
		}

		contract, err := bridge.NewBridge(common.HexToAddress(cfg.BridgeAddress), client)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("binding bridge contract: %w", err)
		}

		logger.Info("chain connected", zap.String("chain", cfg.Name), zap.String("url", url))
		return &Binding{Config: cfg, Client: client, Bridge: contract}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no RPC endpoints configured")
	}
	return nil, lastErr
}

// Resolve returns the binding for chainID, or ErrUnsupportedChain.
func (r *Registry) Resolve(chainID int64) (*Binding, error) {
	b, ok := r.bindings[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", types.ErrUnsupportedChain, chainID)
	}
	return b, nil
}

// BindSigner attaches a private-key signer to chainID. Subsequent Transactor
// calls for that chain produce opts signing with this key bound to the
// chain's ID.
func (r *Registry) BindSigner(chainID int64, privateKeyHex string) error {
	if _, err := r.Resolve(chainID); err != nil {
		return err
	}
	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return fmt.Errorf("parsing signer key: %w", err)
	}
	r.mu.Lock()
	r.signers[chainID] = key
	r.mu.Unlock()
	return nil
}

// Transactor returns fresh transaction opts for chainID's bound signer.
// A new opts value is handed out per call so callers can set nonce, value
// and gas limit without racing each other.
func (r *Registry) Transactor(ctx context.Context, chainID int64) (*bind.TransactOpts, error) {
	r.mu.RLock()
	key, ok := r.signers[chainID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no signer bound for chain %d", chainID)
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(chainID))
	if err != nil {
		return nil, fmt.Errorf("building transactor: %w", err)
	}
	auth.Context = ctx
	return auth, nil
}

// SignerAddress returns the address of chainID's bound signer.
func (r *Registry) SignerAddress(chainID int64) (common.Address, error) {
	r.mu.RLock()
	key, ok := r.signers[chainID]
	r.mu.RUnlock()
	if !ok {
		return common.Address{}, fmt.Errorf("no signer bound for chain %d", chainID)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// ChainIDs lists the configured chains.
func (r *Registry) ChainIDs() []int64 {
	ids := make([]int64, 0, len(r.bindings))
	for id := range r.bindings {
		ids = append(ids, id)
	}
	return ids
}

// Close releases every client connection. Safe on a partially constructed
// registry.
func (r *Registry) Close() {
	for _, b := range r.bindings {
		if b != nil && b.Client != nil {
			b.Client.Close()
		}
	}
}
