package bridge

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"gotokenbridge/config"
	"gotokenbridge/contracts/bridge"
	"gotokenbridge/contracts/ierc20"
	"gotokenbridge/registry"
	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// ChainResolver is the slice of the chain registry the relayer needs.
type ChainResolver interface {
	Resolve(chainID int64) (*registry.Binding, error)
	Transactor(ctx context.Context, chainID int64) (*bind.TransactOpts, error)
}

// ChainBackend is everything the relayer does against one target chain.
// The production implementation wraps a registry.Binding.
type ChainBackend interface {
	ChainID() int64
	HashProcessed(ctx context.Context, releaseHash common.Hash) (bool, error)
	BridgeBalance(ctx context.Context, token common.Address) (*big.Int, error)
	EstimateRelease(ctx context.Context, from common.Address, calldata []byte) (uint64, error)
	SubmitRelease(opts *bind.TransactOpts, token common.Address, amount *big.Int, recipient common.Address, releaseHash common.Hash) (*ethtypes.Transaction, error)
	WaitMined(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error)
}

// Relayer submits release transactions with the operator key. It talks only
// to chains; transaction records are the orchestrator's business.
type Relayer struct {
	chains ChainResolver
	logger *zap.Logger

	bridgeABI abi.ABI

	// backendFor is a seam for tests; the default resolves a binding from
	// the registry.
	backendFor func(chainID int64) (ChainBackend, error)
}

func NewRelayer(chains ChainResolver, logger *zap.Logger) (*Relayer, error) {
	parsed, err := abi.JSON(strings.NewReader(bridge.BridgeMetaData.ABI))
	if err != nil {
		return nil, fmt.Errorf("parse bridge ABI: %w", err)
	}
	r := &Relayer{
		chains:    chains,
		logger:    logger.Named("relayer"),
		bridgeABI: parsed,
	}
	r.backendFor = func(chainID int64) (ChainBackend, error) {
		b, err := chains.Resolve(chainID)
		if err != nil {
			return nil, err
		}
		return &bindingBackend{b: b}, nil
	}
	return r, nil
}

// Release submits releaseTokens on the target chain and waits for the
// receipt. It is safe to call twice with the same hash: the contract's
// processed-hash register turns the second call into types.ErrAlreadyProcessed
// before anything is signed.
func (r *Relayer) Release(ctx context.Context, targetChainID int64, token common.Address, amount *big.Int, recipient common.Address, releaseHash common.Hash) (common.Hash, error) {
	b, err := r.backendFor(targetChainID)
	if err != nil {
		return common.Hash{}, err
	}

	processed, err := b.HashProcessed(ctx, releaseHash)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: processedHashes: %v", types.ErrOnChainCallFailed, err)
	}
	if processed {
		return common.Hash{}, fmt.Errorf("%w: release %s", types.ErrAlreadyProcessed, releaseHash.Hex())
	}

	if err := r.ensureLiquidity(ctx, b, token, amount); err != nil {
		return common.Hash{}, err
	}

	opts, err := r.chains.Transactor(ctx, targetChainID)
	if err != nil {
		return common.Hash{}, err
	}
	opts.GasLimit, err = r.estimateReleaseGas(ctx, b, opts.From, token, amount, recipient, releaseHash)
	if err != nil {
		return common.Hash{}, err
	}

	tx, err := b.SubmitRelease(opts, token, amount, recipient, releaseHash)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: releaseTokens: %v", types.ErrOnChainCallFailed, err)
	}
	r.logger.Info("release submitted",
		zap.Int64("chain", targetChainID),
		zap.String("tx", tx.Hash().Hex()),
		zap.String("releaseHash", releaseHash.Hex()))

	receipt, err := b.WaitMined(ctx, tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: wait mined %s: %v", types.ErrOnChainCallFailed, tx.Hash().Hex(), err)
	}
	if receipt.Status != 1 {
		return common.Hash{}, fmt.Errorf("%w: release %s reverted", types.ErrOnChainCallFailed, tx.Hash().Hex())
	}
	return tx.Hash(), nil
}

// ensureLiquidity verifies the bridge contract can cover the payout.
func (r *Relayer) ensureLiquidity(ctx context.Context, b ChainBackend, token common.Address, amount *big.Int) error {
	balance, err := b.BridgeBalance(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: balance: %v", types.ErrOnChainCallFailed, err)
	}
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: chain %d token %s has %s, need %s",
			types.ErrInsufficientLiquidity, b.ChainID(), token.Hex(), balance, amount)
	}
	return nil
}

// estimateReleaseGas asks the node for a gas estimate with headroom. When
// the node cannot predict gas, one attempt proceeds on the fallback limit
// rather than failing outright; the receipt check catches a real revert.
func (r *Relayer) estimateReleaseGas(ctx context.Context, b ChainBackend, from, token common.Address, amount *big.Int, recipient common.Address, releaseHash common.Hash) (uint64, error) {
	data, err := r.bridgeABI.Pack("releaseTokens", token, amount, recipient, [32]byte(releaseHash))
	if err != nil {
		return 0, fmt.Errorf("pack releaseTokens: %w", err)
	}
	estimate, err := b.EstimateRelease(ctx, from, data)
	if err != nil {
		r.logger.Warn("gas estimate failed, using fallback limit",
			zap.Int64("chain", b.ChainID()),
			zap.Uint64("fallback", config.FallbackGasLimit),
			zap.Error(fmt.Errorf("%w: %v", types.ErrUnpredictableGas, err)))
		return config.FallbackGasLimit, nil
	}
	return gasWithMargin(estimate), nil
}

// gasWithMargin pads an estimate so minor state drift between estimation
// and inclusion does not starve the transaction.
func gasWithMargin(estimate uint64) uint64 {
	return estimate * config.GasMarginNum / config.GasMarginDen
}

// bindingBackend adapts a registry.Binding to the ChainBackend seam. The
// zero token address means the chain's native coin.
type bindingBackend struct {
	b *registry.Binding
}

func (bb *bindingBackend) ChainID() int64 { return bb.b.Config.ChainID }

func (bb *bindingBackend) HashProcessed(ctx context.Context, releaseHash common.Hash) (bool, error) {
	return bb.b.Bridge.ProcessedHashes(&bind.CallOpts{Context: ctx}, [32]byte(releaseHash))
}

func (bb *bindingBackend) BridgeBalance(ctx context.Context, token common.Address) (*big.Int, error) {
	if token == (common.Address{}) {
		return bb.b.Client.BalanceAt(ctx, bb.b.BridgeAddress(), nil)
	}
	erc20, err := ierc20.NewIerc20(token, bb.b.Client)
	if err != nil {
		return nil, err
	}
	return erc20.BalanceOf(&bind.CallOpts{Context: ctx}, bb.b.BridgeAddress())
}

func (bb *bindingBackend) EstimateRelease(ctx context.Context, from common.Address, calldata []byte) (uint64, error) {
	to := bb.b.BridgeAddress()
	return bb.b.Client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &to,
		Data: calldata,
	})
}

func (bb *bindingBackend) SubmitRelease(opts *bind.TransactOpts, token common.Address, amount *big.Int, recipient common.Address, releaseHash common.Hash) (*ethtypes.Transaction, error) {
	return bb.b.Bridge.ReleaseTokens(opts, token, amount, recipient, [32]byte(releaseHash))
}

func (bb *bindingBackend) WaitMined(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error) {
	return bind.WaitMined(ctx, bb.b.Client, tx)
}
