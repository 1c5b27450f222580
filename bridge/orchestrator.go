package bridge

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"gotokenbridge/contracts/ierc20"
	"gotokenbridge/hashing"
	"gotokenbridge/registry"
	"gotokenbridge/store"
	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// hashLeaseTTL bounds how long a crashed flow can block the retry of the
// same lock hash.
const hashLeaseTTL = 5 * time.Minute

// Releaser is the on-chain release dependency, satisfied by *Relayer.
type Releaser interface {
	Release(ctx context.Context, targetChainID int64, token common.Address, amount *big.Int, recipient common.Address, releaseHash common.Hash) (common.Hash, error)
}

// Orchestrator runs the bridge state machine: it turns lock requests into
// source-chain transactions and observed lock events into target-chain
// releases, with the store as the single source of truth for progress.
type Orchestrator struct {
	store   store.Store
	chains  ChainResolver
	relayer Releaser
	rates   RateTable
	logger  *zap.Logger
}

func NewOrchestrator(st store.Store, chains ChainResolver, relayer Releaser, rates RateTable, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		store:   st,
		chains:  chains,
		relayer: relayer,
		rates:   rates,
		logger:  logger.Named("orchestrator"),
	}
}

// LockRequest describes a lock to execute with the operator key. A zero
// SourceToken means the chain's native coin, sent as transaction value.
type LockRequest struct {
	SourceChainID int64
	TargetChainID int64
	SourceToken   common.Address
	TargetToken   common.Address
	Amount        *big.Int
	Recipient     common.Address
}

// ExecuteLockOperation submits lockTokens on the source chain and records
// the operation. The record is created before the transaction is sent, so a
// crash between submit and confirm leaves a PENDING record the recovery
// loop can reconcile.
func (o *Orchestrator) ExecuteLockOperation(ctx context.Context, req LockRequest) (*types.BridgeTransaction, error) {
	if req.Amount == nil || req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("non-positive lock amount")
	}
	if _, err := o.rates.Lookup(req.SourceToken, req.TargetToken); err != nil {
		return nil, err
	}

	b, err := o.chains.Resolve(req.SourceChainID)
	if err != nil {
		return nil, err
	}
	if _, err := o.chains.Resolve(req.TargetChainID); err != nil {
		return nil, err
	}
	opts, err := o.chains.Transactor(ctx, req.SourceChainID)
	if err != nil {
		return nil, err
	}
	sender := opts.From

	if err := o.checkLockFunds(ctx, b, req, sender); err != nil {
		return nil, err
	}

	nonce := hashing.Nonce(sender)
	timestamp := uint64(time.Now().Unix())
	lockHash := hashing.LockHash(hashing.LockParams{
		SourceToken:   req.SourceToken,
		TargetToken:   req.TargetToken,
		Sender:        sender,
		Recipient:     req.Recipient,
		Amount:        req.Amount,
		Nonce:         nonce,
		SourceChainID: req.SourceChainID,
		TargetChainID: req.TargetChainID,
	}, timestamp)

	rec, err := o.store.Create(&types.BridgeTransaction{
		ID:            uuid.NewString(),
		SourceChainID: req.SourceChainID,
		TargetChainID: req.TargetChainID,
		SourceToken:   req.SourceToken.Hex(),
		TargetToken:   req.TargetToken.Hex(),
		Amount:        req.Amount.String(),
		Sender:        sender.Hex(),
		Recipient:     req.Recipient.Hex(),
		Nonce:         nonce,
		LockHash:      lockHash.Hex(),
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	if req.SourceToken == (common.Address{}) {
		opts.Value = req.Amount
	}
	tx, err := b.Bridge.LockTokens(opts, req.SourceToken, req.TargetToken, req.Amount,
		req.Recipient, big.NewInt(req.SourceChainID), big.NewInt(req.TargetChainID), [32]byte(lockHash))
	if err != nil {
		return nil, o.fail(rec.ID, fmt.Errorf("%w: lockTokens: %v", types.ErrOnChainCallFailed, err))
	}
	o.logger.Info("lock submitted",
		zap.Int64("chain", req.SourceChainID),
		zap.String("tx", tx.Hash().Hex()),
		zap.String("lockHash", lockHash.Hex()))

	receipt, err := bind.WaitMined(ctx, b.Client, tx)
	if err != nil {
		return nil, o.fail(rec.ID, fmt.Errorf("%w: wait mined %s: %v", types.ErrOnChainCallFailed, tx.Hash().Hex(), err))
	}
	if receipt.Status != 1 {
		return nil, o.fail(rec.ID, fmt.Errorf("%w: lock %s reverted", types.ErrOnChainCallFailed, tx.Hash().Hex()))
	}

	return o.confirmLock(rec.ID, tx.Hash().Hex())
}

// confirmLock records inclusion of the source-chain lock transaction. The
// event watch observes this service's own locks, so by the time the receipt
// wait returns the record may already have advanced past LOCKED, or even
// finished. That concurrent progress is success for the submitter; only a
// record that moved on under a different source transaction is an error.
func (o *Orchestrator) confirmLock(id, txHash string) (*types.BridgeTransaction, error) {
	rec, err := o.store.Update(id, store.Patch{
		Status:       store.StatusPtr(types.StatusLocked),
		SourceTxHash: store.StringPtr(txHash),
	})
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, types.ErrInvalidTransition) && !errors.Is(err, types.ErrHashAlreadySet) {
		return nil, err
	}

	cur, gerr := o.store.Get(id)
	if gerr != nil {
		return nil, err
	}
	if strings.EqualFold(cur.SourceTxHash, txHash) {
		return cur, nil
	}
	return nil, err
}

// checkLockFunds verifies balance and, for ERC-20 locks, bridge allowance
// before anything is signed.
func (o *Orchestrator) checkLockFunds(ctx context.Context, b *registry.Binding, req LockRequest, sender common.Address) error {
	callOpts := &bind.CallOpts{Context: ctx}
	if req.SourceToken == (common.Address{}) {
		balance, err := b.Client.BalanceAt(ctx, sender, nil)
		if err != nil {
			return fmt.Errorf("%w: balance: %v", types.ErrOnChainCallFailed, err)
		}
		if balance.Cmp(req.Amount) < 0 {
			return fmt.Errorf("%w: have %s, need %s", types.ErrInsufficientBalance, balance, req.Amount)
		}
		return nil
	}

	erc20, err := ierc20.NewIerc20(req.SourceToken, b.Client)
	if err != nil {
		return fmt.Errorf("%w: bind token: %v", types.ErrOnChainCallFailed, err)
	}
	balance, err := erc20.BalanceOf(callOpts, sender)
	if err != nil {
		return fmt.Errorf("%w: balanceOf: %v", types.ErrOnChainCallFailed, err)
	}
	if balance.Cmp(req.Amount) < 0 {
		return fmt.Errorf("%w: have %s, need %s", types.ErrInsufficientBalance, balance, req.Amount)
	}
	allowance, err := erc20.Allowance(callOpts, sender, b.BridgeAddress())
	if err != nil {
		return fmt.Errorf("%w: allowance: %v", types.ErrOnChainCallFailed, err)
	}
	if allowance.Cmp(req.Amount) < 0 {
		return fmt.Errorf("bridge allowance %s below amount %s for %s",
			allowance, req.Amount, req.SourceToken.Hex())
	}
	return nil
}

// HandleObservedLock drives one observed lock event to a release on the
// target chain. It is safe against duplicate delivery of the same event and
// against two processes observing it concurrently: the per-hash lease
// serializes the flows and the persisted record decides what remains to do.
func (o *Orchestrator) HandleObservedLock(ctx context.Context, ev *types.LockEvent) error {
	hash := ev.LockHash.Hex()

	held, err := o.store.AcquireHashLease(hash, hashLeaseTTL)
	if err != nil {
		return fmt.Errorf("acquire lease: %w", err)
	}
	if !held {
		o.logger.Debug("lock already being processed", zap.String("lockHash", hash))
		return nil
	}
	defer func() {
		if err := o.store.ReleaseHashLease(hash); err != nil {
			o.logger.Warn("lease release failed", zap.String("lockHash", hash), zap.Error(err))
		}
	}()

	rec, err := o.findOrCreateRecord(ev, hash)
	if err != nil {
		return err
	}
	if rec == nil {
		// terminal record, nothing to do
		return nil
	}

	if err := o.release(ctx, rec, ev.TxHash); err != nil {
		return o.fail(rec.ID, err)
	}
	return nil
}

// findOrCreateRecord reconciles the event with the store. The result is nil
// when the operation already finished; otherwise a record in LOCKED or
// RELEASING with SourceTxHash set.
func (o *Orchestrator) findOrCreateRecord(ev *types.LockEvent, hash string) (*types.BridgeTransaction, error) {
	matches, err := o.store.FindByHash(hash)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("find by hash: %w", err)
	}

	if len(matches) == 0 {
		// lock executed outside this service; adopt it
		rec, err := o.store.Create(&types.BridgeTransaction{
			ID:            uuid.NewString(),
			SourceChainID: ev.SourceChainID,
			TargetChainID: ev.TargetChainID,
			SourceToken:   ev.SourceToken.Hex(),
			TargetToken:   ev.TargetToken.Hex(),
			Amount:        ev.Amount.String(),
			Sender:        ev.Sender.Hex(),
			Recipient:     ev.Recipient.Hex(),
			LockHash:      hash,
		})
		if err != nil {
			return nil, fmt.Errorf("create record: %w", err)
		}
		return o.store.Update(rec.ID, store.Patch{
			Status:       store.StatusPtr(types.StatusLocked),
			SourceTxHash: store.StringPtr(ev.TxHash.Hex()),
		})
	}

	rec := matches[0]
	switch rec.Status {
	case types.StatusCompleted, types.StatusFailed:
		o.logger.Debug("observed lock for finished operation",
			zap.String("id", rec.ID), zap.String("status", string(rec.Status)))
		return nil, nil
	case types.StatusPending:
		// confirmation of a lock this service submitted
		return o.store.Update(rec.ID, store.Patch{
			Status:       store.StatusPtr(types.StatusLocked),
			SourceTxHash: store.StringPtr(ev.TxHash.Hex()),
		})
	default:
		return rec, nil
	}
}

// release drives a LOCKED or RELEASING record to COMPLETED. The release
// hash is computed once and persisted before submission, so a retry after a
// crash reuses the same hash and the contract's processed-hash register can
// recognize the duplicate.
func (o *Orchestrator) release(ctx context.Context, rec *types.BridgeTransaction, lockTxHash common.Hash) error {
	sourceToken := common.HexToAddress(rec.SourceToken)
	targetToken := common.HexToAddress(rec.TargetToken)

	rate, err := o.rates.Lookup(sourceToken, targetToken)
	if err != nil {
		return err
	}
	amount, ok := rec.AmountBig()
	if !ok {
		return fmt.Errorf("corrupt amount %q on record %s", rec.Amount, rec.ID)
	}
	releaseAmount := rate.Apply(amount)
	if releaseAmount.Sign() <= 0 {
		return fmt.Errorf("release amount rounds to zero for %s at rate %s", rec.Amount, rate)
	}

	var releaseHash common.Hash
	if rec.ReleaseHash != "" {
		releaseHash = common.HexToHash(rec.ReleaseHash)
	} else {
		nonce := rec.Nonce
		if nonce == 0 {
			nonce = hashing.Nonce(common.HexToAddress(rec.Sender))
		}
		releaseHash = hashing.ReleaseHash(hashing.ReleaseParams{
			Token:         targetToken,
			Sender:        common.HexToAddress(rec.Sender),
			Recipient:     common.HexToAddress(rec.Recipient),
			Amount:        releaseAmount,
			Nonce:         nonce,
			LockTxHash:    lockTxHash,
			SourceChainID: rec.SourceChainID,
			TargetChainID: rec.TargetChainID,
		}, uint64(time.Now().Unix()))
	}

	if rec.Status == types.StatusLocked {
		rec, err = o.store.Update(rec.ID, store.Patch{
			Status:      store.StatusPtr(types.StatusReleasing),
			ReleaseHash: store.StringPtr(releaseHash.Hex()),
		})
		if err != nil {
			return fmt.Errorf("mark releasing: %w", err)
		}
	}

	targetTxHash, err := o.relayer.Release(ctx, rec.TargetChainID, targetToken,
		releaseAmount, common.HexToAddress(rec.Recipient), releaseHash)
	if errors.Is(err, types.ErrAlreadyProcessed) {
		// the contract saw this hash before; a previous attempt landed
		o.logger.Info("release already processed on chain",
			zap.String("id", rec.ID), zap.String("releaseHash", releaseHash.Hex()))
		_, uerr := o.store.Update(rec.ID, store.Patch{
			Status: store.StatusPtr(types.StatusCompleted),
		})
		return uerr
	}
	if err != nil {
		return err
	}

	_, err = o.store.Update(rec.ID, store.Patch{
		Status:       store.StatusPtr(types.StatusCompleted),
		TargetTxHash: store.StringPtr(targetTxHash.Hex()),
	})
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	o.logger.Info("bridge operation completed",
		zap.String("id", rec.ID),
		zap.Int64("targetChain", rec.TargetChainID),
		zap.String("targetTx", targetTxHash.Hex()))
	return nil
}

// fail moves the record to FAILED with the cause attached, then hands the
// cause back for propagation.
func (o *Orchestrator) fail(id string, cause error) error {
	if _, err := o.store.Update(id, store.Patch{
		Status:       store.StatusPtr(types.StatusFailed),
		ErrorMessage: store.StringPtr(cause.Error()),
	}); err != nil {
		o.logger.Error("failed to record failure", zap.String("id", id), zap.Error(err))
	}
	return cause
}
