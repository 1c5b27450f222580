package bridge

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"gotokenbridge/store"
	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type releaseCall struct {
	chainID     int64
	token       common.Address
	amount      *big.Int
	recipient   common.Address
	releaseHash common.Hash
}

type fakeReleaser struct {
	mu     sync.Mutex
	calls  []releaseCall
	err    error
	txHash common.Hash
}

func (f *fakeReleaser) Release(ctx context.Context, targetChainID int64, token common.Address, amount *big.Int, recipient common.Address, releaseHash common.Hash) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, releaseCall{
		chainID:     targetChainID,
		token:       token,
		amount:      new(big.Int).Set(amount),
		recipient:   recipient,
		releaseHash: releaseHash,
	})
	if f.err != nil {
		return common.Hash{}, f.err
	}
	return f.txHash, nil
}

func (f *fakeReleaser) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var (
	tokenBase    = common.HexToAddress("0x6206072722b2b6B4f0E07fa43eB1A4942009615a")
	tokenSepolia = common.HexToAddress("0x22DD04E9a1922e9b6310035bD9b4800c17Bb77b7")
	alice        = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob          = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func identityRates() RateTable {
	return RateTable{
		"0x6206072722b2b6b4f0e07fa43eb1a4942009615a:0x22dd04e9a1922e9b6310035bd9b4800c17bb77b7": "1",
	}
}

func lockEvent(amount *big.Int, suffix byte) *types.LockEvent {
	return &types.LockEvent{
		SourceToken:   tokenBase,
		TargetToken:   tokenSepolia,
		Amount:        amount,
		Sender:        alice,
		Recipient:     bob,
		SourceChainID: 84532,
		TargetChainID: 11155111,
		LockHash:      common.Hash{0xab, suffix},
		TxHash:        common.Hash{0xcd, suffix},
	}
}

func newTestOrchestrator(t *testing.T, relayer Releaser, rates RateTable) (*Orchestrator, *store.MemoryStore) {
	st := store.NewMemoryStore(store.NopNotifier{})
	return NewOrchestrator(st, nil, relayer, rates, zaptest.NewLogger(t)), st
}

func TestObservedLockCompletesRelease(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	ev := lockEvent(big.NewInt(1e6), 0x01)
	require.NoError(t, o.HandleObservedLock(context.Background(), ev))

	require.Equal(t, 1, relayer.callCount())
	call := relayer.calls[0]
	assert.Equal(t, int64(11155111), call.chainID)
	assert.Equal(t, tokenSepolia, call.token)
	assert.Equal(t, "1000000", call.amount.String())
	assert.Equal(t, bob, call.recipient)

	recs, err := st.FindByHash(ev.LockHash.Hex())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, types.StatusCompleted, rec.Status)
	assert.Equal(t, ev.TxHash.Hex(), rec.SourceTxHash)
	assert.Equal(t, common.Hash{0xee}.Hex(), rec.TargetTxHash)
	assert.Equal(t, call.releaseHash.Hex(), rec.ReleaseHash)
}

func TestDuplicateObservedLockSubmitsOnce(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	ev := lockEvent(big.NewInt(1e6), 0x02)
	require.NoError(t, o.HandleObservedLock(context.Background(), ev))
	require.NoError(t, o.HandleObservedLock(context.Background(), ev))

	assert.Equal(t, 1, relayer.callCount())
	recs, err := st.FindByHash(ev.LockHash.Hex())
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestConversionRateApplied(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	rates := RateTable{
		"0x6206072722b2b6b4f0e07fa43eb1a4942009615a:0x22dd04e9a1922e9b6310035bd9b4800c17bb77b7": "0.0005",
	}
	o, _ := newTestOrchestrator(t, relayer, rates)

	amount := mustBig(t, "100000000000000000000") // 100 tokens
	require.NoError(t, o.HandleObservedLock(context.Background(), lockEvent(amount, 0x03)))

	require.Equal(t, 1, relayer.callCount())
	assert.Equal(t, "50000000000000000", relayer.calls[0].amount.String())
}

func TestMissingRateMarksFailed(t *testing.T) {
	relayer := &fakeReleaser{}
	o, st := newTestOrchestrator(t, relayer, RateTable{})

	ev := lockEvent(big.NewInt(1e6), 0x04)
	err := o.HandleObservedLock(context.Background(), ev)
	require.ErrorIs(t, err, types.ErrNoConversionRate)

	assert.Equal(t, 0, relayer.callCount())
	recs, ferr := st.FindByHash(ev.LockHash.Hex())
	require.NoError(t, ferr)
	require.Len(t, recs, 1)
	assert.Equal(t, types.StatusFailed, recs[0].Status)
	assert.Contains(t, recs[0].ErrorMessage, "no conversion rate")
}

func TestInsufficientLiquidityMarksFailed(t *testing.T) {
	relayer := &fakeReleaser{err: types.ErrInsufficientLiquidity}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	ev := lockEvent(big.NewInt(1e6), 0x05)
	err := o.HandleObservedLock(context.Background(), ev)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	recs, ferr := st.FindByHash(ev.LockHash.Hex())
	require.NoError(t, ferr)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, types.StatusFailed, rec.Status)
	assert.Empty(t, rec.TargetTxHash)
}

func TestAlreadyProcessedOnChainCompletes(t *testing.T) {
	relayer := &fakeReleaser{err: types.ErrAlreadyProcessed}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	ev := lockEvent(big.NewInt(1e6), 0x06)
	require.NoError(t, o.HandleObservedLock(context.Background(), ev))

	recs, err := st.FindByHash(ev.LockHash.Hex())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, types.StatusCompleted, recs[0].Status)
}

func TestHeldLeaseSkipsProcessing(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	ev := lockEvent(big.NewInt(1e6), 0x07)
	held, err := st.AcquireHashLease(ev.LockHash.Hex(), hashLeaseTTL)
	require.NoError(t, err)
	require.True(t, held)

	require.NoError(t, o.HandleObservedLock(context.Background(), ev))
	assert.Equal(t, 0, relayer.callCount())
}

func TestObservedLockConfirmsOwnPendingRecord(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	ev := lockEvent(big.NewInt(1e6), 0x08)
	pending, err := st.Create(&types.BridgeTransaction{
		ID:            "own-lock",
		SourceChainID: ev.SourceChainID,
		TargetChainID: ev.TargetChainID,
		SourceToken:   ev.SourceToken.Hex(),
		TargetToken:   ev.TargetToken.Hex(),
		Amount:        ev.Amount.String(),
		Sender:        ev.Sender.Hex(),
		Recipient:     ev.Recipient.Hex(),
		Nonce:         42,
		LockHash:      ev.LockHash.Hex(),
	})
	require.NoError(t, err)
	require.Equal(t, types.StatusPending, pending.Status)

	require.NoError(t, o.HandleObservedLock(context.Background(), ev))

	rec, err := st.Get("own-lock")
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, rec.Status)
	assert.Equal(t, ev.TxHash.Hex(), rec.SourceTxHash)
	assert.Equal(t, 1, relayer.callCount())
}

func TestConfirmLockAfterWatchFlowFinished(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	// the submit path created the record and is waiting on the receipt
	ev := lockEvent(big.NewInt(1e6), 0x09)
	_, err := st.Create(&types.BridgeTransaction{
		ID:            "race-lock",
		SourceChainID: ev.SourceChainID,
		TargetChainID: ev.TargetChainID,
		SourceToken:   ev.SourceToken.Hex(),
		TargetToken:   ev.TargetToken.Hex(),
		Amount:        ev.Amount.String(),
		Sender:        ev.Sender.Hex(),
		Recipient:     ev.Recipient.Hex(),
		Nonce:         77,
		LockHash:      ev.LockHash.Hex(),
	})
	require.NoError(t, err)

	// the event watch sees the mined lock first and finishes the release
	require.NoError(t, o.HandleObservedLock(context.Background(), ev))
	done, err := st.Get("race-lock")
	require.NoError(t, err)
	require.Equal(t, types.StatusCompleted, done.Status)

	// now the receipt wait returns and tries to mark LOCKED
	rec, err := o.confirmLock("race-lock", ev.TxHash.Hex())
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, rec.Status)
	assert.Equal(t, ev.TxHash.Hex(), rec.SourceTxHash)
	assert.Equal(t, common.Hash{0xee}.Hex(), rec.TargetTxHash)
}

func TestConfirmLockPlainPath(t *testing.T) {
	relayer := &fakeReleaser{}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	_, err := st.Create(&types.BridgeTransaction{
		ID:       "plain-lock",
		Amount:   "1",
		LockHash: common.Hash{0x31}.Hex(),
	})
	require.NoError(t, err)

	rec, err := o.confirmLock("plain-lock", common.Hash{0x32}.Hex())
	require.NoError(t, err)
	assert.Equal(t, types.StatusLocked, rec.Status)
	assert.Equal(t, common.Hash{0x32}.Hex(), rec.SourceTxHash)
}

func TestConfirmLockRejectsForeignSourceTx(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	ev := lockEvent(big.NewInt(1e6), 0x0a)
	require.NoError(t, o.HandleObservedLock(context.Background(), ev))
	recs, err := st.FindByHash(ev.LockHash.Hex())
	require.NoError(t, err)
	require.Len(t, recs, 1)

	_, err = o.confirmLock(recs[0].ID, common.Hash{0x99}.Hex())
	require.Error(t, err)
}

func TestRecoveryRedrivesStuckReleasing(t *testing.T) {
	relayer := &fakeReleaser{txHash: common.Hash{0xee}}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	stuckHash := common.Hash{0xaa}.Hex()
	rec, err := st.Create(&types.BridgeTransaction{
		ID:            "stuck",
		SourceChainID: 84532,
		TargetChainID: 11155111,
		SourceToken:   tokenBase.Hex(),
		TargetToken:   tokenSepolia.Hex(),
		Amount:        "1000000",
		Sender:        alice.Hex(),
		Recipient:     bob.Hex(),
		LockHash:      stuckHash,
	})
	require.NoError(t, err)
	_, err = st.Update(rec.ID, store.Patch{
		Status:       store.StatusPtr(types.StatusLocked),
		SourceTxHash: store.StringPtr(common.Hash{0xbb}.Hex()),
	})
	require.NoError(t, err)
	_, err = st.Update(rec.ID, store.Patch{
		Status:      store.StatusPtr(types.StatusReleasing),
		ReleaseHash: store.StringPtr(common.Hash{0xcc}.Hex()),
	})
	require.NoError(t, err)

	rec, err = st.Get(rec.ID)
	require.NoError(t, err)
	require.NoError(t, o.recoverRecord(context.Background(), rec))

	// the persisted release hash must be reused, not recomputed
	require.Equal(t, 1, relayer.callCount())
	assert.Equal(t, common.Hash{0xcc}, relayer.calls[0].releaseHash)

	final, err := st.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, final.Status)
	assert.Equal(t, common.Hash{0xee}.Hex(), final.TargetTxHash)
}

func TestRecoverySkipsTerminalRecords(t *testing.T) {
	relayer := &fakeReleaser{}
	o, st := newTestOrchestrator(t, relayer, identityRates())

	rec, err := st.Create(&types.BridgeTransaction{
		ID:       "done",
		Amount:   "1",
		LockHash: common.Hash{0x01}.Hex(),
	})
	require.NoError(t, err)
	_, err = st.Update(rec.ID, store.Patch{Status: store.StatusPtr(types.StatusFailed)})
	require.NoError(t, err)

	rec, err = st.Get(rec.ID)
	require.NoError(t, err)
	require.NoError(t, o.recoverRecord(context.Background(), rec))
	assert.Equal(t, 0, relayer.callCount())
}
