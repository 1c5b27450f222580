package store

import (
	"sync"
	"testing"
	"time"

	"gotokenbridge/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	mu  sync.Mutex
	txs []*types.BridgeTransaction
}

func (c *captureNotifier) OnTransactionUpdated(tx *types.BridgeTransaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.txs = append(c.txs, tx)
}

func newTx() *types.BridgeTransaction {
	return &types.BridgeTransaction{
		SourceChainID: 84532,
		TargetChainID: 11155111,
		SourceToken:   "0x62060727308449B9347f5649Ea7495C061009615",
		Amount:        "1000000000000000000",
		Sender:        "0x0500DE79c6Aa801936cA05D798C9E7468b6739C6",
		Recipient:     "0x865639b103B5cb25Db1C8703a02a64449dA4d038",
		Nonce:         42,
		LockHash:      "0xAB12",
	}
}

func TestCreateStartsPending(t *testing.T) {
	s := NewMemoryStore(nil)
	tx, err := s.Create(newTx())
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, tx.Status)
	assert.NotEmpty(t, tx.ID)
	assert.NotZero(t, tx.CreatedAt)
}

func TestStatusTransitionsMonotonic(t *testing.T) {
	s := NewMemoryStore(nil)
	tx, err := s.Create(newTx())
	require.NoError(t, err)

	for _, next := range []types.Status{types.StatusLocked, types.StatusReleasing, types.StatusCompleted} {
		tx, err = s.Update(tx.ID, Patch{Status: StatusPtr(next)})
		require.NoError(t, err)
		assert.Equal(t, next, tx.Status)
	}

	// terminal: no more moves, not even regression to PENDING
	_, err = s.Update(tx.ID, Patch{Status: StatusPtr(types.StatusPending)})
	require.ErrorIs(t, err, types.ErrInvalidTransition)
	_, err = s.Update(tx.ID, Patch{Status: StatusPtr(types.StatusFailed)})
	require.ErrorIs(t, err, types.ErrInvalidTransition)
}

func TestFailedReachableFromAnyNonTerminal(t *testing.T) {
	s := NewMemoryStore(nil)
	for _, from := range []types.Status{types.StatusPending, types.StatusLocked, types.StatusReleasing} {
		tx, err := s.Create(newTx())
		require.NoError(t, err)
		if from != types.StatusPending {
			tx, err = s.Update(tx.ID, Patch{Status: StatusPtr(types.StatusLocked)})
			require.NoError(t, err)
		}
		if from == types.StatusReleasing {
			tx, err = s.Update(tx.ID, Patch{Status: StatusPtr(types.StatusReleasing)})
			require.NoError(t, err)
		}
		tx, err = s.Update(tx.ID, Patch{Status: StatusPtr(types.StatusFailed), ErrorMessage: StringPtr("boom")})
		require.NoError(t, err)
		assert.Equal(t, types.StatusFailed, tx.Status)
		assert.Equal(t, "boom", tx.ErrorMessage)
	}
}

func TestTxHashesWriteOnce(t *testing.T) {
	s := NewMemoryStore(nil)
	tx, err := s.Create(newTx())
	require.NoError(t, err)

	tx, err = s.Update(tx.ID, Patch{Status: StatusPtr(types.StatusLocked), SourceTxHash: StringPtr("0x01")})
	require.NoError(t, err)

	// same value is an idempotent re-write
	_, err = s.Update(tx.ID, Patch{SourceTxHash: StringPtr("0x01")})
	require.NoError(t, err)

	_, err = s.Update(tx.ID, Patch{SourceTxHash: StringPtr("0x02")})
	require.ErrorIs(t, err, types.ErrHashAlreadySet)
}

func TestFindByEitherHash(t *testing.T) {
	s := NewMemoryStore(nil)
	tx, err := s.Create(newTx())
	require.NoError(t, err)

	got, err := s.FindByHash("0xab12") // case-insensitive
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tx.ID, got[0].ID)

	_, err = s.Update(tx.ID, Patch{ReleaseHash: StringPtr("0xCD34")})
	require.NoError(t, err)

	got, err = s.FindByHash("0xcd34")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tx.ID, got[0].ID)

	got, err = s.FindByHash("0xffff")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdateNotFound(t *testing.T) {
	s := NewMemoryStore(nil)
	_, err := s.Update("no-such-id", Patch{Status: StatusPtr(types.StatusLocked)})
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateNotifies(t *testing.T) {
	n := &captureNotifier{}
	s := NewMemoryStore(n)
	tx, err := s.Create(newTx())
	require.NoError(t, err)

	_, err = s.Update(tx.ID, Patch{Status: StatusPtr(types.StatusLocked)})
	require.NoError(t, err)

	require.Len(t, n.txs, 1)
	assert.Equal(t, types.StatusLocked, n.txs[0].Status)
	assert.Equal(t, tx.ID, n.txs[0].ID)
}

func TestHashLeaseExclusive(t *testing.T) {
	s := NewMemoryStore(nil)

	ok, err := s.AcquireHashLease("0xAB", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.AcquireHashLease("0xab", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must be refused while lease held")

	require.NoError(t, s.ReleaseHashLease("0xAB"))

	ok, err = s.AcquireHashLease("0xab", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashLeaseExpires(t *testing.T) {
	s := NewMemoryStore(nil)

	ok, err := s.AcquireHashLease("0x01", 10*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	ok, err = s.AcquireHashLease("0x01", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFindByStatus(t *testing.T) {
	s := NewMemoryStore(nil)
	a, err := s.Create(newTx())
	require.NoError(t, err)
	b := newTx()
	b.LockHash = "0xEE55"
	_, err = s.Create(b)
	require.NoError(t, err)

	_, err = s.Update(a.ID, Patch{Status: StatusPtr(types.StatusLocked)})
	require.NoError(t, err)

	locked, err := s.FindByStatus(types.StatusLocked)
	require.NoError(t, err)
	require.Len(t, locked, 1)
	assert.Equal(t, a.ID, locked[0].ID)

	pending, err := s.FindByStatus(types.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}
