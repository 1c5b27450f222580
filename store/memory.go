package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gotokenbridge/types"

	"github.com/google/uuid"
)

// MemoryStore is the non-persistent Store used by tests and local
// development. Semantics mirror RedisStore exactly, including lease
// expiry and hash indexing.
type MemoryStore struct {
	notifier Notifier

	mu      sync.Mutex
	records map[string]*types.BridgeTransaction
	byHash  map[string]string // lowercase hash -> id
	leases  map[string]time.Time
	cursors map[int64]int64
}

func NewMemoryStore(notifier Notifier) *MemoryStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &MemoryStore{
		notifier: notifier,
		records:  make(map[string]*types.BridgeTransaction),
		byHash:   make(map[string]string),
		leases:   make(map[string]time.Time),
		cursors:  make(map[int64]int64),
	}
}

func (s *MemoryStore) Create(tx *types.BridgeTransaction) (*types.BridgeTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Status == "" {
		tx.Status = types.StatusPending
	}
	now := time.Now().Unix()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	cp := *tx
	s.records[tx.ID] = &cp
	s.index(&cp)
	return tx, nil
}

func (s *MemoryStore) index(tx *types.BridgeTransaction) {
	if tx.LockHash != "" {
		s.byHash[strings.ToLower(tx.LockHash)] = tx.ID
	}
	if tx.ReleaseHash != "" {
		s.byHash[strings.ToLower(tx.ReleaseHash)] = tx.ID
	}
}

func (s *MemoryStore) Get(id string) (*types.BridgeTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", types.ErrNotFound, id)
	}
	cp := *tx
	return &cp, nil
}

func (s *MemoryStore) Update(id string, p Patch) (*types.BridgeTransaction, error) {
	s.mu.Lock()
	tx, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: transaction %s", types.ErrNotFound, id)
	}
	if err := applyPatch(tx, p); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.index(tx)
	cp := *tx
	s.mu.Unlock()

	// notify outside the lock; a notifier may call back into the store
	s.notifier.OnTransactionUpdated(&cp)
	return &cp, nil
}

func (s *MemoryStore) FindByHash(hash string) ([]*types.BridgeTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byHash[strings.ToLower(hash)]
	if !ok {
		return nil, nil
	}
	tx, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return []*types.BridgeTransaction{&cp}, nil
}

func (s *MemoryStore) FindByStatus(status types.Status) ([]*types.BridgeTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*types.BridgeTransaction
	for _, tx := range s.records {
		if tx.Status == status {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *MemoryStore) AcquireHashLease(hash string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(hash)
	if expiry, held := s.leases[key]; held && time.Now().Before(expiry) {
		return false, nil
	}
	s.leases[key] = time.Now().Add(ttl)
	return true, nil
}

func (s *MemoryStore) ReleaseHashLease(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leases, strings.ToLower(hash))
	return nil
}

func (s *MemoryStore) GetScannedBlock(chainID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.cursors[chainID]
	if !ok {
		return -1, nil
	}
	return h, nil
}

func (s *MemoryStore) SetScannedBlock(chainID int64, height int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors[chainID] = height
	return nil
}
