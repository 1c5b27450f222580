package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gotokenbridge/types"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// key layout:
//
//	bridgetx:<id>            JSON record
//	bridgetxs:<status>       SET of ids currently in <status>
//	bridgetxhash:<hash>      id owning the lock or release hash
//	hashlease:<hash>         short-lived exclusion lease (SET NX EX)
//	chainBlockScanned:<id>   backfill cursor per chain
type RedisStore struct {
	pool     *redis.Pool
	notifier Notifier
	logger   *zap.Logger
}

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

// NewRedisStore connects a pool to addr ("host:port"). The store does not
// ping eagerly; the first operation surfaces connectivity errors.
func NewRedisStore(addr string, notifier Notifier, logger *zap.Logger) *RedisStore {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &RedisStore{
		pool: &redis.Pool{
			MaxIdle: 5,
			Dial:    func() (redis.Conn, error) { return redis.Dial("tcp", addr, timeoutDialOptions()...) },
		},
		notifier: notifier,
		logger:   logger.Named("store"),
	}
}

func recordKey(id string) string         { return "bridgetx:" + id }
func statusSetKey(s types.Status) string { return "bridgetxs:" + string(s) }
func hashIndexKey(hash string) string    { return "bridgetxhash:" + strings.ToLower(hash) }
func leaseKey(hash string) string        { return "hashlease:" + strings.ToLower(hash) }
func cursorKey(chainID int64) string     { return fmt.Sprintf("chainBlockScanned:%d", chainID) }

func (s *RedisStore) Create(tx *types.BridgeTransaction) (*types.BridgeTransaction, error) {
	if tx == nil {
		return nil, errors.New("null object to store")
	}
	conn := s.pool.Get()
	defer conn.Close()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Status == "" {
		tx.Status = types.StatusPending
	}
	now := time.Now().Unix()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.write(conn, tx); err != nil {
		return nil, err
	}
	if _, err := conn.Do("SADD", statusSetKey(tx.Status), tx.ID); err != nil {
		s.logger.Error("redis SADD failed", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (s *RedisStore) Get(id string) (*types.BridgeTransaction, error) {
	conn := s.pool.Get()
	defer conn.Close()
	return s.get(conn, id)
}

func (s *RedisStore) get(conn redis.Conn, id string) (*types.BridgeTransaction, error) {
	raw, err := redis.Bytes(conn.Do("GET", recordKey(id)))
	if errors.Is(err, redis.ErrNil) {
		return nil, fmt.Errorf("%w: transaction %s", types.ErrNotFound, id)
	}
	if err != nil {
		s.logger.Error("redis GET failed", zap.Error(err))
		return nil, err
	}
	var tx types.BridgeTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("corrupt transaction record %s: %w", id, err)
	}
	return &tx, nil
}

func (s *RedisStore) write(conn redis.Conn, tx *types.BridgeTransaction) error {
	raw, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot marshal bridge transaction to JSON: %w", err)
	}
	if _, err := conn.Do("SET", recordKey(tx.ID), raw); err != nil {
		s.logger.Error("redis SET failed", zap.Error(err))
		return err
	}
	// hash index entries point back at the owning record
	if tx.LockHash != "" {
		if _, err := conn.Do("SET", hashIndexKey(tx.LockHash), tx.ID); err != nil {
			return err
		}
	}
	if tx.ReleaseHash != "" {
		if _, err := conn.Do("SET", hashIndexKey(tx.ReleaseHash), tx.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *RedisStore) Update(id string, p Patch) (*types.BridgeTransaction, error) {
	conn := s.pool.Get()
	defer conn.Close()

	tx, err := s.get(conn, id)
	if err != nil {
		return nil, err
	}

	prevStatus := tx.Status
	if err := applyPatch(tx, p); err != nil {
		return nil, err
	}

	if err := s.write(conn, tx); err != nil {
		return nil, err
	}
	if tx.Status != prevStatus {
		if _, err := conn.Do("SREM", statusSetKey(prevStatus), tx.ID); err != nil {
			s.logger.Error("redis SREM failed", zap.Error(err))
			return nil, err
		}
		if _, err := conn.Do("SADD", statusSetKey(tx.Status), tx.ID); err != nil {
			s.logger.Error("redis SADD failed", zap.Error(err))
			return nil, err
		}
	}

	s.notifier.OnTransactionUpdated(tx)
	return tx, nil
}

func (s *RedisStore) FindByHash(hash string) ([]*types.BridgeTransaction, error) {
	conn := s.pool.Get()
	defer conn.Close()

	id, err := redis.String(conn.Do("GET", hashIndexKey(hash)))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("redis GET failed", zap.Error(err))
		return nil, err
	}
	tx, err := s.get(conn, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			// dangling index entry, treat as no match
			return nil, nil
		}
		return nil, err
	}
	return []*types.BridgeTransaction{tx}, nil
}

func (s *RedisStore) FindByStatus(status types.Status) ([]*types.BridgeTransaction, error) {
	conn := s.pool.Get()
	defer conn.Close()

	var out []*types.BridgeTransaction
	var cursor int64
	for {
		values, err := redis.Values(conn.Do("SSCAN", statusSetKey(status), cursor))
		if err != nil {
			return nil, err
		}
		var ids []string
		if _, err := redis.Scan(values, &cursor, &ids); err != nil {
			return nil, err
		}
		for _, id := range ids {
			tx, err := s.get(conn, id)
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					continue
				}
				return nil, err
			}
			if tx.Status == status {
				out = append(out, tx)
			}
		}
		if cursor == 0 {
			break
		}
	}
	return out, nil
}

func (s *RedisStore) AcquireHashLease(hash string, ttl time.Duration) (bool, error) {
	conn := s.pool.Get()
	defer conn.Close()

	reply, err := conn.Do("SET", leaseKey(hash), "1", "NX", "EX", int(ttl.Seconds()))
	if err != nil {
		s.logger.Error("redis SET NX failed", zap.Error(err))
		return false, err
	}
	return reply != nil, nil
}

func (s *RedisStore) ReleaseHashLease(hash string) error {
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("DEL", leaseKey(hash))
	return err
}

// GetScannedBlock returns -1 when no cursor exists for the chain yet.
func (s *RedisStore) GetScannedBlock(chainID int64) (int64, error) {
	conn := s.pool.Get()
	defer conn.Close()

	height, err := redis.Int64(conn.Do("GET", cursorKey(chainID)))
	if errors.Is(err, redis.ErrNil) {
		return -1, nil
	}
	if err != nil {
		s.logger.Error("redis GET failed", zap.Error(err))
		return -1, err
	}
	return height, nil
}

func (s *RedisStore) SetScannedBlock(chainID int64, height int64) error {
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("SET", cursorKey(chainID), height)
	if err != nil {
		s.logger.Error("redis SET failed", zap.Error(err))
	}
	return err
}

// Close drains the connection pool.
func (s *RedisStore) Close() error {
	return s.pool.Close()
}
