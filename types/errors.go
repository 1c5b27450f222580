package types

import "errors"

// Error taxonomy for the bridge core. Callers discriminate with errors.Is;
// wrapped variants carry the chain/hash context.
var (
	ErrUnsupportedChain      = errors.New("unsupported chain")
	ErrNoConversionRate      = errors.New("no conversion rate configured for token pair")
	ErrInsufficientLiquidity = errors.New("insufficient liquidity on target chain")
	ErrInsufficientBalance   = errors.New("insufficient balance or allowance")
	ErrInvalidSignature      = errors.New("invalid signature or hash")
	// ErrAlreadyProcessed is an idempotent no-op, not a failure: the hash was
	// already consumed and the caller has nothing left to do.
	ErrAlreadyProcessed      = errors.New("hash already processed")
	ErrMaxReconnectAttempts  = errors.New("max reconnect attempts exceeded")
	ErrUnpredictableGas      = errors.New("gas estimation failed")
	ErrOnChainCallFailed     = errors.New("on-chain call failed")
	ErrNotFound              = errors.New("record not found")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrHashAlreadySet        = errors.New("transaction hash already recorded")
	ErrEventTimeout          = errors.New("timed out waiting for event")
	ErrWatcherStopped        = errors.New("watcher stopped")
)
