// Package hashing implements the deterministic correlation-hash protocol
// shared with the on-chain bridge contracts. Both sides recompute the same
// solidity-packed keccak over canonical inputs; equality of the hashes is
// the sole authorization check on the release path.
package hashing

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// LockParams are the canonical inputs of a lock hash.
type LockParams struct {
	SourceToken   common.Address
	TargetToken   common.Address
	Sender        common.Address
	Recipient     common.Address
	Amount        *big.Int
	Nonce         uint64
	SourceChainID int64
	TargetChainID int64
}

// ReleaseParams are the canonical inputs of a release hash. LockTxHash binds
// the release to the transaction that performed the originating lock, so a
// release can never be replayed against a different lock.
type ReleaseParams struct {
	Token         common.Address
	Sender        common.Address
	Recipient     common.Address
	Amount        *big.Int
	Nonce         uint64
	LockTxHash    common.Hash
	SourceChainID int64
	TargetChainID int64
}

// LockHash computes the replay-protection hash recorded by the source-chain
// contract. Packed field order is fixed by the contract:
// (sourceToken, targetToken, sender, recipient, amount, nonce, timestamp,
// sourceChainId, targetChainId).
func LockHash(p LockParams, timestamp uint64) common.Hash {
	buf := make([]byte, 0, 4*20+5*32)
	buf = append(buf, p.SourceToken.Bytes()...)
	buf = append(buf, p.TargetToken.Bytes()...)
	buf = append(buf, p.Sender.Bytes()...)
	buf = append(buf, p.Recipient.Bytes()...)
	buf = append(buf, packUint256(p.Amount)...)
	buf = append(buf, packUint64(p.Nonce)...)
	buf = append(buf, packUint64(timestamp)...)
	buf = append(buf, packUint64(uint64(p.SourceChainID))...)
	buf = append(buf, packUint64(uint64(p.TargetChainID))...)
	return crypto.Keccak256Hash(buf)
}

// ReleaseHash computes the hash authorizing a release on the target chain.
// Packed field order: (token, sender, recipient, amount, nonce, timestamp,
// lockTxHash, sourceChainId, targetChainId).
func ReleaseHash(p ReleaseParams, timestamp uint64) common.Hash {
	buf := make([]byte, 0, 3*20+5*32+32)
	buf = append(buf, p.Token.Bytes()...)
	buf = append(buf, p.Sender.Bytes()...)
	buf = append(buf, p.Recipient.Bytes()...)
	buf = append(buf, packUint256(p.Amount)...)
	buf = append(buf, packUint64(p.Nonce)...)
	buf = append(buf, packUint64(timestamp)...)
	buf = append(buf, p.LockTxHash.Bytes()...)
	buf = append(buf, packUint64(uint64(p.SourceChainID))...)
	buf = append(buf, packUint64(uint64(p.TargetChainID))...)
	return crypto.Keccak256Hash(buf)
}

// Nonce derives a per-account request identifier by hashing the account with
// the current millisecond timestamp and a random salt, truncated to 32 bits.
// Uniqueness is probabilistic, not guaranteed; the surrounding hashes bind
// amount, parties and timestamp as well, so a colliding nonce alone does not
// yield a replayable hash.
func Nonce(account common.Address) uint64 {
	return nonceAt(account, uint64(time.Now().UnixMilli()), randomSalt())
}

func nonceAt(account common.Address, millis uint64, salt uint64) uint64 {
	buf := make([]byte, 0, 20+2*32)
	buf = append(buf, account.Bytes()...)
	buf = append(buf, packUint64(millis)...)
	buf = append(buf, packUint64(salt)...)
	sum := crypto.Keccak256(buf)
	return uint64(binary.BigEndian.Uint32(sum[:4]))
}

func randomSalt() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to time
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(b[:]) % 1000000
}

// packUint256 left-pads a big.Int to a 32-byte word.
func packUint256(v *big.Int) []byte {
	if v == nil {
		v = new(big.Int)
	}
	var word [32]byte
	v.FillBytes(word[:])
	return word[:]
}

func packUint64(v uint64) []byte {
	return packUint256(new(big.Int).SetUint64(v))
}
