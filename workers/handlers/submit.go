package handlers

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"

	"gotokenbridge/bridge"

	ethav "github.com/KOREAN139/ethereum-address-validator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

type BridgeRequest struct {
	SourceChainID int64  `json:"sourceChainId"`
	TargetChainID int64  `json:"targetChainId"`
	SourceToken   string `json:"sourceToken"`
	TargetToken   string `json:"targetToken"`
	Amount        string `json:"amount"`
	Recipient     string `json:"recipient"`
	// Signature is a personal-sign of the recipient address by the
	// requesting wallet, proving control over the payout destination.
	Signer    string `json:"signer"`
	Signature string `json:"signature"`
}

// Submit executes a lock on the source chain and returns the created
// transaction record. The response carries the record in whatever status it
// reached; a FAILED record includes the cause.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Error reading request body",
		}, http.StatusBadRequest)
		return
	}

	var req BridgeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Cannot unmarshal input JSON",
		}, http.StatusBadRequest)
		return
	}

	for field, addr := range map[string]string{
		"sourceToken": req.SourceToken,
		"targetToken": req.TargetToken,
		"recipient":   req.Recipient,
		"signer":      req.Signer,
	} {
		if err := ethav.Validate(common.HexToAddress(addr).Hex()); err != nil {
			h.Logger.Warn("invalid address in bridge request",
				zap.String("field", field), zap.String("value", addr))
			responseJSON(w, &APIResponse{
				Status:  "error",
				Field:   field,
				Message: "No ethereum address or invalid address provided",
			}, http.StatusBadRequest)
			return
		}
	}

	amount, ok := new(big.Int).SetString(strings.TrimSpace(req.Amount), 10)
	if !ok || amount.Sign() <= 0 {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "amount",
			Message: "Amount must be a positive integer in token base units",
		}, http.StatusBadRequest)
		return
	}

	if _, err := h.Chains.Resolve(req.SourceChainID); err != nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "sourceChainId",
			Message: "Source chain not supported",
		}, http.StatusBadRequest)
		return
	}
	if _, err := h.Chains.Resolve(req.TargetChainID); err != nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "targetChainId",
			Message: "Target chain not supported",
		}, http.StatusBadRequest)
		return
	}

	address, err := validateMsgSignature(req.Recipient, req.Signature)
	if err != nil || address == nil {
		h.Logger.Warn("signature recovery failed", zap.Error(err))
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "signature",
			Message: "No signature or malformed signature provided",
		}, http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(req.Signer, address.Hex()) {
		h.Logger.Warn("signature does not match signer",
			zap.String("recovered", address.Hex()),
			zap.String("provided", req.Signer))
		responseJSON(w, &APIResponse{
			Status:  "error",
			Field:   "signature",
			Message: "Signature does not match the address provided",
		}, http.StatusBadRequest)
		return
	}

	rec, err := h.Orchestrator.ExecuteLockOperation(r.Context(), bridge.LockRequest{
		SourceChainID: req.SourceChainID,
		TargetChainID: req.TargetChainID,
		SourceToken:   common.HexToAddress(req.SourceToken),
		TargetToken:   common.HexToAddress(req.TargetToken),
		Amount:        amount,
		Recipient:     common.HexToAddress(req.Recipient),
	})
	if err != nil {
		h.Logger.Error("lock operation failed", zap.Error(err))
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: err.Error(),
		}, http.StatusUnprocessableEntity)
		return
	}

	responseJSON(w, rec, http.StatusOK)
}

func prefixHash(data []byte) common.Hash {
	msg := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(data), data)
	return crypto.Keccak256Hash([]byte(msg))
}

func publicKeyBytesToAddress(publicKey []byte) *common.Address {
	if len(publicKey) < 1 {
		return nil
	}

	hash := crypto.Keccak256Hash(publicKey[1:]).Bytes()
	address := hash[12:]

	addr := common.HexToAddress(hex.EncodeToString(address))
	return &addr
}

func validateMsgSignature(msg string, sig string) (*common.Address, error) {
	sigBytes, err := hexutil.Decode(sig)
	if err != nil {
		return nil, fmt.Errorf("invalid signature hex")
	}
	if len(sigBytes) != 65 {
		return nil, fmt.Errorf("wrong signature length")
	}

	if sigBytes[64] != 27 && sigBytes[64] != 28 && sigBytes[64] != 0 && sigBytes[64] != 1 {
		return nil, fmt.Errorf("wrong signature checksum")
	}
	if sigBytes[64] == 27 || sigBytes[64] == 28 {
		sigBytes[64] = sigBytes[64] - 27
	}

	msgHash := prefixHash([]byte(msg))
	sigPublicKey, err := crypto.Ecrecover(msgHash.Bytes(), sigBytes)
	if err != nil {
		return nil, fmt.Errorf("cannot decode public key")
	}

	return publicKeyBytesToAddress(sigPublicKey), nil
}
