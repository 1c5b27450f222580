package handlers

import (
	"math/big"
	"net/http"
	"strconv"

	"gotokenbridge/contracts/ierc20"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

// State reports every configured chain with the bridge's current liquidity
// per supported token.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp := APIStateResponse{Status: "ok"}

	for _, chainID := range h.Chains.ChainIDs() {
		b, err := h.Chains.Resolve(chainID)
		if err != nil {
			continue
		}
		state := APIChainState{
			ChainID:       chainID,
			Name:          b.Config.Name,
			BridgeAddress: b.Config.BridgeAddress,
			Liquidity:     map[string]string{},
		}
		for _, token := range b.Config.Tokens {
			balance, err := h.tokenLiquidity(r, chainID, common.HexToAddress(token.Address))
			if err != nil {
				h.Logger.Warn("liquidity read failed",
					zap.Int64("chain", chainID),
					zap.String("token", token.Symbol),
					zap.Error(err))
				state.Liquidity[token.Symbol] = "unavailable"
				continue
			}
			state.Liquidity[token.Symbol] = balance.String()
		}
		resp.Chains = append(resp.Chains, state)
	}

	responseJSON(w, resp, http.StatusOK)
}

// Balance returns the bridge contract's balance of one token as a plain
// decimal string, matching what block explorers show in base units.
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	chainID, err := strconv.ParseInt(chi.URLParam(r, "chainID"), 10, 64)
	if err != nil {
		responsePlain(w, []byte("bad chain id"), http.StatusBadRequest)
		return
	}
	token := common.HexToAddress(chi.URLParam(r, "token"))

	balance, err := h.tokenLiquidity(r, chainID, token)
	if err != nil {
		responsePlain(w, []byte("error"), http.StatusInternalServerError)
		return
	}
	responsePlain(w, []byte(balance.String()), http.StatusOK)
}

func (h *Handler) tokenLiquidity(r *http.Request, chainID int64, token common.Address) (*big.Int, error) {
	b, err := h.Chains.Resolve(chainID)
	if err != nil {
		return nil, err
	}
	if token == (common.Address{}) {
		return b.Client.BalanceAt(r.Context(), b.BridgeAddress(), nil)
	}
	erc20, err := ierc20.NewIerc20(token, b.Client)
	if err != nil {
		return nil, err
	}
	return erc20.BalanceOf(&bind.CallOpts{Context: r.Context()}, b.BridgeAddress())
}

// GetRates lists the configured conversion pairs, keyed by lowercase
// "sourceToken:targetToken".
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	responseJSON(w, h.Rates, http.StatusOK)
}

// HealthCheck answers liveness probes.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	responsePlain(w, []byte("ok"), http.StatusOK)
}
