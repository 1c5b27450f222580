package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gotokenbridge/types"

	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

// GetTransactions lists records, optionally filtered by ?status=.
func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	filter := strings.ToUpper(r.URL.Query().Get("status"))

	var statuses []types.Status
	if filter == "" {
		statuses = types.AllStatuses
	} else {
		statuses = []types.Status{types.Status(filter)}
	}

	out := []*types.BridgeTransaction{}
	for _, status := range statuses {
		recs, err := h.Store.FindByStatus(status)
		if err != nil {
			h.Logger.Error("status scan failed", zap.Error(err))
			responseJSON(w, nil, http.StatusInternalServerError)
			return
		}
		out = append(out, recs...)
	}

	responseJSON(w, out, http.StatusOK)
}

// GetTransaction fetches one record by id, falling back to a lock or
// release hash lookup when the id is 0x-prefixed.
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if strings.HasPrefix(id, "0x") {
		recs, err := h.Store.FindByHash(id)
		if err != nil && !errors.Is(err, types.ErrNotFound) {
			responseJSON(w, nil, http.StatusInternalServerError)
			return
		}
		if len(recs) == 0 {
			responseJSON(w, &APIResponse{
				Status:  "error",
				Message: "Transaction not found",
			}, http.StatusNotFound)
			return
		}
		responseJSON(w, recs[0], http.StatusOK)
		return
	}

	rec, err := h.Store.Get(id)
	if errors.Is(err, types.ErrNotFound) {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "Transaction not found",
		}, http.StatusNotFound)
		return
	}
	if err != nil {
		responseJSON(w, nil, http.StatusInternalServerError)
		return
	}
	responseJSON(w, rec, http.StatusOK)
}
