package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/advithialva/expenso/internal/ledger"
	"github.com/advithialva/expenso/internal/money"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/summary/{userID}", h.summary)
	r.Get("/{userID}", h.list)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	UserID   string       `json:"user_id"`
	Title    string       `json:"title"`
	Amount   *money.Cents `json:"amount"`
	Category string       `json:"category"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	// Zero is a valid amount; only an absent field is rejected.
	if req.UserID == "" || req.Title == "" || req.Amount == nil || req.Category == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	tx, err := h.svc.Create(r.Context(), ledger.CreateParams{
		UserID:   req.UserID,
		Title:    req.Title,
		Amount:   *req.Amount,
		Category: req.Category,
	})
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "All fields are required")
			return
		}

		slog.Error("failed to create transaction", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	txs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")

		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}

		slog.Error("failed to delete transaction", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")

		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Transaction deleted successfully"})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	summary, err := h.svc.Summarize(r.Context(), userID)
	if err != nil {
		slog.Error("failed to summarize transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")

		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}
