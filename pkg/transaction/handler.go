package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/internal/rest"
)

type TransactionDTO struct {
	Id                int             `json:"id"`
	Uid               string          `json:"uid,omitempty"`
	EnvelopeId        int             `json:"envelopeId"`
	CounterEnvelopeId int             `json:"counterEnvelopeId,omitempty"`
	AccountId         int             `json:"accountId,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Kind              string          `json:"kind"`
	Memo              string          `json:"memo,omitempty"`
	OccurredAt        time.Time       `json:"occurredAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetAll lists transactions, optionally filtered by envelopeId and an
// occurredAt window given as RFC 3339 "from" and "to" query parameters.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter, err := filterFromQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid filter", Details: err.Error()})
		return
	}

	transactions, err := h.service.GetAll(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, transaction := range transactions {
		dtos = append(dtos, toDTO(transaction))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	transaction, err := h.service.Get(r.Context(), id)
	if errors.Is(err, ErrTransactionNotFound) {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(toDTO(transaction)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), dtoToTransaction(dto))
	if err != nil {
		if errors.Is(err, ErrEnvelopeMissing) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Unknown envelope", Details: err.Error()})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) (Filter, error) {
	var filter Filter
	if raw := r.URL.Query().Get("envelopeId"); raw != "" {
		envelopeId, err := strconv.Atoi(raw)
		if err != nil {
			return Filter{}, err
		}
		filter.EnvelopeId = envelopeId
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Filter{}, err
		}
		filter.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return Filter{}, err
		}
		filter.To = &to
	}
	return filter, nil
}

func toDTO(transaction Transaction) TransactionDTO {
	return TransactionDTO{
		Id:                transaction.Id,
		Uid:               transaction.Uid.String(),
		EnvelopeId:        transaction.EnvelopeId,
		CounterEnvelopeId: transaction.CounterEnvelopeId,
		AccountId:         transaction.AccountId,
		Amount:            transaction.Amount,
		Kind:              string(transaction.Kind),
		Memo:              transaction.Memo,
		OccurredAt:        transaction.OccurredAt,
	}
}

func dtoToTransaction(dto TransactionDTO) Transaction {
	return Transaction{
		Id:                dto.Id,
		EnvelopeId:        dto.EnvelopeId,
		CounterEnvelopeId: dto.CounterEnvelopeId,
		AccountId:         dto.AccountId,
		Amount:            dto.Amount,
		Kind:              Kind(dto.Kind),
		Memo:              dto.Memo,
		OccurredAt:        dto.OccurredAt,
	}
}
