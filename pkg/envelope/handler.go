package envelope

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
	"github.com/stashly/stashly/pkg/paycycle"
)

type EnvelopeDTO struct {
	Id             int              `json:"id"`
	Name           string           `json:"name"`
	Icon           string           `json:"icon,omitempty"`
	Color          string           `json:"color,omitempty"`
	TargetAmount   decimal.Decimal  `json:"targetAmount"`
	CurrentAmount  decimal.Decimal  `json:"currentAmount"`
	Frequency      string           `json:"frequency,omitempty"`
	CustomWeeks    int              `json:"customWeeks,omitempty"`
	NextDueDate    *time.Time       `json:"nextDueDate,omitempty"`
	IsSpending     bool             `json:"isSpending,omitempty"`
	IsTrackingOnly bool             `json:"isTrackingOnly,omitempty"`
	PayCycleAmount *decimal.Decimal `json:"payCycleAmount,omitempty"`
	Status         string           `json:"status,omitempty"`
	StatusLabel    string           `json:"statusLabel,omitempty"`
	DueProgress    *DueProgressDTO  `json:"dueProgress,omitempty"`
}

type DueProgressDTO struct {
	Progress      int    `json:"progress"`
	RemainingDays int    `json:"remainingDays"`
	Label         string `json:"label"`
	Formatted     string `json:"formatted,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	views, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EnvelopeDTO, 0, len(views))
	for _, view := range views {
		dtos = append(dtos, ViewToDTO(view))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEnvelopeNotFound) {
			http.Error(w, "Envelope not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(ViewToDTO(view)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new envelope")
	w.Header().Set("Content-Type", "application/json")

	var dto EnvelopeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), dtoToEnvelope(dto))
	if err != nil {
		if errors.Is(err, paycycle.ErrCustomWeeksRequired) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "invalid envelope",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(envelopeToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto EnvelopeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != id {
		http.Error(w, "Invalid envelope id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), dtoToEnvelope(dto))
	if err != nil {
		if errors.Is(err, ErrEnvelopeNotFound) {
			http.Error(w, "Envelope not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, paycycle.ErrCustomWeeksRequired) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "invalid envelope",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(envelopeToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
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
		http.Error(w, "Envelope not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetPosition(w http.ResponseWriter, r *http.Request) {
	id, err := pathId(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var setPositionDTO struct {
		PrecedingId int `json:"precedingId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&setPositionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.MoveAfter(r.Context(), id, setPositionDTO.PrecedingId)
	if err != nil {
		if errors.Is(err, ErrEnvelopeNotFound) {
			http.Error(w, "Envelope not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Envelope not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func pathId(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func envelopeToDTO(e Envelope) EnvelopeDTO {
	return EnvelopeDTO{
		Id:             e.Id,
		Name:           e.Name,
		Icon:           e.Icon,
		Color:          e.Color,
		TargetAmount:   e.TargetAmount,
		CurrentAmount:  e.CurrentAmount,
		Frequency:      string(e.Frequency),
		CustomWeeks:    e.CustomWeeks,
		NextDueDate:    e.NextDueDate,
		IsSpending:     e.IsSpending,
		IsTrackingOnly: e.IsTrackingOnly,
	}
}

func ViewToDTO(v View) EnvelopeDTO {
	dto := envelopeToDTO(v.Envelope)
	payCycleAmount := v.PayCycleAmount
	dto.PayCycleAmount = &payCycleAmount
	dto.Status = string(v.Status)
	dto.StatusLabel = v.StatusLabel
	dto.DueProgress = &DueProgressDTO{
		Progress:      v.DueProgress.Progress,
		RemainingDays: v.DueProgress.RemainingDays,
		Label:         v.DueProgress.Label,
		Formatted:     v.DueProgress.Formatted,
	}
	return dto
}

func dtoToEnvelope(dto EnvelopeDTO) Envelope {
	return Envelope{
		Id:             dto.Id,
		Name:           dto.Name,
		Icon:           dto.Icon,
		Color:          dto.Color,
		TargetAmount:   dto.TargetAmount,
		CurrentAmount:  dto.CurrentAmount,
		Frequency:      paycycle.BillFrequency(dto.Frequency),
		CustomWeeks:    dto.CustomWeeks,
		NextDueDate:    dto.NextDueDate,
		IsSpending:     dto.IsSpending,
		IsTrackingOnly: dto.IsTrackingOnly,
	}
}
