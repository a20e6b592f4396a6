package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type GoalDTO struct {
	Id             int              `json:"id"`
	Name           string           `json:"name"`
	Icon           string           `json:"icon,omitempty"`
	EnvelopeId     int              `json:"envelopeId,omitempty"`
	TargetAmount   decimal.Decimal  `json:"targetAmount"`
	CurrentAmount  decimal.Decimal  `json:"currentAmount"`
	TargetDate     *time.Time       `json:"targetDate,omitempty"`
	RequiredPerPay *decimal.Decimal `json:"requiredPerPay,omitempty"`
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

	dtos := make([]GoalDTO, 0, len(views))
	for _, view := range views {
		dtos = append(dtos, viewToDTO(view))
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

	view, err := h.service.Get(r.Context(), id)
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(viewToDTO(view)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new goal")
	w.Header().Set("Content-Type", "application/json")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), dtoToGoal(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(goalToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != id {
		http.Error(w, "Invalid goal id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), dtoToGoal(dto))
	if errors.Is(err, ErrGoalNotFound) {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := json.NewEncoder(w).Encode(goalToDTO(updated)); err != nil {
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
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func goalToDTO(goal Goal) GoalDTO {
	return GoalDTO{
		Id:            goal.Id,
		Name:          goal.Name,
		Icon:          goal.Icon,
		EnvelopeId:    goal.EnvelopeId,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
	}
}

func viewToDTO(view View) GoalDTO {
	dto := goalToDTO(view.Goal)
	dto.RequiredPerPay = &view.RequiredPerPay
	dto.Status = string(view.Status)
	dto.StatusLabel = view.StatusLabel
	dto.DueProgress = &DueProgressDTO{
		Progress:      view.DueProgress.Progress,
		RemainingDays: view.DueProgress.RemainingDays,
		Label:         view.DueProgress.Label,
		Formatted:     view.DueProgress.Formatted,
	}
	return dto
}

func dtoToGoal(dto GoalDTO) Goal {
	return Goal{
		Id:            dto.Id,
		Name:          dto.Name,
		Icon:          dto.Icon,
		EnvelopeId:    dto.EnvelopeId,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: dto.CurrentAmount,
		TargetDate:    dto.TargetDate,
	}
}
