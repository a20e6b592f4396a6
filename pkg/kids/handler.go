package kids

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/stashly/stashly/internal/rest"
)

type ChildDTO struct {
	Id     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Points int    `json:"points"`
}

type ChoreDTO struct {
	Id      int    `json:"id"`
	ChildId int    `json:"childId"`
	Name    string `json:"name"`
	Points  int    `json:"points"`
	Done    bool   `json:"done"`
}

type RewardDTO struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
	Cost int    `json:"cost"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetChildren(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	children, err := h.service.GetChildren(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ChildDTO, 0, len(children))
	for _, child := range children {
		dtos = append(dtos, childToDTO(child))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateChild(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new child profile")
	w.Header().Set("Content-Type", "application/json")

	var dto ChildDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateChild(r.Context(), dtoToChild(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(childToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto ChildDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Id == 0 || dto.Id != id {
		http.Error(w, "Invalid child id in request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateChild(r.Context(), dtoToChild(dto))
	if errors.Is(err, ErrChildNotFound) {
		http.Error(w, "Child not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(childToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.DeleteChild(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Child not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetChores(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	childId := 0
	if raw := r.URL.Query().Get("childId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		childId = parsed
	}

	chores, err := h.service.GetChores(r.Context(), childId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ChoreDTO, 0, len(chores))
	for _, chore := range chores {
		dtos = append(dtos, choreToDTO(chore))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateChore(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new chore")
	w.Header().Set("Content-Type", "application/json")

	var dto ChoreDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateChore(r.Context(), dtoToChore(dto))
	if errors.Is(err, ErrChildNotFound) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Unknown child", Details: err.Error()})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(choreToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CompleteChore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chore, err := h.service.CompleteChore(r.Context(), id)
	if errors.Is(err, ErrChoreNotFound) {
		http.Error(w, "Chore not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrChoreAlreadyDone) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Chore already done", Details: err.Error()})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(choreToDTO(chore)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteChore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.DeleteChore(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Chore not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetRewards(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rewards, err := h.service.GetRewards(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]RewardDTO, 0, len(rewards))
	for _, reward := range rewards {
		dtos = append(dtos, rewardToDTO(reward))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) CreateReward(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new reward")
	w.Header().Set("Content-Type", "application/json")

	var dto RewardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateReward(r.Context(), dtoToReward(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(rewardToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	childId, err := strconv.Atoi(r.URL.Query().Get("childId"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid childId", Details: "childId query parameter is required"})
		return
	}

	child, err := h.service.RedeemReward(r.Context(), id, childId)
	if errors.Is(err, ErrRewardNotFound) || errors.Is(err, ErrChildNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrNotEnoughPoints) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Not enough points", Details: err.Error()})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(childToDTO(child)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteReward(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := h.service.DeleteReward(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Reward not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func childToDTO(child Child) ChildDTO {
	return ChildDTO{Id: child.Id, Name: child.Name, Avatar: child.Avatar, Points: child.Points}
}

func dtoToChild(dto ChildDTO) Child {
	return Child{Id: dto.Id, Name: dto.Name, Avatar: dto.Avatar, Points: dto.Points}
}

func choreToDTO(chore Chore) ChoreDTO {
	return ChoreDTO{Id: chore.Id, ChildId: chore.ChildId, Name: chore.Name, Points: chore.Points, Done: chore.Done}
}

func dtoToChore(dto ChoreDTO) Chore {
	return Chore{Id: dto.Id, ChildId: dto.ChildId, Name: dto.Name, Points: dto.Points, Done: dto.Done}
}

func rewardToDTO(reward Reward) RewardDTO {
	return RewardDTO{Id: reward.Id, Name: reward.Name, Icon: reward.Icon, Cost: reward.Cost}
}

func dtoToReward(dto RewardDTO) Reward {
	return Reward{Id: dto.Id, Name: dto.Name, Icon: dto.Icon, Cost: dto.Cost}
}
