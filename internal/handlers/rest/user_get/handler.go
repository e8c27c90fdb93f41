package user_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"delivery/internal/dto"
	"delivery/internal/service/user"
	"delivery/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, user.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	addresses := make([]dto.Address, 0, len(profile.Addresses))
	for _, addressEntity := range profile.Addresses {
		addresses = append(addresses, dto.Address{
			AddressID: addressEntity.ID,
			UserID:    addressEntity.UserID,
			Address:   addressEntity.Address,
			Latitude:  addressEntity.Latitude,
			Longitude: addressEntity.Longitude,
		})
	}

	profileDTO := dto.UserProfile{
		User: dto.User{
			UserID:       profile.User.ID,
			Name:         profile.User.Name,
			Phone:        profile.User.Phone,
			ProfileImage: profile.User.ProfileImage,
		},
		Addresses: addresses,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(profileDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
