package address_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"delivery/internal/dto"
	"delivery/internal/entities"
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

	var addressCreateDTO dto.AddressCreateRequest
	err = json.NewDecoder(r.Body).Decode(&addressCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	addressModifyEntity := entities.AddressModify{
		UserID:    &userID,
		Address:   addressCreateDTO.Address,
		Latitude:  addressCreateDTO.Latitude,
		Longitude: addressCreateDTO.Longitude,
	}

	addressEntity, err := h.service.AddAddress(r.Context(), addressModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	addressDTO := dto.Address{
		AddressID: addressEntity.ID,
		UserID:    addressEntity.UserID,
		Address:   addressEntity.Address,
		Latitude:  addressEntity.Latitude,
		Longitude: addressEntity.Longitude,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(addressDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
