package user_put

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

	var userUpdateDTO dto.UserUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&userUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userModifyEntity := entities.UserModify{
		ID:           &userID,
		Name:         userUpdateDTO.Name,
		Phone:        userUpdateDTO.Phone,
		ProfileImage: userUpdateDTO.ProfileImage,
	}

	updated, err := h.service.UpdateProfile(r.Context(), userModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, user.ErrPhoneTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	userDTO := dto.User{
		UserID:       updated.ID,
		Name:         updated.Name,
		Phone:        updated.Phone,
		ProfileImage: updated.ProfileImage,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(userDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
