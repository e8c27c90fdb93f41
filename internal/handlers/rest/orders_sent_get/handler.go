package orders_sent_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"delivery/internal/dto"
	"delivery/internal/entities"
	"delivery/internal/service/order"
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

	views, err := h.service.ListSentOrders(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.OrderView, 0, len(views))
	for _, view := range views {
		response = append(response, toViewDTO(view))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toViewDTO(view entities.OrderView) dto.OrderView {
	return dto.OrderView{
		OrderID:           view.OrderID,
		ItemDescription:   view.ItemDescription,
		ItemImage:         view.ItemImage,
		Status:            view.StatusCode.String(),
		StatusDescription: view.StatusCode.Describe(),
		StatusAt:          view.StatusAt,
		Counterparty: dto.Counterparty{
			UserID:       view.CounterpartyID,
			Name:         view.CounterpartyName,
			Phone:        view.CounterpartyPhone,
			ProfileImage: view.CounterpartyImage,
		},
		Destination: dto.Destination{
			Address:   view.DestinationAddress,
			Latitude:  view.DestinationLat,
			Longitude: view.DestinationLon,
		},
	}
}
