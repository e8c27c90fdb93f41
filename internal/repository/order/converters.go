package order

import "delivery/internal/entities"

func ToStatusDomain(s *OrderStatusDB) *entities.OrderStatus {
	if s == nil {
		return nil
	}
	return &entities.OrderStatus{
		ID:          s.StatusID,
		OrderID:     s.OrderID,
		Code:        entities.OrderStatusCode(s.Status),
		Image:       s.Image,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

func ToViewDomain(v *OrderViewDB) *entities.OrderView {
	if v == nil {
		return nil
	}
	view := &entities.OrderView{
		OrderID:            v.OrderID,
		ItemDescription:    v.ItemDescription,
		ItemImage:          v.ItemImage,
		CounterpartyID:     v.CounterpartyID,
		CounterpartyName:   v.CounterpartyName,
		CounterpartyPhone:  v.CounterpartyPhone,
		CounterpartyImage:  v.CounterpartyImage,
		DestinationAddress: entities.UnknownAddressText,
	}

	if v.StatusCode != nil {
		view.StatusCode = entities.OrderStatusCode(*v.StatusCode)
		view.StatusAt = v.StatusAt
	}
	if v.Address != nil {
		view.DestinationAddress = *v.Address
	}
	if v.Latitude != nil {
		view.DestinationLat = *v.Latitude
	}
	if v.Longitude != nil {
		view.DestinationLon = *v.Longitude
	}

	return view
}
