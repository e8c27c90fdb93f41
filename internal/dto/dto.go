// Package dto содержит типы запросов и ответов REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type OrderCreateRequest struct {
	SenderID        *int64  `json:"sender_id"`
	ReceiverID      *int64  `json:"receiver_id"`
	AddressID       *int64  `json:"address_id"`
	ItemDescription *string `json:"item_description"`
	Image           *string `json:"image,omitempty"`
}

type OrderCreateResponse struct {
	OrderID int64 `json:"order_id"`
}

type Counterparty struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image"`
}

type Destination struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OrderView struct {
	OrderID           int64        `json:"order_id"`
	ItemDescription   string       `json:"item_description"`
	ItemImage         string       `json:"item_image"`
	Status            string       `json:"status"`
	StatusDescription string       `json:"status_description"`
	StatusAt          *time.Time   `json:"status_at,omitempty"`
	Counterparty      Counterparty `json:"counterparty"`
	Destination       Destination  `json:"destination"`
}

type User struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image"`
}

type UserProfile struct {
	User      User      `json:"user"`
	Addresses []Address `json:"addresses"`
}

type UserUpdateRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type Address struct {
	AddressID int64   `json:"address_id"`
	UserID    int64   `json:"user_id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AddressCreateRequest struct {
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
