package dto

import "github.com/google/uuid"

type SendPushRequest struct {
	Title      string     `json:"title" validate:"required"`
	Body       string     `json:"body" validate:"required"`
	URL        string     `json:"url"`
	Tag        string     `json:"tag"`
	CustomerId *uuid.UUID `json:"customerId"`
	UserId     *uuid.UUID `json:"userId"`
}

type SendPushResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
	Total   int  `json:"total"`
}

type SubscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

type SubscribeRequest struct {
	Endpoint   string           `json:"endpoint" validate:"required,url"`
	Keys       SubscriptionKeys `json:"keys" validate:"required"`
	CustomerId *uuid.UUID       `json:"customerId"`
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}
