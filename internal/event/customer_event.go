package event

import (
	"context"
	"time"
)

const (
	routingKeyCustomerCreated = "customer.created"
	routingKeyCustomerUpdated = "customer.updated"
	routingKeyCustomerDeleted = "customer.deleted"
)

type CustomerEventPayload struct {
	CustomerID     int64   `json:"customerId"`
	Nome           string  `json:"nome"`
	CPF            string  `json:"cpf"`
	Email          string  `json:"email"`
	DataNascimento string  `json:"dataNascimento"`
	Telefone       *string `json:"telefone,omitempty"`
	Saldo          string  `json:"saldo"`
}

type CustomerEvent struct {
	EventID   string               `json:"eventId"`
	Type      string               `json:"type"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type EventPublisher interface {
	PublishCustomerCreated(ctx context.Context, event CustomerEvent) error
	PublishCustomerUpdated(ctx context.Context, event CustomerEvent) error
	PublishCustomerDeleted(ctx context.Context, event CustomerEvent) error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ EventPublisher = NoopPublisher{}

func (NoopPublisher) PublishCustomerCreated(context.Context, CustomerEvent) error { return nil }

func (NoopPublisher) PublishCustomerUpdated(context.Context, CustomerEvent) error { return nil }

func (NoopPublisher) PublishCustomerDeleted(context.Context, CustomerEvent) error { return nil }
