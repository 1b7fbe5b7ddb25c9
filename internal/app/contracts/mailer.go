package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
)

// NotificationPublisher enqueues an email for asynchronous, best-effort
// delivery. Publishing succeeding says nothing about delivery.
type NotificationPublisher interface {
	Publish(ctx context.Context, payload *requests.EmailPayload) error
}
