package auction

import (
	"context"

	"plate-auction-web/internal/models"
)

// Service is the remote auction API as seen by the page controllers
type Service interface {
	ListPlates(ctx context.Context, token string) ([]models.PlateListing, error)
	SubmitBid(ctx context.Context, token string, bid models.BidRequest) error
}

type requestIDKey struct{}

// WithRequestID attaches a request id that the client forwards upstream
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id set by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
