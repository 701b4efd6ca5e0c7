package notify

import "context"

// Service is the outbound alert channel: place an alert with a
// destination and a message, get back a call identifier. A failed
// notification must never block the emergency branch; the caller
// substitutes a synthetic identifier and continues.
type Service interface {
	Notify(ctx context.Context, destination, message string) (string, error)
}
