package webpush

import "fmt"

// DeliveryError is a non-2xx answer from the push service that does not
// indicate a dead endpoint.
type DeliveryError struct {
	StatusCode int
	Endpoint   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("push service returned %d for endpoint %s", e.StatusCode, e.Endpoint)
}
