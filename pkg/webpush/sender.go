package webpush

import (
	"context"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// Subscription carries the browser endpoint and its encryption keys.
type Subscription struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Sender delivers one payload to one endpoint. gone reports that the
// endpoint is permanently dead (the push service answered 404 or 410)
// and its subscription should be removed.
type Sender interface {
	Send(ctx context.Context, sub Subscription, payload []byte) (gone bool, err error)
}

// VapidSender signs deliveries with the server's VAPID key pair.
type VapidSender struct {
	publicKey  string
	privateKey string
	subject    string
}

func NewVapidSender(publicKey, privateKey, subject string) *VapidSender {
	return &VapidSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subject:    subject,
	}
}

func (s *VapidSender) Send(ctx context.Context, sub Subscription, payload []byte) (bool, error) {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		TTL:             60,
		Subscriber:      s.subject,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
	})
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return true, nil
	}
	if resp.StatusCode >= 400 {
		return false, &DeliveryError{StatusCode: resp.StatusCode, Endpoint: sub.Endpoint}
	}
	return false, nil
}
