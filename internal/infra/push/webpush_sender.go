// Package push implements Web Push dispatch against browser push services.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"easy/config"
	"easy/internal/domain/entity"
	"easy/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const defaultTTL = 60 * 60 * 12 // seconds the push service may retain an undelivered message

type webPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
}

// pushMessage is the JSON body delivered to the service worker.
type pushMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// NewWebPushSender creates a Web Push sender using VAPID authentication.
func NewWebPushSender(cfg *config.Config) (service.PushSender, error) {
	if cfg.WebPush == nil || cfg.WebPush.VAPIDPublicKey == "" || cfg.WebPush.VAPIDPrivateKey == "" {
		return nil, errors.New("vapid keys must be provided")
	}

	return &webPushSender{
		publicKey:  cfg.WebPush.VAPIDPublicKey,
		privateKey: cfg.WebPush.VAPIDPrivateKey,
		subscriber: cfg.WebPush.Subscriber,
	}, nil
}

// Send delivers one payload to one browser subscription.
// A 404 or 410 from the push service means the subscription no longer
// exists; callers should drop it and move on.
func (s *webPushSender) Send(ctx context.Context, sub *entity.PushSubscription, payload *service.PushPayload) error {
	body, err := json.Marshal(pushMessage{
		Title: payload.Title,
		Body:  payload.Body,
		Data:  payload.Data,
	})
	if err != nil {
		return errors.Wrap(err, "marshal push payload")
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Subscription.Keys.P256dh,
			Auth:   sub.Subscription.Keys.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             defaultTTL,
	})
	if err != nil {
		return errors.Wrap(err, "send web push")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return service.ErrSubscriptionGone
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}

	return nil
}
