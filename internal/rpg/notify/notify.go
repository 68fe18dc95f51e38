package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/treinorpg/backend/internal/telemetry/metrics"
	"github.com/treinorpg/backend/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// Channel is the redis pub/sub channel the app listens on.
	Channel = "treino-rpg-events"

	webhookTimeout = 5 * time.Second
)

type EventType string

const (
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventPersonalRecordSet   EventType = "personal_record_set"
	EventPowerDayTriggered   EventType = "power_day_triggered"
	EventLevelUp             EventType = "level_up"
)

// Event is one gamification notification pushed to the app.
type Event struct {
	Type    EventType      `json:"type"`
	UserID  string         `json:"userId"`
	At      time.Time      `json:"at"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Notifier publishes events to redis pub/sub and optionally an HTTP
// webhook. Delivery is fire and forget: failures are logged and counted,
// never propagated, the award pipeline does not depend on the outcome.
type Notifier struct {
	redisClient    *redis.Client
	webhookURL     string
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewNotifier(redisClient *redis.Client, webhookURL string, metricsManager *metrics.Manager) *Notifier {
	return &Notifier{
		redisClient: redisClient,
		webhookURL:  webhookURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   webhookTimeout,
		},
		metricsManager: metricsManager,
	}
}

func (n *Notifier) Notify(ctx context.Context, event Event) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notify.publish")
	defer span.End()

	eventJson, err := json.Marshal(event)
	if err != nil {
		log.Errorf("notify: marshal event [%s] for user %s: %s", event.Type, event.UserID, err)
		return
	}

	if n.redisClient != nil {
		if err := n.redisClient.Publish(ctx, Channel, eventJson).Err(); err != nil {
			log.Errorf("notify: publish event [%s] for user %s: %s", event.Type, event.UserID, err)
		}
	}

	if n.webhookURL != "" {
		n.sendWebhook(ctx, event.Type, eventJson)
	}

	if n.metricsManager != nil {
		n.metricsManager.CounterNotificationsSent.WithLabelValues(string(event.Type)).Inc()
	}
}

func (n *Notifier) sendWebhook(ctx context.Context, eventType EventType, eventJson []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(eventJson))
	if err != nil {
		log.Errorf("notify: create webhook request [%s]: %s", eventType, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Errorf("notify: send webhook [%s]: %s", eventType, err)
		return
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Errorf("notify: close webhook response body: %s", err)
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Errorf("notify: webhook [%s] returned status %d", eventType, resp.StatusCode)
	}
}
