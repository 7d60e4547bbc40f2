package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/sentinela-app/sentinela/internal/pkg/constants"
	"github.com/sentinela-app/sentinela/internal/pkg/logger"
	"github.com/sentinela-app/sentinela/internal/pkg/models"
	natspkg "github.com/sentinela-app/sentinela/internal/pkg/nats"
	nrpkg "github.com/sentinela-app/sentinela/internal/pkg/newrelic"
	wsHandler "github.com/sentinela-app/sentinela/services/alerts/handler/websocket"
)

// AlertsHandler consumes alert and position events and fans them out
// to connected desk sessions
type AlertsHandler struct {
	natsClient *natspkg.Client
	deskWS     *wsHandler.DeskHandler
	nrApp      *newrelic.Application
	consumers  []*natspkg.JetStreamConsumer
}

// NewAlertsHandler creates a new alerts NATS handler
func NewAlertsHandler(
	client *natspkg.Client,
	deskWS *wsHandler.DeskHandler,
	nrApp *newrelic.Application,
) *AlertsHandler {
	return &AlertsHandler{
		natsClient: client,
		deskWS:     deskWS,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers starts the durable fan-out consumers. Ordering is
// per subject; delivery is at-least-once so desk clients may see
// duplicate events and must treat them as idempotent.
func (h *AlertsHandler) InitNATSConsumers(ctx context.Context) error {
	configs := []struct {
		cfg     natspkg.ConsumerConfig
		handler natspkg.JetStreamMessageHandler
	}{
		{
			cfg: natspkg.ConsumerConfig{
				StreamName:    constants.StreamAlerts,
				ConsumerName:  constants.ConsumerDeskFanout + "-created",
				FilterSubject: constants.SubjectAlertCreated,
			},
			handler: h.handleAlertCreated,
		},
		{
			cfg: natspkg.ConsumerConfig{
				StreamName:    constants.StreamAlerts,
				ConsumerName:  constants.ConsumerDeskFanout + "-status",
				FilterSubject: constants.SubjectAlertStatus,
			},
			handler: h.handleAlertStatus,
		},
		{
			cfg: natspkg.ConsumerConfig{
				StreamName:    constants.StreamLocation,
				ConsumerName:  constants.ConsumerDeskFanout + "-position",
				FilterSubject: constants.SubjectLocationUpdate,
			},
			handler: h.handlePositionUpdate,
		},
	}

	for _, c := range configs {
		consumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient, c.cfg, c.handler)
		if err != nil {
			return fmt.Errorf("failed to start consumer %s: %w", c.cfg.ConsumerName, err)
		}
		h.consumers = append(h.consumers, consumer)

		logger.Info("Desk fan-out consumer started",
			logger.String("stream", c.cfg.StreamName),
			logger.String("consumer", c.cfg.ConsumerName),
			logger.String("subject", c.cfg.FilterSubject))
	}

	return nil
}

// Stop stops all running consumers
func (h *AlertsHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

func (h *AlertsHandler) handleAlertCreated(msg jetstream.Msg) error {
	txn := h.nrApp.StartTransaction("NATS.Alerts.HandleAlertCreated")
	defer txn.End()
	ctx := newrelic.NewContext(context.Background(), txn)

	var event models.AlertCreatedEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Failed to unmarshal alert created event",
			logger.ErrorField(err))
		return err
	}

	nrpkg.AddTransactionAttribute(txn, "alert.id", event.AlertID)

	logger.InfoCtx(ctx, "Fanning out alert created event",
		logger.String("alert_id", event.AlertID),
		logger.String("trigger_kind", string(event.TriggerKind)))

	h.deskWS.NotifyAlertCreated(&event)
	return nil
}

func (h *AlertsHandler) handleAlertStatus(msg jetstream.Msg) error {
	txn := h.nrApp.StartTransaction("NATS.Alerts.HandleAlertStatus")
	defer txn.End()
	ctx := newrelic.NewContext(context.Background(), txn)

	var event models.AlertStatusEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Failed to unmarshal alert status event",
			logger.ErrorField(err))
		return err
	}

	nrpkg.AddTransactionAttribute(txn, "alert.id", event.AlertID)
	nrpkg.AddTransactionAttribute(txn, "alert.new_status", string(event.NewStatus))

	h.deskWS.NotifyAlertStatus(&event)
	return nil
}

func (h *AlertsHandler) handlePositionUpdate(msg jetstream.Msg) error {
	txn := h.nrApp.StartTransaction("NATS.Alerts.HandlePositionUpdate")
	defer txn.End()
	ctx := newrelic.NewContext(context.Background(), txn)

	var event models.PositionUpdateEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Failed to unmarshal position update event",
			logger.ErrorField(err))
		return err
	}

	h.deskWS.NotifyPositionUpdate(&event)
	return nil
}
