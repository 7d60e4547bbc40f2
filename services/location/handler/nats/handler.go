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
	"github.com/sentinela-app/sentinela/services/location"
)

// LocationHandler consumes alert lifecycle events to keep the local
// status cache current, so samples on closed alerts stop being
// published without a cross-service call per sample
type LocationHandler struct {
	natsClient *natspkg.Client
	locationUC location.LocationUC
	nrApp      *newrelic.Application
	consumers  []*natspkg.JetStreamConsumer
}

// NewLocationHandler creates a new location NATS handler
func NewLocationHandler(
	client *natspkg.Client,
	locationUC location.LocationUC,
	nrApp *newrelic.Application,
) *LocationHandler {
	return &LocationHandler{
		natsClient: client,
		locationUC: locationUC,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers starts the durable status-sync consumers
func (h *LocationHandler) InitNATSConsumers(ctx context.Context) error {
	configs := []struct {
		cfg     natspkg.ConsumerConfig
		handler natspkg.JetStreamMessageHandler
	}{
		{
			cfg: natspkg.ConsumerConfig{
				StreamName:    constants.StreamAlerts,
				ConsumerName:  constants.ConsumerStatusSync + "-created",
				FilterSubject: constants.SubjectAlertCreated,
			},
			handler: h.handleAlertCreated,
		},
		{
			cfg: natspkg.ConsumerConfig{
				StreamName:    constants.StreamAlerts,
				ConsumerName:  constants.ConsumerStatusSync + "-status",
				FilterSubject: constants.SubjectAlertStatus,
			},
			handler: h.handleAlertStatus,
		},
	}

	for _, c := range configs {
		consumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient, c.cfg, c.handler)
		if err != nil {
			return fmt.Errorf("failed to start consumer %s: %w", c.cfg.ConsumerName, err)
		}
		h.consumers = append(h.consumers, consumer)

		logger.Info("Status sync consumer started",
			logger.String("stream", c.cfg.StreamName),
			logger.String("consumer", c.cfg.ConsumerName),
			logger.String("subject", c.cfg.FilterSubject))
	}

	return nil
}

// Stop stops all running consumers
func (h *LocationHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}

func (h *LocationHandler) handleAlertCreated(msg jetstream.Msg) error {
	txn := h.nrApp.StartTransaction("NATS.Location.HandleAlertCreated")
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

	return h.locationUC.SyncAlertStatus(ctx, event.AlertID, models.AlertStatusActive)
}

func (h *LocationHandler) handleAlertStatus(msg jetstream.Msg) error {
	txn := h.nrApp.StartTransaction("NATS.Location.HandleAlertStatus")
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
	nrpkg.AddTransactionAttribute(txn, "alert.status", string(event.NewStatus))

	return h.locationUC.SyncAlertStatus(ctx, event.AlertID, event.NewStatus)
}
