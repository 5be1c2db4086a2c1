package events

import (
	"context"
	"time"

	"openhours-service/internal/app/contracts"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ScheduleEventMessage is the payload published for every schedule mutation.
type ScheduleEventMessage struct {
	EventType  string `json:"event_type"`
	ScheduleID string `json:"schedule_id"`
	OccurredAt string `json:"occurred_at"`
}

type schedulePublisher struct {
	ch           *amqp.Channel
	log          *zap.Logger
	exchangeName string
}

// NewSchedulePublisher opens a channel and declares the durable topic
// exchange schedule events are routed through.
func NewSchedulePublisher(conn *amqp.Connection, log *zap.Logger, exchangeName string) (contracts.SchedulePublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchangeName, // name
		"topic",      // kind
		true,         // durable
		false,        // autoDelete
		false,        // internal
		false,        // noWait
		nil,          // args
	)
	if err != nil {
		return nil, err
	}

	return &schedulePublisher{
		ch:           ch,
		log:          log,
		exchangeName: exchangeName,
	}, nil
}

// PublishScheduleEvent emits the event using its type as the routing key,
// e.g. schedule.created.
func (p *schedulePublisher) PublishScheduleEvent(ctx context.Context, eventType, scheduleID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("SchedulePublisher.PublishScheduleEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScheduleIDKey, scheduleID),
	)

	body, err := json.Marshal(ScheduleEventMessage{
		EventType:  eventType,
		ScheduleID: scheduleID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchangeName, eventType, false, false, msg); err != nil {
		return exceptions.ErrPublishEvent(err)
	}
	return nil
}
