package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"settlement/internal/entities"
	"settlement/internal/pkg/metrics"
	"settlement/pkg/logger"
)

var errEmptyOrderID = errors.New("order_id is required")

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	return &Handler{
		orderService:             orderService,
		log:                      log.With(logger.NewField("topic_handler", "order.status.changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim closed, exiting ConsumeClaim")
				return nil
			}

			if !h.handle(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// handle false означает выход из ConsumeClaim без коммита.
func (h *Handler) handle(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	msgLog := h.log.With(
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	change, err := decode(message.Value)
	if err != nil {
		h.finish(sess, message, outcomeMalformed)
		msgLog.With(logger.NewField("error", err)).Error("bad status change message")
		return true
	}

	msgLog = msgLog.With(
		logger.NewField("order", change.OrderID),
		logger.NewField("status", change.Status),
	)

	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	order, err := h.orderService.ProcessStatusChange(ctx, change)
	result := classify(sess.Context(), err)
	h.finish(sess, message, result)

	switch result {
	case outcomeApplied:
		msgLog.With(
			logger.NewField("current_status", order.Status.String()),
		).Info("status change applied")
	case outcomeRetry:
		msgLog.With(logger.NewField("error", err)).Warn("processing interrupted, message will be redelivered")
	case outcomeFailed:
		msgLog.With(logger.NewField("error", err)).Error("failed to process status change")
	default:
		msgLog.With(
			logger.NewField("error", err),
			logger.NewField("outcome", string(result)),
		).Warn("status change skipped")
	}

	return result.commit()
}

func (h *Handler) finish(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage, result outcome) {
	metrics.StatusEventsTotal.WithLabelValues(string(result)).Inc()
	if result.commit() {
		sess.MarkMessage(message, "")
	}
}

func decode(raw []byte) (entities.OrderStatusChange, error) {
	var event statusChangedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return entities.OrderStatusChange{}, err
	}
	if event.OrderID <= 0 {
		return entities.OrderStatusChange{}, errEmptyOrderID
	}
	return entities.OrderStatusChange{
		OrderID: event.OrderID,
		Status:  entities.OrderStatusType(event.Status),
	}, nil
}
