package order_status_changed

import (
	"context"
	"errors"

	"settlement/internal/entities"
	orderservice "settlement/internal/service/order"
)

type outcome string

const (
	outcomeApplied      outcome = "applied"
	outcomeMalformed    outcome = "malformed"
	outcomeInvalid      outcome = "invalid"
	outcomeUnknownOrder outcome = "unknown_order"
	outcomeRejected     outcome = "rejected"
	outcomeFailed       outcome = "failed"
	outcomeRetry        outcome = "retry"
)

// commit false только для retry: воркер останавливается, событие придёт снова.
func (o outcome) commit() bool {
	return o != outcomeRetry
}

// classify раскладывает ошибку сервиса по исходам.
// Retry только когда закончилась сессия группы (rebalance, остановка воркера).
// Истёкший таймаут одного сообщения коммитится как failed, иначе такое событие
// приходило бы снова и держало партицию.
// Отказ по состоянию заказа (нельзя откатить оплаченную выписку и т.п.) не ретраится,
// повтор того же события ничего не изменит.
func classify(sessionCtx context.Context, err error) outcome {
	switch {
	case err == nil:
		return outcomeApplied
	case sessionCtx.Err() != nil:
		return outcomeRetry
	case errors.Is(err, orderservice.ErrUndefinedStatus), errors.Is(err, entities.ErrValidation):
		return outcomeInvalid
	case errors.Is(err, entities.ErrNotFound):
		return outcomeUnknownOrder
	case errors.Is(err, entities.ErrConsistency), errors.Is(err, entities.ErrConflict):
		return outcomeRejected
	default:
		return outcomeFailed
	}
}
