package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"settlement/internal/entities"
	"settlement/internal/service/fee"
)

type Service struct {
	repository        Repository
	postingRepository PostingRepository
	ledgerService     LedgerService
	cashboxService    CashboxService
	statementService  StatementService
	reversalService   ReversalService
	statusFactory     HandlerFactory
	dayFactory        BusinessDayFactory
	txManager         TxManager
}

func New(
	repository Repository,
	postingRepository PostingRepository,
	ledgerService LedgerService,
	cashboxService CashboxService,
	statementService StatementService,
	reversalService ReversalService,
	statusFactory HandlerFactory,
	dayFactory BusinessDayFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repository:        repository,
		postingRepository: postingRepository,
		ledgerService:     ledgerService,
		cashboxService:    cashboxService,
		statementService:  statementService,
		reversalService:   reversalService,
		statusFactory:     statusFactory,
		dayFactory:        dayFactory,
		txManager:         txManager,
	}
}

// CreateOrder заводит заказ. Для предоплаченного заказа сразу проводится выплата
// клиенту из кассы.
func (s *Service) CreateOrder(ctx context.Context, order entities.Order) (*entities.Order, error) {
	if order.Status == "" {
		order.Status = entities.OrderNew
	}
	if err := validateNewOrder(order); err != nil {
		return nil, err
	}

	order.DriverRemitStatus = entities.DriverRemitPending
	order.ThirdPartyRemitStatus = entities.ThirdPartyRemitNone

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if created.CompanyPrepaid && !created.Amount.IsZero() {
			if err = s.postPrepayment(ctx, *created); err != nil {
				return fmt.Errorf("post prepayment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) postPrepayment(ctx context.Context, order entities.Order) error {
	category := entities.CategoryClientPrepayment
	entry, err := s.ledgerService.Post(ctx, entities.LedgerEntry{
		Kind:      entities.EntryAccounting,
		Category:  &category,
		Direction: entities.Out,
		Amount:    order.Amount,
		OrderID:   &order.ID,
		Memo:      fmt.Sprintf("client prepayment, order #%d", order.ID),
	})
	if err != nil {
		return err
	}

	day := s.dayFactory.Today()
	if _, err = s.cashboxService.ApplyDelta(ctx, day, entities.Money{}, order.Amount); err != nil {
		return fmt.Errorf("apply cashbox delta: %w", err)
	}

	return s.postingRepository.Create(ctx, entities.Posting{
		OrderID:    order.ID,
		Kind:       entities.PostingPrepayment,
		Class:      entities.ClassCompanyPrepaid,
		CashboxDay: day,
		CashOut:    order.Amount,
		EntryIDs:   []int64{entry.ID},
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, id)
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ComputeDue сколько компания должна клиенту по заказу.
func (s *Service) ComputeDue(ctx context.Context, id int64) (entities.Money, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return entities.Money{}, err
	}
	return fee.DueToClient(*order)
}

// UpdateOrder правка заказа: назначение водителя, смена статуса, суммы.
// Понижение доставленного заказа откатывает всё, что по нему проведено.
func (s *Service) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, ErrMissingOrderID
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *orderModify.ID)
		if err != nil {
			if errors.Is(err, entities.ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrOrderNotFound, *orderModify.ID)
			}
			return fmt.Errorf("get order: %w", err)
		}

		if orderModify.TouchesSettlement() {
			claims, err := s.statementService.ClaimsOf(ctx, current.ID)
			if err != nil {
				return fmt.Errorf("get statement claims: %w", err)
			}
			if err = validateEdit(*current, orderModify, len(claims) > 0); err != nil {
				return err
			}
		}

		if orderModify.Status != nil && *orderModify.Status != current.Status {
			if err = s.changeStatus(ctx, *current, &orderModify); err != nil {
				return err
			}
		}

		updated, err = s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// changeStatus проверяет переход, дополняет правку полями нового статуса и
// выполняет обработчик перехода, если он есть.
func (s *Service) changeStatus(ctx context.Context, current entities.Order, orderModify *entities.OrderModify) error {
	to := *orderModify.Status
	if err := validateTransition(current.Status, to); err != nil {
		return err
	}

	next := merge(current, *orderModify)
	switch to {
	case entities.OrderAssigned:
		if next.DriverID == nil && next.ThirdPartyID == nil {
			return fmt.Errorf("%w: order %d", ErrNoCarrier, current.ID)
		}
	case entities.OrderDelivered:
		if next.DriverID == nil && next.ThirdPartyID == nil {
			return fmt.Errorf("%w: order %d", ErrNoCarrier, current.ID)
		}
		deliveredAt := time.Now().UTC()
		pending := entities.DriverRemitPending
		orderModify.DeliveredAt = &deliveredAt
		orderModify.DriverRemitStatus = &pending
		if next.ThirdPartyID != nil {
			tpPending := entities.ThirdPartyRemitPending
			orderModify.ThirdPartyRemitStatus = &tpPending
		}
	}

	executeFn, err := s.statusFactory.GetHandler(current.Status, to)
	if err != nil {
		// переходы без обработчика просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	if err = executeFn(ctx, current); err != nil {
		return fmt.Errorf("%s -> %s: %w", current.Status, to, err)
	}
	return nil
}

// DeleteOrder удаляет заказ, предварительно откатив всё, что по нему проведено.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidOrderID, id)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.reversalService.ReleaseOrder(ctx, id); err != nil {
			return fmt.Errorf("release order: %w", err)
		}
		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

// ProcessStatusChange применяет смену статуса из системы заказов. Повторное событие
// с текущим статусом ничего не меняет.
func (s *Service) ProcessStatusChange(ctx context.Context, change entities.OrderStatusChange) (*entities.Order, error) {
	if change.OrderID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, change.OrderID)
	}
	if !change.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, change.Status)
	}

	order, err := s.GetOrder(ctx, change.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status == change.Status {
		return order, nil
	}

	return s.UpdateOrder(ctx, entities.OrderModify{
		ID:     &change.OrderID,
		Status: &change.Status,
	})
}
