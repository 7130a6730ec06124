package remittance

import (
	"context"
	"fmt"
	"time"

	"settlement/internal/entities"
)

const driverPaymentMethod = "cash"

// Remittance проводит получение денег от водителей и третьих сторон. Всё, что
// относится к одному вызову (записи, кошелёк, касса, выписка, статусы заказов),
// делается в одной транзакции.
type Remittance struct {
	orderRepository   OrderRepository
	postingRepository PostingRepository
	ledgerService     LedgerService
	cashboxService    CashboxService
	statementService  StatementService
	dayFactory        BusinessDayFactory
	txManager         TxManager
}

func New(
	orderRepository OrderRepository,
	postingRepository PostingRepository,
	ledgerService LedgerService,
	cashboxService CashboxService,
	statementService StatementService,
	dayFactory BusinessDayFactory,
	txManager TxManager,
) *Remittance {
	return &Remittance{
		orderRepository:   orderRepository,
		postingRepository: postingRepository,
		ledgerService:     ledgerService,
		cashboxService:    cashboxService,
		statementService:  statementService,
		dayFactory:        dayFactory,
		txManager:         txManager,
	}
}

// CollectFromDriver забирает у водителя наличные по доставленным заказам и выпускает
// по ним оплаченную выписку водителя.
func (r *Remittance) CollectFromDriver(ctx context.Context, driverID int64, orderIDs []int64) (*entities.DriverCollection, error) {
	if driverID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDriverID, driverID)
	}
	if err := validateOrderIDs(orderIDs); err != nil {
		return nil, err
	}

	var result *entities.DriverCollection
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		orders, err := r.orderRepository.GetByIDsForUpdate(ctx, orderIDs)
		if err != nil {
			return fmt.Errorf("get orders: %w", err)
		}

		items, err := resolve(orderIDs, orders, collectableFrom(driverID))
		if err != nil {
			return err
		}

		statement, err := r.statementService.Issue(ctx, entities.StatementIssue{
			EntityType:    entities.StatementDriver,
			EntityID:      driverID,
			OrderIDs:      orderIDs,
			Paid:          true,
			PaymentMethod: driverPaymentMethod,
		})
		if err != nil {
			return fmt.Errorf("issue driver statement: %w", err)
		}

		day := r.dayFactory.Today()
		collection := &entities.DriverCollection{Statement: statement}
		for _, item := range items {
			entries := collectionEntries(driverID, item.order, item.settlement)
			posting := entities.Posting{
				OrderID:     item.order.ID,
				Kind:        entities.PostingCollection,
				Class:       item.settlement.Class,
				DriverID:    &driverID,
				CashboxDay:  day,
				StatementID: &statement.ID,
			}
			if item.settlement.Class != entities.ClassCompanyPrepaid {
				posting.CashIn = item.settlement.CashCollected
			}

			posted, err := r.post(ctx, &posting, entries)
			if err != nil {
				return fmt.Errorf("order %d: %w", item.order.ID, err)
			}

			collected := entities.DriverRemitCollected
			_, err = r.orderRepository.Update(ctx, entities.OrderModify{
				ID:                &item.order.ID,
				DriverRemitStatus: &collected,
			})
			if err != nil {
				return fmt.Errorf("update order %d: %w", item.order.ID, err)
			}

			collection.Entries = append(collection.Entries, posted...)
			collection.WalletDelta = collection.WalletDelta.Add(posting.WalletDelta)
			collection.CashIn = collection.CashIn.Add(posting.CashIn)
		}

		if _, err = r.cashboxService.ApplyDelta(ctx, day, collection.CashIn, entities.Money{}); err != nil {
			return fmt.Errorf("apply cashbox delta: %w", err)
		}

		result = collection
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReceiveThirdPartyRemittance принимает перевод от третьей стороны. Сумма должна точно
// совпасть с тем, что третья сторона должна по перечисленным заказам.
func (r *Remittance) ReceiveThirdPartyRemittance(
	ctx context.Context,
	thirdPartyID int64,
	orderIDs []int64,
	amount entities.Money,
) (*entities.ThirdPartyRemittance, error) {
	if thirdPartyID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThirdPartyID, thirdPartyID)
	}
	if err := validateOrderIDs(orderIDs); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var result *entities.ThirdPartyRemittance
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		orders, err := r.orderRepository.GetByIDsForUpdate(ctx, orderIDs)
		if err != nil {
			return fmt.Errorf("get orders: %w", err)
		}

		items, err := resolve(orderIDs, orders, remittableBy(thirdPartyID))
		if err != nil {
			return err
		}

		var due entities.Money
		for _, item := range items {
			if item.settlement.ThirdPartyDue.HasNegative() {
				return fmt.Errorf("%w: order %d", ErrNegativeThirdPartyDue, item.order.ID)
			}
			due = due.Add(item.settlement.ThirdPartyDue)
		}
		if !due.Equal(amount) {
			return fmt.Errorf("%w: received %s, due %s", ErrRemittanceMismatch, amount, due)
		}

		day := r.dayFactory.Today()
		remittance := &entities.ThirdPartyRemittance{
			ThirdPartyID: thirdPartyID,
			OrderIDs:     orderIDs,
			Received:     amount,
		}
		for _, item := range items {
			posting := entities.Posting{
				OrderID:    item.order.ID,
				Kind:       entities.PostingThirdParty,
				Class:      item.settlement.Class,
				CashboxDay: day,
				CashIn:     item.settlement.ThirdPartyDue,
			}

			posted, err := r.post(ctx, &posting, thirdPartyEntries(thirdPartyID, item.order, item.settlement))
			if err != nil {
				return fmt.Errorf("order %d: %w", item.order.ID, err)
			}

			settled := entities.ThirdPartyRemitSettled
			_, err = r.orderRepository.Update(ctx, entities.OrderModify{
				ID:                    &item.order.ID,
				ThirdPartyRemitStatus: &settled,
			})
			if err != nil {
				return fmt.Errorf("update order %d: %w", item.order.ID, err)
			}

			remittance.Entries = append(remittance.Entries, posted...)
		}

		if _, err = r.cashboxService.ApplyDelta(ctx, day, amount, entities.Money{}); err != nil {
			return fmt.Errorf("apply cashbox delta: %w", err)
		}

		result = remittance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PayThirdParty выплата третьей стороне из кассы, не привязанная к заказам.
func (r *Remittance) PayThirdParty(ctx context.Context, thirdPartyID int64, amount entities.Money, memo string) (*entities.LedgerEntry, error) {
	if thirdPartyID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThirdPartyID, thirdPartyID)
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if memo == "" {
		memo = "third party payout"
	}

	var result *entities.LedgerEntry
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = r.ledgerService.Post(ctx, partyEntryWithoutOrder(entities.EntryThirdParty, thirdPartyID, entities.Out, amount, memo))
		if err != nil {
			return fmt.Errorf("post payout: %w", err)
		}

		if _, err = r.cashboxService.ApplyDelta(ctx, r.dayFactory.Today(), entities.Money{}, amount); err != nil {
			return fmt.Errorf("apply cashbox delta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// post проводит записи и сохраняет след проводки с их id и изменением кошелька.
func (r *Remittance) post(ctx context.Context, posting *entities.Posting, entries []entities.LedgerEntry) ([]entities.LedgerEntry, error) {
	posted := make([]entities.LedgerEntry, 0, len(entries))
	for _, entry := range entries {
		result, err := r.ledgerService.Post(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("post %s entry: %w", entry.Kind, err)
		}
		posted = append(posted, *result)
		posting.EntryIDs = append(posting.EntryIDs, result.ID)
		posting.WalletDelta = posting.WalletDelta.Add(result.WalletDelta())
	}

	posting.CreatedAt = time.Now().UTC()
	if err := r.postingRepository.Create(ctx, *posting); err != nil {
		return nil, fmt.Errorf("save posting: %w", err)
	}
	return posted, nil
}

func validateAmount(amount entities.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrNonPositiveAmount, amount)
	}
	return amount.Validate()
}
