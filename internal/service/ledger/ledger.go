package ledger

import (
	"context"
	"fmt"

	"settlement/internal/entities"
	"settlement/internal/service/fee"
)

// Ledger ведёт записи по контрагентам и кэш кошельков водителей. Запись и изменение
// кошелька всегда делаются в одной транзакции, кошелёк отдельно не пишется.
type Ledger struct {
	repository      Repository
	orderRepository OrderRepository
	cashboxService  CashboxService
	txManager       TxManager
}

func New(
	repository Repository,
	orderRepository OrderRepository,
	cashboxService CashboxService,
	txManager TxManager,
) *Ledger {
	return &Ledger{
		repository:      repository,
		orderRepository: orderRepository,
		cashboxService:  cashboxService,
		txManager:       txManager,
	}
}

// Post добавляет запись и, для записи водителя, сдвигает его кошелёк на её знаковую сумму.
func (l *Ledger) Post(ctx context.Context, entry entities.LedgerEntry) (*entities.LedgerEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	var posted *entities.LedgerEntry
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		posted, err = l.repository.InsertEntry(ctx, entry)
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}

		if posted.Kind == entities.EntryDriver {
			_, err = l.repository.AdjustWallet(ctx, *posted.PartyID, posted.WalletDelta())
			if err != nil {
				return fmt.Errorf("adjust wallet: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posted, nil
}

// Reverse удаляет запись и откатывает кошелёк на сумму, сохранённую в самой записи.
func (l *Ledger) Reverse(ctx context.Context, id int64) (*entities.LedgerEntry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: entry id %d", entities.ErrValidation, id)
	}

	var removed *entities.LedgerEntry
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		removed, err = l.repository.DeleteEntry(ctx, id)
		if err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}

		if removed.Kind == entities.EntryDriver {
			_, err = l.repository.AdjustWallet(ctx, *removed.PartyID, removed.WalletDelta().Neg())
			if err != nil {
				return fmt.Errorf("adjust wallet: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// BalanceOf текущий баланс контрагента.
//
//	водитель:       кэш кошелька (credit - debit)
//	клиент:         сумма записей credit - debit
//	третья сторона: долги по неоплаченным доставленным заказам - выплаты ей
func (l *Ledger) BalanceOf(ctx context.Context, party entities.Party) (entities.Money, error) {
	if err := validateParty(party); err != nil {
		return entities.Money{}, err
	}

	switch party.Kind {
	case entities.PartyDriver:
		wallet, err := l.repository.GetWallet(ctx, party.ID)
		if err != nil {
			return entities.Money{}, fmt.Errorf("get wallet: %w", err)
		}
		return wallet, nil
	case entities.PartyClient:
		sums, err := l.repository.SumByDirection(ctx, party)
		if err != nil {
			return entities.Money{}, fmt.Errorf("sum client entries: %w", err)
		}
		return sums[entities.Credit].Sub(sums[entities.Debit]), nil
	default:
		return l.thirdPartyBalance(ctx, party)
	}
}

// Принятые переводы только убирают заказы из pending и повторно не вычитаются:
// их записи привязаны к заказам. Записи без заказа (выплаты и корректировки) меняют баланс.
func (l *Ledger) thirdPartyBalance(ctx context.Context, party entities.Party) (entities.Money, error) {
	orders, err := l.orderRepository.ListPendingThirdParty(ctx, party.ID)
	if err != nil {
		return entities.Money{}, fmt.Errorf("list pending third party orders: %w", err)
	}

	var pending entities.Money
	for _, order := range orders {
		settlement, err := fee.Classify(order)
		if err != nil {
			return entities.Money{}, fmt.Errorf("classify order %d: %w", order.ID, err)
		}
		pending = pending.Add(settlement.ThirdPartyDue)
	}

	sums, err := l.repository.SumUnlinkedByDirection(ctx, party)
	if err != nil {
		return entities.Money{}, fmt.Errorf("sum third party entries: %w", err)
	}
	return pending.Add(sums[entities.In]).Sub(sums[entities.Out]), nil
}

// PostCorrection ручная корректировка баланса контрагента оператором.
func (l *Ledger) PostCorrection(ctx context.Context, correction entities.Correction) (*entities.LedgerEntry, error) {
	if err := validateParty(correction.Party); err != nil {
		return nil, err
	}
	if isBlank(correction.Memo) {
		return nil, ErrMissingMemo
	}

	partyID := correction.Party.ID
	return l.Post(ctx, entities.LedgerEntry{
		Kind:      entities.EntryKindOf(correction.Party.Kind),
		PartyID:   &partyID,
		Direction: correction.Direction,
		Amount:    correction.Amount,
		Memo:      correction.Memo,
	})
}

// RecordAccounting бухгалтерская запись с движением кассы за текущий рабочий день.
func (l *Ledger) RecordAccounting(ctx context.Context, record entities.AccountingRecord) (*entities.LedgerEntry, error) {
	if isBlank(record.Memo) {
		return nil, ErrMissingMemo
	}

	category := record.Category
	entry := entities.LedgerEntry{
		Kind:      entities.EntryAccounting,
		Category:  &category,
		Direction: record.Direction,
		Amount:    record.Amount,
		Memo:      record.Memo,
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	var posted *entities.LedgerEntry
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		posted, err = l.Post(ctx, entry)
		if err != nil {
			return err
		}

		cashIn, cashOut := entry.SignedAmount().Split()
		if _, err = l.cashboxService.ApplyToday(ctx, cashIn, cashOut); err != nil {
			return fmt.Errorf("apply cashbox delta: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posted, nil
}

// WalletDrifts водители, у которых кэш кошелька разошёлся с суммой записей.
func (l *Ledger) WalletDrifts(ctx context.Context) ([]entities.WalletDrift, error) {
	drifts, err := l.repository.ListWalletDrifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wallet drifts: %w", err)
	}
	return drifts, nil
}
