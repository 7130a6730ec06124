package reversal

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"settlement/internal/entities"
)

// settlementKinds проводки, которые откатываются при понижении статуса доставленного заказа.
// Предоплата клиенту остаётся, пока существует сам заказ.
var settlementKinds = []entities.PostingKind{entities.PostingCollection, entities.PostingThirdParty}

// Reversal откатывает проведённые по заказу суммы ровно по сохранённым проводкам,
// не пересчитывая их из текущих полей заказа.
type Reversal struct {
	orderRepository   OrderRepository
	postingRepository PostingRepository
	ledgerService     LedgerService
	cashboxService    CashboxService
	statementService  StatementService
	txManager         TxManager
}

func New(
	orderRepository OrderRepository,
	postingRepository PostingRepository,
	ledgerService LedgerService,
	cashboxService CashboxService,
	statementService StatementService,
	txManager TxManager,
) *Reversal {
	return &Reversal{
		orderRepository:   orderRepository,
		postingRepository: postingRepository,
		ledgerService:     ledgerService,
		cashboxService:    cashboxService,
		statementService:  statementService,
		txManager:         txManager,
	}
}

// ReverseOrderSettlement откатывает сбор с водителя и перевод третьей стороны по заказу
// и убирает заказ из выписок. Заказ без проводок просто убирается из выписок.
func (r *Reversal) ReverseOrderSettlement(ctx context.Context, orderID int64) (*entities.ReversalResult, error) {
	return r.reverse(ctx, orderID, settlementKinds)
}

// ReleaseOrder откатывает всё, что было проведено по заказу, включая предоплату клиенту.
// Вызывается перед удалением заказа.
func (r *Reversal) ReleaseOrder(ctx context.Context, orderID int64) (*entities.ReversalResult, error) {
	return r.reverse(ctx, orderID, append(slices.Clone(settlementKinds), entities.PostingPrepayment))
}

func (r *Reversal) reverse(ctx context.Context, orderID int64, kinds []entities.PostingKind) (*entities.ReversalResult, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrderID, orderID)
	}

	var result *entities.ReversalResult
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := r.orderRepository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, entities.ErrNotFound) {
				return fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
			}
			return fmt.Errorf("get order: %w", err)
		}

		claims, err := r.statementService.ClaimsOf(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get statement claims: %w", err)
		}
		for _, claim := range claims {
			if claim.EntityType == entities.StatementClient && claim.Status == entities.StatementPaid {
				return fmt.Errorf("%w: statement %d, order %d", ErrOrderInPaidStatement, claim.StatementID, orderID)
			}
		}

		postings, err := r.postingRepository.ListByOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("list postings: %w", err)
		}

		reversal := &entities.ReversalResult{OrderID: orderID}
		for _, claim := range claims {
			if _, err = r.statementService.Unclaim(ctx, claim.StatementID, orderID); err != nil {
				return fmt.Errorf("unclaim statement %d: %w", claim.StatementID, err)
			}
			reversal.UnclaimedStatement = append(reversal.UnclaimedStatement, claim.StatementID)
		}

		for _, posting := range postings {
			if !slices.Contains(kinds, posting.Kind) {
				continue
			}
			if err = r.reversePosting(ctx, posting, reversal); err != nil {
				return fmt.Errorf("reverse %s posting: %w", posting.Kind, err)
			}
		}

		if err = r.resetRemitStatus(ctx, *order, reversal.ReversedPostings); err != nil {
			return err
		}

		result = reversal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Reversal) reversePosting(ctx context.Context, posting entities.Posting, reversal *entities.ReversalResult) error {
	var walletDelta entities.Money
	for _, id := range posting.EntryIDs {
		removed, err := r.ledgerService.Reverse(ctx, id)
		if err != nil {
			return fmt.Errorf("reverse entry %d: %w", id, err)
		}
		walletDelta = walletDelta.Add(removed.WalletDelta())
		reversal.RemovedEntryIDs = append(reversal.RemovedEntryIDs, id)
	}
	if !walletDelta.Equal(posting.WalletDelta) {
		return fmt.Errorf("%w: posted %s, reversed %s", ErrWalletMismatch, posting.WalletDelta, walletDelta)
	}

	if !posting.CashIn.IsZero() || !posting.CashOut.IsZero() {
		_, err := r.cashboxService.ApplyDelta(ctx, posting.CashboxDay, posting.CashIn.Neg(), posting.CashOut.Neg())
		if err != nil {
			return fmt.Errorf("restore cashbox: %w", err)
		}
	}

	if err := r.postingRepository.Delete(ctx, posting.OrderID, posting.Kind); err != nil {
		return fmt.Errorf("delete posting: %w", err)
	}

	reversal.ReversedPostings = append(reversal.ReversedPostings, posting.Kind)
	reversal.WalletDelta = reversal.WalletDelta.Add(walletDelta.Neg())
	return nil
}

func (r *Reversal) resetRemitStatus(ctx context.Context, order entities.Order, reversed []entities.PostingKind) error {
	modify := entities.OrderModify{ID: &order.ID}
	if slices.Contains(reversed, entities.PostingCollection) {
		pending := entities.DriverRemitPending
		modify.DriverRemitStatus = &pending
	}
	if slices.Contains(reversed, entities.PostingThirdParty) {
		pending := entities.ThirdPartyRemitPending
		modify.ThirdPartyRemitStatus = &pending
	}
	if modify.DriverRemitStatus == nil && modify.ThirdPartyRemitStatus == nil {
		return nil
	}

	if _, err := r.orderRepository.Update(ctx, modify); err != nil {
		return fmt.Errorf("reset remit status: %w", err)
	}
	return nil
}
