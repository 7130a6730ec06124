package statement

import (
	"settlement/internal/entities"
)

func ToDomain(s *StatementDB, lines []LineDB) *entities.Statement {
	if s == nil {
		return nil
	}

	statement := &entities.Statement{
		ID:         s.ID,
		Reference:  s.Reference,
		EntityType: entities.StatementEntityType(s.EntityType),
		EntityID:   s.EntityID,
		Period:     entities.Period{From: s.PeriodFrom, To: s.PeriodTo},
		Lines:      make([]entities.StatementLine, len(lines)),
		Totals: entities.StatementTotals{
			Collected: entities.NewMoney(s.CollectedUSD, s.CollectedLBP),
			Due:       entities.NewMoney(s.DueUSD, s.DueLBP),
			Fees:      entities.NewMoney(s.FeesUSD, s.FeesLBP),
			Refunds:   entities.NewMoney(s.RefundsUSD, s.RefundsLBP),
			Net:       entities.NewMoney(s.NetUSD, s.NetLBP),
		},
		Status:        entities.StatementStatus(s.Status),
		PaidAt:        s.PaidAt,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		RevisedAt:     s.RevisedAt,
	}
	for i, line := range lines {
		statement.Lines[i] = entities.StatementLine{
			OrderID:   line.OrderID,
			Class:     entities.SettlementClass(line.Class),
			Collected: entities.NewMoney(line.CollectedUSD, line.CollectedLBP),
			Due:       entities.NewMoney(line.DueUSD, line.DueLBP),
			Fee:       entities.NewMoney(line.FeeUSD, line.FeeLBP),
			Refund:    entities.NewMoney(line.RefundUSD, line.RefundLBP),
		}
	}
	return statement
}

// totalsArgs значения итогов в порядке колонок collected, due, fees, refunds, net.
func totalsArgs(totals entities.StatementTotals) []any {
	return []any{
		totals.Collected.USD, totals.Collected.LBP,
		totals.Due.USD, totals.Due.LBP,
		totals.Fees.USD, totals.Fees.LBP,
		totals.Refunds.USD, totals.Refunds.LBP,
		totals.Net.USD, totals.Net.LBP,
	}
}
