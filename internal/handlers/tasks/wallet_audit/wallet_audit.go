//go:generate mockgen -source=wallet_audit.go -destination=./wallet_audit_mocks_test.go -package=wallet_audit_test
package wallet_audit

import (
	"context"
	"time"

	"settlement/internal/entities"
	"settlement/internal/pkg/metrics"
	"settlement/pkg/logger"
)

type Service interface {
	WalletDrifts(ctx context.Context) ([]entities.WalletDrift, error)
}

// WalletAudit сверяет кэшированный кошелёк каждого водителя с суммой его записей в леджере.
// Ничего не исправляет, только пишет расхождения в лог и метрику.
type WalletAudit struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewWalletAudit(log logger.Logger, service Service, interval time.Duration) *WalletAudit {
	return &WalletAudit{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (w *WalletAudit) TTL() time.Duration {
	return w.interval
}

func (w *WalletAudit) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	drifts, err := w.service.WalletDrifts(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.WalletDriftDrivers.Set(float64(len(drifts)))
	for _, drift := range drifts {
		w.log.With(
			logger.NewField("driver_id", drift.DriverID),
			logger.NewField("wallet", drift.Wallet.String()),
			logger.NewField("ledger", drift.Ledger.String()),
		).Warn("driver wallet drifted from ledger")
	}

	return nil
}

func (w *WalletAudit) Info() string {
	return "wallet audit"
}
