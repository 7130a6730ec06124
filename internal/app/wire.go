//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"
	"time"

	"settlement/internal/handlers/rest/accounting_record_post"
	"settlement/internal/handlers/rest/balance_get"
	"settlement/internal/handlers/rest/cashbox_get"
	"settlement/internal/handlers/rest/driver_collection_post"
	"settlement/internal/handlers/rest/ledger_correction_post"
	"settlement/internal/handlers/rest/order_delete"
	"settlement/internal/handlers/rest/order_due_get"
	"settlement/internal/handlers/rest/order_get"
	"settlement/internal/handlers/rest/order_post"
	"settlement/internal/handlers/rest/order_put"
	"settlement/internal/handlers/rest/order_reversal_post"
	"settlement/internal/handlers/rest/statement_get"
	"settlement/internal/handlers/rest/statement_pay_post"
	"settlement/internal/handlers/rest/statement_post"
	"settlement/internal/handlers/rest/third_party_payout_post"
	"settlement/internal/handlers/rest/third_party_remittance_post"
	"settlement/internal/handlers/tasks/cashbox_open"
	"settlement/internal/handlers/tasks/wallet_audit"
	"settlement/internal/pkg/config"
	"settlement/internal/pkg/factory/business_day"
	"settlement/internal/pkg/factory/order_handle"
	"settlement/internal/pkg/metrics"

	cashboxRepo "settlement/internal/repository/cashbox"
	ledgerRepo "settlement/internal/repository/ledger"
	orderRepo "settlement/internal/repository/order"
	postingRepo "settlement/internal/repository/posting"
	statementRepo "settlement/internal/repository/statement"
	cashboxService "settlement/internal/service/cashbox"
	ledgerService "settlement/internal/service/ledger"
	orderService "settlement/internal/service/order"
	remittanceService "settlement/internal/service/remittance"
	reversalService "settlement/internal/service/reversal"
	statementService "settlement/internal/service/statement"

	"settlement/pkg/background"
	"settlement/pkg/logger"
	"settlement/pkg/querier"
	"settlement/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	WalletAuditInterval time.Duration
	CashboxOpenSchedule string
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceReversal   ServiceReversal
	ServiceStatement  ServiceStatement
	ServiceRemittance ServiceRemittance
	ServiceLedger     ServiceLedger
	ServiceCashbox    ServiceCashbox
	BusinessDay       *business_day.BusinessDayFactory
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_put.Service
	order_delete.Service
	order_due_get.Service
}

type ServiceReversal interface {
	order_reversal_post.Service
}

type ServiceStatement interface {
	statement_post.Service
	statement_pay_post.Service
	statement_get.Service
}

type ServiceRemittance interface {
	driver_collection_post.Service
	third_party_remittance_post.Service
	third_party_payout_post.Service
}

type ServiceLedger interface {
	balance_get.Service
	ledger_correction_post.Service
	accounting_record_post.Service
}

type ServiceCashbox interface {
	cashbox_get.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideLedgerRepository,
	provideCashboxRepository,
	provideStatementRepository,
	providePostingRepository,
)

var serviceSet = wire.NewSet(
	provideBusinessDay,

	provideServiceCashbox,
	provideServiceLedger,
	provideServiceStatement,
	provideServiceRemittance,
	provideServiceReversal,
	provideStatusHandlerFactory,
	provideServiceOrder,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		provideWalletAuditInterval,
		provideCashboxOpenSchedule,
		provideWalletAuditTask,
		provideCashboxOpenTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceReversal), new(*reversalService.Reversal)),
		wire.Bind(new(ServiceStatement), new(*statementService.Statement)),
		wire.Bind(new(ServiceRemittance), new(*remittanceService.Remittance)),
		wire.Bind(new(ServiceLedger), new(*ledgerService.Ledger)),
		wire.Bind(new(ServiceCashbox), new(*cashboxService.Cashbox)),

		wire.Bind(new(wallet_audit.Service), new(*ledgerService.Ledger)),
		wire.Bind(new(cashbox_open.Service), new(*cashboxService.Cashbox)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		serviceSet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithRetryObserver(func(err error) {
		metrics.TxRetriesTotal.WithLabelValues(tx.RetryReason(err)).Inc()
	}))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideLedgerRepository(querier *querier.Querier) *ledgerRepo.Repository {
	return ledgerRepo.New(querier)
}

func provideCashboxRepository(querier *querier.Querier) *cashboxRepo.Repository {
	return cashboxRepo.New(querier)
}

func provideStatementRepository(querier *querier.Querier) *statementRepo.Repository {
	return statementRepo.New(querier)
}

func providePostingRepository(querier *querier.Querier) *postingRepo.Repository {
	return postingRepo.New(querier)
}

func provideBusinessDay(cfg *config.Config) (*business_day.BusinessDayFactory, error) {
	location, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("business timezone: %w", err)
	}
	return business_day.New(location), nil
}

func provideServiceCashbox(
	repository *cashboxRepo.Repository,
	dayFactory *business_day.BusinessDayFactory,
	txManager *tx.Manager,
) *cashboxService.Cashbox {
	return cashboxService.New(repository, dayFactory, txManager)
}

func provideServiceLedger(
	repository *ledgerRepo.Repository,
	orderRepository *orderRepo.Repository,
	cashbox *cashboxService.Cashbox,
	txManager *tx.Manager,
) *ledgerService.Ledger {
	return ledgerService.New(repository, orderRepository, cashbox, txManager)
}

func provideServiceStatement(
	repository *statementRepo.Repository,
	orderRepository *orderRepo.Repository,
	txManager *tx.Manager,
) *statementService.Statement {
	return statementService.New(repository, orderRepository, txManager)
}

func provideServiceRemittance(
	orderRepository *orderRepo.Repository,
	postingRepository *postingRepo.Repository,
	ledger *ledgerService.Ledger,
	cashbox *cashboxService.Cashbox,
	statement *statementService.Statement,
	dayFactory *business_day.BusinessDayFactory,
	txManager *tx.Manager,
) *remittanceService.Remittance {
	return remittanceService.New(
		orderRepository,
		postingRepository,
		ledger,
		cashbox,
		statement,
		dayFactory,
		txManager,
	)
}

func provideServiceReversal(
	orderRepository *orderRepo.Repository,
	postingRepository *postingRepo.Repository,
	ledger *ledgerService.Ledger,
	cashbox *cashboxService.Cashbox,
	statement *statementService.Statement,
	txManager *tx.Manager,
) *reversalService.Reversal {
	return reversalService.New(
		orderRepository,
		postingRepository,
		ledger,
		cashbox,
		statement,
		txManager,
	)
}

func provideStatusHandlerFactory(reversal *reversalService.Reversal) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(reversal)
}

func provideServiceOrder(
	repository *orderRepo.Repository,
	postingRepository *postingRepo.Repository,
	ledger *ledgerService.Ledger,
	cashbox *cashboxService.Cashbox,
	statement *statementService.Statement,
	reversal *reversalService.Reversal,
	statusFactory *order_handle.StatusHandlerFactory,
	dayFactory *business_day.BusinessDayFactory,
	txManager *tx.Manager,
) *orderService.Service {
	return orderService.New(
		repository,
		postingRepository,
		ledger,
		cashbox,
		statement,
		reversal,
		statusFactory,
		dayFactory,
		txManager,
	)
}

func provideWalletAuditInterval(cfg *config.Config) WalletAuditInterval {
	return WalletAuditInterval(cfg.Tasks.WalletAuditInterval)
}

func provideCashboxOpenSchedule(cfg *config.Config) CashboxOpenSchedule {
	return CashboxOpenSchedule(cfg.Tasks.CashboxOpenSchedule)
}

func provideWalletAuditTask(
	log logger.Logger,
	ledger wallet_audit.Service,
	interval WalletAuditInterval,
) *wallet_audit.WalletAudit {
	return wallet_audit.NewWalletAudit(log, ledger, time.Duration(interval))
}

func provideCashboxOpenTask(
	log logger.Logger,
	cashbox cashbox_open.Service,
	schedule CashboxOpenSchedule,
) *cashbox_open.CashboxOpen {
	return cashbox_open.NewCashboxOpen(log, cashbox, string(schedule))
}

func provideTaskList(
	walletAuditTask *wallet_audit.WalletAudit,
	cashboxOpenTask *cashbox_open.CashboxOpen,
) []background.Task {
	return []background.Task{
		walletAuditTask,
		cashboxOpenTask,
	}
}

func provideBackgroundWorkers(
	ctx context.Context,
	log logger.Logger,
	tasks []background.Task,
	cfg *config.Config,
) (*background.Worker, error) {
	location, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("business timezone: %w", err)
	}
	return background.New(ctx, log, tasks, background.WithLocation(location))
}
