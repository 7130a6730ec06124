package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
	"settlement/pkg/logger"
)

// Task определяет интерфейс для фоновых задач, которые могут выполняться периодически.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

// Scheduled реализуют задачи, которые должны запускаться по cron расписанию
// (например "5 0 * * *"), а не через фиксированный интервал. TTL таких задач игнорируется.
type Scheduled interface {
	Schedule() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Option func(*Worker)

// WithLocation задаёт часовой пояс для cron расписаний, по умолчанию UTC.
func WithLocation(location *time.Location) Option {
	return func(w *Worker) {
		w.location = location
	}
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log      handlerLogger
	tasks    []Task
	location *time.Location
	cron     *cron.Cron
}

// New создает и запускает Worker для выполнения фоновых задач.
//
// Поведение функции:
//  1. Расписания Scheduled задач разбираются заранее, невалидное расписание - ошибка.
//  2. Все задачи выполняются синхронно один раз ("прогрев"). Ошибка или паника любой задачи
//     на этом этапе возвращается из New, Worker не создается.
//  3. Дальше задачи выполняются в фоне (ticker или cron) пока не отменен ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task, opts ...Option) (*Worker, error) {
	worker := &Worker{
		log:      log,
		tasks:    tasks,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(worker)
	}

	if len(tasks) == 0 {
		return worker, nil
	}

	worker.cron = cron.New(cron.WithLocation(worker.location))
	for _, task := range tasks {
		scheduled, ok := task.(Scheduled)
		if !ok {
			continue
		}
		_, err := worker.cron.AddFunc(scheduled.Schedule(), func() {
			worker.executeTaskSafely(ctx, task)
		})
		if err != nil {
			return nil, fmt.Errorf("invalid schedule %q for task %s: %w", scheduled.Schedule(), task.Info(), err)
		}
	}

	if err := worker.warmUp(ctx); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if _, ok := task.(Scheduled); ok {
			continue
		}
		go worker.runBackgroundTask(ctx, task)
	}

	worker.cron.Start()
	go func() {
		<-ctx.Done()
		<-worker.cron.Stop().Done()
		log.Warn("Cron scheduler stopped")
	}()

	return worker, nil
}

func (w *Worker) warmUp(ctx context.Context) error {
	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					w.log.Error("Task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			w.log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return fmt.Errorf("failed to initialize tasks: %w", err)
	}
	return nil
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
