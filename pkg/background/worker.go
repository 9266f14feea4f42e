package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"shipment-service/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между выполнениями.
	TTL() time.Duration

	Do(context.Context) error

	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
	group *errgroup.Group
}

// New прогревает задачи и запускает их периодическое выполнение.
//
// Каждая задача сначала выполняется один раз синхронно. Ошибка или паника
// на прогреве возвращается из New, и ни одна задача не стартует.
// После прогрева задачи крутятся в фоне до отмены ctx, ошибки отдельных
// запусков только логируются.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
		group: &errgroup.Group{},
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("initializing background task",
				logger.NewField("task", task.Info()),
			)
			return worker.safeDo(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.group.Go(func() error {
			worker.runBackgroundTask(ctx, task)
			return nil
		})
	}

	return worker, nil
}

// Wait блокируется, пока все задачи не остановятся после отмены ctx.
func (w *Worker) Wait() {
	_ = w.group.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl.String()),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			if err := w.safeDo(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

// safeDo превращает панику задачи в ошибку.
func (w *Worker) safeDo(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %q panic: %v", task.Info(), r)
		}
	}()

	return task.Do(ctx)
}
