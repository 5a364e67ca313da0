// Package shutdownqueue is a process-wide LIFO queue of named cleanup
// tasks, drained once at the end of main:
//
//	shutdownqueue.Add("http server", srv.Shutdown)
//	...
//	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
//	defer cancel()
//	err := shutdownqueue.Shutdown(ctx)
//
// Tasks run once, in reverse order of registration. Panics are recovered and
// every failure is reported with the task name.
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Task is a shutdown function. It should honor ctx and return an error
// if it can't finish (or ctx is canceled).
type Task func(ctx context.Context) error

type namedTask struct {
	name string
	run  Task
}

type queue struct {
	mu     sync.Mutex
	tasks  []namedTask
	closed bool
}

var q = &queue{tasks: make([]namedTask, 0, 8)}

// Add registers a task to be run on Shutdown, in LIFO order.
// If t is nil or shutdown has already started, Add does nothing.
func Add(name string, t Task) {
	if t == nil {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		slog.Warn("shutdown task registered after shutdown started", "task", name)
		return
	}

	q.tasks = append(q.tasks, namedTask{name: name, run: t})
}

// AddCloser registers a Close method, e.g. of a *sql.DB or a preference
// store, as a task.
func AddCloser(name string, closer func() error) {
	if closer == nil {
		return
	}

	Add(name, func(context.Context) error { return closer() })
}

// Shutdown drains all registered tasks in LIFO order. Calls after the first
// are no-ops.
//
// If ctx is done mid-drain, the remaining tasks are skipped and the context
// error is joined with the task errors collected so far.
func Shutdown(ctx context.Context) error {
	q.mu.Lock()

	if q.closed && len(q.tasks) == 0 {
		q.mu.Unlock()

		return nil
	}

	q.closed = true
	tasks := q.tasks
	q.tasks = nil

	q.mu.Unlock()

	var errs []error

	for i := len(tasks) - 1; i >= 0; i-- {
		err := ctx.Err()
		if err != nil {
			errs = append(errs, fmt.Errorf("shutdown canceled before %q: %w", tasks[i].name, err))

			return errors.Join(errs...)
		}

		err = runTask(ctx, tasks[i])
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func runTask(ctx context.Context, t namedTask) (err error) {
	start := time.Now()

	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panic in shutdown task %q: %v", t.name, r)
		}

		if err != nil {
			slog.Error("shutdown task failed", "task", t.name, "err", err)
			return
		}

		slog.Info("shutdown task done", "task", t.name, "took", time.Since(start))
	}()

	err = t.run(ctx)
	if err != nil {
		return fmt.Errorf("shutdown task %q: %w", t.name, err)
	}

	return nil
}
