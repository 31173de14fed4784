// Package scheduler implements a worker pool for executing async work with futures.
//
// A Scheduler runs work functions on a fixed number of workers. Work is
// submitted with AddWork, which returns a Future for the typed result.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                          Scheduler[T]                               │
//	│                                                                     │
//	│        worker 1          worker 2          ...          worker N    │
//	│           ▲                 ▲                              ▲        │
//	│           └─────────────────┼──────────────────────────────┘        │
//	│                      ┌──────┴──────┐                                │
//	│                      │  dispatch() │  idle > 0 && pending > 0       │
//	│                      └──────┬──────┘                                │
//	│  ┌──────────────────────────┴─────────────────────────────┐         │
//	│  │                  pending (FIFO)                        │         │
//	│  └────────────────────────────────────────────────────────┘         │
//	│                             ▲                                       │
//	│                        AddWork(fn)                                  │
//	└─────────────────────────────────────────────────────────────────────┘
//
// The event loop owns the pending queue and the idle worker count. It reacts
// to three events: new work, a worker being released, and Close.
//
// # Futures
//
//	future := sched.AddWork(func(ctx context.Context) (models.StoreOutcome, error) {
//	    return svc.Write(ctx, task)
//	})
//
//	outcome, err := future.Wait(ctx)
//
// C() exposes the result channel for select loops. Stop() cancels the
// context handed to the work function; Wait does the same when its own
// context ends first.
//
// # Panics
//
// A panicking work function resolves its future with a "worker panicked"
// error and the worker returns to the pool.
//
// # Shutdown
//
// Close cancels the context of every piece of work, resolves queued work
// with context.Canceled, and waits for running work to return. AddWork after
// Close resolves immediately with context.Canceled. Close is idempotent.
package scheduler
