package scheduler

import (
	"context"
	"fmt"
	"sync"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	var zero T
	old[0] = zero
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type request[T any] struct {
	fn  Work[T]
	c   chan Result[T]
	ctx context.Context
}

// Scheduler runs work on a fixed number of workers. Work submitted while
// every worker is busy waits in FIFO order.
type Scheduler[T any] struct {
	idle     int
	pending  *queue[request[T]]
	submit   chan request[T]
	released chan struct{}
	closing  chan struct{}
	stopped  chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

func NewScheduler[T any](workers int) *Scheduler[T] {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler[T]{
		idle:     workers,
		pending:  &queue[request[T]]{},
		submit:   make(chan request[T]),
		released: make(chan struct{}, workers),
		closing:  make(chan struct{}),
		stopped:  make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
	go s.run()
	return s
}

// AddWork queues w and returns its future. After Close the future resolves
// to context.Canceled without running w.
func (s *Scheduler[T]) AddWork(w Work[T]) *Future[T] {
	c := make(chan Result[T], 1)
	ctx, cancel := context.WithCancel(s.ctx)

	select {
	case <-s.ctx.Done():
		c <- Result[T]{Err: context.Canceled}
	case s.submit <- request[T]{fn: w, c: c, ctx: ctx}:
	}

	return NewFuture(c, cancel)
}

// Close cancels all work and returns once running work has returned.
func (s *Scheduler[T]) Close() {
	s.once.Do(func() {
		s.cancel()
		close(s.closing)
		<-s.stopped
	})
}

func (s *Scheduler[T]) run() {
	defer close(s.stopped)
	for {
		select {
		case r := <-s.submit:
			s.pending.Push(r)
			s.dispatch()
		case <-s.released:
			s.idle++
			s.dispatch()
		case <-s.closing:
			for s.pending.Len() > 0 {
				s.pending.Pop().c <- Result[T]{Err: context.Canceled}
			}
			s.wg.Wait()
			return
		}
	}
}

// dispatch starts pending work while workers are idle.
func (s *Scheduler[T]) dispatch() {
	for s.idle > 0 && s.pending.Len() > 0 {
		r := s.pending.Pop()
		s.idle--
		s.wg.Add(1)
		go s.work(r)
	}
}

func (s *Scheduler[T]) work(r request[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result[T]{Err: fmt.Errorf("worker panicked: %v", rec)}
		}
		s.released <- struct{}{}
		s.wg.Done()
	}()

	v, err := r.fn(r.ctx)
	r.c <- Result[T]{Data: v, Err: err}
}
