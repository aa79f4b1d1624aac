// Package notifier decouples ledger mutations from message delivery. The
// core emits NotificationRequests and never observes delivery outcome; a
// failed send is retried with backoff and finally logged, never rolled back
// into the ledger.
package notifier

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Request asks the transport layer to deliver a message. Recipient is a
// platform chat/user ID; AdminGroup requests should go to the configured
// admin group chat instead.
type Request struct {
	RecipientID int64
	AdminGroup  bool
	Text        string
}

// Sender delivers a single request. Implemented by the chat transport;
// LogSender stands in when none is attached.
type Sender interface {
	Send(ctx context.Context, req Request) error
}

// LogSender writes would-be deliveries to the log. Used in development and
// whenever the real transport is not wired up.
type LogSender struct{}

func (LogSender) Send(_ context.Context, req Request) error {
	zap.L().Info("notification",
		zap.Int64("recipient", req.RecipientID),
		zap.Bool("admin_group", req.AdminGroup),
		zap.String("text", req.Text))
	return nil
}

// GroupResolver rewrites admin-group requests to the configured group chat
// before handing them to the underlying sender. When no group is configured
// those requests are dropped silently; per-admin copies were already
// enqueued.
type GroupResolver struct {
	Inner        Sender
	AdminGroupID int64
}

func (g GroupResolver) Send(ctx context.Context, req Request) error {
	if req.AdminGroup {
		if g.AdminGroupID == 0 {
			return nil
		}
		req.RecipientID = g.AdminGroupID
		req.AdminGroup = false
	}
	return g.Inner.Send(ctx, req)
}

// Queue is a fire-and-forget delivery queue: a buffered channel drained by
// one worker, retrying each request a bounded number of times.
type Queue struct {
	sender      Sender
	requests    chan Request
	stop        chan struct{}
	wg          sync.WaitGroup
	maxAttempts int
	backoff     time.Duration
	sendTimeout time.Duration
}

func NewQueue(sender Sender) *Queue {
	return &Queue{
		sender:      sender,
		requests:    make(chan Request, 256),
		stop:        make(chan struct{}),
		maxAttempts: 3,
		backoff:     500 * time.Millisecond,
		sendTimeout: 10 * time.Second,
	}
}

// Start launches the delivery worker.
func (q *Queue) Start() {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case req := <-q.requests:
				q.deliver(req)
			case <-q.stop:
				// Drain what is already queued before exiting.
				for {
					select {
					case req := <-q.requests:
						q.deliver(req)
					default:
						return
					}
				}
			}
		}
	}()
}

// Enqueue never blocks the caller: when the queue is full the request is
// dropped and logged. The ledger mutation that produced it has already
// committed.
func (q *Queue) Enqueue(req Request) {
	select {
	case q.requests <- req:
	default:
		zap.L().Warn("notification queue full, dropping request",
			zap.Int64("recipient", req.RecipientID))
	}
}

// Stop drains the queue and stops the worker.
func (q *Queue) Stop() {
	close(q.stop)
	q.wg.Wait()
}

func (q *Queue) deliver(req Request) {
	var err error
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), q.sendTimeout)
		err = q.sender.Send(ctx, req)
		cancel()
		if err == nil {
			return
		}
		if attempt < q.maxAttempts {
			time.Sleep(q.backoff * time.Duration(attempt))
		}
	}
	zap.L().Error("notification delivery failed",
		zap.Int64("recipient", req.RecipientID),
		zap.Bool("admin_group", req.AdminGroup),
		zap.Error(err))
}
