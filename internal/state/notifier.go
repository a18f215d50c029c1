package state

import (
	"sync"
	"time"

	"ms-booking-client/internal/logger"
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

type Toast struct {
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier receives user-visible transient notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

const defaultToastLimit = 50

// ToastQueue buffers notifications until the UI drains them. When full, the
// oldest toast is dropped.
type ToastQueue struct {
	mu     sync.Mutex
	toasts []Toast
	limit  int
	logger *logger.Logger
	now    func() time.Time
}

func NewToastQueue(log *logger.Logger) *ToastQueue {
	if log == nil {
		log = logger.Discard()
	}
	return &ToastQueue{limit: defaultToastLimit, logger: log, now: time.Now}
}

func (q *ToastQueue) Success(message string) {
	q.push(ToastSuccess, message)
}

func (q *ToastQueue) Error(message string) {
	q.push(ToastError, message)
}

func (q *ToastQueue) push(kind ToastKind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.toasts) >= q.limit {
		q.toasts = q.toasts[1:]
	}
	q.toasts = append(q.toasts, Toast{Kind: kind, Message: message, At: q.now()})
	q.logger.Debug("TOAST", string(kind)+": "+message)
}

// Drain returns queued toasts oldest first and empties the queue.
func (q *ToastQueue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.toasts
	q.toasts = nil
	if out == nil {
		out = []Toast{}
	}
	return out
}

func (q *ToastQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}
