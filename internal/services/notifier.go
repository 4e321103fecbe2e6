package services

import (
	"sync"
	"time"

	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// Notifier is the toast sink. Delivery is fire-and-forget.
type Notifier interface {
	Notify(n models.Notification)
}

// NotificationQueue buffers notifications until the next view drains them.
type NotificationQueue struct {
	mu    sync.Mutex
	items []models.Notification
}

// Notify appends n.
func (q *NotificationQueue) Notify(n models.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// Drain returns and clears the buffered notifications.
func (q *NotificationQueue) Drain() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	if out == nil {
		out = []models.Notification{}
	}
	return out
}

func notifySuccess(n Notifier, title, message string) {
	n.Notify(models.Notification{Level: models.NotificationSuccess, Title: title, Message: message, CreatedAt: time.Now()})
}

func notifyError(n Notifier, title, message string) {
	n.Notify(models.Notification{Level: models.NotificationError, Title: title, Message: message, CreatedAt: time.Now()})
}
