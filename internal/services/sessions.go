package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

const persistTimeout = 2 * time.Second

// SessionManager owns one Controller per session and persists their snapshots.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Controller
	repo     SessionRepository
	deps     *FlowDeps
}

// NewSessionManager creates a SessionManager.
func NewSessionManager(repo SessionRepository, deps *FlowDeps) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*Controller),
		repo:     repo,
		deps:     deps,
	}
}

// Create starts a new session, on the admin screen when admin is set.
func (m *SessionManager) Create(ctx context.Context, admin bool) (*models.SessionView, error) {
	s := models.NewSession(uuid.New(), admin, m.deps.now())
	c := NewController(s, m.deps, m.persist)

	m.mu.Lock()
	m.sessions[s.ID] = c
	m.mu.Unlock()

	c.Open(ctx)
	logger.Log.Infow("session created", "session_id", s.ID, "screen", s.Screen)

	v := c.View()
	return &v, nil
}

// Controller returns the controller of session id, restoring it from its snapshot when needed.
// The snapshot is read without holding the session map lock.
func (m *SessionManager) Controller(ctx context.Context, id uuid.UUID) (*Controller, error) {
	m.mu.RLock()
	c, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return c, nil
	}

	s, err := m.repo.Get(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load session", "session_id", id, "error", err)
		return nil, err
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}

	m.mu.Lock()
	if c, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return c, nil
	}
	c = NewController(*s, m.deps, m.persist)
	m.sessions[id] = c
	m.mu.Unlock()

	c.Resume()
	logger.Log.Infow("session restored", "session_id", id, "screen", s.Screen)
	return c, nil
}

// View returns the current view of session id.
func (m *SessionManager) View(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	return m.apply(ctx, id, func(*Controller) error { return nil })
}

// Navigate switches the screen of session id.
func (m *SessionManager) Navigate(ctx context.Context, id uuid.UUID, screen models.Screen) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.Navigate(ctx, screen) })
}

// SubmitAmount submits the amount step of session id.
func (m *SessionManager) SubmitAmount(ctx context.Context, id uuid.UUID, amount string, currency models.Currency) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.SubmitAmount(ctx, amount, currency) })
}

// UploadQR submits the QR-code image of session id.
func (m *SessionManager) UploadQR(ctx context.Context, id uuid.UUID, image []byte) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.UploadQR(ctx, image) })
}

// ConfirmPaid confirms the payment of session id.
func (m *SessionManager) ConfirmPaid(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.ConfirmPaid(ctx) })
}

// UploadProof submits the payment proof of session id.
func (m *SessionManager) UploadProof(ctx context.Context, id uuid.UUID, image []byte) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.UploadProof(ctx, image) })
}

// History returns the transaction history for session id.
func (m *SessionManager) History(ctx context.Context, id uuid.UUID) (*models.HistoryResponse, error) {
	c, err := m.Controller(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := c.History(ctx)
	if err != nil {
		return nil, err
	}
	return &models.HistoryResponse{Transactions: entries, Notifications: c.Notifications()}, nil
}

// AdminSelectView switches the admin sub-view of session id.
func (m *SessionManager) AdminSelectView(ctx context.Context, id uuid.UUID, view models.AdminView) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.AdminSelectView(ctx, view) })
}

// AdminEdit starts editing a payment detail in session id.
func (m *SessionManager) AdminEdit(ctx context.Context, id uuid.UUID, recordID int64) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.AdminEdit(ctx, recordID) })
}

// AdminCancel leaves the edit session of session id.
func (m *SessionManager) AdminCancel(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.AdminCancel(ctx) })
}

// AdminSetForm stores admin form values for session id.
func (m *SessionManager) AdminSetForm(ctx context.Context, id uuid.UUID, form models.PaymentDetailForm) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.AdminSetForm(ctx, form) })
}

// AdminSave submits the admin form of session id.
func (m *SessionManager) AdminSave(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.AdminSave(ctx) })
}

// AdminDelete deletes a payment detail from session id.
func (m *SessionManager) AdminDelete(ctx context.Context, id uuid.UUID, recordID int64, confirmed bool) (*models.SessionView, error) {
	return m.apply(ctx, id, func(c *Controller) error { return c.AdminDelete(ctx, recordID, confirmed) })
}

func (m *SessionManager) apply(ctx context.Context, id uuid.UUID, op func(c *Controller) error) (*models.SessionView, error) {
	c, err := m.Controller(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := op(c); err != nil {
		return nil, err
	}
	v := c.View()
	return &v, nil
}

// Evict drops controllers idle since before. Their snapshots stay in the repository.
func (m *SessionManager) Evict(before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, c := range m.sessions {
		if c.Idle(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// RunEvictor evicts controllers idle for longer than ttl until ctx ends.
func (m *SessionManager) RunEvictor(ctx context.Context, every, ttl time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Evict(m.deps.now().Add(-ttl)); n > 0 {
				logger.Log.Infow("evicted idle sessions", "count", n)
			}
		}
	}
}

// End stops session id and removes its snapshot. Ending an unknown session is not an error.
func (m *SessionManager) End(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	c, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		c.Close()
	}
	if err := m.repo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", id, "error", err)
		return err
	}
	logger.Log.Infow("session ended", "session_id", id)
	return nil
}

// Close stops every running poll.
func (m *SessionManager) Close() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.sessions {
		c.Close()
	}
}

func (m *SessionManager) persist(s models.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := m.repo.Save(ctx, s); err != nil {
		logger.Log.Errorw("failed to persist session", "session_id", s.ID, "error", err)
	}
}
