package planning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pasturelab/grazeplan/internal/domain/models"
	"github.com/pasturelab/grazeplan/internal/repository/mongodb"
	"github.com/pasturelab/grazeplan/internal/service/amendment"
	"github.com/pasturelab/grazeplan/internal/service/forage"
	"github.com/pasturelab/grazeplan/internal/service/rotation"
)

// ErrNoSession indicates the tenant has not loaded a planning session yet.
var ErrNoSession = errors.New("no planning session loaded for tenant")

// ErrUnknownPaddock indicates the referenced paddock is not part of the
// tenant's session.
var ErrUnknownPaddock = errors.New("paddock not part of the planning session")

// Service owns the planning sessions: it loads paddocks from the record
// store, applies user edits, and recomputes every derived structure
// synchronously and in full on each change.
type Service struct {
	repo               mongodb.Repository
	sessions           *SessionManager
	defaultHorizonDays int
	logger             *zap.Logger
	now                func() time.Time

	// mu serializes edit-recompute-store cycles. Sessions are single-editor;
	// the lock only guards against the digest scheduler reading mid-edit.
	mu sync.Mutex
}

// NewService wires a planning service instance.
func NewService(repository mongodb.Repository, defaultHorizonDays int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultHorizonDays <= 0 {
		defaultHorizonDays = 30
	}
	return &Service{
		repo:               repository,
		sessions:           NewSessionManager(),
		defaultHorizonDays: defaultHorizonDays,
		logger:             logger,
		now:                time.Now,
	}
}

// LoadSession fetches the tenant's paddocks from the record store and starts
// a fresh planning session, replacing any previous one. Herd parameters start
// zeroed and are supplied by user edits.
func (s *Service) LoadSession(ctx context.Context, tenantID string) (Session, error) {
	paddocks, err := s.repo.ListPaddocks(ctx, tenantID)
	if err != nil {
		return Session{}, fmt.Errorf("load paddocks for tenant %s: %w", tenantID, err)
	}

	session := &Session{
		TenantID:    tenantID,
		Paddocks:    paddocks,
		HorizonDays: s.defaultHorizonDays,
		LoadedAt:    s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recompute(session)
	s.sessions.Put(session)

	s.logger.Info("planning session loaded",
		zap.String("tenant", tenantID),
		zap.Int("paddocks", len(paddocks)))

	return *session, nil
}

// GetSession returns a snapshot of the tenant's current session.
func (s *Service) GetSession(tenantID string) (Session, error) {
	session, ok := s.sessions.Get(tenantID)
	if !ok {
		return Session{}, ErrNoSession
	}
	return session, nil
}

// UpdateHerd replaces the session's herd parameters and recomputes.
func (s *Service) UpdateHerd(tenantID string, herd models.Herd) (Session, error) {
	return s.edit(tenantID, func(session *Session) error {
		session.Herd = herd
		return nil
	})
}

// SetHorizon replaces the planning horizon and recomputes. Non-positive
// horizons degrade to zero-length plans rather than erroring.
func (s *Service) SetHorizon(tenantID string, horizonDays int) (Session, error) {
	return s.edit(tenantID, func(session *Session) error {
		if horizonDays < 0 {
			horizonDays = 0
		}
		session.HorizonDays = horizonDays
		return nil
	})
}

// UpdatePaddock replaces one paddock's working values and recomputes. The
// paddock must already be part of the session; planning never invents
// paddocks.
func (s *Service) UpdatePaddock(tenantID string, paddock models.Paddock) (Session, error) {
	return s.edit(tenantID, func(session *Session) error {
		replaced := false
		next := make([]models.Paddock, len(session.Paddocks))
		for i, p := range session.Paddocks {
			if p.ID == paddock.ID {
				next[i] = paddock
				replaced = true
				continue
			}
			next[i] = p
		}
		if !replaced {
			return fmt.Errorf("%w: %s", ErrUnknownPaddock, paddock.ID)
		}
		session.Paddocks = next
		return nil
	})
}

// SaveSeedingRecord persists a seeding recipe for a session paddock. A failed
// remote write is returned to the caller but never touches the in-memory
// session; the user keeps editing and recomputing locally.
func (s *Service) SaveSeedingRecord(ctx context.Context, tenantID string, record models.SeedingRecord) error {
	if err := s.ensurePaddock(tenantID, record.PaddockID); err != nil {
		return err
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = s.now()
	}

	if err := s.repo.UpsertSeedingRecord(ctx, tenantID, record); err != nil {
		s.logger.Warn("seeding record save failed, session state preserved",
			zap.String("tenant", tenantID),
			zap.String("paddock", record.PaddockID),
			zap.Error(err))
		return fmt.Errorf("save seeding record: %w", err)
	}
	return nil
}

// SaveAmendmentRecord persists an amendment application for a session
// paddock, with the same failure semantics as SaveSeedingRecord.
func (s *Service) SaveAmendmentRecord(ctx context.Context, tenantID string, record models.AmendmentRecord) error {
	if err := s.ensurePaddock(tenantID, record.PaddockID); err != nil {
		return err
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = s.now()
	}

	if err := s.repo.UpsertAmendmentRecord(ctx, tenantID, record); err != nil {
		s.logger.Warn("amendment record save failed, session state preserved",
			zap.String("tenant", tenantID),
			zap.String("paddock", record.PaddockID),
			zap.Error(err))
		return fmt.Errorf("save amendment record: %w", err)
	}
	return nil
}

// ActiveTenants lists tenants with a loaded session, for the digest
// scheduler.
func (s *Service) ActiveTenants() []string {
	return s.sessions.ActiveTenants()
}

func (s *Service) edit(tenantID string, apply func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions.Get(tenantID)
	if !ok {
		return Session{}, ErrNoSession
	}

	if err := apply(&current); err != nil {
		return Session{}, err
	}

	s.recompute(&current)
	s.sessions.Put(&current)
	return current, nil
}

func (s *Service) ensurePaddock(tenantID, paddockID string) error {
	session, ok := s.sessions.Get(tenantID)
	if !ok {
		return ErrNoSession
	}
	for _, p := range session.Paddocks {
		if p.ID == paddockID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPaddock, paddockID)
}

// recompute rebuilds every derived structure from the session inputs. Stale
// results are replaced wholesale, never partially merged.
func (s *Service) recompute(session *Session) {
	session.Budget = forage.ComputeBudget(session.Herd, session.Paddocks, session.HorizonDays)
	session.MovePlan = rotation.BuildMovePlan(session.Budget.PerPaddock, session.HorizonDays)
	session.Allocations = rotation.AllocateGrowth(session.Budget.PerPaddock, session.Budget.DailyDemandLb, session.HorizonDays)

	costs := make([]models.PaddockCost, 0, len(session.Paddocks))
	for _, p := range session.Paddocks {
		costs = append(costs, amendment.ComputePaddockCost(p))
	}
	session.Costs = costs
	session.CostTotals = amendment.ComputeProjectTotals(session.Paddocks)
}
