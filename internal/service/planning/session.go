package planning

import (
	"sync"
	"time"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

// Session is one tenant's in-memory planning state: the editable inputs plus
// every derived structure. Derived fields are rebuilt wholesale by recompute;
// they are never mutated in place, so a copied Session stays a consistent
// snapshot.
type Session struct {
	TenantID    string                    `json:"tenant_id"`
	Herd        models.Herd               `json:"herd"`
	Paddocks    []models.Paddock          `json:"paddocks"`
	HorizonDays int                       `json:"horizon_days"`
	Budget      models.BudgetSummary      `json:"budget"`
	MovePlan    []models.MoveStep         `json:"move_plan"`
	Allocations []models.GrowthAllocation `json:"allocations"`
	Costs       []models.PaddockCost      `json:"costs"`
	CostTotals  models.ProjectTotals      `json:"cost_totals"`
	LoadedAt    time.Time                 `json:"loaded_at"`
}

// SessionManager holds the active planning sessions keyed by tenant.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewSessionManager creates a new session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Get retrieves a snapshot of the tenant's session.
func (sm *SessionManager) Get(tenantID string) (Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if s, exists := sm.sessions[tenantID]; exists {
		return *s, true
	}
	return Session{}, false
}

// Put stores the tenant's session, replacing any previous one.
func (sm *SessionManager) Put(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[s.TenantID] = s
}

// Clear removes a tenant's session.
func (sm *SessionManager) Clear(tenantID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, tenantID)
}

// ActiveTenants lists the tenants with a loaded session.
func (sm *SessionManager) ActiveTenants() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	tenants := make([]string, 0, len(sm.sessions))
	for tenant := range sm.sessions {
		tenants = append(tenants, tenant)
	}
	return tenants
}
