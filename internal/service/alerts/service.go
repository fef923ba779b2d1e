package alerts

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pasturelab/grazeplan/internal/domain/models"
	"github.com/pasturelab/grazeplan/pkg/clients/webhook"
)

// Service turns budget summaries into outbound deficit notifications. A nil
// webhook client disables delivery entirely.
type Service struct {
	client webhook.Client
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires an alert service instance.
func NewService(client webhook.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger, now: time.Now}
}

// NotifyDeficit posts a webhook alert when the budget shows a forage deficit
// over the horizon. Budgets without a deficit are a no-op.
func (s *Service) NotifyDeficit(ctx context.Context, tenantID string, budget models.BudgetSummary) error {
	if !budget.HasDeficit() {
		return nil
	}
	if s.client == nil {
		s.logger.Debug("deficit alert skipped, no webhook configured", zap.String("tenant", tenantID))
		return nil
	}

	alert := webhook.Alert{
		TenantID: tenantID,
		Message: fmt.Sprintf("Forage deficit of %.0f lb DM over the next %d days; coverage ends after %.1f days. Plan supplemental feed.",
			budget.DeficitLb, budget.HorizonDays, budget.CoverageDays),
		DeficitLb:    budget.DeficitLb,
		CoverageDays: budget.CoverageDays,
		HorizonDays:  budget.HorizonDays,
		SentAt:       s.now(),
	}

	if err := s.client.PostAlert(ctx, alert); err != nil {
		return fmt.Errorf("notify deficit for tenant %s: %w", tenantID, err)
	}

	s.logger.Info("deficit alert sent",
		zap.String("tenant", tenantID),
		zap.Float64("deficit_lb", budget.DeficitLb))
	return nil
}
