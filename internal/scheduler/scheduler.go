package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pasturelab/grazeplan/internal/config"
	"github.com/pasturelab/grazeplan/internal/repository/sheets"
	"github.com/pasturelab/grazeplan/internal/service/alerts"
	"github.com/pasturelab/grazeplan/internal/service/planning"
)

const dateLayout = "2006-01-02"

// Scheduler runs the periodic plan digest: for every active planning session
// it exports the current move plan to the spreadsheet sink and fires deficit
// alerts.
type Scheduler struct {
	cron        *cron.Cron
	planningSvc *planning.Service
	alertSvc    *alerts.Service
	exporter    sheets.Exporter
	cfg         config.Config
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance. The exporter may be nil when
// sheet export is not configured; the digest then only evaluates alerts.
func NewScheduler(cfg config.Config, planningSvc *planning.Service, alertSvc *alerts.Service, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []cron.Option{}
	if loc, err := time.LoadLocation(cfg.Digest.Timezone); err == nil {
		opts = append(opts, cron.WithLocation(loc))
	} else {
		logger.Warn("invalid digest timezone, using local", zap.String("timezone", cfg.Digest.Timezone), zap.Error(err))
	}

	return &Scheduler{
		cron:        cron.New(opts...),
		planningSvc: planningSvc,
		alertSvc:    alertSvc,
		exporter:    exporter,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Digest.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Digest.CronSchedule, s.runDigest); err != nil {
		s.logger.Error("failed to schedule plan digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tenants := s.planningSvc.ActiveTenants()
	s.logger.Info("running plan digest", zap.Int("tenants", len(tenants)))

	for _, tenant := range tenants {
		session, err := s.planningSvc.GetSession(tenant)
		if err != nil {
			// Session expired between listing and lookup.
			continue
		}

		if s.exporter != nil {
			if err := s.exporter.AppendRows(ctx, s.cfg.Sheets.PlanRange, digestRows(session)); err != nil {
				s.logger.Error("plan export failed", zap.String("tenant", tenant), zap.Error(err))
			}
		}

		if err := s.alertSvc.NotifyDeficit(ctx, tenant, session.Budget); err != nil {
			s.logger.Error("deficit alert failed", zap.String("tenant", tenant), zap.Error(err))
		}
	}
}

// digestRows flattens a session's move plan into spreadsheet rows, one per
// step, followed by a coverage summary row.
func digestRows(session planning.Session) [][]interface{} {
	date := session.LoadedAt.Format(dateLayout)

	rows := make([][]interface{}, 0, len(session.MovePlan)+1)
	for _, step := range session.MovePlan {
		rows = append(rows, []interface{}{
			date,
			session.TenantID,
			step.StartDay,
			step.PaddockName,
			step.EstimatedDays,
			"",
		})
	}
	rows = append(rows, []interface{}{
		date,
		session.TenantID,
		"",
		"coverage",
		session.Budget.CoverageDays,
		session.Budget.DeficitLb,
	})
	return rows
}
