package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasturelab/grazeplan/internal/domain/models"
	"github.com/pasturelab/grazeplan/internal/service/planning"
)

func TestDigestRows(t *testing.T) {
	session := planning.Session{
		TenantID: "ranch-1",
		LoadedAt: time.Date(2026, 4, 12, 8, 0, 0, 0, time.UTC),
		MovePlan: []models.MoveStep{
			{StartDay: 1, PaddockName: "North 5", EstimatedDays: 2.56},
			{StartDay: 3, PaddockName: "Creek 6", EstimatedDays: 2.69},
		},
		Budget: models.BudgetSummary{CoverageDays: 5.26, DeficitLb: 8880},
	}

	rows := digestRows(session)
	require.Len(t, rows, 3)

	assert.Equal(t, []interface{}{"2026-04-12", "ranch-1", 1, "North 5", 2.56, ""}, rows[0])
	assert.Equal(t, []interface{}{"2026-04-12", "ranch-1", 3, "Creek 6", 2.69, ""}, rows[1])
	assert.Equal(t, []interface{}{"2026-04-12", "ranch-1", "", "coverage", 5.26, 8880.0}, rows[2])
}

func TestDigestRows_EmptyPlanStillSummarizes(t *testing.T) {
	session := planning.Session{
		TenantID: "ranch-1",
		LoadedAt: time.Date(2026, 4, 12, 8, 0, 0, 0, time.UTC),
	}

	rows := digestRows(session)
	require.Len(t, rows, 1)
	assert.Equal(t, "coverage", rows[0][3])
}
