package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pasturelab/grazeplan/internal/domain/models"
	"github.com/pasturelab/grazeplan/internal/service/planning"
)

// PlanningHandler adapts the planning service to HTTP.
type PlanningHandler struct {
	svc    *planning.Service
	logger *zap.Logger
}

// NewPlanningHandler constructs the HTTP handler adapter.
func NewPlanningHandler(svc *planning.Service, logger *zap.Logger) *PlanningHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanningHandler{svc: svc, logger: logger}
}

// LoadSession loads the tenant's paddocks and starts a fresh planning
// session.
func (h *PlanningHandler) LoadSession(c *gin.Context) {
	tenantID := c.Param("tenantID")

	session, err := h.svc.LoadSession(c.Request.Context(), tenantID)
	if err != nil {
		h.logger.Error("failed loading planning session", zap.String("tenant", tenantID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load paddocks"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession returns the tenant's current session with all derived figures.
func (h *PlanningHandler) GetSession(c *gin.Context) {
	session, err := h.svc.GetSession(c.Param("tenantID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no planning session loaded"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// UpdateHerd replaces the session's herd parameters.
func (h *PlanningHandler) UpdateHerd(c *gin.Context) {
	var herd models.Herd
	if err := c.ShouldBindJSON(&herd); err != nil {
		h.logger.Warn("invalid herd payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.svc.UpdateHerd(c.Param("tenantID"), herd)
	if err != nil {
		h.respondEditError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

type horizonRequest struct {
	HorizonDays int `json:"horizon_days" binding:"required"`
}

// SetHorizon replaces the planning horizon.
func (h *PlanningHandler) SetHorizon(c *gin.Context) {
	var req horizonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid horizon payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.svc.SetHorizon(c.Param("tenantID"), req.HorizonDays)
	if err != nil {
		h.respondEditError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// UpdatePaddock replaces one paddock's working values for the session.
func (h *PlanningHandler) UpdatePaddock(c *gin.Context) {
	var paddock models.Paddock
	if err := c.ShouldBindJSON(&paddock); err != nil {
		h.logger.Warn("invalid paddock payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	paddock.ID = c.Param("paddockID")

	session, err := h.svc.UpdatePaddock(c.Param("tenantID"), paddock)
	if err != nil {
		h.respondEditError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// SaveSeeding persists a seeding recipe record for a session paddock.
func (h *PlanningHandler) SaveSeeding(c *gin.Context) {
	var record models.SeedingRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid seeding payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record.PaddockID = c.Param("paddockID")

	if err := h.svc.SaveSeedingRecord(c.Request.Context(), c.Param("tenantID"), record); err != nil {
		h.respondSaveError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// SaveAmendment persists an amendment application record for a session
// paddock.
func (h *PlanningHandler) SaveAmendment(c *gin.Context) {
	var record models.AmendmentRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid amendment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record.PaddockID = c.Param("paddockID")

	if err := h.svc.SaveAmendmentRecord(c.Request.Context(), c.Param("tenantID"), record); err != nil {
		h.respondSaveError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *PlanningHandler) respondEditError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planning.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": "no planning session loaded"})
	case errors.Is(err, planning.ErrUnknownPaddock):
		c.JSON(http.StatusNotFound, gin.H{"error": "paddock not in session"})
	default:
		h.logger.Error("planning edit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "planning update failed"})
	}
}

func (h *PlanningHandler) respondSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planning.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{"error": "no planning session loaded"})
	case errors.Is(err, planning.ErrUnknownPaddock):
		c.JSON(http.StatusNotFound, gin.H{"error": "paddock not in session"})
	default:
		// Record-store failures are recoverable; the session stays editable.
		h.logger.Error("record save failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "record save failed, planning state preserved"})
	}
}
