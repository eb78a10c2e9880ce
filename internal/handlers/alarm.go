package handlers

import (
	"errors"
	"net/http"

	"safe_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusTriggered = "emergency_triggered"
	statusReset     = "system_reset"

	errTriggerAlarm = "failed to trigger emergency protocol"
	errResetAlarm   = "failed to reset the system"
	errGetState     = "failed to load state"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.Monitoring.Snapshot(ctx)
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// isConflict reports whether err is one of the transition conflicts that map
// to 409 rather than 500.
func isConflict(err error) bool {
	return errors.Is(err, service.ErrEmergencyActive) || errors.Is(err, service.ErrEmergencyNotActive)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Trigger the emergency protocol
// @Description  Switches the dashboard to emergency mode: incident readings, elapsed counter from zero, one ALERT log entry.
// @Tags         alarm
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "emergency already active"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alarm/trigger [post]
// @Security     BearerAuth
func (h *Handler) triggerAlarm(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.Alarm.Trigger(ctx); err != nil {
		if isConflict(err) {
			if h.log != nil {
				h.log.Infow("alarm_trigger_rejected", "err", err)
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errTriggerAlarm, "alarm_trigger_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusTriggered, gin.H{})
}

// @Summary      Reset the system
// @Description  Returns the dashboard to normal operation: safe readings, elapsed counter zeroed, one RESET log entry.
// @Tags         alarm
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, state"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "no active emergency"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alarm/reset [post]
// @Security     BearerAuth
func (h *Handler) resetAlarm(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.services.Alarm.Reset(ctx); err != nil {
		if isConflict(err) {
			if h.log != nil {
				h.log.Infow("alarm_reset_rejected", "err", err)
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errResetAlarm, "alarm_reset_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusReset, gin.H{})
}

// @Summary      Get dashboard state
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.Snapshot(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "dashboard_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
