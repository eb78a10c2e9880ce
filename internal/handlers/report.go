package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errExportReport = "failed to generate the incident report"

// @Summary      Download the incident report
// @Description  Renders the current dashboard state as SAFE_Incident_Log.pdf. A successful download is recorded as a REPORT log entry.
// @Tags         report
// @Produce      application/pdf
// @Success      200  {file}  file
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/report [get]
// @Security     BearerAuth
func (h *Handler) downloadReport(c *gin.Context) {
	ctx := c.Request.Context()
	art, err := h.services.Reports.Export(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errExportReport, "report_export_failed", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	c.Data(http.StatusOK, art.ContentType, art.Data)
}
