package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nani-1205/Project-Management-App/internal/repository"
	"github.com/nani-1205/Project-Management-App/internal/service"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the time-report download.
type ReportHandler struct {
	svc *service.Services
	log *zap.Logger
}

func NewReportHandler(svc *service.Services, log *zap.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

// Download streams the project's time-tracking workbook.
func (h *ReportHandler) Download(c *gin.Context) {
	projectID := c.Param("id")

	f, filename, err := h.svc.Report.BuildTimeReport(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			AddFlash(c, FlashWarning, fmt.Sprintf("Project with ID %s not found.", projectID))
			redirectToIndex(c, "")
			return
		}
		h.log.Error("build time report", zap.String("project_id", projectID), zap.Error(err))
		AddFlash(c, FlashError, "Error building the time report.")
		redirectToIndex(c, projectID)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.log.Error("write time report", zap.String("project_id", projectID), zap.Error(err))
	}
}
