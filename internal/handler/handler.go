package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nani-1205/Project-Management-App/internal/service"
	"go.uber.org/zap"
)

// Handlers bundles all handlers for route registration.
type Handlers struct {
	Page    *PageHandler
	Project *ProjectHandler
	Task    *TaskHandler
	API     *APIHandler
	Report  *ReportHandler
}

// NewHandlers creates all handlers.
func NewHandlers(svc *service.Services, logger *zap.Logger) *Handlers {
	return &Handlers{
		Page:    NewPageHandler(svc, logger),
		Project: NewProjectHandler(svc, logger),
		Task:    NewTaskHandler(svc, logger),
		API:     NewAPIHandler(svc, logger),
		Report:  NewReportHandler(svc, logger),
	}
}

// Flash levels.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next page render.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

const flashCookie = "pp_flash"

// AddFlash queues a flash message in the response cookie, preserving any
// messages already queued this request.
func AddFlash(c *gin.Context, level, message string) {
	flashes := pendingFlashes(c)
	flashes = append(flashes, Flash{Level: level, Message: message})
	c.Set("pending_flashes", flashes)

	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(raw), 60, "/", "", false, true)
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get("pending_flashes"); ok {
		if flashes, ok := v.([]Flash); ok {
			return flashes
		}
	}
	return nil
}

// TakeFlashes reads and clears the queued flash messages.
func TakeFlashes(c *gin.Context) []Flash {
	encoded, err := c.Cookie(flashCookie)
	if err != nil || encoded == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}

// redirectToIndex sends the browser back to the page, keeping the project
// selection when one is given.
func redirectToIndex(c *gin.Context, projectID string) {
	target := "/"
	if projectID != "" {
		target = "/?project_id=" + url.QueryEscape(projectID)
	}
	c.Redirect(http.StatusFound, target)
}

// parseFormDate reads an optional YYYY-MM-DD form field.
func parseFormDate(c *gin.Context, field string) *time.Time {
	raw := c.PostForm(field)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// TemplateFuncs are the helpers available to the page templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"dateformat":     DateFormat,
		"durationformat": DurationFormat,
	}
}

// DateFormat renders an optional date as YYYY-MM-DD, or "N/A" when unset.
func DateFormat(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02")
}

// DurationFormat renders minutes as "Xh Ym". Zero is "0m"; a negative value
// means the counter is unusable and renders "N/A".
func DurationFormat(minutes int) string {
	if minutes < 0 {
		return "N/A"
	}
	if minutes == 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
