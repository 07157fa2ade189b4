package handler

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/exptable"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/render"
)

// SettingsService loads and stores a profile's table settings
type SettingsService interface {
	LoadTableSettings(ctx context.Context, profile string) domain.TableSettings
	SaveTableSettings(ctx context.Context, profile string, ts domain.TableSettings) error
}

// ExpTableHandler serves the ranker page, the chart and the table API
type ExpTableHandler struct {
	builder  exptable.Builder
	settings SettingsService
	renderer *render.Renderer
	chart    render.ChartConfig
	location *time.Location
	now      func() time.Time
}

// NewExpTableHandler creates the handler. loc decides which day is "today".
func NewExpTableHandler(builder exptable.Builder, settingsSvc SettingsService, renderer *render.Renderer, chart render.ChartConfig, loc *time.Location) *ExpTableHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ExpTableHandler{
		builder:  builder,
		settings: settingsSvc,
		renderer: renderer,
		chart:    chart,
		location: loc,
		now:      time.Now,
	}
}

func (h *ExpTableHandler) today() domain.Weekday {
	return domain.WeekdayOf(h.now().In(h.location))
}

// buildFromRequest resolves the profile and builds the table for the request's query.
// When persist is set, overridden settings are saved for the profile.
func (h *ExpTableHandler) buildFromRequest(w http.ResponseWriter, r *http.Request, persist bool) (*domain.Table, bool) {
	ctx := r.Context()
	profile, err := resolveProfile(w, r)
	if err != nil {
		respondServiceError(w, r, "resolve profile", err)
		return nil, false
	}

	stored := h.settings.LoadTableSettings(ctx, profile)
	q, changed, err := parseTableQuery(r.URL.Query(), stored, h.today())
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidQuery,
			Fields: FormatValidationError(err),
		})
		return nil, false
	}

	if persist && changed {
		if err := h.settings.SaveTableSettings(ctx, profile, q.Settings); err != nil {
			// The table can still be shown with the requested settings
			logger.FromContext(ctx).Warn(ErrMsgSaveSettingsFailed, "profile", profile, "error", err)
		} else {
			logger.FromContext(ctx).Debug(LogMsgSettingsPersisted, "profile", profile)
		}
	}

	table, err := h.builder.BuildTable(ctx, q)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuildTableFailed, err)
		return nil, false
	}
	return table, true
}

// HandlePage renders the ranker page. Form submissions persist the settings.
func (h *ExpTableHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	table, ok := h.buildFromRequest(w, r, true)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.ExpTable(&buf, render.NewExpTablePage(table, h.today(), GetVersion())); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "page", render.PageExpTable, "error", err)
		http.Error(w, ErrMsgRenderFailed, http.StatusInternalServerError)
		return
	}
	writeHTML(w, &buf)
}

// HandleChart renders the EXP/M bar chart for the same query as the page
func (h *ExpTableHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	table, ok := h.buildFromRequest(w, r, false)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.Chart(&buf, table, h.chart); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "page", "chart", "error", err)
		http.Error(w, ErrMsgRenderFailed, http.StatusInternalServerError)
		return
	}
	writeHTML(w, &buf)
}

// HandleGetTable returns the ranked table as JSON
// @Summary Ranked stage table
// @Description Computes every stage for the selection and ranks it by EXP per motivation
// @Tags table
// @Produce json
// @Param weekday query string false "0-6 or 日..土, defaults to today"
// @Param unit query string false "souri, melee, ranged, magic or heavy"
// @Param mana query bool false "Apply the mana bonus"
// @Param double query bool false "Apply the double EXP campaign"
// @Param protection query bool false "Apply the protection gold bonus"
// @Param difficulty query string false "Difficulty ceiling token"
// @Param include_extra query bool false "Include EX stages"
// @Param only_top20 query bool false "Cap the list at 20 rows"
// @Param separate_events query bool false "List event stages separately"
// @Success 200 {object} domain.Table
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/table [get]
func (h *ExpTableHandler) HandleGetTable(w http.ResponseWriter, r *http.Request) {
	table, ok := h.buildFromRequest(w, r, false)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, table)
}

// StagesResponse is the raw catalogue
type StagesResponse struct {
	Version  string                 `json:"version"`
	Source   string                 `json:"source"`
	Stages   []domain.Stage         `json:"stages"`
	Ceilings []domain.CeilingOption `json:"ceilings"`
}

// HandleGetStages returns the active catalogue
// @Summary Stage catalogue
// @Tags table
// @Produce json
// @Success 200 {object} StagesResponse
// @Router /api/v1/stages [get]
func (h *ExpTableHandler) HandleGetStages(w http.ResponseWriter, r *http.Request) {
	cat := h.builder.Catalog()
	respondJSON(w, http.StatusOK, StagesResponse{
		Version:  cat.Version,
		Source:   cat.Source,
		Stages:   cat.Stages,
		Ceilings: cat.Ceilings,
	})
}

// HandleGetSettings returns the caller's table settings
// @Summary Get table settings
// @Tags settings
// @Produce json
// @Param X-Profile-ID header string false "Profile id, defaults to the cookie"
// @Success 200 {object} domain.TableSettings
// @Router /api/v1/settings [get]
func (h *ExpTableHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	profile, err := resolveProfile(w, r)
	if err != nil {
		respondServiceError(w, r, "resolve profile", err)
		return
	}
	respondJSON(w, http.StatusOK, h.settings.LoadTableSettings(r.Context(), profile))
}

// HandlePutSettings replaces the caller's table settings
// @Summary Save table settings
// @Tags settings
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile id, defaults to the cookie"
// @Param settings body domain.TableSettings true "Settings"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/settings [put]
func (h *ExpTableHandler) HandlePutSettings(w http.ResponseWriter, r *http.Request) {
	profile, err := resolveProfile(w, r)
	if err != nil {
		respondServiceError(w, r, "resolve profile", err)
		return
	}

	var req domain.TableSettings
	if err := DecodeAndValidateRequest(r, w, &req, "Save settings"); err != nil {
		return
	}

	if err := h.settings.SaveTableSettings(r.Context(), profile, req); err != nil {
		respondServiceError(w, r, ErrMsgSaveSettingsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgSettingsSaved, Data: req})
}

func writeHTML(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
