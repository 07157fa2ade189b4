package handler

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/render"
)

// CashableService manages a profile's cashable quantities
type CashableService interface {
	Summary(ctx context.Context, profile string) domain.CashableSummary
	SetQuantity(ctx context.Context, profile string, price, quantity int) (domain.CashableLine, error)
	SumQuantities(qty map[int]int) (domain.CashableSummary, error)
}

// SetQuantityRequest is the body of PUT /api/v1/cashables/{price}
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=999"`
}

// SumRequest is the body of POST /api/v1/cashables/sum
type SumRequest struct {
	Quantities map[int]int `json:"quantities" validate:"required,dive,keys,gt=0,endkeys,min=0,max=999"`
}

// CashableHandler serves the calculator page and API
type CashableHandler struct {
	svc      CashableService
	renderer *render.Renderer
}

func NewCashableHandler(svc CashableService, renderer *render.Renderer) *CashableHandler {
	return &CashableHandler{svc: svc, renderer: renderer}
}

// HandlePage renders the calculator with the caller's stored quantities
func (h *CashableHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	profile, err := resolveProfile(w, r)
	if err != nil {
		respondServiceError(w, r, "resolve profile", err)
		return
	}

	var buf bytes.Buffer
	page := render.NewCashablePage(h.svc.Summary(r.Context(), profile), GetVersion())
	if err := h.renderer.SumCashable(&buf, page); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "page", render.PageSumCashable, "error", err)
		http.Error(w, ErrMsgRenderFailed, http.StatusInternalServerError)
		return
	}
	writeHTML(w, &buf)
}

// HandlePageSubmit stores the quantities posted by the calculator form and
// redirects back to the page. Values are clamped to 0..999 like the input box.
func (h *CashableHandler) HandlePageSubmit(w http.ResponseWriter, r *http.Request) {
	profile, err := resolveProfile(w, r)
	if err != nil {
		respondServiceError(w, r, "resolve profile", err)
		return
	}
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	for _, line := range h.svc.Summary(r.Context(), profile).Lines {
		raw, ok := r.PostForm[strconv.Itoa(line.Price)]
		if !ok || len(raw) == 0 {
			continue
		}
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			n = 0
		}
		n = domain.ClampQuantity(n)
		if n == line.Quantity {
			continue
		}
		if _, err := h.svc.SetQuantity(r.Context(), profile, line.Price, n); err != nil {
			respondServiceError(w, r, ErrMsgSaveQuantityFailed, err)
			return
		}
	}
	http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
}

// HandleGetSummary returns the caller's stored quantities with subtotals
// @Summary Cashable summary
// @Tags cashables
// @Produce json
// @Param X-Profile-ID header string false "Profile id, defaults to the cookie"
// @Success 200 {object} domain.CashableSummary
// @Router /api/v1/cashables [get]
func (h *CashableHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	profile, err := resolveProfile(w, r)
	if err != nil {
		respondServiceError(w, r, "resolve profile", err)
		return
	}
	respondJSON(w, http.StatusOK, h.svc.Summary(r.Context(), profile))
}

// HandlePutQuantity stores the quantity held for one item
// @Summary Set cashable quantity
// @Tags cashables
// @Accept json
// @Produce json
// @Param price path int true "Unit price identifying the item"
// @Param body body SetQuantityRequest true "Quantity 0-999"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/cashables/{price} [put]
func (h *CashableHandler) HandlePutQuantity(w http.ResponseWriter, r *http.Request) {
	price, err := strconv.Atoi(chi.URLParam(r, "price"))
	if err != nil || price <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidPrice)
		return
	}
	profile, err := resolveProfile(w, r)
	if err != nil {
		respondServiceError(w, r, "resolve profile", err)
		return
	}

	var req SetQuantityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set quantity"); err != nil {
		return
	}

	line, err := h.svc.SetQuantity(r.Context(), profile, price, *req.Quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgSaveQuantityFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgQuantitySaved, Data: line})
}

// HandleSum totals the given quantities without storing them
// @Summary Sum cashables
// @Tags cashables
// @Accept json
// @Produce json
// @Param body body SumRequest true "Quantities keyed by price"
// @Success 200 {object} domain.CashableSummary
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cashables/sum [post]
func (h *CashableHandler) HandleSum(w http.ResponseWriter, r *http.Request) {
	var req SumRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sum cashables"); err != nil {
		return
	}

	summary, err := h.svc.SumQuantities(req.Quantities)
	if err != nil {
		respondServiceError(w, r, ErrMsgSumFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
