// Package funcurl serves the ranked table and the cashable sum as an AWS Lambda
// function URL. Nothing is persisted; every request starts from the default settings.
package funcurl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/ranking"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// TableBuilder builds ranked tables
type TableBuilder interface {
	BuildTable(ctx context.Context, q domain.TableQuery) (*domain.Table, error)
}

// Summer totals cashable quantities keyed by price
type Summer interface {
	SumQuantities(qty map[int]int) (domain.CashableSummary, error)
}

// Handler answers function URL invocations
type Handler struct {
	tables    TableBuilder
	cashables Summer
	loc       *time.Location
	now       func() time.Time
}

// New creates a handler. loc decides which weekday "today" is.
func New(tables TableBuilder, cashables Summer, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{tables: tables, cashables: cashables, loc: loc, now: time.Now}
}

// fields looks up request values from the query string or a JSON body
type fields func(name string) (string, bool)

func queryFields(q map[string]string) fields {
	return func(name string) (string, bool) {
		v, ok := q[name]
		return v, ok
	}
}

func bodyFields(body string) fields {
	return func(name string) (string, bool) {
		r := gjson.Get(body, name)
		return r.String(), r.Exists()
	}
}

// Handle routes one invocation
func (h *Handler) Handle(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	method := req.RequestContext.HTTP.Method
	path := strings.TrimSuffix(req.RawPath, "/")
	if path == "" {
		path = RouteRoot
	}
	slog.Default().Info(LogMsgRequest, "method", method, "path", path)

	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, ErrMsgInvalidBase64)
		}
		body = string(decoded)
	}
	if body != "" && !gjson.Valid(body) {
		return errResp(http.StatusBadRequest, ErrMsgInvalidJSON)
	}

	switch path {
	case RouteRoot, RouteTable:
		switch method {
		case http.MethodGet:
			return h.table(ctx, queryFields(req.QueryStringParameters))
		case http.MethodPost:
			return h.table(ctx, bodyFields(body))
		}
		return errResp(http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
	case RouteSum:
		if method != http.MethodPost {
			return errResp(http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
		}
		return h.sum(body)
	}
	return errResp(http.StatusNotFound, ErrMsgNotFound)
}

func (h *Handler) table(ctx context.Context, f fields) (events.LambdaFunctionURLResponse, error) {
	q, err := h.parseQuery(f)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	t, err := h.tables.BuildTable(ctx, q)
	if err != nil {
		slog.Default().Error(LogMsgBuildFailed, "error", err)
		return errResp(http.StatusInternalServerError, ErrMsgInternal)
	}
	return jsonResp(http.StatusOK, t)
}

// parseQuery applies the given fields over today's defaults
func (h *Handler) parseQuery(f fields) (domain.TableQuery, error) {
	day := domain.WeekdayOf(h.now().In(h.loc))
	if v, ok := f(FieldWeekday); ok && v != "" {
		d, err := domain.ParseWeekday(v)
		if err != nil {
			return domain.TableQuery{}, err
		}
		day = d
	}

	unitRaw, _ := f(FieldUnit)
	unit, err := domain.ParseUnitSelection(unitRaw)
	if err != nil {
		return domain.TableQuery{}, err
	}

	sel := domain.DefaultSelection(day, unit)
	sel.UseManaBonus = flag(f, FieldMana, sel.UseManaBonus)
	sel.UseDoubleBonus = flag(f, FieldDouble, sel.UseDoubleBonus)
	sel.UseProtectionBonus = flag(f, FieldProtection, sel.UseProtectionBonus)

	set := domain.DefaultTableSettings()
	if v, ok := f(FieldDifficulty); ok && v != "" {
		if _, err := ranking.ParseCeiling(v); err != nil {
			return domain.TableQuery{}, err
		}
		set.Difficulty = v
	}
	set.IncludeExtraStage = flag(f, FieldIncludeExtra, set.IncludeExtraStage)
	set.OnlyTop20 = flag(f, FieldOnlyTop20, set.OnlyTop20)
	set.SeparateEventStage = flag(f, FieldSeparateEvents, set.SeparateEventStage)

	return domain.TableQuery{Selection: sel, Settings: set}, nil
}

// flag reads a boolean field. "0", "false" and "off" are false; any other present value is true.
func flag(f fields, name string, def bool) bool {
	v, ok := f(name)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false", "off":
		return false
	}
	return true
}

func (h *Handler) sum(body string) (events.LambdaFunctionURLResponse, error) {
	raw := gjson.Get(body, FieldQuantities)
	if !raw.IsObject() {
		return errResp(http.StatusBadRequest, ErrMsgMissingQuantity)
	}

	qty := make(map[int]int)
	valid := true
	raw.ForEach(func(key, value gjson.Result) bool {
		price, n := key.Int(), value.Int()
		if price <= 0 || value.Type != gjson.Number ||
			n < domain.MinCashableQuantity || n > domain.MaxCashableQuantity {
			valid = false
			return false
		}
		qty[int(price)] = int(n)
		return true
	})
	if !valid {
		return errResp(http.StatusBadRequest, ErrMsgBadQuantity)
	}

	summary, err := h.cashables.SumQuantities(qty)
	if errors.Is(err, domain.ErrCashableNotFound) {
		return errResp(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return errResp(http.StatusInternalServerError, ErrMsgInternal)
	}
	return jsonResp(http.StatusOK, summary)
}

func jsonResp(code int, payload any) (events.LambdaFunctionURLResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error(LogMsgEncodeFailed, "error", err)
		return errResp(http.StatusInternalServerError, ErrMsgInternal)
	}
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		return events.LambdaFunctionURLResponse{}, fmt.Errorf("encode error body: %w", err)
	}
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
