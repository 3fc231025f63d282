package periodhttp

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/odyssey-rental/internal/period"
	"github.com/odyssey-erp/odyssey-rental/internal/platform/httpx"
)

const queryName = "period"

// RejectionRecorder counts periods rejected at the HTTP boundary.
type RejectionRecorder interface {
	PeriodRejected(source string)
}

// Handler exposes the period algebra over HTTP.
type Handler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	loc       *time.Location
	rejection RejectionRecorder
	now       func() time.Time
}

// NewHandler constructs the period HTTP handler. Calendar days are anchored in loc.
func NewHandler(logger *slog.Logger, loc *time.Location, rejection RejectionRecorder) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		logger:    logger,
		validate:  validator.New(),
		loc:       loc,
		rejection: rejection,
		now:       time.Now,
	}
}

// WithNow overrides the handler clock for testing.
func (h *Handler) WithNow(fn func() time.Time) {
	if fn != nil {
		h.now = fn
	}
}

type summary struct {
	Period       period.Record   `json:"period"`
	Granularity  string          `json:"granularity"`
	Days         int             `json:"days"`
	Hours        int             `json:"hours"`
	ExactHours   decimal.Decimal `json:"exactHours"`
	Ongoing      bool            `json:"ongoing"`
	Past         bool            `json:"past"`
	FullDaysLike bool            `json:"fullDaysLike"`
}

func (h *Handler) summarize(p period.Period) summary {
	now := h.now()
	return summary{
		Period:       p.ToRecord(),
		Granularity:  p.Granularity().String(),
		Days:         p.AsDays(),
		Hours:        p.AsHours(),
		ExactHours:   p.ExactHours(),
		Ongoing:      p.IsOngoing(now),
		Past:         p.IsPast(now),
		FullDaysLike: p.IsFullDaysLike(),
	}
}

func (h *Handler) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fullDays, err := parseFlag(query.Get("fullDays"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	p, err := period.FromQuery(query, queryName, fullDays, period.WithLocation(h.loc))
	if err != nil {
		h.reject("query", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.summarize(p))
}

type compareRequest struct {
	A period.Record `json:"a"`
	B period.Record `json:"b"`
}

type compareResponse struct {
	Same     bool           `json:"same"`
	Overlaps bool           `json:"overlaps"`
	ABeforeB bool           `json:"aBeforeB"`
	Merge    period.Record  `json:"merge"`
	Narrow   *period.Record `json:"narrow"`
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := h.decode(w, r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	a, err := h.fromRecord("a", req.A)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	b, err := h.fromRecord("b", req.B)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	resp := compareResponse{
		Same:     a.IsSame(b),
		Overlaps: a.Overlaps(b),
		ABeforeB: a.IsBeforePeriod(b),
		Merge:    a.Merge(b).ToRecord(),
	}
	if narrowed, ok := a.Narrow(b); ok {
		rec := narrowed.ToRecord()
		resp.Narrow = &rec
	}
	httpx.JSON(w, http.StatusOK, resp)
}

type convertRequest struct {
	Period   period.Record `json:"period"`
	FullDays bool          `json:"fullDays"`
	Midday   bool          `json:"midday"`
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := h.decode(w, r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	p, err := h.fromRecord("period", req.Period)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	converted := p.ToFullDays()
	if !req.FullDays {
		converted = p.ToPrecise(req.Midday)
	}
	httpx.JSON(w, http.StatusOK, h.summarize(converted))
}

type offsetRequest struct {
	Period period.Record `json:"period"`
	Amount int           `json:"amount" validate:"gte=-1000,lte=1000"`
	Unit   string        `json:"unit" validate:"required"`
}

func (h *Handler) handleOffset(w http.ResponseWriter, r *http.Request) {
	var req offsetRequest
	if err := h.decode(w, r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	unit, err := period.ParseUnit(req.Unit)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	p, err := h.fromRecord("period", req.Period)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	widened, err := p.Offset(req.Amount, unit)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.summarize(widened))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) error {
	if err := httpx.DecodeJSON(w, r, target); err != nil {
		return err
	}
	return h.validate.Struct(target)
}

func (h *Handler) fromRecord(field string, rec period.Record) (period.Period, error) {
	p, err := period.FromRecord(rec, period.WithLocation(h.loc))
	if err != nil {
		h.reject("body", err)
		return period.Period{}, fmt.Errorf("%s: %w", field, err)
	}
	return p, nil
}

func (h *Handler) reject(source string, err error) {
	if h.rejection != nil {
		h.rejection.PeriodRejected(source)
	}
	h.logger.Debug("period rejected", slog.String("source", source), slog.Any("error", err))
}

func parseFlag(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: fullDays %q", httpx.ErrValidation, raw)
	}
	return v, nil
}
