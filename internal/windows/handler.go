package windows

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/odyssey-erp/odyssey-rental/internal/period"
	"github.com/odyssey-erp/odyssey-rental/internal/platform/httpx"
)

const (
	candidateParam = "period"
	withinParam    = "within"
)

// Handler serves the saved window endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
	loc      *time.Location
}

// NewHandler constructs the window HTTP handler.
func NewHandler(logger *slog.Logger, service *Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{logger: logger, service: service, validate: validator.New(), loc: loc}
}

// MountRoutes registers the window endpoints under the current route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/conflicts", h.handleConflicts)
	r.Get("/{id}", h.handleGet)
	r.Delete("/{id}", h.handleDelete)
}

type createRequest struct {
	Name   string        `json:"name" validate:"required,max=120"`
	Period period.Record `json:"period"`
}

type listResponse struct {
	Windows    []Window       `json:"windows"`
	Coverage   *period.Period `json:"coverage"`
	Pagination Pagination     `json:"pagination"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	p, err := period.FromRecord(req.Period, period.WithLocation(h.loc))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	created, err := h.service.Create(r.Context(), req.Name, p)
	if err != nil {
		h.respond(w, "create window", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state, err := ParseState(query.Get("state"))
	if err != nil {
		h.respond(w, "list windows", err)
		return
	}
	filter := ListFilter{State: state}
	// An unreadable within filter is ignored rather than failing the listing.
	fullDays, _ := strconv.ParseBool(query.Get("fullDays"))
	if within, ok := period.TryFromQuery(query, withinParam, fullDays, period.WithLocation(h.loc)); ok {
		filter.Within = &within
	}
	found, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.respond(w, "list windows", err)
		return
	}
	h.writeList(w, r, found)
}

func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	fullDays, err := strconv.ParseBool(query.Get("fullDays"))
	if err != nil && query.Get("fullDays") != "" {
		httpx.RespondError(w, fmt.Errorf("%w: fullDays %q", httpx.ErrValidation, query.Get("fullDays")))
		return
	}
	candidate, err := period.FromQuery(query, candidateParam, fullDays, period.WithLocation(h.loc))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	found, err := h.service.Conflicts(r.Context(), candidate)
	if err != nil {
		h.respond(w, "window conflicts", err)
		return
	}
	h.writeList(w, r, found)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, "get window", err)
		return
	}
	httpx.JSON(w, http.StatusOK, found)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respond(w, "delete window", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeList pages found per the page and perPage query parameters. Coverage
// spans every match, not just the current page.
func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, found []Window) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("perPage"))
	pagination := NewPagination(page, perPage, len(found))
	resp := listResponse{Windows: pagination.Slice(found), Pagination: pagination}
	if coverage, ok := Coverage(found); ok {
		resp.Coverage = &coverage
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) respond(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrNotFound, err))
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidState):
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrValidation, err))
	default:
		h.logger.Error(op, slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}
