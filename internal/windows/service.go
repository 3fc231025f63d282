package windows

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/odyssey-rental/internal/period"
)

// Service manages saved windows.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// NewService constructs a Service instance.
func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithNow overrides the clock for deterministic tests.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Create saves a new window.
func (s *Service) Create(ctx context.Context, name string, p period.Period) (Window, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Window{}, ErrNameRequired
	}
	w := Window{
		ID:        s.newID(),
		Name:      name,
		Period:    p,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, w); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Get returns the window with id.
func (s *Service) Get(ctx context.Context, id string) (Window, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Window{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the window with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// List returns the windows matching filter ordered by start, then name.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Window, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := all[:0]
	for _, w := range all {
		if !filter.State.Matches(w.Period, now) {
			continue
		}
		if filter.Within != nil && !w.Period.Overlaps(*filter.Within) {
			continue
		}
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Period.Span().Start, out[j].Period.Span().Start
		if !a.Equal(b) {
			return a.Before(b)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Conflicts returns the saved windows that overlap candidate.
func (s *Service) Conflicts(ctx context.Context, candidate period.Period) ([]Window, error) {
	return s.List(ctx, ListFilter{Within: &candidate})
}

// Coverage returns the smallest period spanning every window in ws, or false
// when ws is empty.
func Coverage(ws []Window) (period.Period, bool) {
	if len(ws) == 0 {
		return period.Period{}, false
	}
	merged := ws[0].Period
	for _, w := range ws[1:] {
		merged = merged.Merge(w.Period)
	}
	return merged, true
}
