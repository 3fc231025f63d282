package windows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/odyssey-erp/odyssey-rental/internal/period"
)

const (
	keyPrefix   = "windows:"
	indexKey    = "windows:index"
	fetchLimit  = 8
	rejectStore = "store"
)

// Repository persists windows.
type Repository interface {
	Save(ctx context.Context, w Window) error
	Get(ctx context.Context, id string) (Window, error)
	List(ctx context.Context) ([]Window, error)
	Delete(ctx context.Context, id string) error
}

// RejectionRecorder counts stored periods that no longer decode.
type RejectionRecorder interface {
	PeriodRejected(source string)
}

type storedWindow struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Period    json.RawMessage `json:"period"`
	CreatedAt time.Time       `json:"created_at"`
}

type redisRepository struct {
	client    *redis.Client
	ttl       time.Duration
	loc       *time.Location
	logger    *slog.Logger
	rejection RejectionRecorder
}

// NewRepository returns a Redis backed repository. Entries expire after ttl
// when ttl is positive; stored day boundaries are read in loc.
func NewRepository(client *redis.Client, ttl time.Duration, loc *time.Location, logger *slog.Logger, rejection RejectionRecorder) Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &redisRepository{client: client, ttl: ttl, loc: loc, logger: logger, rejection: rejection}
}

func windowKey(id string) string {
	return keyPrefix + id
}

// Save writes the window and indexes its id.
func (r *redisRepository) Save(ctx context.Context, w Window) error {
	rec, err := json.Marshal(w.Period.ToRecord())
	if err != nil {
		return err
	}
	payload, err := json.Marshal(storedWindow{ID: w.ID, Name: w.Name, Period: rec, CreatedAt: w.CreatedAt})
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, windowKey(w.ID), payload, r.ttl)
		pipe.SAdd(ctx, indexKey, w.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("windows: save %s: %w", w.ID, err)
	}
	return nil
}

// Get loads one window. Entries whose period no longer decodes are reported
// as ErrNotFound.
func (r *redisRepository) Get(ctx context.Context, id string) (Window, error) {
	raw, err := r.client.Get(ctx, windowKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Window{}, ErrNotFound
	}
	if err != nil {
		return Window{}, fmt.Errorf("windows: get %s: %w", id, err)
	}
	w, ok := r.decode(raw)
	if !ok {
		return Window{}, ErrNotFound
	}
	return w, nil
}

// List loads every indexed window. Expired ids are pruned from the index and
// undecodable entries are skipped.
func (r *redisRepository) List(ctx context.Context) ([]Window, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("windows: list index: %w", err)
	}

	found := make([]*Window, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			w, err := r.Get(gctx, id)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = &w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var stale []any
	out := make([]Window, 0, len(ids))
	for i, w := range found {
		if w == nil {
			stale = append(stale, ids[i])
			continue
		}
		out = append(out, *w)
	}
	if len(stale) > 0 {
		if err := r.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			r.logger.Warn("prune window index", slog.Any("error", err))
		}
	}
	return out, nil
}

// Delete removes the window and its index entry.
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, windowKey(id))
		pipe.SRem(ctx, indexKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("windows: delete %s: %w", id, err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *redisRepository) decode(raw []byte) (Window, bool) {
	var stored storedWindow
	if err := json.Unmarshal(raw, &stored); err != nil {
		r.logger.Warn("skip undecodable window", slog.Any("error", err))
		r.reject()
		return Window{}, false
	}
	p, ok := period.TryFrom(stored.Period, period.WithLocation(r.loc))
	if !ok {
		r.logger.Warn("skip window with invalid period", slog.String("id", stored.ID))
		r.reject()
		return Window{}, false
	}
	return Window{ID: stored.ID, Name: stored.Name, Period: p, CreatedAt: stored.CreatedAt}, true
}

func (r *redisRepository) reject() {
	if r.rejection != nil {
		r.rejection.PeriodRejected(rejectStore)
	}
}
