// Package listings provides the state container behind the list and detail
// screens: the current criteria, the derived visible listings, and the
// loading/error flags, recomputed asynchronously after a configurable latency.
//
// Every recompute gets a sequence number. Only the result of the most recent
// request is published; earlier in-flight requests are cancelled and their
// results dropped if they still arrive.
package listings

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homefinder/internal/listing"
	"homefinder/internal/logging"
	"homefinder/internal/search"
)

// DefaultLatency is the simulated server delay used when none is configured.
const DefaultLatency = 600 * time.Millisecond

// Config configures a Container.
type Config struct {
	// Latency is waited before every fetch. Zero disables the delay.
	Latency time.Duration

	// InitialCategory is the active category at construction. Empty means
	// Verified.
	InitialCategory listing.Category
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Latency:         DefaultLatency,
		InitialCategory: listing.CategoryVerified,
	}
}

// Snapshot is a consistent view of the container state.
type Snapshot struct {
	Listings       []listing.Listing
	AllCount       int
	ActiveCategory listing.Category
	SearchQuery    string
	IsLoading      bool
	Error          string
	// Seq identifies the request whose result is currently published.
	Seq uint64
}

// HasError reports whether an error message is set.
func (s Snapshot) HasError() bool { return s.Error != "" }

// Container is the single mutable source of truth for what the user sees.
// It is safe for concurrent use.
type Container struct {
	src    Source
	cfg    Config
	logger *zap.Logger

	ctx       context.Context
	stop      context.CancelFunc
	wg        sync.WaitGroup
	changes   chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex
	criteria  search.Criteria
	visible   []listing.Listing
	loading   bool
	errMsg    string
	seq       uint64 // latest requested
	published uint64
	cancel    context.CancelFunc // cancels the in-flight fetch
	idle      chan struct{}      // closed while nothing is loading
	closed    bool
}

// New creates a container over src and starts the initial load.
func New(src Source, cfg Config, logger *zap.Logger) *Container {
	if cfg.InitialCategory == "" {
		cfg.InitialCategory = listing.CategoryVerified
	}
	if cfg.Latency < 0 {
		cfg.Latency = 0
	}

	idle := make(chan struct{})
	close(idle)

	ctx, stop := context.WithCancel(context.Background())
	c := &Container{
		src:      src,
		cfg:      cfg,
		logger:   logging.For(logger, logging.CategoryListings),
		ctx:      ctx,
		stop:     stop,
		changes:  make(chan struct{}, 1),
		criteria: search.Criteria{Category: cfg.InitialCategory},
		visible:  []listing.Listing{},
		idle:     idle,
	}
	c.recompute("mount", true)
	return c
}

// Snapshot returns the current state.
func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := make([]listing.Listing, len(c.visible))
	copy(visible, c.visible)

	return Snapshot{
		Listings:       visible,
		AllCount:       len(c.src.All()),
		ActiveCategory: c.criteria.Category,
		SearchQuery:    c.criteria.Query,
		IsLoading:      c.loading,
		Error:          c.errMsg,
		Seq:            c.published,
	}
}

// Criteria returns the active (category, query) pair.
func (c *Container) Criteria() search.Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// SetActiveCategory switches the category and recomputes. Selecting the
// category that is already active is a no-op.
func (c *Container) SetActiveCategory(category listing.Category) {
	c.mu.Lock()
	if c.criteria.Category == category {
		c.mu.Unlock()
		return
	}
	c.criteria.Category = category
	c.mu.Unlock()

	c.recompute("category", true)
}

// SetSearchQuery stores query verbatim and recomputes. Trimming and case
// folding happen in the filter. Setting the current query again is a no-op.
func (c *Container) SetSearchQuery(query string) {
	c.mu.Lock()
	if c.criteria.Query == query {
		c.mu.Unlock()
		return
	}
	c.criteria.Query = query
	c.mu.Unlock()

	c.recompute("query", true)
}

// Refresh recomputes with the current criteria. Rows stay visible while the
// refresh is loading.
func (c *Container) Refresh() {
	c.recompute("refresh", false)
}

// GetListingByID looks the id up in the full collection, ignoring criteria.
func (c *Container) GetListingByID(id string) (listing.Listing, bool) {
	return c.src.Get(id)
}

// All returns the full collection in repository order.
func (c *Container) All() []listing.Listing {
	return c.src.All()
}

// SetError sets the error message without touching the visible listings.
func (c *Container) SetError(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
	c.notify()
}

// ClearError clears the error message.
func (c *Container) ClearError() {
	c.SetError("")
}

// Changes is signalled after every state change. Signals coalesce: a reader
// that falls behind sees one pending signal, then reads Snapshot.
func (c *Container) Changes() <-chan struct{} {
	return c.changes
}

// Settle blocks until no recompute is pending or ctx is done.
func (c *Container) Settle(ctx context.Context) error {
	for {
		c.mu.Lock()
		if !c.loading {
			c.mu.Unlock()
			return nil
		}
		idle := c.idle
		c.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancels any in-flight recompute and waits for it to exit. Intents
// after Close are ignored.
func (c *Container) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.stop()
		c.wg.Wait()

		c.mu.Lock()
		if c.loading {
			c.loading = false
			close(c.idle)
		}
		c.cancel = nil
		c.mu.Unlock()
	})
}

// recompute starts a new request for the current criteria and supersedes any
// request still in flight. clear empties the visible rows while loading.
func (c *Container) recompute(reason string, clear bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	criteria := c.criteria

	ctx, cancel := context.WithCancel(c.ctx)
	c.cancel = cancel
	if !c.loading {
		c.loading = true
		c.idle = make(chan struct{})
	}
	if clear {
		c.visible = []listing.Listing{}
	}
	c.wg.Add(1)
	c.mu.Unlock()

	c.notify()

	reqID := uuid.NewString()
	c.logger.Debug("recompute requested",
		zap.String("request_id", reqID),
		zap.String("reason", reason),
		zap.Uint64("seq", seq),
		zap.String("category", string(criteria.Category)),
		zap.String("query", criteria.Query))

	go c.run(ctx, cancel, seq, criteria, reqID)
}

func (c *Container) run(ctx context.Context, cancel context.CancelFunc, seq uint64, criteria search.Criteria, reqID string) {
	defer c.wg.Done()
	defer cancel()

	start := time.Now()
	items, err := c.fetch(ctx, criteria)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		c.logger.Debug("dropping superseded result",
			zap.String("request_id", reqID),
			zap.Uint64("seq", seq),
			zap.Uint64("latest", latest))
		return
	}

	c.loading = false
	c.cancel = nil
	if err != nil {
		// Keep the previous rows: stale but valid.
		c.errMsg = err.Error()
	} else {
		c.visible = items
		c.errMsg = ""
	}
	c.published = seq
	close(c.idle)
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("fetch failed",
			zap.String("request_id", reqID),
			zap.Uint64("seq", seq),
			zap.Error(err))
	} else {
		c.logger.Debug("published",
			zap.String("request_id", reqID),
			zap.Uint64("seq", seq),
			zap.Int("count", len(items)),
			zap.Duration("took", time.Since(start)))
	}
	c.notify()
}

// fetch waits out the simulated latency, then asks the source.
func (c *Container) fetch(ctx context.Context, criteria search.Criteria) ([]listing.Listing, error) {
	if c.cfg.Latency > 0 {
		t := time.NewTimer(c.cfg.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return c.src.Fetch(ctx, criteria)
}

func (c *Container) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}
