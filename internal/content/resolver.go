package content

import (
	"context"
	"fmt"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/iliyamo/musician-site/internal/metrics"
	"github.com/iliyamo/musician-site/internal/model"
	"github.com/iliyamo/musician-site/internal/repository"
)

// Source is the read-only view of the store the resolver needs.
// *repository.Repos implements it.
type Source interface {
	SettingRows(ctx context.Context) ([]model.SiteContentSetting, error)
	ActiveTracks(ctx context.Context) ([]model.Track, error)
	ActiveGallery(ctx context.Context) ([]model.GalleryImage, error)
	ActiveServices(ctx context.Context) ([]model.Service, error)
	ActiveSocials(ctx context.Context) ([]model.SocialLink, error)
	ActiveNavLinks(ctx context.Context) ([]model.NavLink, error)
	AllEvents(ctx context.Context) ([]model.Event, error)
	ActiveVideos(ctx context.Context) ([]model.Video, error)
}

// Collection names, used for breakers, logs and metric labels.
const (
	collSettings = "site_content"
	collTracks   = "tracks"
	collGallery  = "gallery"
	collServices = "services"
	collSocials  = "social_links"
	collNavLinks = "nav_links"
	collEvents   = "events"
	collVideos   = "videos"
)

var collections = []string{collSettings, collTracks, collGallery, collServices, collSocials, collNavLinks, collEvents, collVideos}

// Options tunes per-read timeouts and the circuit breakers.  Zero values
// select the defaults.
type Options struct {
	ReadTimeout      time.Duration
	BreakerFailures  uint32
	BreakerOpenFor   time.Duration
	BreakerHalfOpens uint32
}

// Resolver produces SiteContent.  Each collection has its own circuit
// breaker so one broken table cannot starve the others.
type Resolver struct {
	src      Source
	log      *zap.Logger
	timeout  time.Duration
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

// NewResolver builds a resolver over src.  A nil logger is replaced by a
// no-op logger.
func NewResolver(src Source, log *zap.Logger, opts Options) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 3 * time.Second
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 5
	}
	if opts.BreakerOpenFor <= 0 {
		opts.BreakerOpenFor = 30 * time.Second
	}
	if opts.BreakerHalfOpens == 0 {
		opts.BreakerHalfOpens = 1
	}
	r := &Resolver{
		src:      src,
		log:      log.Named("content"),
		timeout:  opts.ReadTimeout,
		breakers: make(map[string]*gobreaker.CircuitBreaker[any], len(collections)),
	}
	for _, name := range collections {
		r.breakers[name] = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:        name,
			MaxRequests: opts.BreakerHalfOpens,
			Timeout:     opts.BreakerOpenFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= opts.BreakerFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				r.log.Warn("content breaker state change",
					zap.String("collection", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			},
		})
	}
	return r
}

// Resolve reads every collection concurrently and merges the results over
// the defaults.  It never fails: a read error empties that collection
// only, and a panic anywhere returns Defaults() verbatim.
func (r *Resolver) Resolve(ctx context.Context) (out SiteContent) {
	start := time.Now()
	defer func() {
		metrics.ContentResolveDuration.Observe(time.Since(start).Seconds())
		if p := recover(); p != nil {
			r.log.Error("content resolution panicked, serving defaults", zap.Any("panic", p))
			metrics.ContentStaticFallbacksTotal.Inc()
			out = Defaults()
		}
	}()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		panicked any
		s        snapshot
		settings []model.SiteContentSetting
	)
	// spawn runs fn on its own goroutine.  A panic there cannot reach the
	// deferred recover above, so it is captured and re-raised after Wait.
	spawn := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					mu.Lock()
					panicked = p
					mu.Unlock()
				}
			}()
			fn()
		}()
	}

	spawn(func() { settings = read(ctx, r, collSettings, r.src.SettingRows) })
	spawn(func() { s.tracks = read(ctx, r, collTracks, r.src.ActiveTracks) })
	spawn(func() { s.gallery = read(ctx, r, collGallery, r.src.ActiveGallery) })
	spawn(func() { s.services = read(ctx, r, collServices, r.src.ActiveServices) })
	spawn(func() { s.socials = read(ctx, r, collSocials, r.src.ActiveSocials) })
	spawn(func() { s.navLinks = read(ctx, r, collNavLinks, r.src.ActiveNavLinks) })
	spawn(func() { s.events = read(ctx, r, collEvents, r.src.AllEvents) })
	spawn(func() { s.videos = read(ctx, r, collVideos, r.src.ActiveVideos) })
	wg.Wait()

	if panicked != nil {
		panic(panicked)
	}
	s.settings = repository.GroupSettings(settings)
	return merge(s)
}

// read runs one collection query under its breaker and timeout.  Any
// failure is logged and reported as nil rows.
func read[T any](ctx context.Context, r *Resolver, name string, fetch func(context.Context) ([]T, error)) []T {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.breakers[name].Execute(func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		r.log.Warn("content read failed", zap.String("collection", name), zap.Error(err))
		metrics.ContentReadFailuresTotal.WithLabelValues(name).Inc()
		return nil
	}
	rows, ok := res.([]T)
	if !ok {
		panic(fmt.Sprintf("content: %s returned %T", name, res))
	}
	return rows
}
