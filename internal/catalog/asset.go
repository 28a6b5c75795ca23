package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// ErrAssetMissing reports that the asset host answered but has no image for the item.
var ErrAssetMissing = errors.New("asset missing")

// AssetChecker resolves whether an item's image can be loaded.
type AssetChecker interface {
	Check(ctx context.Context, id int64) error
}

var _ AssetChecker = (*AssetProber)(nil)

// ProberOptions tune the asset prober.
type ProberOptions struct {
	Base    string
	Timeout time.Duration
	Rate    float64 // probes per second; zero uses default
	Burst   int
	Logger  zerolog.Logger
}

const (
	defaultProbeRate      = 8
	defaultProbeBurst     = 4
	defaultProbeTimeout   = 5 * time.Second
	breakerTripFailures   = 5
	breakerOpenTimeout    = 30 * time.Second
	breakerHalfOpenProbes = 1
)

// AssetProber checks asset availability with HEAD requests. Requests are rate
// limited, and transport-level failures trip a circuit breaker so an
// unreachable host fails fast instead of being hit once per card.
type AssetProber struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[int]
	log     zerolog.Logger
}

// NewAssetProber builds a prober for assets under opts.Base.
func NewAssetProber(opts ProberOptions) *AssetProber {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	r := opts.Rate
	if r <= 0 {
		r = defaultProbeRate
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = defaultProbeBurst
	}
	p := &AssetProber{
		base:    opts.Base,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(r), burst),
		log:     opts.Logger,
	}
	p.breaker = gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        "asset-host",
		MaxRequests: breakerHalfOpenProbes,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripFailures
		},
		// A missing asset is a healthy answer from the host.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrAssetMissing)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			p.log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("asset breaker state change")
		},
	})
	return p
}

// Ref returns the asset URL for id.
func (p *AssetProber) Ref(id int64) string {
	return AssetRef(p.base, id)
}

// BreakerState reports the breaker state for display and logging.
func (p *AssetProber) BreakerState() string {
	return p.breaker.State().String()
}

// Check returns nil when the asset resolves. Any other outcome, including an
// open breaker, is an error the caller should treat as a load failure. Context
// cancellation is returned as ctx.Err().
func (p *AssetProber) Check(ctx context.Context, id int64) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := p.breaker.Execute(func() (int, error) {
		return p.head(ctx, id)
	})
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (p *AssetProber) head(ctx context.Context, id int64) (int, error) {
	ref := p.Ref(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, ref, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := p.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("probe %s: %w", ref, err)
	}
	_ = resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return resp.StatusCode, fmt.Errorf("probe %s: status %d", ref, resp.StatusCode)
	case resp.StatusCode >= 400:
		return resp.StatusCode, fmt.Errorf("probe %s: status %d: %w", ref, resp.StatusCode, ErrAssetMissing)
	}
	return resp.StatusCode, nil
}
