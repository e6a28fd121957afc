package network

import (
	"net/http"
	"time"

	"github.com/creasty/defaults"
	"go.uber.org/zap"
)

// settings holds the tunables of a Client. Zero fields are filled from the
// `default` tags before options run.
type settings struct {
	RequestTimeout time.Duration `default:"15s"`
	HealthWindow   time.Duration `default:"5m"`
	NodeListLimit  int           `default:"100"`

	logger     *zap.Logger
	httpClient *http.Client
	now        func() time.Time
}

// Option configures a Client.
type Option func(*settings)

// WithLogger sets the logger used for failed calls.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRequestTimeout bounds every JSON-RPC round trip.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.RequestTimeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client; its Timeout takes precedence over
// WithRequestTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithHealthWindow sets how old the latest cycle may be for the network to
// count as healthy.
func WithHealthWindow(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.HealthWindow = d
		}
	}
}

// WithClock overrides time.Now, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

func applyOptions(opts []Option) (settings, error) {
	var s settings
	if err := defaults.Set(&s); err != nil {
		return s, err
	}
	s.logger = zap.NewNop()
	s.now = time.Now

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: s.RequestTimeout}
	}
	return s, nil
}
