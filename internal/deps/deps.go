// Package deps resolves optional runtime dependencies (fonts and other assets a theme needs)
// by trying an ordered list of candidate sources.
package deps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Jayesh2401/museum/internal/texture"
)

// ErrUnavailable is matched by every error returned when all candidates of a dependency fail.
var ErrUnavailable = errors.New("dependency unavailable")

var errNoCandidates = errors.New("no candidates")

// UnavailableError reports a dependency none of whose candidates could be loaded.
type UnavailableError struct {
	Name  string
	Tried int
	Last  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("deps: %s unavailable after %d candidate(s): %v", e.Name, e.Tried, e.Last)
}

// Unwrap exposes both ErrUnavailable and the last candidate's failure.
func (e *UnavailableError) Unwrap() []error {
	return []error{ErrUnavailable, e.Last}
}

// Dependency is a named resource with candidate sources in order of preference. A candidate is
// a local path or an http(s) URL.
type Dependency struct {
	Name       string
	Candidates []string
}

// Resolved is the payload of the first candidate that loaded.
type Resolved struct {
	Name   string
	Source string
	Data   []byte
}

// DefaultTimeout bounds each candidate attempt unless the host sets its own.
const DefaultTimeout = 60 * time.Second

// Resolver loads dependencies through a fetcher.
type Resolver struct {
	fetcher texture.Fetcher
	logf    texture.Logf
	timeout time.Duration
}

// NewResolver returns a resolver using f. logf may be nil.
func NewResolver(f texture.Fetcher, logf texture.Logf) *Resolver {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Resolver{fetcher: f, logf: logf, timeout: DefaultTimeout}
}

// SetTimeout changes the per-candidate timeout. Zero disables it.
func (r *Resolver) SetTimeout(d time.Duration) { r.timeout = d }

// Resolve tries d's candidates in order and returns the first success. When every candidate
// fails the error is an *UnavailableError wrapping the last failure.
func (r *Resolver) Resolve(ctx context.Context, d Dependency) (Resolved, error) {
	if len(d.Candidates) == 0 {
		return Resolved{}, &UnavailableError{Name: d.Name, Last: errNoCandidates}
	}
	var lastErr error
	for i, src := range d.Candidates {
		if err := ctx.Err(); err != nil {
			return Resolved{}, &UnavailableError{Name: d.Name, Tried: i, Last: err}
		}
		data, err := r.fetch(ctx, src)
		if err == nil {
			return Resolved{Name: d.Name, Source: src, Data: data}, nil
		}
		r.logf("deps: %s: candidate %s failed: %v", d.Name, src, err)
		lastErr = err
	}
	return Resolved{}, &UnavailableError{Name: d.Name, Tried: len(d.Candidates), Last: lastErr}
}

func (r *Resolver) fetch(ctx context.Context, src string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.fetcher.Fetch(ctx, src)
}

// ResolveAll resolves ds concurrently. Results keep the order of ds. The first unavailable
// dependency cancels the others and is returned.
func (r *Resolver) ResolveAll(ctx context.Context, ds []Dependency) ([]Resolved, error) {
	out := make([]Resolved, len(ds))
	g, ctx := errgroup.WithContext(ctx)
	for i, d := range ds {
		g.Go(func() error {
			res, err := r.Resolve(ctx, d)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
