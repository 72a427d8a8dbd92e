package deps

import "context"

// Pending is a resolution running on its own goroutine. The loop checks Ready each tick and
// reads Result once it is.
type Pending struct {
	done   chan struct{}
	cancel context.CancelFunc
	res    []Resolved
	err    error
}

// Start resolves ds with ResolveAll in the background and returns at once. Cancelling ctx or
// calling Cancel stops the remaining attempts.
func (r *Resolver) Start(ctx context.Context, ds []Dependency) *Pending {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(p.done)
		defer cancel()
		p.res, p.err = r.ResolveAll(ctx, ds)
	}()
	return p
}

// Ready reports whether the resolution has finished. It never blocks.
func (p *Pending) Ready() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome. It blocks until the resolution finishes.
func (p *Pending) Result() ([]Resolved, error) {
	<-p.done
	return p.res, p.err
}

// Cancel stops the resolution; its result is an error once it settles.
func (p *Pending) Cancel() { p.cancel() }
