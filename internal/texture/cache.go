package texture

import (
	"context"
	"image"
)

// Logf is the logging hook; the logger package's Logf satisfies it.
type Logf func(format string, args ...any)

type result struct {
	entry *Entry
	img   *image.RGBA
	err   error
}

// Cache maps URLs to entries. Fetching and decoding happen on background goroutines; the
// finished images are handed back over a channel and only applied by Poll, which the tick
// loop calls, so entries are never touched off the loop.
type Cache struct {
	fetcher  Fetcher
	logf     Logf
	typeface Typeface
	maxSize  int

	entries map[string]*Entry
	results chan result
	ctx     context.Context
	cancel  context.CancelFunc
	closed  bool
}

// NewCache returns a cache that loads through f. logf may be nil.
func NewCache(f Fetcher, logf Logf) *Cache {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Cache{
		fetcher: f,
		logf:    logf,
		maxSize: MaxTextureSize,
		entries: make(map[string]*Entry),
		results: make(chan result, 64),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// SetTypeface sets the face used to draw labels on fallback images settled from now on.
func (c *Cache) SetTypeface(tf Typeface) { c.typeface = tf }

// SetMaxSize sets the largest edge a decoded image keeps; bigger images are downscaled.
func (c *Cache) SetMaxSize(px int) {
	if px > 0 {
		c.maxSize = px
	}
}

// Get returns the entry for url, starting its fetch on first use. The entry shows the shared
// placeholder until Poll applies the result. Entries are keyed by url and label together, so
// panels sharing a url still get their own fallback caption if it fails. An empty url settles
// at once on the fallback for label.
func (c *Cache) Get(url, label string) *Entry {
	key := url
	if label != "" {
		key += "\x00" + label
	}
	if e, ok := c.entries[key]; ok {
		return e
	}
	e := &Entry{URL: url, Label: label, img: Placeholder()}
	c.entries[key] = e
	if c.closed {
		return e
	}
	if url == "" {
		e.settle(c.fallback(label), true)
		return e
	}
	go c.load(e)
	return e
}

func (c *Cache) load(e *Entry) {
	r := result{entry: e}
	data, err := c.fetcher.Fetch(c.ctx, e.URL)
	if err == nil {
		var img image.Image
		img, err = Decode(data)
		if err == nil {
			r.img = Fit(img, c.maxSize)
		}
	}
	r.err = err
	select {
	case c.results <- r:
	case <-c.ctx.Done():
	}
}

// Poll applies every completed fetch without blocking and returns how many entries changed.
func (c *Cache) Poll() int {
	n := 0
	for {
		select {
		case r := <-c.results:
			if c.closed {
				continue
			}
			if r.err != nil {
				c.logf("texture: %s: %v (using fallback)", r.entry.URL, r.err)
				r.entry.settle(c.fallback(r.entry.Label), true)
			} else {
				r.entry.settle(r.img, false)
			}
			n++
		default:
			return n
		}
	}
}

// Pending returns the number of entries still waiting on their fetch.
func (c *Cache) Pending() int {
	n := 0
	for _, e := range c.entries {
		if !e.ready {
			n++
		}
	}
	return n
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }

// Close cancels in-flight fetches. Results that still arrive are discarded.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
}

func (c *Cache) fallback(label string) *image.RGBA {
	if label == "" {
		return Placeholder()
	}
	return LabelFallback(label, c.typeface)
}
