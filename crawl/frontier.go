package crawl

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Frontier is a FIFO crawl queue with Bloom filter deduplication.
// Breadth-first order is part of the crawl contract: pages closer to
// the seeds are discovered (and counted against the budget) first.
type Frontier struct {
	seen  *bloom.BloomFilter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewWithEstimates(n, fpRate),
	}
}

// Push enqueues a URL. Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication, so URLs differing
// only by fragment are considered duplicates.
func (f *Frontier) Push(url string) bool {
	url = stripFragment(url)
	if f.seen.TestString(url) {
		return false
	}
	f.seen.AddString(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop dequeues the next URL in FIFO order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// Seen returns true if the URL has been queued before.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(url string) bool {
	return f.seen.TestString(stripFragment(url))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
