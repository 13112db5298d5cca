// Package ratelimiter implements per-key token buckets used by the rate limit middleware.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a single token bucket
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	rate       float64 // tokens per second
	lastRefill time.Time
	lastSeen   time.Time
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastSeen)
}

// Limiter keeps one bucket per key (user, ip, ...). Buckets idle for longer than
// the expiration time are dropped by a background sweep.
type Limiter struct {
	mu         sync.RWMutex
	buckets    map[string]*bucket
	rate       float64
	capacity   float64
	expiration time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

func New(rate float64, capacity float64, expiration time.Duration) *Limiter {
	l := &Limiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		stop:       make(chan struct{}),
	}
	go l.sweepLoop()
	return l
}

func (l *Limiter) getBucket(key string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// double-check after acquiring write lock
	if b, ok = l.buckets[key]; ok {
		return b
	}
	now := time.Now()
	b = &bucket{tokens: l.capacity, capacity: l.capacity, rate: l.rate, lastRefill: now, lastSeen: now}
	l.buckets[key] = b
	return b
}

// Allow reports whether a request for key fits into its bucket
func (l *Limiter) Allow(key string) bool {
	return l.getBucket(key).allow(time.Now())
}

func (l *Limiter) sweepLoop() {
	interval := l.expiration / 2
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.sweep(time.Now())
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(now) > l.expiration {
			delete(l.buckets, key)
		}
	}
}

func (l *Limiter) size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.buckets)
}

// Stop terminates the background sweep
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func OnceInSecond() *Limiter { return New(1, 1, time.Hour) }
func OnceInMinute() *Limiter { return New(1.0/60, 1, time.Hour) }
func Rps10() *Limiter        { return New(10, 10, time.Hour) }
func Rps100() *Limiter       { return New(100, 100, time.Hour) }
