package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket классический token bucket: ведро на capacity токенов,
// пополняемое с постоянной скоростью. Allow отвечает за один запрос -
// либо токен есть и запрос проходит, либо нет.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens == 0 {
		return false
	}
	t.tokens--
	return true
}

// refill добавляет токены за прошедшее время. lastRefill двигается только
// когда накопился хотя бы один целый токен, иначе частые вызовы с мелкими
// интервалами никогда не накопят дробный остаток.
func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	earned := int(elapsed * t.refillRate)
	if earned == 0 {
		return
	}

	t.tokens += earned
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}
