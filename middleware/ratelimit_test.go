package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d denied before the burst was spent", i+1)
		}
	}
	if tb.Allow() {
		t.Error("request allowed with an empty bucket")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	// 100 tokens/s so the refill is observable without a long sleep
	tb := NewTokenBucket(1, 100)

	if !tb.Allow() {
		t.Fatal("first request denied")
	}
	if tb.Allow() {
		t.Fatal("bucket did not empty")
	}

	time.Sleep(50 * time.Millisecond)
	if !tb.Allow() {
		t.Error("bucket did not refill")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := &RateLimiter{
		buckets:    make(map[string]*TokenBucket),
		maxTokens:  1,
		refillRate: 0.001,
	}

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first client denied its first request")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("first client allowed past its burst")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("second client throttled by the first client's bucket")
	}
}

func TestHashIPStableAndAnonymized(t *testing.T) {
	a := hashIP("203.0.113.7")
	b := hashIP("203.0.113.7")
	if a != b {
		t.Error("hashing the same address twice differs")
	}
	if a == "203.0.113.7" {
		t.Error("address stored in the clear")
	}
	if len(a) != 45 {
		t.Errorf("hash length = %d, want 45", len(a))
	}
	if hashIP("") != "" {
		t.Error("empty address must stay empty")
	}
}
