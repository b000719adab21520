package cache

import (
	"testing"

	"github.com/parcel-next/internal/config"
)

func TestBuildKey(t *testing.T) {
	// 未启用 Redis 时前缀也要解析，限流键名依赖它
	if err := InitRedis(nil); err != nil {
		t.Fatalf("init with nil config failed: %v", err)
	}
	if got := BuildKey("rate:track"); got != "pn:rate:track" {
		t.Fatalf("default prefix key want pn:rate:track got %s", got)
	}
	if got := BuildKey(""); got != "pn" {
		t.Fatalf("empty key want bare prefix got %s", got)
	}

	if err := InitRedis(&config.RedisConfig{Prefix: "px"}); err != nil {
		t.Fatalf("init with disabled config failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("redis should stay disabled")
	}
	if got := BuildKey("rate:track"); got != "px:rate:track" {
		t.Fatalf("custom prefix key want px:rate:track got %s", got)
	}
}
