package services

import (
	"context"
	"testing"
	"time"

	"hotelops/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisCache(rdb), mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	statuses := []models.RoomStatus{*models.NewRoomStatus("101"), *models.NewRoomStatus("102")}
	if err := cache.Set(ctx, RoomStatusesCacheKey, statuses, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []models.RoomStatus
	found, err := cache.Get(ctx, RoomStatusesCacheKey, &got)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if len(got) != 2 || got[1].RoomName != "102" {
		t.Fatalf("got %+v", got)
	}

	mr.FastForward(2 * time.Minute)
	found, err = cache.Get(ctx, RoomStatusesCacheKey, &got)
	if err != nil || found {
		t.Fatalf("expected expiry, found=%v err=%v", found, err)
	}
}

func TestRedisCacheMissAndDelete(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var v map[string]int
	if found, err := cache.Get(ctx, "missing", &v); err != nil || found {
		t.Fatalf("miss: found=%v err=%v", found, err)
	}

	day := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	key := DailyReportCacheKey(day)
	if key != "reports:daily:2025-06-03" {
		t.Fatalf("key = %q", key)
	}
	if err := cache.Set(ctx, key, map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := cache.Delete(ctx, key, RoomStatusesCacheKey); err != nil {
		t.Fatal(err)
	}
	if mr.Exists(key) {
		t.Fatal("key should be deleted")
	}
}
