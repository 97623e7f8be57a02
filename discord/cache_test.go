package discord

import "testing"

func TestChannelCache(t *testing.T) {
	if got := CachedChannel(100, "fallback"); got != "fallback" {
		t.Errorf("miss should return fallback, got %q", got)
	}
	CacheChannel(100, "chan-100")
	if got := CachedChannel(100, "fallback"); got != "chan-100" {
		t.Errorf("hit = %q, want chan-100", got)
	}
	ForgetChannel(100)
	if got := CachedChannel(100, "fallback"); got != "fallback" {
		t.Errorf("after forget = %q, want fallback", got)
	}
}

func TestChannelName(t *testing.T) {
	if got := ChannelName("trip"); got != "🌸・trip" {
		t.Errorf("ChannelName(trip) = %q", got)
	}
}
