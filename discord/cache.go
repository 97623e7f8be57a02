package discord

import (
	"strconv"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Channels caches album id → channel id for the process lifetime: written
// when an album is created, read on update/delete. There is no eviction.
// Callers fall back to the persisted channel id on a miss (e.g. after a
// restart), so the cache only saves lookups, it is not authoritative.
var Channels = cmap.New[string]()

func CacheChannel(albumID uint64, channelID string) {
	Channels.Set(strconv.FormatUint(albumID, 10), channelID)
}

func CachedChannel(albumID uint64, fallback string) string {
	if channelID, ok := Channels.Get(strconv.FormatUint(albumID, 10)); ok {
		return channelID
	}
	return fallback
}

func ForgetChannel(albumID uint64) {
	Channels.Remove(strconv.FormatUint(albumID, 10))
}
