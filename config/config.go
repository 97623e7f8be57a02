package config

import (
	"os"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	MYSQL_DSN    = "" // MySQL will be used if this is set
	SQLITE_FILE  = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true
	// Discord integration - each album is backed by a text channel in this guild
	DISCORD_TOKEN          = ""
	DISCORD_GUILD          = ""
	DISCORD_PARENT_CHANNEL = "" // category under which new album channels are created
	DISCORD_WORKER_ID      = "" // worker identity that keeps access to private channels
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("DISCORD_TOKEN", &DISCORD_TOKEN)
	readEnvString("DISCORD_GUILD", &DISCORD_GUILD)
	readEnvString("DISCORD_PARENT_CHANNEL", &DISCORD_PARENT_CHANNEL)
	readEnvString("DISCORD_WORKER_ID", &DISCORD_WORKER_ID)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
