package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr        string // API bind address, e.g., "127.0.0.1:8080" (local) or ":8080" (Docker)
	LogDir      string // logs directory
	TargetsFile string // YAML file holding the monitored target set

	CheckInterval  time.Duration // time between monitoring cycles; 0 disables the scheduler
	HTTPTimeout    time.Duration // per website probe
	StoreOpTimeout time.Duration // per file share operation (existence, listing, properties)

	MaxConcurrentChecks int // fan-out cap per cycle

	S3Region string // region for credential-mode file shares

	PublicAPIKeys []string // read access to the API
	AdminAPIKeys  []string // mutations (target replacement, manual cycles)
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	targetsFile := os.Getenv("TARGETS_FILE")
	if targetsFile == "" {
		targetsFile = "targets.yml"
	}

	return Config{
		Addr:        addr,
		LogDir:      logDir,
		TargetsFile: targetsFile,

		CheckInterval:  envDurationMS("CHECK_INTERVAL_MS", 60_000),
		HTTPTimeout:    envDurationMS("HTTP_TIMEOUT_MS", 10_000),
		StoreOpTimeout: envDurationMS("STORE_OP_TIMEOUT_MS", 30_000),

		MaxConcurrentChecks: envInt("MAX_CONCURRENT_CHECKS", 16),

		S3Region: os.Getenv("S3_REGION"),

		PublicAPIKeys: splitKeys(os.Getenv("PUBLIC_API_KEYS")),
		AdminAPIKeys:  splitKeys(os.Getenv("ADMIN_API_KEYS")),
	}
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envDurationMS(name string, defMS int) time.Duration {
	if v := os.Getenv(name); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defMS) * time.Millisecond
}

func splitKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			out = append(out, k)
		}
	}
	return out
}
