// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hamed0406/sharewatch/internal/config"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("ADMIN_API_KEYS"))
	pub := strings.TrimSpace(os.Getenv("PUBLIC_API_KEYS"))
	addr := strings.TrimSpace(os.Getenv("ADDR"))

	if admin == "" {
		fail("ADMIN_API_KEYS is empty (admin routes will 403).")
	}
	ok("ADMIN_API_KEYS set")
	if pub == "" {
		fail("PUBLIC_API_KEYS is empty (read routes will 401).")
	}
	ok("PUBLIC_API_KEYS set")

	if addr == "" {
		warn("ADDR not set; defaulting to 127.0.0.1:8080")
	}

	cfg := config.FromEnv()
	targets, err := config.LoadTargets(cfg.TargetsFile)
	if err != nil {
		fail(fmt.Sprintf("targets file %s: %v", cfg.TargetsFile, err))
	}
	if targets.Len() == 0 {
		warn(fmt.Sprintf("targets file %s has no targets; nothing will be monitored until PUT /api/targets", cfg.TargetsFile))
	} else {
		ok(fmt.Sprintf("%d websites, %d file shares configured",
			len(targets.Websites), len(targets.Stores)))
	}

	credentialed := 0
	for _, s := range targets.Stores {
		if s.SASURL == "" && s.Credential == nil {
			warn(fmt.Sprintf("file share %q has no access mode; it will report errors", s.Key()))
		}
		if s.Credential != nil {
			credentialed++
		}
	}
	if credentialed > 0 && cfg.S3Region == "" {
		warn("S3_REGION not set; credential-mode shares default to us-east-1")
	}

	ok("preflight passed")
}
