// sfgarden: Square-Foot Gardening MCP Server
//
// An MCP server that lets AI assistants track square-foot gardens:
// grid-addressed plantings, indoor seedling batches, harvests, and
// notes, backed by PostgreSQL with per-user row isolation.
//
// Usage:
//
//	sfgarden serve    # Start MCP server (stdio transport)
//	sfgarden update   # Update to the latest version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	gardenserver "github.com/philipgiuliani/sfgarden/internal/server"
	"github.com/philipgiuliani/sfgarden/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "update":
		runUpdate()
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("sfgarden v%s\n", gardenserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	// Graceful shutdown on interrupt: the context bounds connection
	// setup and migrations.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	s, cleanup, err := gardenserver.New(ctx)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Background version check — prints to stderr so it doesn't
	// interfere with MCP's stdio transport on stdout.
	go checkForUpdates()

	return server.ServeStdio(s)
}

// checkForUpdates runs a non-blocking version check and prints a notice
// to stderr if an update is available. This runs in a goroutine during
// "serve" and is best-effort — network failures are silently ignored.
func checkForUpdates() {
	result := updater.CheckVersion(gardenserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  📦 Update available: v%s → v%s\n"+
				"     Run: sfgarden update\n"+
				"     Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "🔍 Checking for updates...\n")

	result := updater.CheckVersion(gardenserver.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "✅ Already at the latest version (v%s)\n", result.CurrentVersion)
		return
	}

	fmt.Fprintf(os.Stderr, "📦 New version available: v%s → v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(os.Stderr, "⬇️  Downloading...\n")

	if err := updater.SelfUpdate(gardenserver.Version); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\n   You can download manually from:\n   %s\n", result.ReleaseURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "✅ Updated to v%s!\n", result.LatestVersion)
	fmt.Fprintf(os.Stderr, "   Restart sfgarden to use the new version.\n")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `sfgarden v%s — Square-Foot Gardening MCP Server

Usage:
  sfgarden serve    Start the MCP server (stdio transport)
  sfgarden update   Update to the latest version

Configuration:
  Environment variables:
    SFGARDEN_DATABASE_DSN   PostgreSQL DSN
    SFGARDEN_USER           User identity for row isolation

  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "sfgarden": {
        "command": "sfgarden",
        "args": ["serve"],
        "env": {
          "SFGARDEN_DATABASE_DSN": "postgres://...",
          "SFGARDEN_USER": "you"
        }
      }
    }
  }

Learn more: https://github.com/philipgiuliani/sfgarden
`, gardenserver.Version)
}
