package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/palettepal/palettepal/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("palette-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("palette-mcp - MCP server for color conversion and palettes")
			fmt.Println()
			fmt.Println("Usage: palette-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PALETTE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("Tools: color_convert, color_nearest_name, color_harmony,")
			fmt.Println("palette_extract, image_info.")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Logging goes to stderr; stdout carries the MCP protocol.
	log.SetOutput(os.Stderr)

	if levelName := os.Getenv("PALETTE_MCP_LOG_LEVEL"); levelName != "" {
		level, err := log.ParseLevel(levelName)
		if err != nil {
			log.WithError(err).Warn("invalid log level, using info")
		} else {
			log.SetLevel(level)
		}
	}

	log.WithFields(log.Fields{
		"version": Version,
		"build":   BuildTime,
		"commit":  GitCommit,
	}).Debug("palette-mcp starting")

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
