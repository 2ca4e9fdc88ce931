package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/palettepal/palettepal/internal/palette"
	"github.com/palettepal/palettepal/internal/tui"
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
			fmt.Printf("palettepal %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("palettepal - terminal color picker and palette builder")
			fmt.Println()
			fmt.Println("Usage: palettepal [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Configuration (palettepal.yaml, or PALETTEPAL_* env):")
			fmt.Println("  color     initial color, hex or CSS name (default hsl 250,100,50)")
			fmt.Println("  ryb       start in the artist's RYB colorspace (default false)")
			fmt.Println("  logfile   write logs to this file (default: logging off)")
			fmt.Println("  loglevel  debug, info, warn, error (default info)")
			return
		}
	}

	viper.SetEnvPrefix("PALETTEPAL")
	viper.AutomaticEnv()
	viper.SetDefault("color", "")
	viper.SetDefault("ryb", false)

	viper.SetConfigName("palettepal")
	viper.AddConfigPath("/etc/palettepal")
	viper.AddConfigPath("$HOME/.config/palettepal")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "There was an error reading the config file:\n%s\n", err.Error())
			os.Exit(1)
		}
	}

	// The terminal belongs to the picker, so logs only go to a file.
	log.SetOutput(io.Discard)
	if logfile := viper.GetString("logfile"); logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	if levelName := viper.GetString("loglevel"); levelName != "" {
		if level, err := log.ParseLevel(levelName); err == nil {
			log.SetLevel(level)
		}
	}

	cfg := tui.Config{
		Initial:  initialColor(viper.GetString("color"), viper.GetBool("ryb")),
		RYBSpace: viper.GetBool("ryb"),
	}

	log.WithFields(log.Fields{
		"version": Version,
		"color":   cfg.Initial.Hex(),
		"ryb":     cfg.RYBSpace,
	}).Info("palettepal starting")

	app := tui.New(cfg)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "palettepal: %v\n", err)
		os.Exit(1)
	}
}

// initialColor resolves the configured startup color, accepting a hex string
// or a CSS name. Unset or unparseable values fall back to the stock violet.
func initialColor(s string, ryb bool) palette.Color {
	space := palette.SpaceStandard
	if ryb {
		space = palette.SpaceRYB
	}

	if s != "" {
		if c, err := palette.FromHex(s); err == nil {
			return c
		}
		if c, err := palette.FromName(s); err == nil {
			return c
		}
		log.WithField("color", s).Warn("unrecognized initial color, using default")
	}
	return palette.New(250, 100, 50, space)
}
