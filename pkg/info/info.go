// Package info reports the bot's run conditions: uptime, release
// version, host platform, and the dependencies it was built with.
package info

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	// Packages
	discordgo "github.com/bwmarrin/discordgo"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set at build time with ldflags.
var (
	GitTag    string
	GitBranch string
)

// startTime is captured when the process loads this package.
var startTime = time.Now()

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// StartTime returns the time the bot was started.
func StartTime() time.Time {
	return startTime
}

// Uptime returns how long the bot has been running, formatted the way
// the info command presents it.
func Uptime() string {
	return formatUptime(time.Since(startTime))
}

// Version returns the release version: the git tag or branch baked in
// with ldflags, falling back to the VCS revision from build info, and
// "dev" when neither is available.
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// GoVersion returns the Go runtime version the bot was built with.
func GoVersion() string {
	return runtime.Version()
}

// DiscordGoVersion returns the version of the discordgo library.
func DiscordGoVersion() string {
	return discordgo.VERSION
}

// Host describes the device hosting the bot.
func Host() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s (%s/%s)", hostname, runtime.GOOS, runtime.GOARCH)
}

// Dependencies lists the modules the bot was built against as
// "path@version" entries. The list is empty when build info is not
// embedded (e.g. some test binaries).
func Dependencies() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	deps := make([]string, 0, len(info.Deps))
	for _, dep := range info.Deps {
		deps = append(deps, dep.Path+"@"+dep.Version)
	}
	return deps
}

// JSON returns the bot's runtime metadata as an indented JSON blob for
// the version command.
func JSON(execName string) []byte {
	metadata := map[string]any{
		"name":      execName,
		"version":   Version(),
		"compiler":  GoVersion(),
		"discordgo": DiscordGoVersion(),
		"host":      Host(),
		"uptime":    Uptime(),
	}
	if GitTag != "" {
		metadata["tag"] = GitTag
	}
	if GitBranch != "" {
		metadata["branch"] = GitBranch
	}
	if deps := Dependencies(); len(deps) > 0 {
		metadata["dependencies"] = deps
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Path != "" {
			metadata["source"] = info.Main.Path
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.time":
				if s.Value != "" {
					metadata["build_time"] = s.Value
				}
			case "vcs.modified":
				if s.Value == "true" {
					metadata["modified"] = s.Value
				}
			}
		}
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func formatUptime(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	microseconds := int(d/time.Microsecond) % 1000000
	return fmt.Sprintf("%d days, %d hours, %d minutes, %d seconds, %d microseconds",
		days, hours, minutes, seconds, microseconds)
}
