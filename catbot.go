// Package catbot contains shared types for the CatBot helper packages.
// The interesting pieces live in the sub-packages: pkg/ui for the
// confirmation widget and UI constants, pkg/ui/discord for the Discord
// adapter, pkg/env for token loading, pkg/info for runtime information
// and pkg/config for bot configuration.
package catbot
