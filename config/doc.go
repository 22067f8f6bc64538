// Package config loads, normalizes, and validates transcriptdiff settings.
//
// Settings come from a TOML file resolved from an explicit path, the
// TRANSCRIPTDIFF_CONFIG environment variable, or the default location under
// ~/.config/transcriptdiff. A missing default file yields defaults. The
// publish token may also be supplied through TRANSCRIPTDIFF_PUBLISH_TOKEN.
package config
