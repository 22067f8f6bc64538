package config

import "transcriptdiff/text"

const (
	LayoutSplit   = "split"
	LayoutUnified = "unified"
	LayoutInline  = "inline"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	defaultMaxLines       = 20000
	defaultMaxLineTokens  = 2000
	defaultWidth          = 160
	minWidth              = 40
	defaultPublishTimeout = 5000
	defaultLogLevel       = "info"
	defaultConfigPath     = "~/.config/transcriptdiff/config.toml"
	configEnvVar          = "TRANSCRIPTDIFF_CONFIG"
	publishTokenEnvVar    = "TRANSCRIPTDIFF_PUBLISH_TOKEN"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: defaultLogLevel,
		Diff: Diff{
			SimilarityThreshold: text.SimilarityThreshold,
			MaxLines:            defaultMaxLines,
			MaxLineTokens:       defaultMaxLineTokens,
		},
		Render: Render{
			Layout: LayoutUnified,
			Color:  ColorAuto,
			Width:  defaultWidth,
		},
		Publish: Publish{
			TimeoutMs: defaultPublishTimeout,
		},
	}
}
