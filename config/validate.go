package config

import (
	"errors"
	"fmt"
	"net/url"

	"transcriptdiff/logger"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if !logger.ValidLogLevel(c.LogLevel) {
		return fmt.Errorf("log_level %q must be one of trace, debug, info, warn, error", c.LogLevel)
	}
	if err := c.validateDiff(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return c.validatePublish()
}

func (c *Config) validateDiff() error {
	if c.Diff.SimilarityThreshold < 0 || c.Diff.SimilarityThreshold >= 1 {
		return errors.New("diff.similarity_threshold must be at least 0 and below 1")
	}
	if c.Diff.MaxLines < 0 {
		return errors.New("diff.max_lines must not be negative")
	}
	if c.Diff.MaxLineTokens < 0 {
		return errors.New("diff.max_line_tokens must not be negative")
	}
	return nil
}

func (c *Config) validateRender() error {
	switch c.Render.Layout {
	case LayoutSplit, LayoutUnified, LayoutInline:
	default:
		return fmt.Errorf("render.layout %q must be split, unified, or inline", c.Render.Layout)
	}
	switch c.Render.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("render.color %q must be auto, always, or never", c.Render.Color)
	}
	if c.Render.Width < minWidth {
		return fmt.Errorf("render.width must be at least %d", minWidth)
	}
	return nil
}

func (c *Config) validatePublish() error {
	if c.Publish.TimeoutMs < 0 {
		return errors.New("publish.timeout_ms must not be negative")
	}
	if c.Publish.URL == "" {
		return nil
	}
	u, err := url.Parse(c.Publish.URL)
	if err != nil {
		return fmt.Errorf("publish.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("publish.url %q must use http or https", c.Publish.URL)
	}
	return nil
}
