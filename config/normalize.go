package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	var err error
	if c.LogFile, err = expandPath(strings.TrimSpace(c.LogFile)); err != nil {
		return fmt.Errorf("log_file: %w", err)
	}

	c.normalizeRender()
	c.normalizePublish()
	return nil
}

func (c *Config) normalizeRender() {
	c.Render.Layout = strings.ToLower(strings.TrimSpace(c.Render.Layout))
	if c.Render.Layout == "" {
		c.Render.Layout = LayoutUnified
	}
	c.Render.Color = strings.ToLower(strings.TrimSpace(c.Render.Color))
	if c.Render.Color == "" {
		c.Render.Color = ColorAuto
	}
	if c.Render.Width == 0 {
		c.Render.Width = defaultWidth
	}
}

func (c *Config) normalizePublish() {
	c.Publish.URL = strings.TrimSpace(c.Publish.URL)
	c.Publish.Token = strings.TrimSpace(c.Publish.Token)
	if c.Publish.Token == "" {
		c.Publish.Token = strings.TrimSpace(os.Getenv(publishTokenEnvVar))
	}
	if c.Publish.TimeoutMs == 0 {
		c.Publish.TimeoutMs = defaultPublishTimeout
	}
}
