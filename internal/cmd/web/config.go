// Package web wires the chapter website commands: serving, static export,
// and transition tracing.
package web

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/aichenitrkl/chapterweb/internal/content"
	platformcmd "github.com/aichenitrkl/chapterweb/internal/platform/cmd"
	"github.com/aichenitrkl/chapterweb/internal/platform/imagehost"
	"github.com/aichenitrkl/chapterweb/internal/transition"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"CHAPTER_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	// ContentDir replaces the embedded content when set.
	ContentDir string `env:"CHAPTER_WEB_CONTENT_DIR"`
	// Watch reloads ContentDir on change.
	Watch               bool          `env:"CHAPTER_WEB_WATCH" envDefault:"false"`
	AssetBase           string        `env:"CHAPTER_WEB_ASSET_BASE" envDefault:"/static"`
	ImageHosts          []string      `env:"CHAPTER_WEB_IMAGE_HOSTS" envSeparator:","`
	TrustForwardedProto bool          `env:"CHAPTER_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	TransitionIn        time.Duration `env:"CHAPTER_WEB_TRANSITION_IN" envDefault:"700ms"`
	TransitionOut       time.Duration `env:"CHAPTER_WEB_TRANSITION_OUT" envDefault:"700ms"`
	NavigateDelay       time.Duration `env:"CHAPTER_WEB_NAVIGATE_DELAY" envDefault:"500ms"`
	ExportDir           string        `env:"CHAPTER_WEB_EXPORT_DIR" envDefault:"dist"`
}

// LoadConfig reads environment defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TransitionConfig returns the phase clock durations.
func (c Config) TransitionConfig() transition.Config {
	return transition.Config{
		InDuration:    c.TransitionIn,
		OutDuration:   c.TransitionOut,
		NavigateDelay: c.NavigateDelay,
	}
}

// ImagePolicy returns the image source allow-list.
func (c Config) ImagePolicy() imagehost.Policy {
	var hosts []string
	for _, host := range c.ImageHosts {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	return imagehost.Policy{Hosts: hosts}
}

// ContentFS returns the content directory, or the embedded content when no
// directory is configured.
func (c Config) ContentFS() (fs.FS, error) {
	dir := strings.TrimSpace(c.ContentDir)
	if dir == "" {
		return content.Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %q is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// Validate rejects settings the commands cannot run with.
func (c Config) Validate() error {
	if c.Watch && strings.TrimSpace(c.ContentDir) == "" {
		return fmt.Errorf("watch requires a content directory")
	}
	if err := c.TransitionConfig().Validate(); err != nil {
		return err
	}
	return nil
}
