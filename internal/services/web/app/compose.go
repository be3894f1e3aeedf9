// Package app composes feature modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/aichenitrkl/chapterweb/internal/services/web/module"
)

// ComposeInput carries the modules to mount and the fallback for unmatched
// paths.
type ComposeInput struct {
	Modules  []module.Module
	NotFound http.Handler
}

// Compose builds a root HTTP handler from modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountFeature(root, feature, seen); err != nil {
			return nil, err
		}
	}

	notFound := input.NotFound
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	root.Handle("/", notFound)
	return root, nil
}

func mountFeature(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	pattern := prefix
	if prefix == "/" {
		pattern = "/{$}"
	}
	if err := mountModule(root, feature, mount, pattern, seen); err != nil {
		return err
	}
	if alias := slashlessPrefixAlias(prefix); alias != "" {
		if err := mountModule(root, feature, mount, alias, seen); err != nil {
			return err
		}
	}
	return nil
}

func mountModule(root *http.ServeMux, feature module.Module, mount module.Mount, pattern string, seen map[string]string) error {
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
	}
	seen[pattern] = feature.ID()
	root.Handle(pattern, mount.Handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	if feature == nil {
		return module.Mount{}, "", fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if strings.Contains(prefix, "{") || strings.Contains(prefix, "//") {
		return fmt.Errorf("prefix must be a literal path")
	}
	return nil
}

// slashlessPrefixAlias returns "/blogs" for a subtree prefix "/blogs/" so the
// listing route reaches the same module.
func slashlessPrefixAlias(prefix string) string {
	if prefix == "/" || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
