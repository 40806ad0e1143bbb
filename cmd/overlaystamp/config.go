package main

import (
	"context"
	"fmt"
	"os"

	"github.com/xaionaro-go/overlaypipeline/textoverlay"
	"gopkg.in/yaml.v3"
)

type config struct {
	// Properties is applied through the element's property surface,
	// e.g.: {valign: top, halign: left, shaded-background: true}.
	Properties map[string]any `yaml:"properties"`
}

func loadConfig(path string) (*config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}
	cfg := &config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse '%s': %w", path, err)
	}
	return cfg, nil
}

func (cfg *config) applyTo(ctx context.Context, element textoverlay.Element) error {
	for name, value := range cfg.Properties {
		if err := element.TextOverlay().SetProperty(ctx, name, value); err != nil {
			return fmt.Errorf("unable to set property '%s': %w", name, err)
		}
	}
	return nil
}
