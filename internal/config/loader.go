package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the dodger configuration.
// With an empty customPath the embedded default is used; dodger never searches
// for config files on its own. A custom file only needs the keys it overrides.
func Load(customPath string) (DodgeConfig, error) {
	cfg := embeddedDefault()

	if customPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(customPath)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
	}
	if err := decodeInto(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", customPath, err)
	}
	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hard-coded default.
func embeddedDefault() DodgeConfig {
	cfg := DefaultDodgeConfig()
	if err := decodeInto(defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig()
	}
	return cfg
}

// decodeInto decodes YAML over an existing config, rejecting unknown keys.
func decodeInto(data []byte, cfg *DodgeConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}
