package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	KeyScrollSpeeds = "scroll-speeds"
	KeyLineNumbers  = "line-numbers"
	KeyIndexes      = "indexes"
	KeySliderStep   = "slider-step"
)

var Keys = []string{KeyScrollSpeeds, KeyLineNumbers, KeyIndexes, KeySliderStep}

var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidValue = errors.New("invalid config value")
)

// ShowIndexes reports whether menus number their items. Unset means yes.
func (c Config) ShowIndexes() bool {
	return c.Menu.ShowIndexes == nil || *c.Menu.ShowIndexes
}

// SliderStep returns the stored step, or fallback when none is stored.
func (c Config) SliderStep(fallback int) int {
	if c.Slider.Step > 0 {
		return c.Slider.Step
	}
	return fallback
}

// Set parses value for key and stores it. An empty value resets the key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case KeyScrollSpeeds:
		speeds, err := parseSpeeds(value)
		if err != nil {
			return err
		}
		c.Viewer.ScrollSpeeds = speeds
	case KeyLineNumbers:
		if value == "" {
			c.Viewer.LineNumbers = false
			return nil
		}
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		c.Viewer.LineNumbers = b
	case KeyIndexes:
		if value == "" {
			c.Menu.ShowIndexes = nil
			return nil
		}
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		c.Menu.ShowIndexes = &b
	case KeySliderStep:
		if value == "" {
			c.Slider.Step = 0
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: slider step must be a positive integer, got %q", ErrInvalidValue, value)
		}
		c.Slider.Step = n
	default:
		return fmt.Errorf("%w %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get formats the stored value of key the way Set accepts it.
func (c Config) Get(key string) (string, error) {
	switch key {
	case KeyScrollSpeeds:
		parts := make([]string, len(c.Viewer.ScrollSpeeds))
		for i, s := range c.Viewer.ScrollSpeeds {
			parts[i] = strconv.Itoa(s)
		}
		return strings.Join(parts, ","), nil
	case KeyLineNumbers:
		return strconv.FormatBool(c.Viewer.LineNumbers), nil
	case KeyIndexes:
		return strconv.FormatBool(c.ShowIndexes()), nil
	case KeySliderStep:
		return strconv.Itoa(c.SliderStep(1)), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
}

func parseSpeeds(value string) ([]int, error) {
	if value == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: scroll speeds must be positive integers, got %q", ErrInvalidValue, part)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: expected a boolean, got %q", ErrInvalidValue, value)
	}
	return b, nil
}
