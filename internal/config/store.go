package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

const appDir = "cursive"

var ErrUnsupportedVersion = errors.New("unsupported config version")

// Store reads and writes the preferences file. A lock file next to it
// serializes access between concurrent cursive processes.
type Store struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
}

func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(base, appDir, "config.json"), nil
}

// NewStore opens the store at pathOverride, or at DefaultPath when it is
// empty. The parent directory is created.
func NewStore(pathOverride string) (*Store, error) {
	path := pathOverride
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Load() (Config, error) {
	var cfg Config
	err := s.withLock(func() error {
		var err error
		cfg, err = s.read()
		return err
	})
	return cfg, err
}

func (s *Store) Save(cfg Config) error {
	return s.withLock(func() error { return s.write(cfg) })
}

// Update runs fn on the current preferences and saves the result while
// holding the lock. Nothing is written when fn fails.
func (s *Store) Update(fn func(*Config) error) error {
	return s.withLock(func() error {
		cfg, err := s.read()
		if err != nil {
			return err
		}
		if err := fn(&cfg); err != nil {
			return err
		}
		return s.write(cfg)
	})
}

// withLock holds the in-process mutex and the lock file for the duration of fn.
func (s *Store) withLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	return fn()
}

func (s *Store) read() (Config, error) {
	b, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Config{Version: CurrentVersion}, nil
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decodeConfig(b)
}

func (s *Store) write(cfg Config) error {
	b, err := encodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := atomicWriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("atomic write config: %w", err)
	}
	return nil
}

// decodeConfig parses a preferences file. A missing version is read as the
// current one.
func decodeConfig(b []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.checkVersion(); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func encodeConfig(cfg Config) ([]byte, error) {
	if err := cfg.checkVersion(); err != nil {
		return nil, fmt.Errorf("refuse to write: %w", err)
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append(b, '\n'), nil
}

func (c *Config) checkVersion() error {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w %d (expected %d)", ErrUnsupportedVersion, c.Version, CurrentVersion)
	}
	return nil
}

// normalize drops values a hand-edited file may carry that no widget accepts.
func (c *Config) normalize() {
	speeds := c.Viewer.ScrollSpeeds[:0]
	for _, v := range c.Viewer.ScrollSpeeds {
		if v > 0 {
			speeds = append(speeds, v)
		}
	}
	if len(speeds) == 0 {
		speeds = nil
	}
	c.Viewer.ScrollSpeeds = speeds
	if c.Slider.Step < 0 {
		c.Slider.Step = 0
	}
}
