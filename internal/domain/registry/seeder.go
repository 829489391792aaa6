package registry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
	"github.com/charlievieth/fastwalk"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/xpdesk/backend/internal/shared/types"
)

// sonicThreshold is the file size above which the sonic decoder is used
// instead of encoding/json.
const sonicThreshold = 10 * 1024

// programFilePattern matches program definition files anywhere under the
// programs directory.
const programFilePattern = "**/*.{json,yaml,yml}"

// Seeder loads program definitions from disk into the registry
type Seeder struct {
	manager     *Manager
	programsDir string
	logger      *zap.Logger
}

// NewSeeder creates a new program seeder
func NewSeeder(manager *Manager, programsDir string, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		manager:     manager,
		programsDir: programsDir,
		logger:      logger,
	}
}

// SeedPrograms loads all program definition files from the programs
// directory. A missing directory and malformed files are logged and
// skipped; seeding never fails startup.
func (s *Seeder) SeedPrograms() error {
	if _, err := os.Stat(s.programsDir); os.IsNotExist(err) {
		s.logger.Warn("Programs directory not found", zap.String("dir", s.programsDir))
		return nil
	}

	var mu sync.Mutex
	var loaded, failed int

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, s.programsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entry, skip
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(s.programsDir, path)
		if relErr != nil {
			return nil
		}
		match, _ := doublestar.Match(programFilePattern, filepath.ToSlash(rel))
		if !match {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		if loadErr := s.loadProgram(path); loadErr != nil {
			s.logger.Warn("Skipping program file",
				zap.String("path", path),
				zap.Error(loadErr),
			)
			failed++
			return nil
		}
		loaded++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk programs dir: %w", err)
	}

	s.manager.mu.Lock()
	s.manager.seededFiles = loaded
	s.manager.mu.Unlock()

	s.logger.Info("Program seeding complete",
		zap.Int("loaded", loaded),
		zap.Int("failed", failed),
	)
	return nil
}

// loadProgram parses and registers a single program definition file
func (s *Seeder) loadProgram(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg types.ProgramConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		// sonic for large files, stdlib-compatible config for smaller
		if err := unmarshalJSON(data, &cfg); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	return s.manager.Register(&cfg)
}

func unmarshalJSON(data []byte, v interface{}) error {
	if len(data) > sonicThreshold {
		return sonic.Unmarshal(data, v)
	}
	return sonic.ConfigStd.Unmarshal(data, v)
}
