package odet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/odflow/pkg/tensor"
)

// Config holds the model-agnostic training parameters. It is immutable
// once training starts; NumClasses and the output grid must match the
// label tensor shape the backend's encoding produces.
type Config struct {
	// MaxIterations is the target number of training iterations, or -1 to
	// compute it heuristically.
	MaxIterations int `yaml:"max_iterations"`

	// BatchSize is the number of images per training batch, or -1 to
	// compute it automatically.
	BatchSize int `yaml:"batch_size"`

	// OutputHeight and OutputWidth describe the final feature map.
	OutputHeight int `yaml:"output_height"`
	OutputWidth  int `yaml:"output_width"`

	// NumClasses determines the number of feature channels in the final
	// feature map.
	NumClasses int `yaml:"num_classes"`
}

// DefaultConfig returns a Config with the -1 sentinels set and the
// conventional 13x13 output grid.
func DefaultConfig() Config {
	return Config{
		MaxIterations: -1,
		BatchSize:     -1,
		OutputHeight:  13,
		OutputWidth:   13,
		NumClasses:    -1,
	}
}

// LoadConfig reads a Config from a YAML file and validates it.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("odet: open config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("odet: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects inconsistent configuration before any batch flows.
func (c Config) Validate() error {
	if c.NumClasses <= 0 {
		return fmt.Errorf("odet: num_classes must be > 0 (got %d)", c.NumClasses)
	}
	if c.OutputHeight <= 0 || c.OutputWidth <= 0 {
		return fmt.Errorf("odet: output grid must be positive (got %dx%d)",
			c.OutputHeight, c.OutputWidth)
	}
	if c.BatchSize <= 0 && c.BatchSize != -1 {
		return fmt.Errorf("odet: batch_size must be > 0 or -1 (got %d)", c.BatchSize)
	}
	if c.MaxIterations <= 0 && c.MaxIterations != -1 {
		return fmt.Errorf("odet: max_iterations must be > 0 or -1 (got %d)", c.MaxIterations)
	}
	return nil
}

// Checkpoint is a self-contained snapshot of configuration and weights,
// sufficient to reconstruct inference state. Optimizer state is not
// included, so resuming training exactly is not yet possible.
type Checkpoint struct {
	Config  Config
	Weights map[string]tensor.FloatArray
}
