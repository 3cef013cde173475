package memory

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dashboard/internal/dashboard"
)

// ErrInvalidSeed is returned for seed files that parse but break an invariant.
var ErrInvalidSeed = errors.New("invalid seed")

// Seed is the on-disk form of the dashboard's starting state.
type Seed struct {
	User  dashboard.User   `yaml:"user"`
	Tasks []dashboard.Task `yaml:"tasks"`
}

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// Validate checks that the user has an id and task ids are positive and
// unique.
func (s Seed) Validate() error {
	if s.User.ID == 0 {
		return fmt.Errorf("%w: user id is required", ErrInvalidSeed)
	}
	seen := make(map[int]bool, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID <= 0 {
			return fmt.Errorf("%w: task id must be positive, got %d", ErrInvalidSeed, t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate task id %d", ErrInvalidSeed, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}
