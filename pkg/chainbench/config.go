package chainbench

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrInvalidConfig errorkit.Error = "invalid benchmark config"

// Config describes the benchmark matrix.
// Every Variant is measured with every Workload at every size.
type Config struct {
	Sizes     []int      `json:"sizes"`
	Variants  []Variant  `json:"variants"`
	Workloads []Workload `json:"workloads"`
	// Rounds is the number of times a case is repeated.
	Rounds int `json:"rounds"`
	// Parallelism limits how many cases run at the same time.
	Parallelism int `json:"parallelism"`
}

func DefaultConfig() Config {
	return Config{
		Sizes:       []int{1_000, 10_000},
		Variants:    Variants(),
		Workloads:   Workloads(),
		Rounds:      3,
		Parallelism: 1,
	}
}

// LoadConfig reads a JSON config that may contain comments and trailing commas.
// Fields missing from the file keep their default value,
// and a missing file or an empty path yields the DefaultConfig.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return c, err
	}
	if !ok {
		return c, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &c); err != nil {
		return c, ErrInvalidConfig.Wrap(fmt.Errorf("%s: %w", path, err))
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if len(c.Sizes) == 0 || len(c.Variants) == 0 || len(c.Workloads) == 0 {
		return ErrInvalidConfig.F("sizes, variants and workloads must not be empty")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return ErrInvalidConfig.F("size must be positive: %d", size)
		}
	}
	for _, v := range c.Variants {
		if _, err := NewList[uint64](v); err != nil {
			return ErrInvalidConfig.Wrap(err)
		}
	}
	for _, w := range c.Workloads {
		if !w.valid() {
			return ErrInvalidConfig.Wrap(ErrUnknownWorkload.F("%q", w))
		}
	}
	if c.Rounds <= 0 {
		return ErrInvalidConfig.F("rounds must be positive: %d", c.Rounds)
	}
	if c.Parallelism <= 0 {
		return ErrInvalidConfig.F("parallelism must be positive: %d", c.Parallelism)
	}
	return nil
}

// Case is a single cell of the benchmark matrix.
type Case struct {
	Variant  Variant
	Workload Workload
	Size     int
}

func (c Case) String() string {
	return fmt.Sprintf("%s/%s/%d", c.Variant, c.Workload, c.Size)
}

// Cases lists the matrix ordered by variant, then workload, then size.
func (c Config) Cases() []Case {
	cases := make([]Case, 0, len(c.Variants)*len(c.Workloads)*len(c.Sizes))
	for _, v := range c.Variants {
		for _, w := range c.Workloads {
			for _, size := range c.Sizes {
				cases = append(cases, Case{Variant: v, Workload: w, Size: size})
			}
		}
	}
	return cases
}
