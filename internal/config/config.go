// Package config defines BuildOptions (spec.md §6's "host-supplied
// configuration") and loads it from YAML plus an optional .env overlay,
// grounded on the teacher's internal/config package.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/inful/skillgraph/internal/graph"
)

// AdjacencyOptions mirrors graph.AdjacencyOptions in YAML-friendly form.
type AdjacencyOptions struct {
	IncludeGhost   bool `yaml:"include_ghost"`
	IncludeScripts bool `yaml:"include_scripts"`
	IncludeCycles  bool `yaml:"include_cycles"`
}

func (o AdjacencyOptions) ToGraph() graph.AdjacencyOptions {
	return graph.AdjacencyOptions{
		IncludeGhost:   o.IncludeGhost,
		IncludeScripts: o.IncludeScripts,
		IncludeCycles:  o.IncludeCycles,
	}
}

// BuildOptions is the host-supplied configuration of spec.md §6.
// DenseThreshold and DensityThreshold are hints for downstream layout
// selection; the core never consumes them and passes them through
// unchanged — they exist on this type purely so a config file round-trips.
type BuildOptions struct {
	CondenseCycles   bool             `yaml:"condense_cycles"`
	AdjacencyOptions AdjacencyOptions `yaml:"adjacency_options"`
	DenseThreshold   int              `yaml:"dense_threshold"`
	DensityThreshold float64          `yaml:"density_threshold"`
}

// Default matches spec.md §6's documented defaults.
func Default() BuildOptions {
	return BuildOptions{
		CondenseCycles:   true,
		AdjacencyOptions: AdjacencyOptions{},
		DenseThreshold:   200,
		DensityThreshold: 0.15,
	}
}

// Load reads BuildOptions from a YAML file at path, overlaying an optional
// .env / .env.local file from the working directory first (for secrets such as
// a NATS URL or SQLite DSN, consumed by other packages via os.Getenv — this
// package itself has no secret fields). A missing config file is not an
// error: Load falls back to Default.
func Load(path string) (BuildOptions, error) {
	loadDotEnv()

	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}

func loadDotEnv() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
}

// WriteStarter writes a starter BuildOptions YAML file holding the Default
// values to path, for the CLI's `init` subcommand. The file has no comments.
func WriteStarter(path string) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
