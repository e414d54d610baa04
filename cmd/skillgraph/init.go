package main

import (
	"fmt"

	"github.com/inful/skillgraph/internal/config"
)

// InitCmd writes a starter configuration file with documented defaults.
type InitCmd struct {
	Out string `short:"o" help:"Path to write the starter config" default:"skillgraph.yaml"`
}

func (i *InitCmd) Run(root *CLI) error {
	if err := config.WriteStarter(i.Out); err != nil {
		return fmt.Errorf("write starter config: %w", err)
	}
	fmt.Printf("wrote %s\n", i.Out)
	return nil
}
