//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Docs regenerates docs/cli.md from the tool's own --help output.
func Docs() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	help, err := exec.Command(bin, "--help").Output()
	if err != nil {
		return fmt.Errorf("capturing --help: %w", err)
	}

	if err := os.MkdirAll("docs", 0o755); err != nil {
		return fmt.Errorf("creating docs: %w", err)
	}
	cmd := exec.Command(bin, "-o", filepath.Join("docs", "cli.md"), string(help))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("rendering docs: %w", err)
	}
	return nil
}
