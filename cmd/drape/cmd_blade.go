package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"drape/internal/drape"
	"drape/internal/lamplan"
	"drape/internal/matdb"
	"drape/internal/mesh"
)

// bladeCmd drives the blade workflow: one config YAML carries the laminate
// plan plus the workdir and material database locations, with the mesh read
// from and written to the workflow's conventional step directories.
var bladeCmd = &cobra.Command{
	Use:   "blade [config]",
	Short: "Assign plies to a blade mesh using a single workflow config",
	Long: `Reads a blade workflow config YAML containing the laminate plan along
with "workdir" and "matdb" entries. The input mesh is expected at
<workdir>/b3_msh/lm2.json and the draped mesh is written to
<workdir>/b3_drp/draped.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runBlade,
}

// bladeConfig is the workflow envelope around the laminate plan.
type bladeConfig struct {
	Workdir string `yaml:"workdir"`
	Matdb   string `yaml:"matdb"`
}

func runBlade(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read blade config: %w", err)
	}
	var bc bladeConfig
	if err := yaml.Unmarshal(data, &bc); err != nil {
		return fmt.Errorf("parse blade config %s: %w", configPath, err)
	}
	if bc.Matdb == "" {
		return fmt.Errorf("blade config %s: missing matdb", configPath)
	}
	if bc.Workdir == "" {
		bc.Workdir = "."
	}

	configDir := filepath.Dir(configPath)
	workdir := filepath.Join(configDir, bc.Workdir)
	inPath := filepath.Join(workdir, "b3_msh", "lm2.json")
	outPath := filepath.Join(workdir, "b3_drp", "draped.json")
	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("input grid not found: %s (ensure the meshing step has run)", inPath)
	}
	matdbPath := bc.Matdb
	if !filepath.IsAbs(matdbPath) {
		matdbPath = filepath.Join(configDir, matdbPath)
	}

	logger.Debug("blade workflow paths",
		zap.String("grid", inPath),
		zap.String("matdb", matdbPath),
		zap.String("output", outPath))

	plan, err := lamplan.Parse(data, logger)
	if err != nil {
		return fmt.Errorf("blade config %s: %w", configPath, err)
	}
	db, err := matdb.Load(matdbPath)
	if err != nil {
		return err
	}
	m, err := mesh.ReadFile(inPath)
	if err != nil {
		return err
	}
	if err := drape.Drape(cmd.Context(), plan, m, db, logger); err != nil {
		return err
	}
	if err := m.WriteFile(outPath); err != nil {
		return err
	}
	logger.Info("draped mesh written", zap.String("output", outPath))
	return nil
}
