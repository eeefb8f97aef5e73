package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"drape/internal/drape"
	"drape/internal/lamplan"
	"drape/internal/matdb"
	"drape/internal/mesh"
)

var (
	// Global flags
	verbose bool

	// Root pipeline flags
	lamplanPath string
	gridPath    string
	matdbPath   string
	outputPath  string

	// Logger
	logger *zap.Logger
)

// rootCmd runs the draping pipeline directly; blade and plot are
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "drape",
	Short: "Assign composite material plies to FEA mesh elements",
	Long: `drape evaluates a laminate plan against a finite-element mesh and
writes per-ply material/angle/thickness cell arrays plus the aggregate
total_thickness array back onto the mesh.

Example:
  drape --lamplan plan.yaml --grid blade.json --matdb materials.json --output draped.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDrape,
}

// runDrape loads the inputs, runs the pipeline, and writes the annotated
// mesh.
func runDrape(cmd *cobra.Command, args []string) error {
	plan, err := lamplan.Load(lamplanPath, logger)
	if err != nil {
		return err
	}
	db, err := matdb.Load(matdbPath)
	if err != nil {
		return err
	}
	m, err := mesh.ReadFile(gridPath)
	if err != nil {
		return err
	}
	if err := drape.Drape(cmd.Context(), plan, m, db, logger); err != nil {
		return err
	}
	if err := m.WriteFile(outputPath); err != nil {
		return err
	}
	logger.Info("draped mesh written", zap.String("output", outputPath))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVar(&lamplanPath, "lamplan", "", "laminate plan YAML file")
	rootCmd.Flags().StringVar(&gridPath, "grid", "", "input mesh file")
	rootCmd.Flags().StringVarP(&matdbPath, "matdb", "m", "", "material database JSON file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output mesh file")
	_ = rootCmd.MarkFlagRequired("lamplan")
	_ = rootCmd.MarkFlagRequired("grid")
	_ = rootCmd.MarkFlagRequired("matdb")
	_ = rootCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(bladeCmd)
	rootCmd.AddCommand(plotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
