package main

import (
	"github.com/spf13/cobra"

	"drape/internal/mesh"
	"drape/internal/plot"
)

var (
	plotGridPath   string
	plotOutputPath string
	plotScalar     string
	plotXAxis      string
	plotYAxis      string
)

// plotCmd renders a scatter of cell centroids colored by a scalar field.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot a mesh scalar field",
	Long: `Renders the mesh as a 2-D scatter of cell centroids colored by the
selected cell scalar (total_thickness by default).

Example:
  drape plot --grid draped.json --output thickness.png`,
	RunE: runPlot,
}

func runPlot(cmd *cobra.Command, args []string) error {
	m, err := mesh.ReadFile(plotGridPath)
	if err != nil {
		return err
	}
	opts := plot.Options{
		Scalar: plotScalar,
		XAxis:  plotXAxis,
		YAxis:  plotYAxis,
	}
	return plot.Save(m, opts, plotOutputPath, logger)
}

func init() {
	plotCmd.Flags().StringVar(&plotGridPath, "grid", "", "input mesh file")
	plotCmd.Flags().StringVarP(&plotOutputPath, "output", "o", "", "output image file")
	plotCmd.Flags().StringVarP(&plotScalar, "scalar", "s", "total_thickness", "scalar field to plot")
	plotCmd.Flags().StringVarP(&plotXAxis, "x-axis", "x", "x", "x-axis field")
	plotCmd.Flags().StringVarP(&plotYAxis, "y-axis", "y", "y", "y-axis field")
	_ = plotCmd.MarkFlagRequired("grid")
	_ = plotCmd.MarkFlagRequired("output")
}
