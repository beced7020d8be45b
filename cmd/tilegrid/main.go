// Command tilegrid converts mission tiling grid KML files to the tile map
// text format and answers coverage queries against tile maps.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	mission string
	verbose bool
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tilegrid",
	Short: "Satellite tile coverage grid tool",
	Long: `tilegrid maintains tile maps for satellite imagery missions: it converts
the published tiling grid KML files (Sentinel-2 MGRS, Landsat-8 WRS-2) to a
line-oriented tile map format and answers bounding-box and area-of-interest
queries against them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&mission, "mission", "m", "sentinel-2",
		"mission grid: sentinel-2 or landsat-8")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(bboxCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(fetchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
