package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/internal/server"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	rootCmd := &cobra.Command{
		Use:   "townmap",
		Short: "Procedural medieval town map generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var out string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate a town map and export it as GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], out, dbPath)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "town.geojson", "output GeoJSON file")
	cmd.Flags().StringVar(&dbPath, "db", "", "also save the map to this SQLite database")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a town spec without generating the map",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server serving the generated map",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
