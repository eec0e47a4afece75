package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/internal/store"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/mapfile"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/spec"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/towngen"
)

// loadAndValidate loads the town spec and runs validation.
func loadAndValidate(projectPath string) (*spec.TownSpec, *spec.Report, error) {
	townSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	return townSpec, townSpec.Validate(), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath, out, dbPath string) error {
	townSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	printReport(report)
	if !report.Valid {
		os.Exit(1)
	}

	plan, err := towngen.Generate(townSpec)
	if err != nil {
		return fmt.Errorf("generating town: %w", err)
	}
	slog.Info("town generated",
		"name", townSpec.Name,
		"seed", townSpec.Seed,
		"areas", plan.Registry.Len(),
		"parcels", len(plan.Root.Leaves()),
	)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	if err := mapfile.WriteGeoJSON(f, townSpec.Name, plan.Root); err != nil {
		return fmt.Errorf("writing GeoJSON: %w", err)
	}
	slog.Info("map written", "path", out)

	for _, s := range mapfile.Summarize(plan.Root) {
		slog.Info("category", "name", s.Name, "parcels", s.Count, "area_m2", fmt.Sprintf("%.0f", s.AreaM2))
	}

	if dbPath != "" {
		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()
		if _, err := db.SaveMap(townSpec.Name, townSpec.Seed, plan.Root); err != nil {
			return fmt.Errorf("saving map: %w", err)
		}
	}

	return nil
}

func printReport(report *spec.Report) {
	for _, r := range report.Errors {
		fmt.Fprintf(os.Stderr, "error: %s: %s\n", r.Field, r.Message)
	}
	for _, r := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", r.Field, r.Message)
	}
}
