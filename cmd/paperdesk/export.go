// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meshint/paperdesk/internal/export"
	"github.com/meshint/paperdesk/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the catalog to CSV, YAML, or JSON",
	Long: `Export writes all records to a file. CSV carries the bibliography
columns with tags comma-joined; YAML and JSON carry the full record
including body text.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	var write func(f *os.File, papers []types.Paper) error
	switch format {
	case "csv", "":
		write = func(f *os.File, papers []types.Paper) error { return export.CSV(f, papers) }
	case "yaml":
		write = func(f *os.File, papers []types.Paper) error { return export.YAML(f, papers) }
	case "json":
		write = func(f *os.File, papers []types.Paper) error { return export.JSON(f, papers) }
	default:
		return fmt.Errorf("unsupported format %q: use csv, yaml, or json", format)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	papers, err := store.List(context.Background())
	if err != nil {
		return coreErr(err)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := write(f, papers); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Exported %d papers to %s\n", len(papers), args[0])
	return nil
}

func init() {
	exportCmd.Flags().String("format", "csv", "export format: csv, yaml, or json")

	rootCmd.AddCommand(exportCmd)
}
