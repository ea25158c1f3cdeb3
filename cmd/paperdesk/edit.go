// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing catalog record",
	Long: `Edit replaces the fields of an existing record. Only the flags given
change; every other field keeps its stored value. The same validation rules
as add apply, and the record's updated timestamp is refreshed.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parsePaperID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	existing, err := store.Get(ctx, id)
	if err != nil {
		return coreErr(err)
	}

	p, err := paperFromFlags(cmd, existing)
	if err != nil {
		return err
	}

	if err := store.Update(ctx, id, p); err != nil {
		return coreErr(err)
	}

	fmt.Printf("Updated paper %d: %s (%d)\n", id, p.Title, p.Year)
	return nil
}

// parsePaperID parses a record id argument.
func parsePaperID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid paper id %q", arg)
	}
	return id, nil
}

func init() {
	registerPaperFlags(editCmd)
	rootCmd.AddCommand(editCmd)
}
