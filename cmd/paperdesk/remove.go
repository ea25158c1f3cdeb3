// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Delete a record from the catalog",
	Long: `Remove deletes a record permanently. There is no soft delete and no
undo; restoring from a backup is the only way back.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parsePaperID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(context.Background(), id); err != nil {
		return coreErr(err)
	}

	fmt.Printf("Removed paper %d\n", id)
	return nil
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
