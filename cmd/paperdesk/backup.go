// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meshint/paperdesk/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup [destination]",
	Short: "Copy the catalog database to a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := loadConfig().Catalog.Path
		if err := backup.Backup(dbPath, args[0]); err != nil {
			logger.Named("backup").Error("%v", err)
			return err
		}
		fmt.Printf("Backed up %s to %s\n", dbPath, args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Replace the catalog database with a backup",
	Long: `Restore overwrites the current catalog database with the given
backup file. The current contents are lost.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := loadConfig().Catalog.Path
		if err := backup.Restore(args[0], dbPath); err != nil {
			logger.Named("backup").Error("%v", err)
			return err
		}
		fmt.Printf("Restored %s from %s\n", dbPath, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
