// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, reset, and wipe operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/charm/kv"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachcal/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync coaching data across devices",
	Long: `Sync coaching data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted roster or schedule.

Only the charm backend syncs; with badger or sqlite these commands
report that sync is unavailable.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     coachcal sync link

  2. On other devices, link with the same Charm account:
     coachcal sync link

  3. Check sync status:
     coachcal sync status

COMMANDS:

  link      Link this device to your Charm account
  unlink    Disconnect this device from Charm
  status    Show sync status and local data counts
  reset     Reset local data and restore from cloud (destructive)
  wipe      Delete cloud and local data (destructive)

Data syncs automatically after each write.`,
}

// charmStore returns the open store as a CharmStore, or nil when a
// non-syncing backend is configured.
func charmStore() *store.CharmStore {
	cs, ok := kvStore.(*store.CharmStore)
	if !ok {
		return nil
	}
	return cs
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.

Example:
  coachcal sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Your coaching data will now sync automatically across devices.")

		if cs := charmStore(); cs != nil {
			if err := cs.Sync(); err != nil {
				color.Yellow("⚠ Initial sync failed: %v", err)
			} else {
				color.Green("✓ Initial sync complete")
			}
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local coaching data.
You can link again later with 'coachcal sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local coaching data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show current sync status including:
- Backend and connection mode
- Local data counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cs := charmStore()
		if cs == nil {
			color.Yellow("Sync unavailable: backend is %q", cfg.GetBackend())
			fmt.Println("\nSet backend to \"charm\" in the config to enable sync.")
			return nil
		}

		fmt.Println("Backend: charm")
		fmt.Println("Server: charm.2389.dev")
		if cs.IsReadOnly() {
			color.Yellow("⚠ Read-only: database locked by another process")
		} else {
			color.Green("✓ Connected")
		}

		fmt.Println()
		fmt.Printf("  Athletes: %d\n", len(athleteRepo.List()))
		fmt.Printf("  Plans:    %d\n", len(planRepo.List()))
		fmt.Printf("  Events:   %d\n", len(eventRepo.GetAll()))
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and restored from cloud.
Use this to:
- Fix sync conflicts
- Reset a device to cloud state
- Start fresh on a device`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if charmStore() == nil {
			return fmt.Errorf("sync unavailable: backend is %q", cfg.GetBackend())
		}

		fmt.Println("This will DELETE all local coaching data and restore from cloud.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := charmStore().Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Local data reset and restored from cloud")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cloud and local data",
	Long: `Delete all cloud backups and local data.

This is a DESTRUCTIVE operation. ALL data will be permanently deleted.
Use this to:
- Completely remove all coaching data
- Start completely fresh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will PERMANENTLY DELETE all cloud backups and local coaching data.")
		fmt.Print("Type 'wipe' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "wipe" {
			fmt.Println("Canceled.")
			return nil
		}

		result, err := kv.Wipe("coachcal")
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Data wiped successfully")
		fmt.Printf("  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Printf("  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}
