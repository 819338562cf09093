package main

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/coc-sheet-api/internal/logger"
	characterrepo "github.com/KirkDiggler/coc-sheet-api/internal/repositories/character"
	"github.com/KirkDiggler/coc-sheet-api/internal/rules"
)

var migrateApply bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Repair stored investigators saved in an older format",
	Long: `Scan the configured store for investigators without final characteristics
or with stale derived values, and report them. With --apply the repaired
documents are written back.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&store, "store", "", "storage backend: sheets, redis or sqlite (overrides COC_STORE)")
	migrateCmd.Flags().StringVar(&sheetEndpoint, "sheet-endpoint", "", "spreadsheet web app URL (overrides COC_SHEET_ENDPOINT)")
	migrateCmd.Flags().BoolVar(&migrateApply, "apply", false, "write repaired documents back")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCloser := logger.Setup(cfg.Log)
	defer logCloser.Close() // nolint:errcheck // best effort on exit

	repos, err := buildRepositories(cfg)
	if err != nil {
		return err
	}
	defer repos.Close() // nolint:errcheck // best effort on exit

	ctx := context.Background()

	listOutput, err := repos.characters.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	var stale int
	for _, char := range listOutput.Characters {
		if char == nil {
			continue
		}

		repaired := rules.Normalize(char)
		if reflect.DeepEqual(char, repaired) {
			continue
		}
		stale++
		fmt.Printf("✗ %s (%s) needs repair\n", char.ID, char.Name)

		if !migrateApply {
			continue
		}
		if _, err := repos.characters.Save(ctx, characterrepo.SaveInput{Character: repaired}); err != nil {
			slog.Error("Failed to save repaired character", "character_id", char.ID, "error", err)
			continue
		}
		fmt.Printf("  repaired %s\n", char.ID)
	}

	fmt.Printf("\nChecked %d investigators, %d needed repair\n", len(listOutput.Characters), stale)
	if stale > 0 && !migrateApply {
		fmt.Println("Run again with --apply to write the repaired documents")
	}

	return nil
}
