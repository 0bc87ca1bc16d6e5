package commands

import (
	"fmt"

	"catalogo/internal/infra"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the catalog tables
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog tables",
	Long: `Create or update the categories, subcategories and products tables.

Existing rows are kept. The server runs the same step at startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer infra.Close(db)

		if err := infra.Migrate(db); err != nil {
			return err
		}
		log.Info().Msg("schema up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
