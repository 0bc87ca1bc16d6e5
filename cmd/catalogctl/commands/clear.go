package commands

import (
	"errors"
	"fmt"

	"catalogo/internal/infra"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var confirmClear bool

// clearCmd drops every catalog table and recreates it empty
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every product, category and subcategory",
	Long: `Drop the catalog tables and recreate them empty.

Examples:
  catalogctl clear --yes                          # Reset the database from DATABASE_URL
  catalogctl clear --yes --db postgres://...      # Reset a specific database`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmClear {
			return errors.New("refusing to clear the database without --yes")
		}
		db, err := openDatabase()
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer infra.Close(db)

		if err := infra.ResetSchema(db); err != nil {
			return err
		}
		log.Info().Msg("database cleared")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&confirmClear, "yes", false, "Confirm that all data will be deleted")
	rootCmd.AddCommand(clearCmd)
}
