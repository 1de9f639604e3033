package main

import (
	"fmt"

	"github.com/aretw0/wilayah/internal/validator"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset for consistency",
	Long: `Loads the dataset and reports dangling province_id / regency_id references,
duplicate ids and empty names. The filter itself tolerates all of these.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd.Context(), domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		ds := engine.Dataset()
		if err := validator.ValidateDataset(ds); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		stats := ds.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "Dataset is valid: %d provinces, %d regencies, %d districts\n",
			stats.Provinces, stats.Regencies, stats.Districts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
