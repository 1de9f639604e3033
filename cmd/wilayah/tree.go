package main

import (
	"fmt"

	"github.com/aretw0/wilayah"
	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/internal/presentation/graph"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Export the region hierarchy as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph TD) of the hierarchy. Use --province to scope
it to one province and --query to highlight a selection, e.g.
--query "province=32&regency=3273".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd.Context(), domain.LifecycleHooks{})
		if err != nil {
			return err
		}

		depth, _ := cmd.Flags().GetString("depth")
		province, _ := cmd.Flags().GetString("province")
		query, _ := cmd.Flags().GetString("query")

		opts := graph.Options{Depth: domain.Level(depth)}
		if province != "" {
			opts.Province = cascade.ParseID(province)
			if !opts.Province.Valid {
				return fmt.Errorf("invalid province id %q", province)
			}
		}

		var overlay *graph.GraphOverlay
		if query != "" {
			sel, err := wilayah.ParseQuery(query)
			if err != nil {
				return err
			}
			overlay = &graph.GraphOverlay{Selection: sel}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Dataset(), opts, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().String("depth", string(domain.LevelRegency), "Deepest level drawn: province, regency or district")
	treeCmd.Flags().String("province", "", "Only draw this province")
	treeCmd.Flags().String("query", "", "Highlight the selection encoded in this query string")
}
