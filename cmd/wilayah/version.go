package main

import (
	"fmt"

	"github.com/aretw0/wilayah"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wilayah",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wilayah version %s\n", wilayah.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
