package main

import (
	"log"
	"os"

	"github.com/aretw0/wilayah"
	"github.com/aretw0/wilayah/pkg/adapters/mcp"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts wilayah as an MCP server over stdio. Agents can list regions, walk the
cascade with select_region and read the dataset summary and tree resources.
Passing a session id to the tools keeps the selection in the session store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)

		engine, err := loadEngine(cmd.Context(), domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		sessions, closeStore, err := newSessions(cmd.Context(), cfg.Session, cfg.Redis, engine)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		srv := mcp.NewServer(engine,
			mcp.WithVersion(wilayah.Version),
			mcp.WithSessions(sessions),
		)
		logger.Info("starting wilayah MCP server (stdio)")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP server execution failed", "err", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
