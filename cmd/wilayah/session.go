package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/wilayah"
	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/internal/config"
	"github.com/aretw0/wilayah/internal/presentation/tui"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/session"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored selections",
	Long: `List, inspect, change and remove selections kept in the session store
(file under .wilayah/sessions by default, or redis when REDIS_ADDR is set).`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSessions(cmd, func(m *session.Manager) error {
			ids, err := m.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("error listing sessions: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(out, "No stored sessions found.")
				return nil
			}
			fmt.Fprintln(out, "Stored sessions:")
			for _, id := range ids {
				fmt.Fprintln(out, "- "+id)
			}
			return nil
		})
	},
}

var sessionGetCmd = &cobra.Command{
	Use:   "get <session-id>",
	Short: "Show the selection of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSessions(cmd, func(m *session.Manager) error {
			sel, err := m.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error loading session '%s': %w", args[0], err)
			}
			return printSelection(cmd, sel)
		})
	},
}

var sessionSetCmd = &cobra.Command{
	Use:   "set <session-id> <province|regency|district> <id|->",
	Short: "Apply one selection step to a session",
	Long:  `Sets one level of the stored selection. "-" clears the level. Lower levels are cleared as usual.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := domain.None()
		if args[2] != "-" {
			if id = cascade.ParseID(args[2]); !id.Valid {
				return fmt.Errorf("invalid id %q", args[2])
			}
		}
		action, err := domain.SetAction(domain.Level(args[1]), id)
		if err != nil {
			return err
		}
		return applyToSession(cmd, args[0], action)
	},
}

var sessionResetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Clear the selection of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyToSession(cmd, args[0], domain.Action{Type: domain.ActionReset})
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSessions(cmd, func(m *session.Manager) error {
			var errs []error
			for _, id := range args {
				if err := m.Delete(cmd.Context(), id); err != nil {
					errs = append(errs, fmt.Errorf("error removing '%s': %w", id, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed session '%s'\n", id)
			}
			return errors.Join(errs...)
		})
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd, sessionGetCmd, sessionSetCmd, sessionResetCmd, sessionRmCmd)
}

// persistentStore swaps the process-local memory store for the file store,
// since session commands run in a fresh process each time.
func persistentStore(c config.SessionConfig) config.SessionConfig {
	if c.Store == config.StoreMemory {
		c.Store = config.StoreFile
	}
	return c
}

func withSessions(cmd *cobra.Command, fn func(*session.Manager) error) error {
	m, closeStore, err := newSessions(cmd.Context(), persistentStore(cfg.Session), cfg.Redis, nil)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()
	return fn(m)
}

func applyToSession(cmd *cobra.Command, id string, action domain.Action) error {
	ctx := cmd.Context()
	engine, err := loadEngine(ctx, domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	m, closeStore, err := newSessions(ctx, persistentStore(cfg.Session), cfg.Redis, engine)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	_, after, err := m.Apply(ctx, id, action)
	if err != nil {
		return err
	}
	view, err := engine.View(ctx, after)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tui.Breadcrumb(view))
	return printSelection(cmd, after)
}

// printSelection writes sel and its query string as indented JSON.
// HTML escaping is off so the query keeps its literal "&".
func printSelection(cmd *cobra.Command, sel domain.Selection) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		domain.Selection
		Query string `json:"query"`
	}{sel, wilayah.Query(sel)}); err != nil {
		return fmt.Errorf("error marshaling selection: %w", err)
	}
	return nil
}
