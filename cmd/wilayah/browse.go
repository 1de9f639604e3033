package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/wilayah"
	"github.com/aretw0/wilayah/internal/presentation/tui"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const browseHelp = "Pilih nomor, [b]ack, [r]eset, [q]uit"

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Walk the cascade interactively in the terminal",
	Long: `Shows the breadcrumb, the detail of the current selection and the options of
the next level. Type an option number to select it, 0 to clear the current
level, b to go back one level, r to reset and q to quit.

With --session the selection is restored from and saved to the session store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		engine, err := loadEngine(ctx, domain.LifecycleHooks{})
		if err != nil {
			return err
		}

		query, _ := cmd.Flags().GetString("query")
		sel, err := wilayah.ParseQuery(query)
		if err != nil {
			return err
		}

		var saver func(domain.Selection) error
		if id, _ := cmd.Flags().GetString("session"); id != "" {
			sessions, closeStore, err := newSessions(ctx, persistentStore(cfg.Session), cfg.Redis, engine)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()
			if query == "" {
				if sel, err = sessions.LoadOrEmpty(ctx, id); err != nil {
					return err
				}
			}
			saver = func(s domain.Selection) error { return sessions.Save(ctx, id, s) }
		}

		out := cmd.OutOrStdout()
		render := tui.Plain
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			width, _, _ := term.GetSize(fd)
			render = tui.NewRenderer(width)
			tui.PrintBanner(out)
		}

		b := &browser{engine: engine, render: render, out: out, save: saver}
		return b.run(ctx, cmd.InOrStdin(), sel)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().String("query", "", "Start from the selection encoded in this query string")
	browseCmd.Flags().String("session", "", "Restore and save the selection under this session id")
}

// browser is the read-eval loop behind the browse command.
type browser struct {
	engine ports.SelectionEngine
	render tui.RenderFunc
	out    io.Writer
	save   func(domain.Selection) error
}

var errQuit = errors.New("quit")

func (b *browser) run(ctx context.Context, in io.Reader, sel domain.Selection) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := b.show(ctx, sel); err != nil {
			return err
		}
		fmt.Fprintf(b.out, "%s\n> ", browseHelp)
		if !scanner.Scan() {
			fmt.Fprintln(b.out)
			return scanner.Err()
		}

		next, err := b.step(ctx, sel, strings.TrimSpace(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(b.out, "%v\n", err)
			continue
		}
		sel = next
		if b.save != nil {
			if err := b.save(sel); err != nil {
				return err
			}
		}
	}
}

func (b *browser) show(ctx context.Context, sel domain.Selection) error {
	view, err := b.engine.View(ctx, sel)
	if err != nil {
		return err
	}
	md := tui.Markdown(view) + "\n" + tui.Options(view, activeLevel(sel))
	rendered, err := b.render(md)
	if err != nil {
		return err
	}
	fmt.Fprint(b.out, rendered)
	return nil
}

// step interprets one line of input against sel.
func (b *browser) step(ctx context.Context, sel domain.Selection, input string) (domain.Selection, error) {
	switch strings.ToLower(input) {
	case "q", "quit", "exit":
		return sel, errQuit
	case "r", "reset":
		return b.engine.Apply(ctx, sel, domain.Action{Type: domain.ActionReset})
	case "b", "back":
		level := sel.Depth()
		if level == "" {
			return sel, nil
		}
		action, err := domain.SetAction(level, domain.None())
		if err != nil {
			return sel, err
		}
		return b.engine.Apply(ctx, sel, action)
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return sel, fmt.Errorf("pilihan tidak dikenal: %q", input)
	}

	level := activeLevel(sel)
	id := domain.None()
	if n > 0 {
		view, err := b.engine.View(ctx, sel)
		if err != nil {
			return sel, err
		}
		rid, ok := tui.OptionID(view, level, n)
		if !ok {
			return sel, fmt.Errorf("tidak ada pilihan nomor %d", n)
		}
		id = domain.Some(rid)
	}
	action, err := domain.SetAction(level, id)
	if err != nil {
		return sel, err
	}
	return b.engine.Apply(ctx, sel, action)
}

// activeLevel is the first unset level, or the district once all are set.
func activeLevel(sel domain.Selection) domain.Level {
	for _, l := range domain.Levels {
		if !sel.Get(l).Valid {
			return l
		}
	}
	return domain.LevelDistrict
}
