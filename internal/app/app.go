// Package app wires the fx graphs for the companion's run modes: the
// interactive editor, one-shot commands, and the reveal notifier daemon.
package app

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/capsy-labs/capsy-companion/internal/account"
	"github.com/capsy-labs/capsy-companion/internal/account/accountimpl"
	"github.com/capsy-labs/capsy-companion/internal/capsy"
	"github.com/capsy-labs/capsy-companion/internal/capsy/capsyimpl"
	"github.com/capsy-labs/capsy-companion/internal/editor"
	"github.com/capsy-labs/capsy-companion/internal/editor/editorimpl"
	"github.com/capsy-labs/capsy-companion/internal/locationpicker"
	"github.com/capsy-labs/capsy-companion/internal/media"
	"github.com/capsy-labs/capsy-companion/internal/media/mediaimpl"
	_ "github.com/capsy-labs/capsy-companion/internal/migrations"
	"github.com/capsy-labs/capsy-companion/internal/notifier"
	"github.com/capsy-labs/capsy-companion/internal/notifier/notifierimpl"
	"github.com/capsy-labs/capsy-companion/internal/places"
	"github.com/capsy-labs/capsy-companion/internal/places/placesimpl"
	repositories "github.com/capsy-labs/capsy-companion/internal/repositories/fx"
	"github.com/capsy-labs/capsy-companion/internal/telegram"
	"github.com/capsy-labs/capsy-companion/internal/telegram/telegramimpl"
	"github.com/capsy-labs/capsy-companion/internal/tui"
	"github.com/capsy-labs/capsy-companion/internal/users"
	"github.com/capsy-labs/capsy-companion/internal/users/usersimpl"
	"github.com/capsy-labs/capsy-companion/pkg/config"
	"github.com/capsy-labs/capsy-companion/pkg/logger"
	"github.com/capsy-labs/capsy-companion/pkg/pgx"
	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var base = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(capsyimpl.New, fx.As(new(capsy.Client))),
	),
)

// Editor builds the interactive TUI graph. The capsule ledger is wired in
// only when Postgres is configured; the editor treats it as optional and
// posting works without it.
func Editor(editPostID string) fx.Option {
	opts := []fx.Option{
		base,
		fx.Provide(
			fx.Annotate(placesimpl.New, fx.As(new(places.Client))),
			fx.Annotate(mediaimpl.New, fx.As(new(media.Preparer))),
			fx.Annotate(editorimpl.New, fx.As(new(editor.Client))),
		),
		fx.Provide(func(ed editor.Client, pc places.Client, log logger.Logger) *tui.Model {
			picker := locationpicker.New(pc, log)
			return tui.New(ed, picker, log, editPostID)
		}),
		fx.Invoke(runTUI),
	}

	if cfg, err := config.New(); err == nil && cfg.Postgres.Host != "" {
		opts = append(opts, fx.Provide(pgx.New), repositories.Module)
	}

	return fx.Options(opts...)
}

// Notifier builds the daemon graph: migrations, the reveal check schedule,
// and a health endpoint.
func Notifier() fx.Option {
	return fx.Options(
		base,
		fx.Provide(pgx.New),
		repositories.Module,
		fx.Provide(
			fx.Annotate(telegramimpl.New, fx.As(new(telegram.Client))),
			fx.Annotate(notifierimpl.New, fx.As(new(notifier.Client))),
		),
		fx.Invoke(migrateUp),
		fx.Invoke(runNotifier),
	)
}

// Search builds a one-shot graph that prints users matching a keyword.
func Search(keyword string) fx.Option {
	return fx.Options(
		base,
		fx.Provide(
			fx.Annotate(usersimpl.New, fx.As(new(users.Client))),
		),
		fx.Invoke(func(sd fx.Shutdowner, uc users.Client, log logger.Logger) {
			go func() {
				defer func() { _ = sd.Shutdown() }()

				matches, err := uc.Search(context.Background(), keyword)
				if err != nil {
					log.Error("User search failed", "error", err)
					return
				}
				for _, u := range matches {
					fmt.Printf("%s\t@%s\n", u.FullName, u.Username)
				}
			}()
		}),
	)
}

// Passwd builds a one-shot graph that reads a new password from stdin and
// updates it on the backend.
func Passwd() fx.Option {
	return fx.Options(
		base,
		fx.Provide(
			fx.Annotate(accountimpl.New, fx.As(new(account.Client))),
		),
		fx.Invoke(func(sd fx.Shutdowner, ac account.Client, log logger.Logger) {
			go func() {
				defer func() { _ = sd.Shutdown() }()

				reader := bufio.NewReader(os.Stdin)
				fmt.Print("New password: ")
				password, _ := reader.ReadString('\n')
				fmt.Print("Confirm: ")
				confirm, _ := reader.ReadString('\n')

				err := ac.ChangePassword(context.Background(),
					strings.TrimRight(password, "\r\n"),
					strings.TrimRight(confirm, "\r\n"))
				if err != nil {
					fmt.Println(err)
					return
				}
				fmt.Println("Password updated")
			}()
		}),
	)
}

func runTUI(lc fx.Lifecycle, sd fx.Shutdowner, m *tui.Model, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				p := tea.NewProgram(m, tea.WithAltScreen())
				if _, err := p.Run(); err != nil {
					log.Error("Terminal UI exited with error", "error", err)
				}
				_ = sd.Shutdown()
			}()
			return nil
		},
	})
}

func runNotifier(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, nc notifier.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHTTPServer(log, cfg)
			return nc.Schedule(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func migrateUp(cfg *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	return goose.Up(db, filepath.Join(wd, "internal", "migrations"))
}

func startHTTPServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("ok")); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start", "error", err)
	}
}
