package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ventus-lab/ventus/internal/auth"
	corecfg "github.com/ventus-lab/ventus/internal/core/config"
	"github.com/ventus-lab/ventus/internal/core/storage/postgres"
	"github.com/ventus-lab/ventus/internal/migrations"
	"github.com/ventus-lab/ventus/internal/signals"
)

const usage = `usage: ventusctl [-config path] <command> [args]

commands:
  create-user <username>                  register a user in the source database
  create-api-key <user_id> [description]  issue the API key of a user (printed once)
  populate-signals [catalog.yaml]         seed the signal dictionary of the target database
  list-signals                            print the signal dictionary
`

func main() {
	flags := flag.NewFlagSet("ventusctl", flag.ExitOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := flags.String("config", corecfg.DefaultPath, "Path to configuration file")
	_ = flags.Parse(os.Args[1:])

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), *configPath, flags.Args(), os.Stdout); err != nil {
		slog.Error("Command failed", "command", flags.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, args []string, out io.Writer) error {
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level, _ := cfg.Log.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create-user":
		if len(rest) != 1 {
			return fmt.Errorf("create-user takes exactly one argument: <username>")
		}
		return withSource(cfg, func(db *postgres.Adapter) error {
			id, err := auth.NewService(postgres.NewCredentialAdapter(db.DB())).CreateUser(ctx, rest[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "created user %q with id %d\n", rest[0], id)
			return nil
		})

	case "create-api-key":
		if len(rest) < 1 {
			return fmt.Errorf("create-api-key requires <user_id>")
		}
		userID, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil || userID <= 0 {
			return fmt.Errorf("invalid user_id %q", rest[0])
		}
		description := strings.Join(rest[1:], " ")
		return withSource(cfg, func(db *postgres.Adapter) error {
			key, err := auth.NewService(postgres.NewCredentialAdapter(db.DB())).CreateAPIKey(ctx, userID, description)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "created API key %d for user %d\n", key.ID, userID)
			fmt.Fprintf(out, "API key: %s\n", key.Plain)
			fmt.Fprintln(out, "Store this key somewhere safe. It will not be shown again.")
			return nil
		})

	case "populate-signals":
		path := cfg.Signals.CatalogPath
		if len(rest) > 0 {
			path = rest[0]
		}
		catalog, err := signals.LoadCatalog(path)
		if err != nil {
			return err
		}
		return withTarget(cfg, func(db *postgres.Adapter) error {
			created, err := signals.NewService(postgres.NewAggregateAdapter(db.DB())).Seed(ctx, catalog)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d signals created, %d already present\n", len(created), len(catalog.Names())-len(created))
			return nil
		})

	case "list-signals":
		return withTarget(cfg, func(db *postgres.Adapter) error {
			svc := signals.NewService(postgres.NewAggregateAdapter(db.DB()))
			ids, err := svc.Map(ctx)
			if err != nil {
				return err
			}
			names, err := svc.Names(ctx)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintf(out, "%d\t%s\n", ids[name], name)
			}
			return nil
		})
	}

	return fmt.Errorf("unknown command %q\n%s", cmd, usage)
}

func withSource(cfg *corecfg.Config, fn func(*postgres.Adapter) error) error {
	if err := cfg.RequireSource(); err != nil {
		return err
	}
	return withDatabase(cfg.Source, migrations.Source, postgres.SourceTables, fn)
}

func withTarget(cfg *corecfg.Config, fn func(*postgres.Adapter) error) error {
	if err := cfg.RequireTarget(); err != nil {
		return err
	}
	return withDatabase(cfg.Target, migrations.Target, postgres.TargetTables, fn)
}

func withDatabase(dbCfg corecfg.DatabaseConfig, set migrations.Set, tables []string, fn func(*postgres.Adapter) error) error {
	db, err := postgres.NewAdapter(dbCfg.DSN, dbCfg.MaxOpenConns, dbCfg.MaxIdleConns)
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", set.Name, err)
	}
	defer db.Close()

	if err := migrations.RunMigrations(db.DB(), set, dbCfg.AutoMigrate); err != nil {
		return err
	}
	if err := db.ValidateSchema(context.Background(), tables...); err != nil {
		return err
	}
	return fn(db)
}
