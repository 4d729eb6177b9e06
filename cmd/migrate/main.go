// Command migrate applies the embedded schema migrations with Atlas.
// It needs only the DB_* environment variables and the atlas binary on PATH.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"stokship/internal/pkg/config"
	"stokship/internal/pkg/errs"
	"stokship/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, *atlasBin, dbCfg.BuildDSN(), *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, atlasBin, dsn string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return errs.Wrap(err, "prepare atlas working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dsn,
		DryRun: dryRun,
	})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	for _, f := range res.Applied {
		slog.Info("migration applied", "version", f.Version, "name", f.Name)
	}
	slog.Info("migrations complete",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
		"dry_run", dryRun)
	return nil
}
