// Command lockcycle locks a salary cycle from the command line:
//
//	lockcycle --year 2025 --month 2 --admin <profile uuid>
//
// It exits 0 on success and 1 on any failure.
package main

import (
	"context"
	"fmt"
	"os"

	"go-payroll/internal/app"
	"go-payroll/internal/config"
	"go-payroll/internal/shared/apperror"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	cliApp := newApp(func(ctx context.Context, year, month int, adminID string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		resp, err := app.LockCycle(ctx, cfg, adminID, year, month)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "cycle %s locked, %d earnings inserted\n", resp.CycleID, resp.Inserted)
		return nil
	})

	code := run(cliApp, os.Args, logger)
	_ = logger.Sync()
	os.Exit(code)
}

type lockFunc func(ctx context.Context, year, month int, adminID string) error

func newApp(lock lockFunc) *cli.App {
	return &cli.App{
		Name:  "lockcycle",
		Usage: "lock a month of payroll and compute earnings",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Usage: "calendar year, e.g. 2025", Required: true},
			&cli.IntFlag{Name: "month", Usage: "month number 1-12", Required: true},
			&cli.StringFlag{Name: "admin", Usage: "profile id recorded as locked_by", Required: true, EnvVars: []string{"LOCK_ADMIN_ID"}},
		},
		Action: func(c *cli.Context) error {
			return lock(c.Context, c.Int("year"), c.Int("month"), c.String("admin"))
		},
		HideHelpCommand: true,
	}
}

// run returns the process exit code.
func run(cliApp *cli.App, args []string, logger *zap.Logger) int {
	apperror.Init()

	if err := cliApp.Run(args); err != nil {
		httpErr := apperror.ToHTTP(err)
		logger.Error("lock salary cycle failed",
			zap.String("code", httpErr.Code),
			zap.Any("details", httpErr.Details),
			zap.Error(err),
		)
		return 1
	}
	return 0
}
