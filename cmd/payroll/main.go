package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-payroll-console/internal/adapters/console"
	"github.com/ogurasousui/codex-payroll-console/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-payroll-console/internal/core/employee"
	"github.com/ogurasousui/codex-payroll-console/internal/platform/config"
	"github.com/ogurasousui/codex-payroll-console/internal/platform/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Interactive payroll console for salaried, part-time and contractual employees",
		Long: `payroll starts an interactive session on standard input and output.

Employees are kept in memory for the lifetime of the session. Choose
"5 - Exit" from the menu (or close standard input) to end the session.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, in, out)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file (defaults to CONFIG_PATH env, built-in defaults when unset)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(config.EffectivePath(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log, opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log = log.With(zap.String("session_id", uuid.NewString()))

	repo := memory.NewEmployeeRepository(cfg.Registry.Capacity())
	defer repo.Reset()

	svc := employee.NewService(repo, log)
	menu := console.NewMenu(in, out, svc, log)

	log.Info("session started", zap.Int("max_employees", repo.Capacity()))

	if err := menu.Run(ctx); err != nil {
		log.Error("session aborted", zap.Error(err))
		return err
	}

	log.Info("session ended")
	return nil
}
