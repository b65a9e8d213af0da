package cli

import (
	"fmt"

	"github.com/hbjs97/smartcd/internal/collation"
	"github.com/hbjs97/smartcd/internal/config"
	"github.com/hbjs97/smartcd/internal/dispatch"
	"github.com/hbjs97/smartcd/internal/resolver"
	"github.com/spf13/cobra"
)

func (a *App) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve -- [args...]",
		Short: "cd 인자를 실제 경로로 변환해 한 줄로 출력한다",
		Long: `cd 인자(최대 3개)를 받아 builtin cd에 넘길 한 줄을 출력한다.
"-P" 같은 셸 옵션이 그대로 전달되도록 인자 앞에 항상 "--"를 붙인다.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, args)
		},
	}
}

func (a *App) runResolve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	log := a.logger(cmd)

	cfg, err := config.LoadFS(a.Fs, a.CfgPath)
	if err != nil {
		return err
	}
	col, err := collation.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("cli.resolve: %w", err)
	}

	r := resolver.New(a.Fs, col, resolver.Options{SkipHidden: cfg.SkipHidden, Logger: &log})
	line, ok, err := dispatch.Format(args, r)
	if err != nil {
		log.Debug().Err(err).Strs("args", args).Msg("resolve failed")
		return err
	}
	if !ok {
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
