package cli

import (
	"context"

	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

type logConfig struct {
	level  string
	format string
	output string
}

func (x *logConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("EGIS_LOG_LEVEL"),
			Destination: &x.level,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("EGIS_LOG_FORMAT"),
			Destination: &x.format,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>], kept off stdout by default since reports are written there",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("EGIS_LOG_OUTPUT"),
			Destination: &x.output,
			Value:       "stderr",
		},
	}
}

func (x *CLI) Run(argv []string) error {
	var logCfg logConfig

	app := &cli.Command{
		Name:  "egis",
		Usage: "Vulnerability assessment pipeline: scan inventory targets, normalize findings and store them for reporting",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			assessCommand(),
			processCommand(),
			fetchCommand(),
			orgsCommand(),
			jobsCommand(),
			checkCommand(),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logging.Configure(logCfg.format, logCfg.level, logCfg.output); err != nil {
				return ctx, err
			}
			return logging.With(ctx, logging.Default()), nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
