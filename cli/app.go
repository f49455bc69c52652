package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"creditwise/config"
	"creditwise/observability"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"

	configFlagName   = "config"
	logLevelFlagName = "log-level"
	formatFlagName   = "format"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Execute creates and runs the CLI application.
func Execute() {
	app := newApp(os.Stdout)
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// newApp builds a fresh command tree; flags keep parsed state, so commands
// are never shared between runs.
func newApp(w io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:    "creditwise",
		Usage:   "Rule-based credit score calculator and what-if simulator",
		Version: fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Writer:  w,
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:    configFlagName,
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file (default: $" + config.EnvConfigFile + ")",
			},
			&urfave.StringFlag{
				Name:  logLevelFlagName,
				Usage: "Log level [debug, info, warn, error]",
			},
			&urfave.StringFlag{
				Name:  formatFlagName,
				Usage: "Output format [json, yaml]",
				Value: formatJSON,
			},
		},
		Commands: []*urfave.Command{
			newServeCmd(),
			newScoreCmd(),
			newSimulateCmd(),
			newFactorsCmd(),
		},
	}
}

// loadConfig reads the config and sets up logging for the command.
func loadConfig(cmd *urfave.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cmd.String(configFlagName))
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("loading config: %w", err)
	}
	if lvl := cmd.String(logLevelFlagName); lvl != "" {
		cfg.Log.Level = lvl
	}

	logCfg := observability.LogConfig{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if cfg.IsProduction() {
		logCfg.Format = "json"
	}
	return cfg, observability.InitLogger(logCfg), nil
}

// encode writes v in the selected output format. YAML output goes through
// JSON first so decimal amounts render as plain values.
func encode(cmd *urfave.Command, v any) error {
	w := cmd.Root().Writer
	switch f := cmd.String(formatFlagName); f {
	case formatYAML, "yml":
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return yaml.NewEncoder(w).Encode(generic)
	case formatJSON, "":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}
