// Command ec2-inventory prints an Ansible dynamic inventory built from the
// tags of the EC2 instances in one region.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	tint "github.com/lrstanley/bubbletint"

	"github.com/fl4re/ec2-inventory/internal/config"
	"github.com/fl4re/ec2-inventory/internal/inventory"
	"github.com/fl4re/ec2-inventory/internal/logging"
	"github.com/fl4re/ec2-inventory/internal/models"
	"github.com/fl4re/ec2-inventory/internal/provider"
	"github.com/fl4re/ec2-inventory/internal/styles"
)

type options struct {
	configPath string
	region     string
	profile    string
	fromFile   string
	logLevel   string
	host       string
	indent     int
	list       bool
	browse     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("ec2-inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to config file (default: per-user config directory)")
	fs.BoolVar(&opts.list, "list", false, "print the whole inventory (default)")
	fs.StringVar(&opts.host, "host", "", "print the variables of one host")
	fs.StringVar(&opts.region, "region", "", "AWS region, overrides the config file")
	fs.StringVar(&opts.profile, "profile", "", "AWS shared config profile, overrides the config file")
	fs.StringVar(&opts.fromFile, "from-file", "", "read a saved describe-instances response instead of calling EC2")
	fs.IntVar(&opts.indent, "indent", -1, "JSON indent width, overrides the config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error), overrides the config file")
	fs.BoolVar(&opts.browse, "browse", false, "browse the inventory interactively")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.host != "" && (opts.list || opts.browse) {
		return nil, errors.New("-host cannot be combined with -list or -browse")
	}
	return opts, nil
}

// apply copies the flags that were set over the file configuration.
func (o *options) apply(cfg *config.Config) {
	if o.region != "" {
		cfg.AWS.Region = o.region
	}
	if o.profile != "" {
		cfg.AWS.Profile = o.profile
	}
	if o.indent >= 0 {
		cfg.Output.Indent = o.indent
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	if cfg.Log.Path == "" {
		return logging.NewWithWriter(stderr, cfg.Log.Level), func() error { return nil }, nil
	}
	return logging.New(cfg.Log.Path, cfg.Log.Level)
}

func newProvider(cfg *config.Config, opts *options, logger *slog.Logger) (inventory.Provider, error) {
	if opts.fromFile != "" {
		logger.Debug("using snapshot", "path", opts.fromFile)
		return provider.Snapshot{Path: opts.fromFile, Logger: logger}, nil
	}
	sess, err := provider.NewSession(cfg.AWS)
	if err != nil {
		return nil, err
	}
	logger.Debug("using EC2", "region", cfg.AWS.Region, "profile", cfg.AWS.Profile)
	return provider.NewEC2FromSession(sess, logger), nil
}

func browse(ctx context.Context, cfg *config.Config, p inventory.Provider, logger *slog.Logger) error {
	tint.NewDefaultRegistry()
	if theme, ok := tint.GetTint(cfg.Theme); ok {
		styles.Theme = theme
	} else {
		logger.Warn("unknown theme, using default colours", "theme", cfg.Theme)
	}
	styles.LoadStyle()

	program := tea.NewProgram(models.NewModel(ctx, p, cfg.SSH, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()
	logger = logging.WithRun(logger)

	if opts.host != "" {
		if err := inventory.WriteHostVars(stdout, cfg.Output.Indent); err != nil {
			logger.Error("failed to write host variables", "error", err)
			return 1
		}
		return 0
	}

	ctx := context.Background()
	p, err := newProvider(cfg, opts, logger)
	if err != nil {
		logger.Error("failed to set up provider", "error", err)
		return 1
	}

	if opts.browse {
		if err := browse(ctx, cfg, p, logger); err != nil {
			logger.Error("browser failed", "error", err)
			return 1
		}
		return 0
	}

	doc, err := inventory.Run(ctx, p)
	if err != nil {
		logger.Error("failed to build inventory", "error", err)
		return 1
	}
	logger.Info("inventory built", "groups", len(doc.Groups), "hosts", doc.HostCount())

	if err := doc.WriteJSON(stdout, cfg.Output.Indent); err != nil {
		logger.Error("failed to write inventory", "error", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
