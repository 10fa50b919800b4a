// Package main provides the CLI entrypoint for ballfreq.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/ballfreq/internal/board"
	"github.com/verte-zerg/ballfreq/internal/config"
	"github.com/verte-zerg/ballfreq/internal/csvload"
	"github.com/verte-zerg/ballfreq/internal/generator"
	"github.com/verte-zerg/ballfreq/internal/logging"
	"github.com/verte-zerg/ballfreq/internal/model"
	"github.com/verte-zerg/ballfreq/internal/session"
	"github.com/verte-zerg/ballfreq/internal/stats"
	"github.com/verte-zerg/ballfreq/internal/tui"
)

const (
	defaultMainSource      = "https://raw.githubusercontent.com/kv-hearst/powerball/main/data/main_ball_cleaned.csv"
	defaultPowerballSource = "https://raw.githubusercontent.com/kv-hearst/powerball/main/data/powerball_cleaned.csv"
	defaultRankTop         = 10
)

var (
	mainSource      string
	powerballSource string
	fetchTimeout    time.Duration
	logFile         string
	verbose         bool

	rankType string
	rankTop  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ballfreq",
		Short:         "Powerball number frequency explorer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPickerCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&mainSource, "main-source", defaultMainSource, "main ball CSV (URL or file path)")
	flags.StringVar(&powerballSource, "powerball-source", defaultPowerballSource, "Powerball CSV (URL or file path)")
	flags.DurationVar(&fetchTimeout, "timeout", csvload.DefaultTimeout, "HTTP timeout per dataset")
	flags.StringVar(&logFile, "log-file", config.DefaultLogPath(), "log file path")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newLatestCmd())

	return rootCmd
}

// resolveConfig merges the config file under the command-line flags.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "main-source", &mainSource, fileCfg.Sources.Main)
	applyStringConfig(cmd, "powerball-source", &powerballSource, fileCfg.Sources.Powerball)
	if fileCfg.Sources.Timeout != nil {
		applyDurationConfig(cmd, "timeout", &fetchTimeout, &fileCfg.Sources.Timeout.Duration)
	}
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)
	applyBoolConfig(cmd, "verbose", &verbose, fileCfg.Log.Verbose)

	cfg := model.Config{
		MainSource:      mainSource,
		PowerballSource: powerballSource,
		Timeout:         fetchTimeout,
		LogFile:         logFile,
		Verbose:         verbose,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runPickerCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger.Info("starting picker",
		zap.String("main_source", cfg.MainSource),
		zap.String("powerball_source", cfg.PowerballSource),
		zap.Duration("timeout", cfg.Timeout))

	sess := session.New()
	b := board.New(logger.Named("board"))
	fetcher := csvload.NewSourceFetcher(cfg.Timeout)
	gen := generator.New()
	m := tui.NewModel(cfg, sess, b, fetcher, gen, logger.Named("tui"))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the most and least drawn numbers",
		Args:  cobra.NoArgs,
		RunE:  runRankCmd,
	}
	cmd.Flags().StringVar(&rankType, "type", string(model.Main), "ball type (main or powerball)")
	cmd.Flags().IntVar(&rankTop, "top", defaultRankTop, "number of ranked rows to print (0 for all)")
	return cmd
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	bt, err := model.ParseBallType(rankType)
	if err != nil {
		return err
	}
	if rankTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := commandLogger(cfg)
	defer func() {
		_ = logger.Sync()
	}()

	fetcher := csvload.NewSourceFetcher(cfg.Timeout)
	sess := loadSession(cmd.Context(), fetcher, cfg, logger, bt)
	ds, ok := sess.Dataset(bt)
	if !ok {
		return fmt.Errorf("failed to load %s dataset: %w", bt, sess.Err(bt))
	}

	out := cmd.OutOrStdout()
	report := stats.BuildReport(ds)
	if err := stats.RenderReport(out, report, rankTop, stats.TerminalWidth(), stats.ShouldUseColor(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the most recent draw date across both datasets",
		Args:  cobra.NoArgs,
		RunE:  runLatestCmd,
	}
}

func runLatestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := commandLogger(cfg)
	defer func() {
		_ = logger.Sync()
	}()

	fetcher := csvload.NewSourceFetcher(cfg.Timeout)
	sess := loadSession(cmd.Context(), fetcher, cfg, logger, model.BallTypes...)
	return writeLatest(cmd.OutOrStdout(), sess)
}

// writeLatest prints the footnote line. Failed datasets are reported and
// skipped; nothing is printed when no date is known.
func writeLatest(w io.Writer, sess *session.Session) error {
	var dates [2]*model.LatestDate
	for i, bt := range model.BallTypes {
		ds, ok := sess.Dataset(bt)
		if !ok {
			logErrf("%s data unavailable: %v\n", bt.Label(), sess.Err(bt))
			continue
		}
		if d, ok := stats.LatestDate(ds); ok {
			dates[i] = &d
		}
	}
	latest, ok := stats.OverallLatest(dates[0], dates[1])
	if !ok {
		return fmt.Errorf("no draw dates found")
	}
	if _, err := fmt.Fprintf(w, "Data as of %s\n", stats.FormatDate(latest)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// loadSession fetches the requested datasets concurrently. A failed load is
// recorded on the session and does not cancel the others.
func loadSession(ctx context.Context, fetcher csvload.Fetcher, cfg model.Config, logger *zap.Logger, types ...model.BallType) *session.Session {
	if ctx == nil {
		ctx = context.Background()
	}
	sess := session.New()
	var g errgroup.Group
	for _, bt := range types {
		bt := bt
		g.Go(func() error {
			ds, err := csvload.Load(ctx, fetcher, bt, cfg.SourceFor(bt))
			if err != nil {
				logger.Error("failed to load dataset", zap.String("ball_type", string(bt)), zap.Error(err))
				_ = sess.SetFailed(bt, err)
				return nil
			}
			logger.Debug("dataset loaded", zap.String("ball_type", string(bt)), zap.Int("records", len(ds.Records)))
			_ = sess.SetDataset(ds)
			return nil
		})
	}
	_ = g.Wait()
	return sess
}

func commandLogger(cfg model.Config) *zap.Logger {
	logger, err := logging.New(cfg.LogFile, cfg.Verbose)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target, value *time.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# ballfreq configuration
# Uncomment a value to enable it. CLI flags override config values.

[sources]
# main = %q
# powerball = %q
# timeout = %q            # HTTP timeout per dataset

[log]
# file = %q
# verbose = false          # Debug-level logging
`,
		defaultMainSource,
		defaultPowerballSource,
		csvload.DefaultTimeout.String(),
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.MainSource) == "" {
		return fmt.Errorf("--main-source must not be empty")
	}
	if strings.TrimSpace(cfg.PowerballSource) == "" {
		return fmt.Errorf("--powerball-source must not be empty")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("--timeout must be > 0")
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		return fmt.Errorf("--log-file must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
