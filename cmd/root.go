package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/marcus/wingsfly/internal/config"
	"github.com/marcus/wingsfly/internal/models"
	"github.com/marcus/wingsfly/internal/output"
	"github.com/marcus/wingsfly/pkg/home"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version string
	baseDir string

	configPath string
	logFile    string
	debug      bool
	noColor    bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "wingsfly",
	Short: "Daily planner with a Create New drawer",
	Long: `wingsfly - A terminal day planner.

Browse the week, review today's tasks and add new ones from the animated
Create New drawer. Run without a terminal to print the selected day instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, closeLog, err := openLogger()
		if err != nil {
			return err
		}
		defer closeLog()

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Debug("stdout is not a terminal, printing tasks")
			return printDay(defaultDay(), dayOptions{Status: true})
		}
		return runHome(cfg, logger)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err, os.Args[1:])
		os.Exit(1)
	}
}

// reportError prints a command failure once, on stderr
func reportError(err error, args []string) {
	if arg := firstNonFlagArg(args); arg != "" && strings.HasPrefix(err.Error(), "unknown command") {
		output.Error("unknown command %q, see 'wingsfly --help'", arg)
		return
	}
	output.Error("%v", err)
}

func init() {
	cobra.OnInitialize(initBaseDir, initColor)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .wingsfly.yaml in the working or home directory)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

func initColor() {
	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		color.NoColor = true
	}
}

// getBaseDir returns the directory config discovery starts from
func getBaseDir() string {
	return baseDir
}

func loadConfig() (*models.Config, error) {
	return config.Load(getBaseDir(), configPath)
}

// openLogger returns the structured logger for this run. Without --log-file
// logs are discarded, since the terminal belongs to the UI.
func openLogger() (*slog.Logger, func(), error) {
	if logFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, debug), func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func runHome(cfg *models.Config, logger *slog.Logger) error {
	logger.Info("starting", "version", version)
	p := tea.NewProgram(
		home.New(*cfg, home.WithLogger(logger)),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run home screen: %w", err)
	}
	return nil
}

// firstNonFlagArg returns the first argument that is not a flag, or "" when
// there is none
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}
