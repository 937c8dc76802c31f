// Package root contains the root command for the application
package root

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/fintrack/internal/codec"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/export"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all commands
	// after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A CLI tool to track personal income, expenses and budgets.",
		Long: `fintrack is a personal finance ledger. It records income and expense
transactions against user-defined categories, tracks per-category monthly
budgets, and derives reports and statistics from the recorded data.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintrack!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			// Propagate the configured logger to all packages.
			codec.SetLogger(Log)
			store.SetLogger(Log)
			export.SetLogger(Log)

			if Cfg.CSV.Delimiter != "" {
				export.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}

	// DataDir overrides the configured data directory when set.
	DataDir string

	// Month and Year select the reporting period for commands that take one.
	Month int
	Year  int
)

// Init initializes the root command and all persistent flags.
func Init() {
	now := time.Now()
	Cmd.PersistentFlags().StringVarP(&DataDir, "data", "d", "", "Data directory (default from config)")
	Cmd.PersistentFlags().IntVarP(&Month, "month", "m", int(now.Month()), "Month (1-12)")
	Cmd.PersistentFlags().IntVarP(&Year, "year", "y", now.Year(), "Year")
}

// OpenStore opens the ledger store using the --data flag if given, otherwise
// the configured data directory.
func OpenStore() (*store.Store, error) {
	dir := DataDir
	if dir == "" {
		dir = Cfg.Data.Directory
	}
	return store.Open(dir)
}

// Formatter returns a report formatter using the configured currency symbol.
func Formatter() *report.Formatter {
	return report.NewFormatter(Cfg.Currency.Symbol)
}

// ValidPeriod reports whether the shared month/year flags form a usable
// reporting period.
func ValidPeriod() bool {
	if Month < 1 || Month > 12 {
		Log.Errorf("Invalid month %d: must be between 1 and 12", Month)
		return false
	}
	if Year < 1000 || Year > 9999 {
		Log.Errorf("Invalid year %d: must be a 4-digit year", Year)
		return false
	}
	return true
}
