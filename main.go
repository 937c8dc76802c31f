package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fjacquet/fintrack/cmd/add"
	"fjacquet/fintrack/cmd/budget"
	"fjacquet/fintrack/cmd/category"
	"fjacquet/fintrack/cmd/compare"
	"fjacquet/fintrack/cmd/edit"
	"fjacquet/fintrack/cmd/export"
	"fjacquet/fintrack/cmd/list"
	"fjacquet/fintrack/cmd/remove"
	"fjacquet/fintrack/cmd/report"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/cmd/stats"
)

func init() {
	// Load environment variables silently before any logging happens, then
	// fix the global log level so every logger created later inherits it.
	loadEnvSilently()
	logrus.SetLevel(configureLogLevel())

	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel parses LOG_LEVEL, defaulting to info
func configureLogLevel() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
