package cmd

import (
	"errors"
	"fmt"
	"os"

	"civic-sync/core/logger"
	"civic-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "civic-sync",
	Short: "Civic records sync",
	Long: `civic-sync loads people, organizations and jurisdiction structure from
YAML record files into a relational database, and serves them read-only.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits 1 on any failure, including a
// cancelled sync.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// Console encoding with the development preset gives readable ISO8601 timestamps.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fields := []zap.Field{zap.Error(err)}
	var fatal *reconcile.FatalError
	if errors.As(err, &fatal) {
		fields = append(fields, zap.String("kind", string(fatal.Kind)), zap.Any("context", fatal.Context))
	}
	l.Error("command failed", fields...)
	_ = l.Sync()
	os.Exit(1)
}
