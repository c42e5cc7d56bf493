// Package main implements the artgrow CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/amckenna/artgrow/internal/ai"
	"github.com/amckenna/artgrow/internal/audit"
	"github.com/amckenna/artgrow/internal/config"
	"github.com/amckenna/artgrow/internal/shell"
	"github.com/amckenna/artgrow/internal/storage"
	"github.com/amckenna/artgrow/note"
	"github.com/amckenna/artgrow/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "artgrow",
	Short:        "artgrow - personal knowledge and practice manager for art students",
	SilenceUsage: true,
	RunE:         runShell,
}

var (
	flagDataDir string
	flagLogDir  string
)

func init() {
	registerPathFlags(rootCmd.Flags())
}

// registerPathFlags adds the storage location overrides.
func registerPathFlags(flags *pflag.FlagSet) {
	flags.StringVar(&flagDataDir, "data-dir", "", "directory for the notes and tasks documents (overrides config)")
	flags.StringVar(&flagLogDir, "log-dir", "", "directory for the command audit log (overrides config)")
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		cfg.Paths.DataDir = flagDataDir
	}
	if flagLogDir != "" {
		cfg.Paths.LogDir = flagLogDir
	}

	db := storage.NewStore(cfg.Paths.DataDir)
	notes := note.NewStore(db)
	tasks := task.NewStore(db)

	var client ai.Client = ai.NewOpenAI(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	client = ai.WithRetry(client, cfg.AI.MaxRetries)

	sh := shell.New(shell.Options{
		Notes:       notes,
		Tasks:       tasks,
		Assistant:   ai.NewAssistant(client, notes, tasks),
		Log:         audit.NewLog(cfg.LogPath()),
		Input:       cmd.InOrStdin(),
		Output:      cmd.OutOrStdout(),
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	})
	return sh.Run(cmd.Context())
}
