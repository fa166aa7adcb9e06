package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/cmd/carnet/tui"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/chat"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/config"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/logging"
	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/store"
)

var (
	verbose    bool
	langFlag   string
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "carnet",
	Short: "carnet - medical record viewer for doctors and patients",
	Long: `carnet is a terminal viewer for medical records.

A doctor searches patients by CIN and appends visit records; a patient
logs in with their own CIN to read records and talk to the medical
advice assistant. All data lives in memory, seeded at startup.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal; it gets a file logger
		// instead.
		if cmd.Use == "carnet" {
			return nil
		}
		var err error
		logger, err = logging.NewCLI(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "List the seeded patient roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.NewSeeded()
		if err != nil {
			return err
		}
		for _, p := range s.Patients() {
			logger.Debug("roster entry", zap.String("cin", p.CIN))
			fmt.Printf("%-10s %-20s %-12s %s  (%d records)\n",
				p.CIN, p.Name, p.DateOfBirth, p.Gender, len(p.Records))
		}
		return nil
	},
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Default(), err
	}
	if langFlag != "" {
		cfg.Language = langFlag
	}
	if verbose {
		cfg.Logging.Debug = true
	}
	return cfg, nil
}

// buildResponder picks the chat backend: Gemini when configured with a
// key, the local keyword table otherwise.
func buildResponder(cfg config.Config, log *zap.Logger) chat.Responder {
	if cfg.Responder.Mode == config.ResponderGemini && cfg.Responder.APIKey != "" {
		r, err := chat.NewGemini(cfg.Responder.APIKey, cfg.Responder.Model)
		if err == nil {
			log.Info("using gemini responder", zap.String("model", cfg.Responder.Model))
			return r
		}
		log.Warn("gemini responder unavailable, falling back to keyword table", zap.Error(err))
	}
	return chat.NewKeywordResponder()
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, err := config.Dir()
	if err != nil {
		return err
	}
	log, err := logging.NewFile(dir, cfg.Logging.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s, err := store.NewSeeded()
	if err != nil {
		return fmt.Errorf("failed to load the patient roster: %w", err)
	}

	m := tui.New(cfg, s, buildResponder(cfg, log), log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "interface language: fr or ar")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")
	rootCmd.AddCommand(patientsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
