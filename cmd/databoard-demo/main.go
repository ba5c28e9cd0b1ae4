// Package main is the entry point for the databoard-demo CLI, a small
// command-line harness for exercising a databoard hierarchy: building a
// chain of boards, seeding values, watching autoremap and remapping rules
// resolve keys, and printing the debug tree.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/normanking/databoard/internal/config"
	"github.com/normanking/databoard/internal/logging"
	"github.com/normanking/databoard/pkg/databoard"
)

var (
	version = "0.1.0"
	cfgPath string
	verbose bool
	log     *logging.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "databoard-demo",
		Short: "databoard-demo - exercise a hierarchical key/value board tree",
		Long: `databoard-demo builds a chain of in-process databoard.Board
instances and drives them through routing, remapping, and guard scenarios
so the behavior can be observed from the command line.

Build a sample hierarchy:  databoard-demo demo run
Inspect the debug tree:    databoard-demo demo inspect
Show configuration:        databoard-demo config show`,
		PersistentPreRunE: initLogging,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (default ~/.databoard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("databoard-demo v%s\n", version)
		},
	})

	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogging(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	logDir := filepath.Join(home, ".databoard", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create log directory: %v\n", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFile := filepath.Join(logDir, fmt.Sprintf("databoard-demo_%s.log", timestamp))

	var lcfg *logging.Config
	if verbose {
		lcfg = logging.VerboseConfig()
	} else {
		lcfg = logging.DefaultConfig()
	}
	lcfg.FilePath = logFile
	lcfg.Component = "demo"

	log = logging.New(lcfg)
	logging.SetGlobal(log)

	runID := uuid.NewString()
	log.WithField("run_id", runID).Info("databoard-demo session started, logging to %s", logFile)

	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// DEMO COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build and exercise a sample board hierarchy",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Build a board chain, seed a value, and show how it resolves",
		RunE:  runDemo,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "inspect",
		Short: "Build a board chain and print its debug tree",
		RunE:  inspectDemo,
	})

	return cmd
}

// buildHierarchy constructs a straight chain of cfg.Demo.Depth boards rooted
// at an empty board. Remappings require a parent to resolve board-pointer
// targets against, so any preconfigured rules from cfg.Board.Remappings are
// wired onto the first child rather than the (parentless) root.
func buildHierarchy(cfg *config.Config) (*databoard.Board, []*databoard.Board, error) {
	root := databoard.New().WithTracer(log)
	chain := []*databoard.Board{root}
	current := root

	for i := 1; i <= cfg.Demo.Depth; i++ {
		var child *databoard.Board
		if i == 1 && len(cfg.Board.Remappings) > 0 {
			rules := databoard.NewRemappings()
			for _, rule := range cfg.Board.Remappings {
				if err := rules.Add(rule.Source, rule.Target); err != nil {
					return nil, nil, fmt.Errorf("preconfigured remapping %q -> %q: %w", rule.Source, rule.Target, err)
				}
			}
			withRules, err := databoard.With(current, rules, cfg.Board.Autoremap)
			if err != nil {
				return nil, nil, fmt.Errorf("apply preconfigured remappings: %w", err)
			}
			child = withRules.WithTracer(log)
		} else {
			child = databoard.WithParent(current).WithTracer(log)
		}
		chain = append(chain, child)
		current = child
	}

	return root, chain, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root, chain, err := buildHierarchy(cfg)
	if err != nil {
		return err
	}
	leaf := chain[len(chain)-1]

	log.Info("built a %d-board chain rooted at %q", len(chain), cfg.Board.RootName)

	topLevelKey := "@" + cfg.Demo.SeedKey
	if _, err := databoard.Set(leaf, topLevelKey, time.Now().Unix()); err != nil {
		return fmt.Errorf("seed %s at leaf: %w", topLevelKey, err)
	}
	fmt.Printf("set %q from the leaf board (top-level redirect)\n", topLevelKey)

	v, err := databoard.Get[int64](root, cfg.Demo.SeedKey)
	if err != nil {
		return fmt.Errorf("read %s from root: %w", cfg.Demo.SeedKey, err)
	}
	fmt.Printf("root board now holds %s = %d\n", cfg.Demo.SeedKey, v)

	guard, err := databoard.GetMutRef[int64](leaf, topLevelKey)
	if err != nil {
		return fmt.Errorf("acquire write guard: %w", err)
	}
	guard.Mutate(func(n *int64) { *n++ })
	guard.Close()

	seq, err := root.SequenceID(cfg.Demo.SeedKey)
	if err != nil {
		return fmt.Errorf("read sequence id: %w", err)
	}
	fmt.Printf("sequence id after one batched write guard: %d\n", seq)

	return nil
}

func inspectDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root, chain, err := buildHierarchy(cfg)
	if err != nil {
		return err
	}
	leaf := chain[len(chain)-1]

	if _, err := databoard.Set(leaf, cfg.Demo.SeedKey, "inspect-me"); err != nil {
		return fmt.Errorf("seed %s: %w", cfg.Demo.SeedKey, err)
	}

	fmt.Println(root.String())
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// CONFIG COMMAND
// ═══════════════════════════════════════════════════════════════════════════════

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Println("databoard-demo Configuration:")
			fmt.Println("─────────────────────────────")
			fmt.Printf("Root Board:   %s\n", cfg.Board.RootName)
			fmt.Printf("Autoremap:    %t\n", cfg.Board.Autoremap)
			fmt.Printf("Remappings:   %d preconfigured rule(s)\n", len(cfg.Board.Remappings))
			fmt.Printf("Log Level:    %s\n", cfg.Logging.Level)
			fmt.Printf("Demo Depth:   %d\n", cfg.Demo.Depth)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getConfigPath())
		},
	})

	return cmd
}

func loadConfig() (*config.Config, error) {
	path := getConfigPath()
	log.Debug("loading config from: %s", path)

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func getConfigPath() string {
	if cfgPath != "" {
		return cfgPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".databoard/config.yaml"
	}
	return filepath.Join(home, ".databoard", "config.yaml")
}
