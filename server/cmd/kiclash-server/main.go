// Command kiclash-server runs headless matches: a spectator server, bot
// simulations, the reference decision service and leaderboard listings.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/automoto/kiclash/assets"
	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/shared/leveldata"
)

var (
	configPath string
	envFiles   []string
	arenaPath  string
)

var rootCmd = &cobra.Command{
	Use:          "kiclash-server",
	Short:        "Ki Clash headless tools",
	Long:         `Run spectated matches, bot-vs-bot simulations, the reference decision service and leaderboard queries.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "JSON file overlaid on the default config")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", nil, ".env files to load (default .env)")
	rootCmd.PersistentFlags().StringVar(&arenaPath, "arena", "", "arena: a TMX file or the name of a built-in arena")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(policyCmd)
	rootCmd.AddCommand(recordsCmd)
}

// loadConfig builds the config from defaults, the optional JSON overlay,
// the environment and the optional arena file.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}
	if err := config.LoadEnv(&cfg, envFiles...); err != nil {
		return cfg, err
	}
	if arenaPath != "" {
		arena, err := loadArena(arenaPath)
		if err != nil {
			return cfg, err
		}
		arena.Apply(&cfg)
	}
	return cfg, cfg.Validate()
}

// loadArena reads a TMX path from disk, or looks a bare name up among the
// embedded arenas.
func loadArena(ref string) (*leveldata.Arena, error) {
	if strings.HasSuffix(ref, ".tmx") {
		return leveldata.LoadArena(os.DirFS(filepath.Dir(ref)), filepath.Base(ref))
	}
	arenas, names, err := assets.LoadArenas()
	if err != nil {
		return nil, err
	}
	a, ok := arenas[ref]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %s)", ref, strings.Join(names, ", "))
	}
	return a, nil
}
