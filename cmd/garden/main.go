// garden is Garden Match, a match-3 puzzle game for the terminal.
//
// Usage:
//
//	garden list              - List the levels of the campaign
//	garden play [level]      - Play a level directly
//	garden menu              - Start the interactive menu
//	garden levels            - Show the campaign with your best results
//	garden scores [level]    - Show high scores for a level
//	garden progress          - Show or modify a player's progress
//	garden daily             - Claim today's daily reward
//	garden simulate          - Let the computer play a level
//	garden serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.garden/garden.db)
//	--player <name>       - Player whose progress is used (default: $USER)
//	--config <path>       - Path to custom game config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/garden-match/internal/config"
	"github.com/vovakirdan/garden-match/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagPlayer     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garden",
	Short: "Garden Match - a match-3 puzzle game in your terminal",
	Long: `Garden Match is a match-3 puzzle game played in the terminal.
Swap neighbouring gems to line up three or more of a kind, reach the
target score before you run out of moves and unlock the next level.

Available commands:
  list      - Show the levels of the campaign
  play      - Play a level directly
  menu      - Interactive menu with level select and high scores
  levels    - Campaign overview with your best results
  scores    - View high scores
  progress  - Show, refill or reset a player's progress
  daily     - Claim the daily reward
  simulate  - Watch the computer play a level
  serve     - Start SSH server for remote play

Examples:
  garden menu
  garden play 3 --difficulty easy
  garden scores 1
  garden simulate --level 5 --seed 42
  garden serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player name")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: ~/.garden/garden.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// defaultPlayer returns the login name, or "player".
func defaultPlayer() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "player"
}
