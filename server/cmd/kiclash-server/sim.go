package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/automoto/kiclash/config"
	"github.com/automoto/kiclash/match"
	"github.com/automoto/kiclash/records"
)

var errNoFinish = errors.New("match did not finish")

var (
	simP1, simP2 botSide
	simSeed      int64
	simMaxTicks  int
	simRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a bot-vs-bot match as fast as possible",
	Long:  `Simulate a full match between two computer opponents without a window and print the summary.`,
	RunE:  runSimCmd,
}

func init() {
	addBotFlags(simCmd, &simP1, &simP2)
	simCmd.Flags().Int64Var(&simSeed, "seed", 1, "random seed for both bots")
	simCmd.Flags().IntVar(&simMaxTicks, "max-ticks", 500000, "give up after this many ticks")
	simCmd.Flags().BoolVar(&simRecord, "record", false, "store the result in the configured leaderboard")
}

// addBotFlags registers the per-side archetype and difficulty flags.
func addBotFlags(cmd *cobra.Command, p1, p2 *botSide) {
	cmd.Flags().StringVar(&p1.Archetype, "p1", "goku", "P1 archetype")
	cmd.Flags().StringVar(&p2.Archetype, "p2", "vegeta", "P2 archetype")
	cmd.Flags().StringVar(&p1.Difficulty, "p1-difficulty", "normal", "P1 bot difficulty")
	cmd.Flags().StringVar(&p2.Difficulty, "p2-difficulty", "normal", "P2 bot difficulty")
	cmd.Flags().StringVar(&p1.Name, "p1-name", "", "P1 display name")
	cmd.Flags().StringVar(&p2.Name, "p2-name", "", "P2 display name")
}

func runSimCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var sink match.ResultSink
	if simRecord {
		store, err := records.Open(cfg.Records)
		if err != nil {
			return err
		}
		defer store.Close()
		sink = records.NewRecorder(store)
	}

	res, err := simulate(cfg, simP1, simP2, simSeed, simMaxTicks, sink)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), res)
	return nil
}

// simulate runs one bot match to completion on the calling goroutine.
func simulate(cfg config.Config, p1, p2 botSide, seed int64, maxTicks int, sink match.ResultSink) (match.Result, error) {
	opts, err := botMatch(cfg, p1, p2, seed)
	if err != nil {
		return match.Result{}, err
	}
	opts.Sink = sink
	opts.SkipIntro = true

	ctl, err := match.New(opts)
	if err != nil {
		return match.Result{}, err
	}
	defer ctl.Close()

	for i := 0; i < maxTicks && !ctl.Finished(); i++ {
		ctl.Update()
	}
	res, ok := ctl.Result()
	if !ok {
		return match.Result{}, fmt.Errorf("%w after %d ticks", errNoFinish, maxTicks)
	}
	log.Printf("[match] simulated %d ticks", ctl.Snapshot().Ticks)
	return res, nil
}

func printSummary(w io.Writer, r match.Result) {
	for i, line := range r.Summary() {
		if i > 0 {
			line = "  " + line
		}
		fmt.Fprintln(w, line)
	}
}
