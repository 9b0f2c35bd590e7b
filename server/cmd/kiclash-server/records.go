package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/automoto/kiclash/records"
)

var (
	recordsMode string
	recordsTop  int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List the leaderboard",
	Long:  `Print the best versus or tower records from the configured store.`,
	RunE:  runRecords,
}

func init() {
	recordsCmd.Flags().StringVar(&recordsMode, "mode", string(records.ModeVersus), "leaderboard: versus or tower")
	recordsCmd.Flags().IntVar(&recordsTop, "top", 0, "rows to print (default: the config listing size)")
}

func runRecords(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mode := records.Mode(recordsMode)
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", records.ErrInvalidMode, recordsMode)
	}
	n := recordsTop
	if n <= 0 {
		n = cfg.Records.TopN
	}

	store, err := records.Open(cfg.Records)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	rows, err := store.Top(ctx, mode, n)
	if err != nil {
		return err
	}
	printRecords(cmd.OutOrStdout(), mode, rows)
	return nil
}

func printRecords(w io.Writer, mode records.Mode, rows []records.Record) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "no %s records yet\n", mode)
		return
	}
	for i, r := range rows {
		fmt.Fprintln(w, r.Line(i+1))
	}
}
