package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/automoto/kiclash/policy"
)

var (
	policyAddr string
	policyKey  string
	policySeed int64
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Serve the reference decision service",
	Long:  `Answer snapshot POSTs on /v1/decide with a heuristic action. The key defaults to KICLASH_DECISION_KEY.`,
	RunE:  runPolicy,
}

func init() {
	policyCmd.Flags().StringVar(&policyAddr, "addr", ":8085", "listen address")
	policyCmd.Flags().StringVar(&policyKey, "key", "", "bearer credential clients must send")
	policyCmd.Flags().Int64Var(&policySeed, "seed", time.Now().UnixNano(), "random seed for the heuristic")
}

func runPolicy(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	key := policyKey
	if key == "" {
		key = cfg.Remote.APIKey
	}

	srv, err := policy.NewServer(policy.Config{
		Addr:      policyAddr,
		APIKey:    key,
		Suggester: policy.NewHeuristic(cfg, rand.New(rand.NewSource(policySeed))),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
