package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/automoto/kiclash/records"
	"github.com/automoto/kiclash/server/core"
	"github.com/automoto/kiclash/shared/protocol"
)

var (
	servePort     uint
	serveTickRate int
	serveName     string
	serveLinger   time.Duration
	serveSeed     int64
	serveRecord   bool
	serveP1       botSide
	serveP2       botSide
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host a bot match for websocket spectators",
	Long:  `Run a bot-vs-bot match on the fixed-tick loop and sync fighter and match state to every connected spectator.`,
	RunE:  runServe,
}

func init() {
	addBotFlags(serveCmd, &serveP1, &serveP2)
	serveCmd.Flags().UintVar(&servePort, "port", 7373, "Server port")
	serveCmd.Flags().IntVar(&serveTickRate, "tickrate", 0, "Server tick rate (default: the config tick rate)")
	serveCmd.Flags().StringVar(&serveName, "name", "Ki Clash Server", "Server display name")
	serveCmd.Flags().DurationVar(&serveLinger, "linger", 10*time.Second, "Keep syncing the final state this long before exiting")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", time.Now().UnixNano(), "random seed for both bots")
	serveCmd.Flags().BoolVar(&serveRecord, "record", false, "store the result in the configured leaderboard")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := protocol.RegisterComponents(); err != nil {
		return err
	}

	opts, err := botMatch(cfg, serveP1, serveP2, serveSeed)
	if err != nil {
		return err
	}
	if serveRecord {
		store, err := records.Open(cfg.Records)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Sink = records.NewRecorder(store)
	}

	server, err := core.NewServer(core.Options{
		Name:     serveName,
		TickRate: serveTickRate,
		Match:    opts,
		Sync:     true,
	})
	if err != nil {
		return err
	}
	defer server.Stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start(servePort) }()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigChan:
		log.Println("[server] shutting down")
		return nil
	case <-server.Finished():
	}

	if res, ok := server.Controller().Result(); ok {
		printSummary(os.Stdout, res)
	}
	select {
	case <-time.After(serveLinger):
	case <-sigChan:
	}
	log.Println("[server] match over, shutting down")
	return nil
}
