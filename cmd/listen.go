package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"abfahrt/pkg/config"
	"abfahrt/pkg/journey"
	"abfahrt/pkg/listener"
	"abfahrt/pkg/rmv"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Run the voice intent listener daemon",
	Long: `Connects to the message bus, waits for recognized voice intents from the
speech frontend and answers each one by ending the voice session with the
spoken journey description. Prometheus metrics are served when a metrics
address is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("no RMV API key configured. Set RMV_API_KEY or run 'abfahrt config'")
		}
		if cfg.HomeStation == "" {
			return fmt.Errorf("no home station configured. Run 'abfahrt config --set-home \"Your Station\"' first")
		}

		natsURL := cfg.NATSUrl
		if natsURL == "" {
			natsURL = nats.DefaultURL
		}

		nc, err := nats.Connect(natsURL,
			nats.Name("abfahrt"),
			nats.DisconnectHandler(func(_ *nats.Conn) {
				log.Printf("nats disconnected")
			}),
			nats.ReconnectHandler(func(_ *nats.Conn) {
				log.Printf("nats reconnected")
			}),
		)
		if err != nil {
			return fmt.Errorf("could not connect to NATS at %s: %w", natsURL, err)
		}
		defer nc.Close()

		orch := journey.NewOrchestrator(
			rmv.NewClient(cfg.APIKey),
			journey.Home{StationName: cfg.HomeStation, StationID: cfg.HomeStationID, CityName: cfg.HomeCity, CityOnly: cfg.HomeCityOnly},
			time.Duration(cfg.TimeOffsetMinutes)*time.Minute,
		)

		if cfg.MetricsAddr != "" {
			go func() {
				http.Handle("/metrics", promhttp.Handler())
				log.Printf("serving metrics on %s", cfg.MetricsAddr)
				if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
					log.Printf("metrics server stopped: %v", err)
				}
			}()
		}

		// Shut down cleanly on SIGINT/SIGTERM
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return listener.New(nc, orch, cfg.ShortInfo).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
