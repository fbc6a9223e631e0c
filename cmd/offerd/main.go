// Command offerd serves the domain-for-sale page and its offer
// submission API.
package main

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nichebay/domain-offer/pkg/api"
	"github.com/nichebay/domain-offer/pkg/captcha"
	"github.com/nichebay/domain-offer/pkg/config"
	"github.com/nichebay/domain-offer/pkg/mail"
	"github.com/nichebay/domain-offer/pkg/offer"
	"github.com/nichebay/domain-offer/pkg/system"
	"github.com/nichebay/domain-offer/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "offerd",
		Short:         "Domain-for-sale offer submission service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(debug)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug level logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			info := system.GetBuildInfo()
			fmt.Printf("offerd %s (commit %s, built %s, %s, %s)\n",
				info.Version, info.GitCommit, info.BuildDate, info.GoVersion, info.Platform)
		},
	})

	return root
}

func run(debug bool) error {
	// A local .env is a development convenience; the real deployment sets
	// the environment directly.
	_ = godotenv.Load()

	zl := setupLogger(debug)
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()

	log.With("version", system.Version).Info("Starting offerd")

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Error loading offerd configuration: %v", err)
	}

	bundle, err := web.Bundle()
	if err != nil {
		log.Fatalf("Error loading embedded front-end bundle: %v", err)
	}

	server := api.NewServer(zl, cfg, debug, bundle)
	err = server.RegisterAll([]api.APIController{
		offer.NewController(log, cfg, captcha.NewClient(cfg.Captcha), mail.NewSender(cfg.Mail)),
	})
	if err != nil {
		log.Fatalf("Error registering offerd controllers: %v", err)
	}

	log.Infow("Listening", "address", cfg.Web.Address)
	return server.Listen()
}

func setupLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}
	cfg.EncoderConfig.TimeKey = "ts"
	logger, err := cfg.Build()
	if err != nil {
		stdlog.Fatalf("failed to set up logger: %v", err)
	}
	return logger
}
