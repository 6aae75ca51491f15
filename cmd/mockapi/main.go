package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/xqfit/routines/internal/config"
	"github.com/xqfit/routines/internal/logging"
	"github.com/xqfit/routines/internal/mockapi"
	"github.com/xqfit/routines/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "fitness-mockapi",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fitness", "mockapi", promRegistry)

	server := mockapi.NewServer(mockapi.NewStore(), metricsManager)

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	server.Serve(mockapi.ServeParams{
		Host:             cfg.Host,
		Port:             cfg.Port,
		ReadServiceName:  cfg.ReadServiceName,
		WriteServiceName: cfg.WriteServiceName,
		MetricsHost:      cfg.PrometheusMetricsHost,
		MetricsPort:      cfg.PrometheusMetricsPort,
		PromRegistry:     promRegistry,
	})

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)

	server.GracefulShutdown()
}
