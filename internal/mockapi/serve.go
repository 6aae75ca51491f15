package mockapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

type ServeParams struct {
	Host             string
	Port             int
	ReadServiceName  string
	WriteServiceName string

	MetricsHost  string
	MetricsPort  string
	PromRegistry *prometheus.Registry
}

// Serve starts the combined mock gateway plus a prometheus endpoint on a
// second port. It returns once both listeners are up; stop them with
// GracefulShutdown.
func (s *Server) Serve(params ServeParams) {
	ipAndPort := net.JoinHostPort(params.Host, strconv.Itoa(params.Port))
	s.httpServer = &http.Server{
		Handler:      s.CombinedHandler(params.ReadServiceName, params.WriteServiceName),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := http.NewServeMux()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		params.PromRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(params.MetricsHost, params.MetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > mock services listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("mock services, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	if s.metrics != nil {
		s.metrics.GaugeLifeSignal.Set(1)
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	if s.metrics != nil {
		s.metrics.GaugeLifeSignal.Set(0)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
	}
	log.Warnln("mock services shut down")

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
	}
	log.Warnln("metrics server shut down")
}
