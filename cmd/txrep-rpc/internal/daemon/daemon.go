package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof" //nolint:gosec
	"os"
	"os/signal"
	runtimePprof "runtime/pprof"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stellar/txrep/cmd/txrep-rpc/internal"
	"github.com/stellar/txrep/cmd/txrep-rpc/internal/config"
	supporthttp "github.com/stellar/txrep/support/http"
	supportlog "github.com/stellar/txrep/support/log"
)

const prometheusNamespace = "txrep_rpc"

type Daemon struct {
	cfg             *config.Config
	jsonRPCHandler  *internal.Handler
	logger          *supportlog.Entry
	listener        net.Listener
	server          *http.Server
	adminListener   net.Listener
	adminServer     *http.Server
	closeOnce       sync.Once
	closeError      error
	done            chan struct{}
	metricsRegistry *prometheus.Registry
}

func (d *Daemon) GetEndpointAddrs() (net.TCPAddr, *net.TCPAddr) {
	addr := d.listener.Addr().(*net.TCPAddr)
	var adminAddr *net.TCPAddr
	if d.adminListener != nil {
		adminAddr = d.adminListener.Addr().(*net.TCPAddr)
	}
	return *addr, adminAddr
}

func (d *Daemon) close() {
	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), d.cfg.ShutdownGracePeriod)
	defer shutdownRelease()
	var closeErrors []error

	if err := d.server.Shutdown(shutdownCtx); err != nil {
		d.logger.WithError(err).Error("error during JSON RPC server Shutdown")
		closeErrors = append(closeErrors, err)
	}
	if d.adminServer != nil {
		if err := d.adminServer.Shutdown(shutdownCtx); err != nil {
			d.logger.WithError(err).Error("error during admin server Shutdown")
			closeErrors = append(closeErrors, err)
		}
	}
	d.jsonRPCHandler.Close()
	d.closeError = errors.Join(closeErrors...)
	close(d.done)
}

func (d *Daemon) Close() error {
	d.closeOnce.Do(d.close)
	return d.closeError
}

func MustNew(cfg *config.Config, logger *supportlog.Entry) *Daemon {
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == config.LogFormatJSON {
		logger.UseJSONFormatter()
	}

	logger.WithFields(supportlog.F{
		"version": config.Version,
		"commit":  config.CommitHash,
	}).Info("starting txrep RPC")

	daemon := &Daemon{
		cfg:             cfg,
		logger:          logger,
		done:            make(chan struct{}),
		metricsRegistry: prometheus.NewRegistry(),
	}

	jsonRPCHandler := internal.NewJSONRPCHandler(cfg, internal.HandlerParams{
		Logger:          logger,
		MetricsRegistry: daemon.metricsRegistry,
	})

	httpHandler := supporthttp.NewAPIMux(logger)
	httpHandler.Handle("/", jsonRPCHandler)

	daemon.jsonRPCHandler = &jsonRPCHandler

	// Use a separate listener in order to obtain the actual TCP port
	// when using dynamic ports during testing (e.g. endpoint="localhost:0")
	var err error
	daemon.listener, err = net.Listen("tcp", cfg.Endpoint)
	if err != nil {
		daemon.logger.WithError(err).WithField("endpoint", cfg.Endpoint).Fatal("cannot listen on endpoint")
	}
	daemon.server = &http.Server{
		Handler:     httpHandler,
		ReadTimeout: cfg.RequestReadTimeout,
	}
	if cfg.AdminEndpoint != "" {
		adminMux := supporthttp.NewMux(logger)
		adminMux.HandleFunc("/debug/pprof/", pprof.Index)
		adminMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		adminMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		adminMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		adminMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		// add the entry points for:
		// goroutine, threadcreate, heap, allocs, block, mutex
		for _, profile := range runtimePprof.Profiles() {
			adminMux.Handle("/debug/pprof/"+profile.Name(), pprof.Handler(profile.Name()))
		}
		adminMux.Handle("/metrics", promhttp.HandlerFor(daemon.metricsRegistry, promhttp.HandlerOpts{}))
		daemon.adminListener, err = net.Listen("tcp", cfg.AdminEndpoint)
		if err != nil {
			daemon.logger.WithError(err).WithField("endpoint", cfg.AdminEndpoint).Fatal("cannot listen on admin endpoint")
		}
		daemon.adminServer = &http.Server{Handler: adminMux}
	}
	daemon.registerMetrics()
	return daemon
}

func (d *Daemon) Run() {
	d.logger.WithFields(supportlog.F{
		"addr": d.listener.Addr().String(),
	}).Info("starting HTTP server")

	go func() {
		if err := d.server.Serve(d.listener); !errors.Is(err, http.ErrServerClosed) {
			d.logger.WithError(err).Fatal("JSON RPC server encountered fatal error")
		}
	}()

	if d.adminServer != nil {
		d.logger.WithFields(supportlog.F{
			"addr": d.adminListener.Addr().String(),
		}).Info("starting Admin HTTP server")
		go func() {
			if err := d.adminServer.Serve(d.adminListener); !errors.Is(err, http.ErrServerClosed) {
				d.logger.WithError(err).Error("admin server encountered fatal error")
			}
		}()
	}

	// Shutdown gracefully when we receive an interrupt signal.
	// First server.Shutdown closes all open listeners, then closes all idle connections.
	// Finally, it waits the grace period for connections to return to idle and then shuts down.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-signals:
		d.Close()
	case <-d.done:
		return
	}
}
