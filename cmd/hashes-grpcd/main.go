// Command hashes-grpcd serves every compiled-in hash command over gRPC.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"xdao.co/hashes/config"
	"xdao.co/hashes/internal/logger"
	"xdao.co/hashes/plugin"
	"xdao.co/hashes/transport/grpcplugin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hashes-grpcd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file (default $"+config.EnvConfig+")")
	listen := fs.String("listen", "", "gRPC listen address (overrides grpc.listen)")
	metricsListen := fs.String("metrics-listen", "", "HTTP address for /metrics and /healthz (overrides metrics.listen)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides log.level)")
	listCommands := fs.Bool("list-commands", false, "List served commands and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if *listen != "" {
		cfg.GRPC.Listen = *listen
	}
	if fs.Changed("metrics-listen") {
		cfg.Metrics.Listen = *metricsListen
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	p, err := plugin.New()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *listCommands {
		for _, c := range p.Commands() {
			fmt.Fprintf(stdout, "%s\t%d\n", c.Name(), len(c.Metadata().Binary))
		}
		return 0
	}

	log, err := logger.NewWriter(stderr, logger.IsTerminal(stderr), "hashes-grpcd", cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	if err := serve(ctx, cfg, p, log, nil); err != nil {
		log.Errorw("daemon stopped", "error", err)
		return 1
	}
	return 0
}

// serve runs the gRPC server and the optional metrics endpoint until ctx is
// done. ready, when non-nil, receives the bound gRPC address.
func serve(ctx context.Context, cfg config.Config, p *plugin.Plugin, log *zap.SugaredLogger, ready chan<- net.Addr) error {
	lis, err := net.Listen("tcp", cfg.GRPC.Listen)
	if err != nil {
		return err
	}
	defer lis.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := grpcplugin.NewMetrics(reg)

	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(cfg.GRPC.MaxMsgBytes),
		grpc.MaxSendMsgSize(cfg.GRPC.MaxMsgBytes),
		grpc.ChainUnaryInterceptor(grpcplugin.UnaryLogger(log), grpcplugin.UnaryRecover(log)),
		grpc.ChainStreamInterceptor(grpcplugin.StreamLogger(log), grpcplugin.StreamRecover(log)),
	)
	grpcplugin.RegisterPluginServer(s, &grpcplugin.Server{Plugin: p, Metrics: metrics})

	var httpSrv *http.Server
	if cfg.Metrics.Listen != "" {
		httpSrv = &http.Server{
			Addr:              cfg.Metrics.Listen,
			Handler:           grpcplugin.HTTPHandler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorw("metrics endpoint failed", "error", err)
			}
		}()
	}

	errc := make(chan error, 1)
	go func() { errc <- s.Serve(lis) }()

	log.Infow("listening",
		"grpc", lis.Addr().String(),
		"metrics", cfg.Metrics.Listen,
		"commands", len(p.Commands()),
		"version", p.Version(),
	)
	if ready != nil {
		ready <- lis.Addr()
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	if httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		s.Stop()
	}
	return nil
}
