// Command storeserver parses configuration, opens a Store, publishes
// the Store RPC service on a listener, and runs until a termination
// signal arrives.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/dumpstors-labs/keepstore/internal/config"
	"github.com/dumpstors-labs/keepstore/internal/engine"
	"github.com/dumpstors-labs/keepstore/internal/rpcserver"
	"github.com/dumpstors-labs/keepstore/internal/storepb"
	"github.com/dumpstors-labs/keepstore/internal/store"
)

// flagOverrides holds command-line overrides applied on top of the
// loaded config, kept distinct from the file/env-sourced Config.
type flagOverrides struct {
	configPath string
	listenAddr string
	dataPath   string
}

func parseFlags() flagOverrides {
	var f flagOverrides
	flag.StringVar(&f.configPath, "config", "", "path to a YAML config file (optional)")
	flag.StringVar(&f.listenAddr, "listen-addr", "", "override server.listen_addr")
	flag.StringVar(&f.dataPath, "data-path", "", "override store.path")
	flag.Parse()
	return f
}

func main() {
	flags := parseFlags()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Fatalf("storeserver: failed to load configuration: %v", err)
	}
	if flags.listenAddr != "" {
		cfg.Server.ListenAddr = flags.listenAddr
	}
	if flags.dataPath != "" {
		cfg.Store.Path = flags.dataPath
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("storeserver: invalid configuration: %v", err)
	}

	st, err := store.Open(cfg.Store.Path, engine.Open)
	if err != nil {
		log.Fatalf("storeserver: failed to open store at %q: %v", cfg.Store.Path, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("storeserver: error closing store: %v", err)
		}
	}()

	lis, err := net.Listen("tcp", cfg.ListenAddress())
	if err != nil {
		log.Fatalf("storeserver: failed to listen on %q: %v", cfg.ListenAddress(), err)
	}

	grpcServer := grpc.NewServer(grpc.ForceServerCodec(storepb.Codec{}))
	storepb.RegisterStoreServer(grpcServer, rpcserver.New(st, cfg.ListenAddress()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("storeserver: listening on %s (data root %s)", cfg.ListenAddress(), cfg.Store.Path)
		return grpcServer.Serve(lis)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Printf("storeserver: shutting down")
		grpcServer.GracefulStop()
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("storeserver: exited with error: %v", err)
	}
}
