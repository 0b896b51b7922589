package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gordian-engine/rdgen/internal/rdcli"
)

func main() {
	cfg, err := rdcli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		rdcli.Exitf("parse flags: %v", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rdcli.Run(ctx, log, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		rdcli.Exitf("rdgen: %v", err)
	}
}
