package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	yatzycmd "github.com/louisbranch/yatzy/internal/cmd/yatzy"
	"github.com/louisbranch/yatzy/internal/platform/config"
)

func main() {
	cfg, err := yatzycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[YATZY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := yatzycmd.Run(ctx, cfg); err != nil {
		log.Fatalf("yatzy: %v", err)
	}
}
