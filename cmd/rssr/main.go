package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
