package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	lib "github.com/theoremus-urban-solutions/transit-catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/internal"
	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
	"github.com/theoremus-urban-solutions/transit-catalogue/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Answers go to stdout;
// logs and errors go to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("transit-catalogue", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: config.yml)")
	input := fs.String("input", "", "network document: file, URL or - for stdin (overrides config)")
	format := fs.String("format", "", "json|xml (overrides config)")
	mode := fs.String("mode", "oneshot", "oneshot|serve")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	internal.InitLogging(config.Config.Log.Level, stderr)

	src := config.Config.Input.Path
	if *input != "" {
		src = *input
	}
	out := config.Config.Output.Format
	if *format != "" {
		out = *format
	}

	f := newFetcher()
	f.stdin = stdin
	doc, err := f.fetchDocument(src)
	if err != nil {
		slog.Error("could not read network document", "input", src, "err", err)
		return 1
	}
	network, err := lib.BuildNetwork(doc, config.Config.Routing)
	if err != nil {
		slog.Error("could not build network", "err", err)
		return 1
	}

	switch *mode {
	case "oneshot":
		answers := responder.New(network.Catalogue, network.Router).AnswerAll(doc.StatRequests)
		fmt.Fprintln(stdout, string(formatter.Build(answers, out)))
	case "serve":
		srv := server.New(network.Catalogue, network.Router, config.Config.Server)
		srv.Start()
		handleGracefulShutdown(srv)
	default:
		fmt.Fprintf(stderr, "unknown mode %q\n", *mode)
		return 2
	}
	return 0
}

func handleGracefulShutdown(srv *server.Server) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	slog.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "err", err)
	}
}
