package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"helgdagar/internal/config"
	"helgdagar/internal/holiday"
	"helgdagar/internal/ics"
	appLog "helgdagar/internal/log"
	"helgdagar/internal/web"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServe(os.Args[2:])
		return
	}
	runGenerate(os.Args[1:])
}

// runGenerate prints the holiday calendar for a span of years to stdout.
func runGenerate(args []string) {
	fs := flag.NewFlagSet("helgdagar", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: helgdagar <start-year> <years>")
		fmt.Fprintln(fs.Output(), "       helgdagar serve [-listen addr] [-config path]")
		fmt.Fprintln(fs.Output(), "")
		fmt.Fprintln(fs.Output(), "Prints an iCalendar document with the Swedish holidays for the")
		fmt.Fprintln(fs.Output(), "given span of consecutive years to standard output.")
	}
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(2)
	}
	start, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "helgdagar: start year %q is not a number\n", fs.Arg(0))
		os.Exit(2)
	}
	years, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "helgdagar: year count %q is not a number\n", fs.Arg(1))
		os.Exit(2)
	}

	doc, err := holiday.Build(start, years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "helgdagar: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(ics.Encode(doc, ics.EncodeOptions{}))
}

// runServe runs the subscription feed server until SIGINT/SIGTERM.
func runServe(args []string) {
	fs := flag.NewFlagSet("helgdagar serve", flag.ExitOnError)
	configPath := fs.String("config", "/etc/helgdagar/config.yaml", "Path to config file")
	listen := fs.String("listen", "", "HTTP listen address (overrides config if set)")
	_ = fs.Parse(args)

	conf, err := config.Load(*configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", *configPath)
		os.Exit(1)
	}
	if *listen != "" {
		conf.Listen = *listen
	}

	appLog.Info("helgdagar serve starting",
		"listen", conf.Listen,
		"years", conf.Years,
		"calendar_name", conf.CalendarName,
		"published_ttl", conf.PublishedTTL,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	if err := web.StartServer(ctx, conf); err != nil {
		appLog.Error("HTTP server failed", err)
		os.Exit(1)
	}
	appLog.Info("helgdagar exiting")
}
