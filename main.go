package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"study_notes/generator"
	"study_notes/notes"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	name := "study_notes"
	if len(args) > 0 {
		name = args[0]
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "config/config.json", "path to config.json (optional)")
	html := fs.Bool("html", false, "also write "+notes.HTMLFile)
	verbose := fs.Bool("v", false, "enable info logs")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <topics_file>\n", name)
		fs.PrintDefaults()
	}
	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	topicsPath := fs.Arg(0)

	logger := log.New(stderr, "", log.Flags())

	cfg, err := notes.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	settings := cfg.Settings()
	if settings.APIKey == "" && settings.Provider != "mock" {
		logger.Printf("[cli] warning: no API key; set llm.api_key or %s", cfg.LLM.APIKeyEnv)
	}
	llm, err := generator.NewLLM(settings)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	g, err := notes.New(agent, *verbose, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger.Printf("[cli] generating notes provider=%s model=%s topics=%s", settings.Provider, settings.Model, topicsPath)
	rep, err := g.Generate(ctx, topicsPath, notes.OutputFile)
	if errors.Is(err, context.Canceled) {
		logger.Printf("[cli] interrupted after %d topics", rep.Topics())
		return 1
	}
	if err != nil {
		// Missing input or unwritable output still ends the run normally.
		fmt.Fprintln(stderr, err)
		return 0
	}
	logger.Printf("[cli] done: %d topics, %d with content, %d failed", rep.Topics(), rep.Succeeded(), rep.Failed())

	if *html || cfg.HTMLOutput {
		if err := notes.ExportHTML(notes.OutputFile, notes.HTMLFile); err != nil {
			fmt.Fprintln(stderr, err)
			return 0
		}
		logger.Printf("[cli] wrote %s", notes.HTMLFile)
	}
	return 0
}
