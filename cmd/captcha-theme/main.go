package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/goliatone/go-captchatheme/pkg/prompt"
)

func main() {
	flags, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := newResolver(flags)
	if err != nil {
		log.Fatalf("Failed to configure resolver: %v", err)
	}

	req := flags.request()
	if flags.interactive {
		req, err = collect(ctx, r, req)
		if errors.Is(err, prompt.ErrAborted) {
			log.Println("Aborted")
			os.Exit(1)
		}
		if err != nil {
			log.Fatalf("Failed to collect options: %v", err)
		}
	}

	snippet, err := r.Render(ctx, req)
	if err != nil {
		log.Fatalf("Failed to render snippet: %v", err)
	}

	written, err := writeSnippet(flags.output, snippet, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if written && flags.output != "" {
		fmt.Printf("Snippet written to %s\n", flags.output)
	}
}
