// Command showlog builds a wrestling show master document: interactive
// prompts, YouTube transcript extraction, optional AI formatting, and
// publication to Google Docs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"showlog/aiformat"
	"showlog/config"
	"showlog/gdoc"
	"showlog/youtube"
)

func main() {
	// Missing .env is fine; the environment may carry everything already.
	godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	command := ""
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "", "create":
		cmdCreate(log)
	case "transcript":
		cmdTranscript(log, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `showlog - wrestling show recap builder

Usage:
  showlog                               Build a show doc interactively
  showlog transcript [flags] <id>...    Print transcripts for video IDs
  showlog help                          Show this help message

Examples:
  showlog                               # Interactive master doc flow
  showlog transcript dQw4w9WgXcQ        # Fetch one transcript
  showlog transcript --lang en,es a b   # Two videos, preferred languages

For help on specific command: showlog <command> -h
`)
}

// cmdCreate runs the interactive flow: prompts, transcript batch, document
// assembly, optional AI formatting, and Google Docs publication.
func cmdCreate(log *logrus.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Starting the wrestling logger...")
	fmt.Println("This script will build your Master Doc.")
	fmt.Println()

	p := newPrompter(os.Stdin, os.Stdout)
	meta, err := p.showMetadata()
	if err != nil {
		fatal(err)
	}
	recapText, err := p.playByPlay()
	if err != nil {
		fatal(err)
	}
	personalNotes, err := p.personalNotes()
	if err != nil {
		fatal(err)
	}
	videoIDs, err := p.videoIDs()
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	fetcher := youtube.NewFetcher(cfg, log)
	results := fetcher.FetchAll(ctx, videoIDs, nil)

	body := gdoc.BuildBody(meta, recapText, personalNotes, results)

	successes := 0
	for _, result := range results {
		if result.Success {
			successes++
		}
	}
	fmt.Println("\nCollected Data Summary:")
	fmt.Printf(" - Metadata Title: %s\n", meta.DocTitle())
	fmt.Printf(" - Play-by-Play length: %d words\n", len(strings.Fields(recapText)))
	fmt.Printf(" - Personal Notes length: %d words\n", len(strings.Fields(personalNotes)))
	fmt.Printf(" - Transcript successes: %d/%d\n", successes, len(results))
	fmt.Println("\n## STEP 5: BUILDING DOCUMENT")

	log.Info("Authenticating with Google...")
	ts, err := gdoc.Authorize(ctx, cfg.CredentialsFile, cfg.TokenFile)
	if err != nil {
		fatal(err)
	}
	store, err := gdoc.NewStore(ctx, ts)
	if err != nil {
		fatal(err)
	}

	log.Info("Creating new Google Doc...")
	docID, err := store.CreateDoc(ctx, meta.DocTitle())
	if err != nil {
		fatal(err)
	}
	log.Infof("... New Doc ID: %s", docID)

	// AI formatting is best effort. Any failure, including declining the
	// prompt or a missing API key, leaves the unformatted body in place.
	useAI, err := p.yesNo(
		fmt.Sprintf("Would you like to format this document with OpenAI (%s)? (y/N): ", cfg.OpenAIModel), false)
	if err != nil {
		useAI = false
	}
	if useAI {
		body = formatWithAI(ctx, cfg, log, body)
	}

	log.Info("Writing sections to doc...")
	if err := store.WriteContent(ctx, docID, body); err != nil {
		log.Errorf("Writing failed: %v", err)
		log.Info("Cleaning up the placeholder doc...")
		if delErr := store.DeleteDoc(ctx, docID); delErr != nil {
			log.Warn("Unable to remove the placeholder doc; please delete it manually.")
		} else {
			log.Info("Placeholder doc removed.")
		}
		os.Exit(1)
	}

	fmt.Println("... Success!")
	fmt.Println()
	fmt.Println("Your new document is ready in your Google Drive.")
	fmt.Println(gdoc.DocURL(docID))
}

// formatWithAI runs the formatting pass, falling back to the original body
// on any failure.
func formatWithAI(ctx context.Context, cfg *config.Config, log *logrus.Logger, body string) string {
	reformatter, err := aiformat.New(cfg, log)
	if err != nil {
		log.Errorf("AI formatting failed: %v", err)
		log.Info("Continuing with unformatted document.")
		return body
	}

	log.Info("Formatting document with AI...")
	formatted, err := reformatter.Reformat(ctx, body)
	if err != nil {
		log.Errorf("AI formatting failed: %v", err)
		log.Info("Continuing with unformatted document.")
		return body
	}
	log.Info("AI formatting applied successfully.")
	return formatted
}

// cmdTranscript fetches transcripts for the given video IDs and prints
// them, a utility entry point that skips the document flow entirely.
func cmdTranscript(log *logrus.Logger, args []string) {
	fs := flag.NewFlagSet("transcript", flag.ExitOnError)
	langStr := fs.String("lang", "", "Comma-separated preferred language codes (e.g., en,es)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: showlog transcript [flags] <video-id>...\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	videoIDs := fs.Args()
	if len(videoIDs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing video-id\n")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var languages []string
	if *langStr != "" {
		for _, lang := range strings.Split(*langStr, ",") {
			languages = append(languages, strings.TrimSpace(lang))
		}
	}

	fetcher := youtube.NewFetcher(cfg, log)
	results := fetcher.FetchAll(context.Background(), videoIDs, languages)

	failed := 0
	for _, result := range results {
		fmt.Printf("=== %s ===\n", result.VideoID)
		if result.Success {
			fmt.Println(result.Text)
		} else {
			failed++
			fmt.Printf("FAILED: %s\n", result.Error)
		}
		fmt.Println()
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
