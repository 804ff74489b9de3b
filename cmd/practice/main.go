// Package main provides a terminal practice client for the syllable
// practice API. It shows one word at a time, records how long each word
// stays on screen, and posts the session record when practice ends.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtb/aren-app/internal/client"
	"github.com/mtb/aren-app/internal/domain"
	"github.com/mtb/aren-app/internal/recorder"
	"github.com/mtb/aren-app/internal/selector"
)

const (
	defaultServer = "http://localhost:3000"
	defaultCount  = "random"
	defaultTarget = 10
)

var (
	serverURL   string
	countMode   string
	targetWords int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "practice",
		Short:         "Terminal syllable practice client",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer, "practice API base URL")
	rootCmd.Flags().StringVar(&countMode, "count", defaultCount, "syllable count to practice, or 'random'")
	rootCmd.Flags().IntVar(&targetWords, "target", defaultTarget, "words per session (0 = until interrupted)")

	rootCmd.AddCommand(newCountsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	mode, fixedCount, err := parseMode(countMode)
	if err != nil {
		return err
	}
	if targetWords < 0 {
		return fmt.Errorf("--target must be >= 0")
	}

	api := client.New(serverURL)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	picker := selector.NewPicker(api)
	rec := recorder.New(mode, targetWords, api, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %s (%s mode). Enter advances, 'f' flags the word, Ctrl-D ends.\n\n",
		rec.SessionID(), mode)

	// Stdin is read on its own goroutine so an interrupt can end the
	// session while a read is pending.
	lines := readLines(os.Stdin)

	shown := 0
practice:
	for targetWords == 0 || shown < targetWords {
		var word string
		if mode.IsRandom() {
			word, err = picker.Next(ctx)
		} else {
			word, err = picker.NextForCount(ctx, fixedCount)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return fmt.Errorf("failed to fetch word: %w", err)
		}

		rec.Advance(word, time.Now())
		shown++
		fmt.Fprintf(out, "%3d. %s\n", shown, word)

		for {
			select {
			case <-ctx.Done():
				break practice
			case line, ok := <-lines:
				if !ok {
					break practice
				}
				if strings.TrimSpace(line) == "f" {
					if ferr := api.FlagWord(ctx, word); ferr != nil {
						fmt.Fprintf(os.Stderr, "failed to flag %q: %v\n", word, ferr)
					} else {
						fmt.Fprintf(out, "     flagged %q for review\n", word)
					}
					continue
				}
			}
			break
		}
	}

	// Commit on a fresh context: the signal context is likely already
	// canceled when practice ends via Ctrl-C.
	commitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record := rec.Commit(commitCtx)
	if record == nil {
		fmt.Fprintln(out, "\nNo words shown, nothing recorded.")
		return nil
	}

	fmt.Fprintf(out, "\nSession %s finished: %d words in %.1fs.\n",
		record.SessionID, len(record.Words),
		record.FinishedAt.Sub(record.StartedAt).Seconds())
	return nil
}

func newCountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "List the syllable counts the server offers",
		Args:  cobra.NoArgs,
		RunE:  runCountsCmd,
	}
}

func runCountsCmd(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	counts, err := client.New(serverURL).Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch counts: %w", err)
	}

	for _, count := range counts {
		fmt.Fprintln(cmd.OutOrStdout(), count)
	}
	return nil
}

// parseMode resolves the --count flag into a practice mode and, for
// fixed-bucket practice, the syllable count.
func parseMode(value string) (domain.PracticeMode, int, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || value == string(domain.ModeRandom) {
		return domain.ModeRandom, 0, nil
	}

	count, err := strconv.Atoi(value)
	if err != nil || count <= 0 {
		return "", 0, fmt.Errorf("--count must be 'random' or a positive syllable count, got %q", value)
	}
	return domain.ModeForCount(count), count, nil
}

// readLines forwards stdin lines to a channel, closing it on EOF.
func readLines(f *os.File) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
