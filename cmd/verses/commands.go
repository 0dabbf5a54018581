package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"shuvoedward/bible_verses/internal/bibleapi"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/reference"
	"shuvoedward/bible_verses/internal/service"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type options struct {
	apiURL         string
	apiToken       string
	defaultVersion string
	timeout        time.Duration
	logLevel       string
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Find Bible references in text and print their verses",
		Long: `Verses finds references such as "João 3:16" or "John 1:1-3 kjv" in a
text and prints the verses they refer to, fetched from the Bible API.

Examples:
  verses lookup "Leia João 3:16 e Salmos 23:1-3"
  verses match "Genesis 50 e Romanos 8:28 kjv"
  verses books`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "bible-api-url", os.Getenv("BIBLE_API_URL"), "Bible API base URL")
	cmd.PersistentFlags().StringVar(&opts.apiToken, "bible-api-token", os.Getenv("BIBLE_API_TOKEN"), "Bible API bearer token")
	cmd.PersistentFlags().StringVar(&opts.defaultVersion, "default-version", envOr("BIBLE_DEFAULT_VERSION", "acf"), "Version used when a reference names none")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Bible API request timeout")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		lookupCmd(opts),
		matchCmd(opts),
		booksCmd(),
		seedBooksCmd(),
	)

	return cmd
}

func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func newMatcher(opts *options) (*data.Dataset, *reference.Matcher, error) {
	dataset, err := data.LoadDefaultDataset()
	if err != nil {
		return nil, nil, err
	}

	cfg := reference.DefaultConfig()
	cfg.DefaultVersion = opts.defaultVersion

	matcher, err := reference.NewMatcher(dataset, cfg)
	if err != nil {
		return nil, nil, err
	}

	return dataset, matcher, nil
}

func lookupCmd(opts *options) *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "lookup TEXT...",
		Short: "Print the verses of every reference in the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.logLevel)

			dataset, matcher, err := newMatcher(opts)
			if err != nil {
				return err
			}

			if version != "" && !matcher.SupportsVersion(version) {
				return fmt.Errorf("unsupported version %q (supported: %s)", version, strings.Join(matcher.Versions(), ", "))
			}

			client, err := bibleapi.NewClient(bibleapi.Config{
				BaseURL: opts.apiURL,
				Token:   opts.apiToken,
				Timeout: opts.timeout,
			}, logger)
			if err != nil {
				return err
			}

			services := service.NewServices(dataset, matcher, client, logger)

			results, err := services.Reference.Lookup(cmd.Context(), strings.Join(args, " "), strings.ToLower(version))
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "v", "", "Version used when a reference names none")

	return cmd
}

func printResults(w io.Writer, results []service.ResolvedReference) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no references found")
		return
	}

	for _, r := range results {
		title := fmt.Sprintf("%s %d", r.BookName, r.Chapter)
		switch {
		case r.FromVerse != nil && r.ToVerse != nil:
			title += fmt.Sprintf(":%d-%d", *r.FromVerse, *r.ToVerse)
		case r.FromVerse != nil:
			title += fmt.Sprintf(":%d", *r.FromVerse)
		}
		if r.BookName == "" {
			title = "?"
		}

		fmt.Fprintf(w, "%s (%s)\n", title, r.Version)
		for _, v := range r.Verses {
			fmt.Fprintf(w, "  %d %s\n", v.Number, v.Text)
		}
		if r.Error != service.KindNone {
			fmt.Fprintf(w, "  error: %s\n", r.Error)
		}
	}
}

func matchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match TEXT...",
		Short: "Print the references found in the text as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, matcher, err := newMatcher(opts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "\t")
			return enc.Encode(matcher.FindReferences(strings.Join(args, " ")))
		},
	}
}

func booksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the books with their abbreviation and chapter count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := data.LoadDefaultDataset()
			if err != nil {
				return err
			}

			for _, b := range dataset.Books() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-24s %3d\n", b.Abbrev, b.Name, b.Chapters)
			}
			return nil
		},
	}
}

func seedBooksCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "seed-books",
		Short: "Migrate the database and store the embedded book dataset in it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				return fmt.Errorf("--db-dsn or BIBLE_DB_DSN must be provided")
			}

			db, err := sql.Open("postgres", dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.PingContext(cmd.Context()); err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}

			if err := data.RunMigrations(db); err != nil {
				return err
			}

			dataset, err := data.LoadDefaultDataset()
			if err != nil {
				return err
			}

			models := data.NewModels(db)
			for _, b := range dataset.Books() {
				if err := models.Books.Insert(b); err != nil {
					return fmt.Errorf("insert %s: %w", b.Abbrev, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d books\n", dataset.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "db-dsn", os.Getenv("BIBLE_DB_DSN"), "PostgreSQL DSN")

	return cmd
}
