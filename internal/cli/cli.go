package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amehta/fight-events/internal/calendar"
	"github.com/amehta/fight-events/internal/config"
	"github.com/amehta/fight-events/internal/event"
	"github.com/amehta/fight-events/internal/logger"
	"github.com/amehta/fight-events/internal/notifier"
	"github.com/amehta/fight-events/internal/orgs"
	"github.com/amehta/fight-events/internal/scraper"
	"github.com/amehta/fight-events/internal/storage"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewEvents = 2
)

var (
	flagConfig  string
	flagOrg     string
	flagFormat  string
	flagVerbose bool
	flagDryRun  bool
	flagOut     string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fight-events",
		Short: "List upcoming MMA events from Sherdog",
		Long: `A CLI tool for upcoming combat-sports events.
Scrapes the Sherdog events listing, filters out past events, and renders
start times in the configured display timezones.`,
		RunE: runList,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().StringVar(&flagOrg, "org", "", "Organization short code to filter by (e.g. UFC, PFL)")

	cmd.AddCommand(newCardCmd(), newNotifyCmd(), newCalendarCmd())

	return cmd
}

func newCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card <event-id>",
		Short: "Show the full fight card for an event",
		Args:  cobra.ExactArgs(1),
		RunE:  runCard,
	}
}

func newNotifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Report events that are new since the last run",
		Long: `Compares the current listing against the previous snapshot and posts
an announcement for each newly-listed event. Exits with code 2 when new
events were found.`,
		RunE: runNotify,
	}
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print messages without sending")
	cmd.Flags().StringVar(&flagOrg, "org", "", "Organization short code to filter by")
	return cmd
}

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Export upcoming events as an iCalendar file",
		RunE:  runCalendar,
	}
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&flagOrg, "org", "", "Organization short code to filter by")
	return cmd
}

// setup loads configuration shared by all commands.
func setup() (*config.Config, *scraper.Scraper, orgs.AliasTable, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, err
	}

	sc, err := scraper.New(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initializing scraper: %w", err)
	}

	aliases := orgs.Default()
	for code, variants := range cfg.Orgs {
		aliases[code] = variants
	}

	return cfg, sc, aliases, nil
}

func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// runList fetches the listing and prints upcoming events.
func runList(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	cfg, sc, aliases, err := setup()
	if err != nil {
		return err
	}

	events, err := sc.FetchEvents()
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}
	logger.Debug("fetched listing", logger.Fields{"events": len(events)})

	// Snapshot the unfiltered listing so card lookups and diffs see everything.
	if store, err := storage.New(cfg.Storage.DataDir); err == nil {
		if err := store.SaveEvents(events); err != nil {
			logger.Warn("saving snapshot failed", nil)
		}
	}

	events = aliases.Filter(flagOrg, events)
	return WriteEvents(os.Stdout, events, format)
}

// runCard resolves an event ID to its URL and prints the fight card.
func runCard(cmd *cobra.Command, args []string) error {
	eventID := args[0]
	format, err := outputFormat()
	if err != nil {
		return err
	}
	cfg, sc, _, err := setup()
	if err != nil {
		return err
	}

	evt, err := findEvent(cfg, sc, eventID)
	if err != nil {
		return err
	}

	detail, err := sc.FetchEventDetail(evt.URL)
	if err != nil {
		return fmt.Errorf("fetching event detail: %w", err)
	}
	return WriteEventDetail(os.Stdout, detail, format)
}

// findEvent looks an event ID up in the stored snapshot, refetching the
// listing when the snapshot doesn't have it.
func findEvent(cfg *config.Config, sc *scraper.Scraper, eventID string) (*event.Event, error) {
	store, err := storage.New(cfg.Storage.DataDir)
	if err == nil {
		if evt, err := store.GetEventByID(eventID); err == nil {
			return evt, nil
		}
	}

	events, err := sc.FetchEvents()
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	if store != nil {
		if err := store.SaveEvents(events); err != nil {
			logger.Warn("saving snapshot failed", nil)
		}
	}
	for _, evt := range events {
		if evt.ID == eventID {
			return evt, nil
		}
	}
	return nil, fmt.Errorf("event not found: %s", eventID)
}

// runNotify diffs the current listing against the last snapshot and announces
// new events.
func runNotify(cmd *cobra.Command, args []string) error {
	cfg, sc, aliases, err := setup()
	if err != nil {
		return err
	}

	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	previous, err := store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	events, err := sc.FetchEvents()
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}

	newEvents := aliases.Filter(flagOrg, event.Diff(previous, events))

	if err := store.SaveEvents(events); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if len(newEvents) == 0 {
		fmt.Println("No new events found.")
		return nil
	}

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier(os.Stdout)
	} else {
		n, err = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			return err
		}
	}
	if err := n.Notify(newEvents); err != nil {
		return fmt.Errorf("sending notifications: %w", err)
	}

	os.Exit(ExitNewEvents)
	return nil
}

// runCalendar exports the current listing as iCalendar text.
func runCalendar(cmd *cobra.Command, args []string) error {
	_, sc, aliases, err := setup()
	if err != nil {
		return err
	}

	events, err := sc.FetchEvents()
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}
	events = aliases.Filter(flagOrg, events)

	out := calendar.Serialize(events)
	if flagOut == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(flagOut, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	fmt.Printf("Wrote %d events to %s\n", len(events), flagOut)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
