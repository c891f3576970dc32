// Package cli implements the fight-events command line interface.
//
// The root command lists upcoming events from the Sherdog listings page,
// optionally filtered to one organization. Subcommands show a single event's
// fight card, report-and-notify events that are new since the last run, and
// export the upcoming schedule as an iCalendar file.
package cli
