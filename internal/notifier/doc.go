// Package notifier provides notification interfaces and implementations for
// newly-announced fight events.
//
// The notifier package posts event announcements to Telegram, with a dry-run
// implementation that prints the messages instead of sending them. Message
// formatting and send rate limiting live here.
package notifier
