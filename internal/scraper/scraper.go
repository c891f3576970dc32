package scraper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/html"

	"github.com/amehta/fight-events/internal/config"
	"github.com/amehta/fight-events/internal/event"
	"github.com/amehta/fight-events/internal/logger"
)

const fetchRetries = 3

// Scraper handles fetching and parsing Sherdog event pages
type Scraper struct {
	client    *http.Client
	baseURL   string
	eventsURL string
	userAgent string
	zones     []event.Zone
	ref       *time.Location
	now       func() time.Time
}

// New creates a Scraper from the given configuration.
func New(cfg *config.Config) (*Scraper, error) {
	zones, err := cfg.DisplayZones()
	if err != nil {
		return nil, err
	}
	ref, err := cfg.ReferenceLocation()
	if err != nil {
		return nil, err
	}

	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Scraper.Timeout,
		},
		baseURL:   cfg.Scraper.BaseURL,
		eventsURL: cfg.Scraper.EventsURL,
		userAgent: cfg.Scraper.UserAgent,
		zones:     zones,
		ref:       ref,
		now:       time.Now,
	}, nil
}

// FetchEvents fetches the listings page and returns the upcoming events in
// document order. Fights are not populated; use FetchEventDetail for a card.
func (s *Scraper) FetchEvents() ([]*event.Event, error) {
	body, err := s.fetch(s.eventsURL)
	if err != nil {
		return nil, fmt.Errorf("fetching events page: %w", err)
	}
	return s.parseListing(bytes.NewReader(body), s.now())
}

// FetchEventDetail fetches a single event page and returns the event with its
// full fight card.
func (s *Scraper) FetchEventDetail(eventURL string) (*event.Event, error) {
	body, err := s.fetch(eventURL)
	if err != nil {
		return nil, fmt.Errorf("fetching event page: %w", err)
	}

	evt, err := s.parseDetail(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	evt.ID = event.IDFromPath(eventURL)
	evt.URL = eventURL
	return evt, nil
}

// fetch retrieves a URL with retries. Transport errors and 5xx responses are
// retried with exponential backoff; 4xx responses are permanent.
func (s *Scraper) fetch(url string) ([]byte, error) {
	var body []byte
	op := func() error {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	err := backoff.Retry(op, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchRetries))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// parseListing extracts upcoming events from the listings document. Rows
// missing a required field are skipped; rows past the visibility cutoff
// relative to now are omitted.
func (s *Scraper) parseListing(r io.Reader, now time.Time) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]*event.Event, 0)
	doc.Find("tr[itemtype='http://schema.org/Event']").Each(func(i int, row *goquery.Selection) {
		evt, ok := s.listingEvent(row, now)
		if !ok {
			return
		}
		events = append(events, evt)
	})

	return events, nil
}

// listingEvent extracts one Event from a listing row. The second return value
// is false when a required field is absent or the event is past its cutoff.
func (s *Scraper) listingEvent(row *goquery.Selection, now time.Time) (*event.Event, bool) {
	rawDate, ok := attrOf(row.Find("meta[itemprop='startDate']"), "content")
	if !ok {
		logger.Debug("skipping listing row: no start date", nil)
		return nil, false
	}
	title, ok := attrOf(row.Find("meta[itemprop='name']"), "content")
	if !ok {
		logger.Debug("skipping listing row: no title", nil)
		return nil, false
	}
	org := textOf(row.Find("td:nth-of-type(2) a"))
	if org == "" {
		logger.Debug("skipping listing row: no organization link", logger.Fields{"title": title})
		return nil, false
	}
	path, ok := attrOf(row.Find("a[itemprop='url']"), "href")
	if !ok {
		logger.Debug("skipping listing row: no event URL", logger.Fields{"title": title})
		return nil, false
	}

	// A date that is present but unparseable keeps the row visible with the
	// raw string as its display form.
	display := rawDate
	start, err := event.ParseStartTime(rawDate)
	if err == nil {
		display = event.FormatDisplay(start, s.zones)
	} else {
		logger.Warn("unparseable start date on listing row", logger.Fields{"title": title, "raw": rawDate})
	}
	if !event.Visible(start, now, s.ref) {
		return nil, false
	}

	return &event.Event{
		ID:           event.IDFromPath(path),
		Name:         event.BuildName(title, org),
		Organization: org,
		StartTime:    start,
		DateDisplay:  display,
		Location:     textOf(row.Find("span[itemprop='location']")),
		URL:          s.baseURL + path,
	}, true
}

// parseDetail extracts an event and its fight card from an event page.
// Main-card fights come first, then undercard rows, each group in document
// order. A malformed fight is skipped, not fatal.
func (s *Scraper) parseDetail(r io.Reader) (*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	name := textOf(doc.Find("h1 span[itemprop='name']"))
	if name == "" {
		return nil, fmt.Errorf("event name not found")
	}
	evt := &event.Event{Name: name}

	if rawDate, ok := attrOf(doc.Find("div.info span meta[itemprop='startDate']"), "content"); ok {
		evt.DateDisplay = rawDate
		if start, err := event.ParseStartTime(rawDate); err == nil {
			evt.StartTime = start
			evt.DateDisplay = event.FormatDisplay(start, s.zones)
		} else {
			logger.Warn("unparseable start date on event page", logger.Fields{"name": name, "raw": rawDate})
		}
	}
	evt.Location = textOf(doc.Find("div.info span span[itemprop='location']"))

	doc.Find("div.fight_card").Each(func(i int, card *goquery.Selection) {
		f, ok := s.fight(card, mainCardSelectors)
		if !ok {
			logger.Debug("skipping malformed main card fight", logger.Fields{"event": name, "index": i})
			return
		}
		evt.Fights = append(evt.Fights, f)
	})

	doc.Find("tr[itemprop='subEvent']").Each(func(i int, row *goquery.Selection) {
		f, ok := s.fight(row, undercardSelectors)
		if !ok {
			logger.Debug("skipping malformed undercard fight", logger.Fields{"event": name, "index": i})
			return
		}
		evt.Fights = append(evt.Fights, f)
	})

	return evt, nil
}

// sideSelectors locates one fighter's fields inside a fight container.
type sideSelectors struct {
	root   string
	name   string
	record string
	image  string
}

// fightSelectors describes where the two sides and the weight class live for
// one of the two markup shapes a detail page uses.
type fightSelectors struct {
	left        sideSelectors
	right       sideSelectors
	weightClass string
}

var mainCardSelectors = fightSelectors{
	left: sideSelectors{
		root:   ".fighter.left_side",
		name:   "span[itemprop='name']",
		record: ".record",
		image:  "img[itemprop='image']",
	},
	right: sideSelectors{
		root:   ".fighter.right_side",
		name:   "span[itemprop='name']",
		record: ".record",
		image:  "img[itemprop='image']",
	},
	weightClass: ".versus .weight_class",
}

// Undercard rows put the left fighter in the right-aligned cell.
var undercardSelectors = fightSelectors{
	left: sideSelectors{
		root:   "td.text_right",
		name:   "span[itemprop='name']",
		record: "span.record em",
		image:  "img",
	},
	right: sideSelectors{
		root:   "td.text_left",
		name:   "span[itemprop='name']",
		record: "span.record em",
		image:  "img",
	},
	weightClass: "td.text_center .weight_class",
}

// fight extracts one bout from a container using the given selector set.
func (s *Scraper) fight(container *goquery.Selection, sels fightSelectors) (event.Fight, bool) {
	left, ok := s.fighter(container, sels.left)
	if !ok {
		return event.Fight{}, false
	}
	right, ok := s.fighter(container, sels.right)
	if !ok {
		return event.Fight{}, false
	}
	return event.Fight{
		FighterLeft:  left,
		FighterRight: right,
		WeightClass:  textOf(container.Find(sels.weightClass)),
	}, true
}

// fighter extracts one side of a bout. The name is required; record and image
// are display-only and degrade to empty strings when absent.
func (s *Scraper) fighter(container *goquery.Selection, sels sideSelectors) (event.FighterRef, bool) {
	side := container.Find(sels.root)
	if side.Length() == 0 {
		return event.FighterRef{}, false
	}
	name := textOf(side.Find(sels.name))
	if name == "" {
		return event.FighterRef{}, false
	}

	img, _ := attrOf(side.Find(sels.image), "src")
	return event.FighterRef{
		Name:   name,
		Record: textOf(side.Find(sels.record)),
		Image:  event.ResolveImageURL(img, s.baseURL),
	}, true
}

// attrOf returns the named attribute of the first matched element. The second
// return value is false when nothing matched or the attribute is empty.
func attrOf(sel *goquery.Selection, name string) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	val, ok := sel.First().Attr(name)
	val = strings.TrimSpace(val)
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// textOf returns the first matched element's text with text nodes joined by
// single spaces. goquery's Text concatenates nodes directly, which glues
// together names split across <br> tags.
func textOf(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if fields := strings.Fields(n.Data); len(fields) > 0 {
				parts = append(parts, strings.Join(fields, " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(sel.Nodes[0])
	return strings.Join(parts, " ")
}
