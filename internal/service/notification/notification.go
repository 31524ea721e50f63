package notification

import (
	"context"
	"encoding/csv"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/healinghandsmipt/website_backend/config"
)

// Item is one active banner notification.
type Item struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Link      string `json:"link,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Service serves the rotating banner sourced from a published-spreadsheet CSV
// feed. Feed problems degrade to an empty banner, never an error: the banner
// is decoration, not a dependency.
type Service interface {
	Active(ctx context.Context) []Item
}

type feedService struct {
	feedURL string
	ttl     time.Duration
	max     int
	client  *http.Client
	now     func() time.Time

	mu        sync.Mutex
	cached    []Item
	fetchedAt time.Time
}

func New(cfg config.NotificationsConfig) Service {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	max := cfg.MaxItems
	if max <= 0 {
		max = 3
	}
	return &feedService{
		feedURL: cfg.FeedURL,
		ttl:     ttl,
		max:     max,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

func (s *feedService) Active(ctx context.Context) []Item {
	if s.feedURL == "" {
		return []Item{}
	}

	now := s.now()

	s.mu.Lock()
	if !s.fetchedAt.IsZero() && now.Sub(s.fetchedAt) < s.ttl {
		items := s.cached
		s.mu.Unlock()
		return items
	}
	s.mu.Unlock()

	// Fetch outside the lock; concurrent refreshes are harmless, last write
	// wins. Failures are cached too so a broken feed is not hammered.
	items := s.fetch(ctx, now)

	s.mu.Lock()
	s.cached = items
	s.fetchedAt = now
	s.mu.Unlock()

	return items
}

func (s *feedService) fetch(ctx context.Context, now time.Time) []Item {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		slog.WarnContext(ctx, "notification feed url invalid")
		return []Item{}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "notification feed fetch failed")
		return []Item{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "notification feed fetch failed", "status", resp.StatusCode)
		return []Item{}
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		slog.WarnContext(ctx, "notification feed parse failed")
		return []Item{}
	}

	return selectActive(records, now, s.max)
}

var spaceRun = regexp.MustCompile(`\s+`)

// selectActive applies the feed contract: active rows inside their date
// window, newest start first, truncated to max. IDs are stable across sorting
// so banner dismissal tracking on the client keeps working.
func selectActive(records [][]string, now time.Time, max int) []Item {
	items := []Item{}
	if len(records) < 2 {
		return items
	}

	col := headerIndex(records[0])
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	for _, rec := range records[1:] {
		message := field(rec, "Message")
		if message == "" {
			continue
		}

		switch strings.ToLower(field(rec, "Active")) {
		case "true", "1", "yes":
		default:
			continue
		}

		start := field(rec, "StartDate")
		if t, ok := parseFeedDate(start); ok && t.After(now) {
			continue // not started yet
		}
		end := field(rec, "EndDate")
		if t, ok := parseFeedDate(end); ok {
			endOfDay := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
			if endOfDay.Before(now) {
				continue // expired
			}
		}

		compact := spaceRun.ReplaceAllString(message, "")
		items = append(items, Item{
			ID:        "note-" + strconv.Itoa(len(items)) + "-" + truncateRunes(compact, 20),
			Message:   message,
			Link:      field(rec, "Link"),
			StartDate: start,
			EndDate:   end,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		ti, iok := parseFeedDate(items[i].StartDate)
		tj, jok := parseFeedDate(items[j].StartDate)
		switch {
		case !iok && !jok:
			return false
		case !iok:
			return false // undated rows sink
		case !jok:
			return true
		default:
			return ti.After(tj) // newest first
		}
	})

	if len(items) > max {
		items = items[:max]
	}
	return items
}

func headerIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	return col
}

func parseFeedDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// Unparseable dates are treated as unset rather than excluding the row.
	return time.Time{}, false
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
