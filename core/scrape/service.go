// ABOUTME: Schedule scraping service that extracts weekly drop-in availability
// ABOUTME: Parses the facility listing page into a schedule collection

package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"pools-app-api/core/domain"
	"pools-app-api/core/interfaces"
	"pools-app-api/core/schedule"
	"pools-app-api/pkg/utils/slug"
)

// programFilter selects the schedule rows to ingest. Rows whose program
// name does not contain this (case-insensitive) are skipped.
const programFilter = "leisure"

// weekdayColumns are the data-info attributes of the seven day cells, in
// block order. The source convention is Sunday-start weeks.
var weekdayColumns = [schedule.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Warning reports a non-fatal parse failure for one schedule cell
type Warning struct {
	Facility string
	Date     domain.Date
	Cell     string
	Err      error
}

// String renders the warning for logs
func (w Warning) String() string {
	return fmt.Sprintf("%s: cell %q on %s: %v", w.Facility, w.Cell, w.Date, w.Err)
}

// ScheduleService fetches and parses the drop-in schedule page
type ScheduleService struct {
	deps        interfaces.Dependencies
	scheduleURL string
	failFast    bool
}

// NewScheduleService creates a new schedule scraping service.
// With failFast set, the first malformed cell aborts the whole run;
// otherwise malformed cells become warnings and parsing continues.
func NewScheduleService(deps interfaces.Dependencies, scheduleURL string, failFast bool) *ScheduleService {
	return &ScheduleService{
		deps:        deps,
		scheduleURL: scheduleURL,
		failFast:    failFast,
	}
}

// FetchSchedules downloads the schedule page and parses it into a
// collection. Facilities with no matching schedule rows are still recorded,
// with empty availability.
func (s *ScheduleService) FetchSchedules(ctx context.Context) (*schedule.Collection, []Warning, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, s.scheduleURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch schedule page: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, nil, fmt.Errorf("schedule page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse schedule page: %w", err)
	}

	collection, warnings, err := s.parseDocument(doc)
	if err != nil {
		return nil, nil, err
	}

	s.deps.Logger.Info("scraped schedule page", map[string]interface{}{
		"facilities": collection.Len(),
		"warnings":   len(warnings),
	})

	return collection, warnings, nil
}

// parseDocument walks the facility listings and fills the collection
func (s *ScheduleService) parseDocument(doc *goquery.Document) (*schedule.Collection, []Warning, error) {
	collection := schedule.NewCollection()
	var warnings []Warning
	var abort error

	doc.Find("div.pfrListing").EachWithBreak(func(_ int, listing *goquery.Selection) bool {
		name := strings.TrimSpace(listing.Find("h2 a").First().Text())
		if name == "" {
			return true
		}

		facility, err := collection.Ensure(name)
		if err != nil {
			abort = err
			return false
		}
		facility.Slug = slug.Make(name)

		listing.Find("table tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			program := row.Find(".coursenamemobiletable > strong").First().Text()
			if !strings.Contains(strings.ToLower(program), programFilter) {
				return true
			}

			anchor, err := parseWeekAnchor(row.Find("td > strong").First().Text())
			if err != nil {
				if s.failFast {
					abort = err
					return false
				}
				warnings = append(warnings, Warning{Facility: name, Cell: row.Find("td > strong").First().Text(), Err: err})
				return true
			}

			var slots [schedule.DaysPerWeek]string
			for i, day := range weekdayColumns {
				slots[i] = row.Find(fmt.Sprintf("td[data-info=%q]", day)).First().Text()
			}

			emitted, failures := schedule.ExpandWeek(anchor, slots)
			for _, cellErr := range failures {
				if s.failFast {
					abort = cellErr
					return false
				}
				warnings = append(warnings, Warning{Facility: name, Date: cellErr.Date, Cell: cellErr.Cell, Err: cellErr.Err})
			}

			for _, a := range emitted {
				if err := collection.AddAvailability(name, a.Date, a.Interval); err != nil {
					if s.failFast {
						abort = err
						return false
					}
					warnings = append(warnings, Warning{Facility: name, Date: a.Date, Cell: a.Interval.String(), Err: err})
				}
			}

			return true
		})

		return abort == nil
	})

	if abort != nil {
		return nil, nil, abort
	}

	for _, w := range warnings {
		s.deps.Logger.Warn("skipped malformed schedule cell", map[string]interface{}{
			"facility": w.Facility,
			"date":     w.Date.String(),
			"cell":     w.Cell,
			"error":    w.Err.Error(),
		})
	}

	return collection, warnings, nil
}

// parseWeekAnchor extracts the week's first day from a range caption like
// "May 26 to June 1". The caption omits the year, so the current year is
// assumed when the text alone does not parse.
func parseWeekAnchor(caption string) (domain.Date, error) {
	caption = strings.TrimSpace(caption)

	idx := strings.Index(caption, " to ")
	if idx < 0 {
		return domain.Date{}, fmt.Errorf("week caption %q has no date range", caption)
	}
	fromText := strings.TrimSpace(caption[:idx])

	t, err := dateparse.ParseAny(fromText)
	if err != nil || t.Year() == 0 {
		t, err = dateparse.ParseAny(fmt.Sprintf("%s, %d", fromText, time.Now().Year()))
		if err != nil {
			return domain.Date{}, fmt.Errorf("unparseable week start %q: %w", fromText, err)
		}
	}

	return domain.DateOf(t), nil
}
