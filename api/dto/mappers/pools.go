// ABOUTME: Mappers project the schedule collection into response DTOs
// ABOUTME: Pure functions, never mutate the collection they read

package mappers

import (
	"sort"
	"strings"

	"pools-app-api/api/dto/responses"
	"pools-app-api/core/domain"
	"pools-app-api/core/schedule"
	"pools-app-api/pkg/utils/gmaps"
)

// ToCardList builds the card-list projection. Facilities keep their
// first-encountered order; each facility's dates are ascending and each
// day's times longest-first.
func ToCardList(c *schedule.Collection) responses.CardListResponse {
	cards := make([]responses.FacilityCardDTO, 0, c.Len())

	for _, f := range c.Facilities() {
		card := responses.FacilityCardDTO{
			Name:    f.Name,
			Slug:    f.Slug,
			Address: f.Address,
			Phone:   f.Phone,
			Days:    []responses.DayScheduleDTO{},
		}
		if f.Type.Valid() {
			card.Type = string(f.Type)
			card.TypeLabel = f.Type.Label()
		}
		if f.Address != "" {
			card.MapURL = gmaps.SearchURL(f.Name + " " + f.Address)
		}

		for _, date := range sortedDates(f) {
			intervals := c.SortedDaySchedule(f.Name, date)
			times := make([]string, 0, len(intervals))
			for _, iv := range intervals {
				times = append(times, iv.String())
			}
			card.Days = append(card.Days, responses.DayScheduleDTO{
				Date:  date.String(),
				Times: times,
			})
		}

		cards = append(cards, card)
	}

	return responses.CardListResponse{Facilities: cards}
}

// ToCalendar builds the calendar projection over the shared axis. Each
// facility maps ISO dates to spans sorted by start time; dates with no
// availability are omitted from the facility's map.
func ToCalendar(c *schedule.Collection, axis domain.DateRange) responses.CalendarResponse {
	axisDates := axis.Dates()

	dates := make([]string, 0, len(axisDates))
	for _, d := range axisDates {
		dates = append(dates, d.String())
	}

	facilities := make(map[string]map[string][]responses.IntervalDTO, c.Len())
	for _, f := range c.Facilities() {
		days := make(map[string][]responses.IntervalDTO)
		for date, intervals := range f.Availability {
			spans := make([]responses.IntervalDTO, 0, len(intervals))
			for _, iv := range intervals {
				spans = append(spans, responses.IntervalDTO{Start: int(iv.Start), End: int(iv.End)})
			}
			sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
			days[date.String()] = spans
		}
		facilities[f.Name] = days
	}

	return responses.CalendarResponse{Dates: dates, Facilities: facilities}
}

// ToTable builds the calendar-table projection: one row per facility, one
// cell per axis date. Cells with several spans join them with a comma,
// longest span first.
func ToTable(c *schedule.Collection, axis domain.DateRange) responses.TableResponse {
	axisDates := axis.Dates()

	dates := make([]string, 0, len(axisDates))
	for _, d := range axisDates {
		dates = append(dates, d.String())
	}

	rows := make([]responses.TableRowDTO, 0, c.Len())
	for _, f := range c.Facilities() {
		cells := make([]string, 0, len(axisDates))
		for _, date := range axisDates {
			intervals := c.SortedDaySchedule(f.Name, date)
			parts := make([]string, 0, len(intervals))
			for _, iv := range intervals {
				parts = append(parts, iv.String())
			}
			cells = append(cells, strings.Join(parts, ", "))
		}
		rows = append(rows, responses.TableRowDTO{
			Facility: f.Name,
			Slug:     f.Slug,
			Cells:    cells,
		})
	}

	return responses.TableResponse{Dates: dates, Rows: rows}
}

// ToOpenings converts the open-on query result, preserving its order
func ToOpenings(query string, openings []schedule.Opening) responses.OpeningsResponse {
	out := make([]responses.OpeningDTO, 0, len(openings))
	for _, o := range openings {
		out = append(out, responses.OpeningDTO{
			Facility: o.Facility,
			Date:     o.Date.String(),
			Start:    int(o.Interval.Start),
			End:      int(o.Interval.End),
			Times:    o.Interval.String(),
		})
	}
	return responses.OpeningsResponse{Query: query, Openings: out}
}

// sortedDates returns a facility's schedule dates ascending
func sortedDates(f *domain.Facility) []domain.Date {
	dates := f.Dates()
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
