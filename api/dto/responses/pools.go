// ABOUTME: Response DTOs for the pool schedule endpoints
// ABOUTME: Defines the card list, calendar, table, and openings wire shapes

package responses

// IntervalDTO is one availability span in minutes since midnight
type IntervalDTO struct {
	Start int `json:"start" doc:"First minute of the span since midnight"`
	End   int `json:"end" doc:"Minute the span ends, exclusive"`
}

// DayScheduleDTO is one facility day on a card, times longest-first
type DayScheduleDTO struct {
	Date  string   `json:"date" doc:"ISO calendar date"`
	Times []string `json:"times" doc:"Formatted clock ranges, longest first"`
}

// FacilityCardDTO is one facility card with metadata and per-day schedules
type FacilityCardDTO struct {
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Type      string           `json:"type,omitempty"`
	TypeLabel string           `json:"type_label,omitempty"`
	Address   string           `json:"address,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	MapURL    string           `json:"map_url,omitempty" doc:"Google Maps search link for the facility"`
	Days      []DayScheduleDTO `json:"days"`
}

// CardListResponse is the card-list projection of the whole collection
type CardListResponse struct {
	Facilities []FacilityCardDTO `json:"facilities"`
}

// CalendarResponse is the machine-readable calendar projection: the shared
// date axis plus facility -> date -> spans sorted by start
type CalendarResponse struct {
	Dates      []string                            `json:"dates" doc:"Shared axis of ISO dates, earliest to latest"`
	Facilities map[string]map[string][]IntervalDTO `json:"facilities"`
}

// TableRowDTO is one facility row of the calendar table
type TableRowDTO struct {
	Facility string   `json:"facility"`
	Slug     string   `json:"slug"`
	Cells    []string `json:"cells" doc:"One formatted cell per axis date, empty when closed"`
}

// TableResponse is the calendar-table projection
type TableResponse struct {
	Dates []string      `json:"dates"`
	Rows  []TableRowDTO `json:"rows"`
}

// OpeningDTO is one interval matched by the open-on query
type OpeningDTO struct {
	Facility string `json:"facility"`
	Date     string `json:"date"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Times    string `json:"times" doc:"Formatted clock range"`
}

// OpeningsResponse is the open-on query result, longest openings first
type OpeningsResponse struct {
	Query    string       `json:"query" doc:"The date text the query matched on"`
	Openings []OpeningDTO `json:"openings"`
}

// RefreshResponse reports the outcome of a forced re-scrape
type RefreshResponse struct {
	Facilities int `json:"facilities"`
}
