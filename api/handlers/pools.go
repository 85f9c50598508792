// ABOUTME: Pool schedule handlers for the Huma API
// ABOUTME: Serves the card list, calendar, table, open-on, and refresh endpoints

package handlers

import (
	"context"
	"net/http"

	"github.com/araddon/dateparse"
	"github.com/danielgtaylor/huma/v2"

	"pools-app-api/api/dto/mappers"
	"pools-app-api/api/dto/responses"
	"pools-app-api/core/schedule"
)

// ScheduleSource defines the methods the handlers need from the
// orchestration service
type ScheduleSource interface {
	Current(ctx context.Context) (*schedule.Collection, error)
	Refresh(ctx context.Context) (*schedule.Collection, error)
}

// PoolHandler handles pool schedule HTTP requests
type PoolHandler struct {
	source ScheduleSource
}

// NewPoolHandler creates a new pool handler
func NewPoolHandler(source ScheduleSource) *PoolHandler {
	return &PoolHandler{source: source}
}

// RegisterRoutes registers all pool schedule routes
func (h *PoolHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPools",
		Method:      http.MethodGet,
		Path:        "/pools",
		Summary:     "List facilities with their schedules",
		Description: "Returns one card per facility: metadata, map link, and per-day availability with the longest opening first",
		Tags:        []string{"Pools"},
	}, h.ListPools)

	huma.Register(api, huma.Operation{
		OperationID: "getCalendar",
		Method:      http.MethodGet,
		Path:        "/pools/calendar",
		Summary:     "Get the availability calendar",
		Description: "Returns the shared date axis and per-facility spans in minutes since midnight, sorted by start time",
		Tags:        []string{"Pools"},
	}, h.GetCalendar)

	huma.Register(api, huma.Operation{
		OperationID: "getTable",
		Method:      http.MethodGet,
		Path:        "/pools/table",
		Summary:     "Get the availability table",
		Description: "Returns one row per facility with a formatted cell for every date on the shared axis",
		Tags:        []string{"Pools"},
	}, h.GetTable)

	huma.Register(api, huma.Operation{
		OperationID: "findOpenPools",
		Method:      http.MethodGet,
		Path:        "/pools/open",
		Summary:     "Find pools open on a calendar day",
		Description: "Matches on day and month only, ignoring the year, and orders the longest openings first",
		Tags:        []string{"Pools"},
	}, h.FindOpenPools)

	huma.Register(api, huma.Operation{
		OperationID: "refreshSchedules",
		Method:      http.MethodPost,
		Path:        "/refresh",
		Summary:     "Re-scrape the source site",
		Description: "Rebuilds the schedule collection from the source site, replacing the stored snapshot",
		Tags:        []string{"Pools"},
	}, h.RefreshSchedules)
}

// ListPoolsOutput defines the output for the ListPools operation
type ListPoolsOutput struct {
	Body responses.CardListResponse
}

// ListPools handles GET /pools
func (h *PoolHandler) ListPools(ctx context.Context, _ *struct{}) (*ListPoolsOutput, error) {
	collection, err := h.source.Current(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListPoolsOutput{Body: mappers.ToCardList(collection)}, nil
}

// GetCalendarOutput defines the output for the GetCalendar operation
type GetCalendarOutput struct {
	Body responses.CalendarResponse
}

// GetCalendar handles GET /pools/calendar
func (h *PoolHandler) GetCalendar(ctx context.Context, _ *struct{}) (*GetCalendarOutput, error) {
	collection, err := h.source.Current(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	axis, err := schedule.ComputeAxis(collection)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetCalendarOutput{Body: mappers.ToCalendar(collection, axis)}, nil
}

// GetTableOutput defines the output for the GetTable operation
type GetTableOutput struct {
	Body responses.TableResponse
}

// GetTable handles GET /pools/table
func (h *PoolHandler) GetTable(ctx context.Context, _ *struct{}) (*GetTableOutput, error) {
	collection, err := h.source.Current(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	axis, err := schedule.ComputeAxis(collection)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetTableOutput{Body: mappers.ToTable(collection, axis)}, nil
}

// FindOpenPoolsInput defines the input for the FindOpenPools operation
type FindOpenPoolsInput struct {
	Date string `query:"date" required:"true" example:"June 1" doc:"Calendar day to match; the year is ignored"`
}

// FindOpenPoolsOutput defines the output for the FindOpenPools operation
type FindOpenPoolsOutput struct {
	Body responses.OpeningsResponse
}

// FindOpenPools handles GET /pools/open
func (h *PoolHandler) FindOpenPools(ctx context.Context, input *FindOpenPoolsInput) (*FindOpenPoolsOutput, error) {
	parsed, err := dateparse.ParseAny(input.Date)
	if err != nil {
		return nil, huma.Error400BadRequest("Unparseable date: "+input.Date, err)
	}

	collection, err := h.source.Current(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	openings := collection.OpenOn(parsed.Month(), parsed.Day())

	return &FindOpenPoolsOutput{Body: mappers.ToOpenings(input.Date, openings)}, nil
}

// RefreshSchedulesOutput defines the output for the RefreshSchedules operation
type RefreshSchedulesOutput struct {
	Body responses.RefreshResponse
}

// RefreshSchedules handles POST /refresh
func (h *PoolHandler) RefreshSchedules(ctx context.Context, _ *struct{}) (*RefreshSchedulesOutput, error) {
	collection, err := h.source.Refresh(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RefreshSchedulesOutput{
		Body: responses.RefreshResponse{Facilities: collection.Len()},
	}, nil
}
