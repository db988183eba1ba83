// Package holidays implements the public holiday MCP tools.
//
// Tool logic is shared; Native and Legacy shape a Result for the two ways the
// host can invoke a tool.
package holidays

import (
	"context"
	"fmt"

	"mcp-funcs/internal/nager"
)

// Service is the upstream holiday lookup used by the tools.
type Service interface {
	UpcomingHolidays(ctx context.Context, country string) ([]nager.Holiday, error)
	HolidaysByYear(ctx context.Context, year int, country string) ([]nager.Holiday, error)
	IsTodayHoliday(ctx context.Context, country string) (nager.CheckResult, error)
}

const (
	errCountryRequired     = "country_code required"
	errYearCountryRequired = "year and country_code required"
)

// Tools runs the holiday tools against a Service.
type Tools struct {
	svc Service
}

// New returns the holiday tools backed by svc.
func New(svc Service) *Tools {
	return &Tools{svc: svc}
}

// UpcomingHolidays implements get_upcoming_holidays.
func (t *Tools) UpcomingHolidays(ctx context.Context, args Args) Result[[]nager.Holiday] {
	country := args.CountryCode()
	if country == "" {
		return failure[[]nager.Holiday](InvalidArgument, errCountryRequired)
	}
	list, err := t.svc.UpcomingHolidays(ctx, country)
	if err != nil {
		return fromError[[]nager.Holiday](err)
	}
	return success(list)
}

// IsTodayHoliday implements is_today_holiday.
func (t *Tools) IsTodayHoliday(ctx context.Context, args Args) Result[Message] {
	country := args.CountryCode()
	if country == "" {
		return failure[Message](InvalidArgument, errCountryRequired)
	}
	res, err := t.svc.IsTodayHoliday(ctx, country)
	if err != nil {
		return fromError[Message](err)
	}
	if !res.IsHoliday {
		return success(Message{Message: fmt.Sprintf("No, today is not a public holiday in %s.", country)})
	}
	name := res.Name
	if name == "" {
		name = "a public holiday"
	}
	return success(Message{Message: fmt.Sprintf("Yes, today is %s in %s.", name, country)})
}

// HolidaysByYear implements get_holidays_by_year.
func (t *Tools) HolidaysByYear(ctx context.Context, args Args) Result[[]nager.Holiday] {
	country := args.CountryCode()
	if country == "" {
		return failure[[]nager.Holiday](InvalidArgument, errCountryRequired)
	}
	year := args.Year()
	if year == 0 {
		return failure[[]nager.Holiday](InvalidArgument, errYearCountryRequired)
	}
	list, err := t.svc.HolidaysByYear(ctx, year, country)
	if err != nil {
		return fromError[[]nager.Holiday](err)
	}
	return success(list)
}

// Call runs the tool registered under the host function name fn.
func (t *Tools) Call(ctx context.Context, fn string, args Args) (Result[any], bool) {
	switch fn {
	case FuncUpcomingHolidays:
		return erase(t.UpcomingHolidays(ctx, args)), true
	case FuncIsTodayHoliday:
		return erase(t.IsTodayHoliday(ctx, args)), true
	case FuncHolidaysByYear:
		return erase(t.HolidaysByYear(ctx, args)), true
	}
	return Result[any]{}, false
}
