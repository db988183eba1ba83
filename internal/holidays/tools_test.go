package holidays

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"mcp-funcs/internal/nager"
)

type fakeService struct {
	calls   int
	country string
	year    int
	list    []nager.Holiday
	check   nager.CheckResult
	err     error
}

func (f *fakeService) UpcomingHolidays(_ context.Context, country string) ([]nager.Holiday, error) {
	f.calls++
	f.country = country
	return f.list, f.err
}

func (f *fakeService) HolidaysByYear(_ context.Context, year int, country string) ([]nager.Holiday, error) {
	f.calls++
	f.country, f.year = country, year
	return f.list, f.err
}

func (f *fakeService) IsTodayHoliday(_ context.Context, country string) (nager.CheckResult, error) {
	f.calls++
	f.country = country
	return f.check, f.err
}

var samplePL = []nager.Holiday{
	{Date: "2026-11-01", LocalName: "Wszystkich Świętych", Name: "All Saints' Day", CountryCode: "PL", Fixed: true, Global: true, Types: []string{"Public"}},
}

func TestMissingCountryNeverCallsUpstream(t *testing.T) {
	for _, fn := range []string{FuncUpcomingHolidays, FuncIsTodayHoliday, FuncHolidaysByYear} {
		t.Run(fn, func(t *testing.T) {
			svc := &fakeService{}
			res, ok := New(svc).Call(context.Background(), fn, Args{"year": "2025"})
			require.True(t, ok)
			require.Equal(t, InvalidArgument, res.Kind)
			require.Equal(t, "country_code required", res.Message)
			require.Zero(t, svc.calls)

			require.JSONEq(t, `{"error":"country_code required"}`, Native(res))
			legacy := Legacy(res)
			require.Equal(t, http.StatusBadRequest, legacy.Status)
			require.Equal(t, errorBody{Error: "country_code required"}, legacy.Body)
		})
	}
}

func TestHolidaysByYearRequiresYear(t *testing.T) {
	for _, year := range []any{nil, "", "abc", 0.0, "20.5"} {
		svc := &fakeService{}
		res := New(svc).HolidaysByYear(context.Background(), Args{"country_code": "pl", "year": year})
		require.Equal(t, InvalidArgument, res.Kind, "year %v", year)
		require.Equal(t, "year and country_code required", res.Message)
		require.Zero(t, svc.calls)
	}
}

func TestArgumentShapes(t *testing.T) {
	shapes := []Args{
		{"country_code": "pl", "year": "2025"},
		{"params": map[string]any{"country_code": "pl", "year": 2025.0}},
		{"input": map[string]any{"country_code": "pl", "year": "2025"}},
		{"country_code": "", "params": map[string]any{"country_code": "pl"}, "input": map[string]any{"year": "2025"}},
	}
	for _, args := range shapes {
		svc := &fakeService{list: samplePL}
		res := New(svc).HolidaysByYear(context.Background(), args)
		require.False(t, res.Failed(), "args %v", args)
		require.Equal(t, "PL", svc.country)
		require.Equal(t, 2025, svc.year)
		require.Equal(t, samplePL, res.Value)
	}
}

func TestArgsFirstNonEmptyWins(t *testing.T) {
	args := Args{
		"country_code": "de",
		"params":       map[string]any{"country_code": "pl"},
	}
	require.Equal(t, "DE", args.CountryCode())

	args = Args{"params": "not an object", "input": map[string]any{"country_code": " us "}}
	require.Equal(t, "US", args.CountryCode())

	require.Equal(t, "", Args{"country_code": 42.0}.CountryCode())
}

func TestUpcomingHolidays(t *testing.T) {
	svc := &fakeService{list: samplePL}
	res := New(svc).UpcomingHolidays(context.Background(), Args{"country_code": "pl"})

	require.False(t, res.Failed())
	require.Equal(t, "PL", svc.country)

	var decoded []nager.Holiday
	require.NoError(t, json.Unmarshal([]byte(Native(res)), &decoded))
	require.Equal(t, samplePL, decoded)

	legacy := Legacy(res)
	require.Equal(t, http.StatusOK, legacy.Status)
	require.Equal(t, samplePL, legacy.Body)
}

func TestIsTodayHolidayMessages(t *testing.T) {
	tests := []struct {
		check nager.CheckResult
		want  string
	}{
		{nager.CheckResult{IsHoliday: true, Name: "Święto Niepodległości"}, "Yes, today is Święto Niepodległości in PL."},
		{nager.CheckResult{IsHoliday: true}, "Yes, today is a public holiday in PL."},
		{nager.CheckResult{}, "No, today is not a public holiday in PL."},
	}
	for _, tt := range tests {
		svc := &fakeService{check: tt.check}
		res := New(svc).IsTodayHoliday(context.Background(), Args{"country_code": "pl"})
		require.False(t, res.Failed())
		require.Equal(t, tt.want, res.Value.Message)
		require.JSONEq(t, `{"message":`+mustJSON(t, tt.want)+`}`, Native(res))
	}
}

func TestUpstreamErrorsBecomePayloads(t *testing.T) {
	tests := []struct {
		err  error
		kind ErrorKind
	}{
		{&nager.Error{Kind: nager.ErrInvalidCountryCode, Message: "Invalid country code."}, InvalidCountryCode},
		{&nager.Error{Kind: nager.ErrUpstreamUnavailable, Message: "Failed to fetch upcoming holidays: boom"}, UpstreamUnavailable},
		{&nager.Error{Kind: nager.ErrCheckFailed, Message: "Failed to check today holiday: boom"}, CheckFailed},
	}
	for _, tt := range tests {
		svc := &fakeService{err: tt.err}
		res, ok := New(svc).Call(context.Background(), FuncIsTodayHoliday, Args{"country_code": "PL"})
		require.True(t, ok)
		require.Equal(t, tt.kind, res.Kind)
		require.JSONEq(t, `{"error":`+mustJSON(t, tt.err.Error())+`}`, Native(res))

		legacy := Legacy(res)
		require.Equal(t, http.StatusBadRequest, legacy.Status)
	}
}

func TestCallUnknownFunction(t *testing.T) {
	_, ok := New(&fakeService{}).Call(context.Background(), "nope", Args{})
	require.False(t, ok)
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 3)

	byTool := map[string]Definition{}
	for _, d := range defs {
		byTool[d.Tool] = d
		_, ok := New(&fakeService{}).Call(context.Background(), d.Function, Args{})
		require.True(t, ok, "function %s has no handler", d.Function)
	}

	require.Equal(t, []Property{countryCode}, byTool["get_upcoming_holidays"].Properties)
	require.Equal(t, []Property{countryCode}, byTool["is_today_holiday"].Properties)
	year := byTool["get_holidays_by_year"].Properties
	require.Len(t, year, 2)
	require.Equal(t, "year", year[1].Name)
	require.Equal(t, "string", year[1].Type)
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "invalid_argument", InvalidArgument.String())
	require.Equal(t, "unknown", ErrorKind(99).String())
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
