// Package nager provides a minimal client for the Nager.Date public holiday API.
package nager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public v3 API root.
	DefaultBaseURL = "https://date.nager.at/api/v3"
	// DefaultTimeout bounds every upstream call.
	DefaultTimeout = 5 * time.Second
)

var tracer = otel.Tracer("mcp-funcs/internal/nager")

// Client is a minimal HTTP client for the holiday endpoints.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Now is the clock used to resolve "today"; defaults to time.Now.
	Now func() time.Time
}

// New returns a new client. If httpClient is nil, a default with a 5s timeout is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: httpClient, Now: time.Now}
}

// Holiday is a single public holiday as returned by the API.
type Holiday struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Fixed       bool     `json:"fixed"`
	Global      bool     `json:"global"`
	Types       []string `json:"types,omitempty"`
}

// CheckResult reports whether today is a holiday. Name may be empty even when
// IsHoliday is set.
type CheckResult struct {
	IsHoliday bool
	Name      string
}

// UpcomingHolidays returns the next public holidays for country.
func (c *Client) UpcomingHolidays(ctx context.Context, country string) ([]Holiday, error) {
	ctx, span := tracer.Start(ctx, "nager.UpcomingHolidays",
		trace.WithAttributes(attribute.String("nager.country_code", country)))
	defer span.End()

	holidays, err := c.fetchHolidays(ctx, span, "NextPublicHolidays", url.PathEscape(country))
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			err = newError(ErrInvalidCountryCode, "Invalid country code. Please use ISO 3166-1 alpha-2 format (e.g., PL).", err)
		} else {
			err = newError(ErrUpstreamUnavailable, "Failed to fetch upcoming holidays: "+err.Error(), err)
		}
		recordError(span, err)
		return nil, err
	}
	return holidays, nil
}

// HolidaysByYear returns all public holidays of country in year.
func (c *Client) HolidaysByYear(ctx context.Context, year int, country string) ([]Holiday, error) {
	ctx, span := tracer.Start(ctx, "nager.HolidaysByYear",
		trace.WithAttributes(
			attribute.String("nager.country_code", country),
			attribute.Int("nager.year", year),
		))
	defer span.End()

	holidays, err := c.fetchHolidays(ctx, span, "PublicHolidays", url.PathEscape(strconv.Itoa(year)), url.PathEscape(country))
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			err = newError(ErrInvalidCountryCode, "Invalid country code or year. Please check inputs.", err)
		} else {
			err = newError(ErrUpstreamUnavailable, "Failed to fetch holidays by year: "+err.Error(), err)
		}
		recordError(span, err)
		return nil, err
	}
	return holidays, nil
}

// IsTodayHoliday asks the API whether today is a holiday in country. Statuses
// other than 200 and 204 are resolved against the current year's list.
func (c *Client) IsTodayHoliday(ctx context.Context, country string) (CheckResult, error) {
	ctx, span := tracer.Start(ctx, "nager.IsTodayHoliday",
		trace.WithAttributes(attribute.String("nager.country_code", country)))
	defer span.End()

	res, err := c.isTodayHoliday(ctx, span, country)
	if err != nil {
		err = newError(ErrCheckFailed, "Failed to check today holiday: "+err.Error(), err)
		recordError(span, err)
		return CheckResult{}, err
	}
	span.SetAttributes(attribute.Bool("nager.is_holiday", res.IsHoliday))
	return res, nil
}

func (c *Client) isTodayHoliday(ctx context.Context, span trace.Span, country string) (CheckResult, error) {
	resp, err := c.get(ctx, "IsTodayPublicHoliday", url.PathEscape(country))
	if err != nil {
		return CheckResult{}, err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	switch resp.StatusCode {
	case http.StatusOK:
		var holidays []Holiday
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return CheckResult{}, fmt.Errorf("read response: %w", err)
		}
		if json.Unmarshal(body, &holidays) == nil && len(holidays) > 0 && holidays[0].LocalName != "" {
			return CheckResult{IsHoliday: true, Name: holidays[0].LocalName}, nil
		}
		return CheckResult{IsHoliday: true}, nil
	case http.StatusNoContent:
		return CheckResult{IsHoliday: false}, nil
	}

	now := c.now().UTC()
	holidays, err := c.HolidaysByYear(ctx, now.Year(), country)
	if err != nil {
		return CheckResult{}, err
	}
	today := now.Format(time.DateOnly)
	for _, h := range holidays {
		if h.Date == today {
			return CheckResult{IsHoliday: true, Name: h.LocalName}, nil
		}
	}
	return CheckResult{IsHoliday: false}, nil
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// fetchHolidays performs a GET that must answer 2xx with a holiday array.
func (c *Client) fetchHolidays(ctx context.Context, span trace.Span, segments ...string) ([]Holiday, error) {
	resp, err := c.get(ctx, segments...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode}
	}
	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return holidays, nil
}

func (c *Client) get(ctx context.Context, segments ...string) (*http.Response, error) {
	reqURL := c.BaseURL + "/" + strings.Join(segments, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.HTTP.Do(req)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
