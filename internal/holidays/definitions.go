package holidays

// Host function names of the tool triggers.
const (
	FuncUpcomingHolidays = "getUpcomingHolidays"
	FuncIsTodayHoliday   = "isTodayHoliday"
	FuncHolidaysByYear   = "getHolidaysByYear"
)

// Property is one tool argument as advertised to MCP clients.
type Property struct {
	Name        string `json:"propertyName"`
	Type        string `json:"propertyType"`
	Description string `json:"description"`
}

// Definition describes a tool trigger.
type Definition struct {
	Function    string     `json:"function"`
	Tool        string     `json:"toolName"`
	Description string     `json:"description"`
	Properties  []Property `json:"toolProperties"`
}

var countryCode = Property{
	Name:        "country_code",
	Type:        "string",
	Description: "ISO 3166-1 alpha-2 country code, e.g. PL",
}

// Definitions lists the holiday tools.
func Definitions() []Definition {
	return []Definition{
		{
			Function: FuncUpcomingHolidays,
			Tool:     "get_upcoming_holidays",
			Description: "Returns the next upcoming public holidays for a given country. " +
				"Use ISO 3166-1 alpha-2 country code (e.g. PL, US, DE).",
			Properties: []Property{countryCode},
		},
		{
			Function:    FuncIsTodayHoliday,
			Tool:        "is_today_holiday",
			Description: "Checks whether today is a public holiday in the specified country.",
			Properties:  []Property{countryCode},
		},
		{
			Function:    FuncHolidaysByYear,
			Tool:        "get_holidays_by_year",
			Description: "Returns all public holidays for a given country and year.",
			Properties: []Property{
				countryCode,
				{Name: "year", Type: "string", Description: "Four-digit year, e.g. 2025"},
			},
		},
	}
}
