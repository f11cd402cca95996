package bizimtransfer

import "strings"

// Currency is the upstream numeric currency id
type Currency int

const (
	CurrencyTRY Currency = 1
	CurrencyEUR Currency = 2
	CurrencyUSD Currency = 3
	CurrencyGBP Currency = 4
	CurrencyRUB Currency = 6
)

// DefaultCurrency is used for empty or unsupported codes
const DefaultCurrency = CurrencyEUR

var currencyCodes = map[string]Currency{
	"TRY": CurrencyTRY,
	"EUR": CurrencyEUR,
	"USD": CurrencyUSD,
	"GBP": CurrencyGBP,
	"RUB": CurrencyRUB,
}

// ParseCurrency maps an ISO code to its id; unknown codes fall back to EUR
func ParseCurrency(code string) Currency {
	if c, ok := currencyCodes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return DefaultCurrency
}

// IsSupportedCurrency reports whether the booking API prices in this currency
func IsSupportedCurrency(code string) bool {
	_, ok := currencyCodes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Code returns the ISO code, or "" for an id outside the enum
func (c Currency) Code() string {
	for code, id := range currencyCodes {
		if id == c {
			return code
		}
	}
	return ""
}

// RequestType selects one-way or round-trip search
type RequestType int

const (
	RequestTypeOneWay    RequestType = 1
	RequestTypeRoundTrip RequestType = 2
)

// QueryType selects the filter used when listing reservations
type QueryType string

const (
	QueryByCreateDate        QueryType = "createdate"
	QueryByFlightDate        QueryType = "flightdate"
	QueryByReservationNumber QueryType = "reservationnumber"
)

// ParseQueryType accepts only the three known values
func ParseQueryType(s string) (QueryType, bool) {
	switch q := QueryType(s); q {
	case QueryByCreateDate, QueryByFlightDate, QueryByReservationNumber:
		return q, true
	}
	return "", false
}

// IsDateRange reports whether the query is filtered by a start/end date pair
func (q QueryType) IsDateRange() bool {
	return q == QueryByCreateDate || q == QueryByFlightDate
}
