package bizimtransfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/samber/lo"
	"github.com/va6996/bizimtransfer-mcp/log"
	toolspkg "github.com/va6996/bizimtransfer-mcp/tools"
)

const defaultLanguage = "en"

func languageOrDefault(language string) string {
	if language == "" {
		return defaultLanguage
	}
	return language
}

// --- Search Transfers Tool ---

type SearchTransfersInput struct {
	PickupAddress  string  `json:"pickup_address" description:"Full address for pickup location"`
	PickupLat      float64 `json:"pickup_lat" description:"Latitude of pickup location"`
	PickupLng      float64 `json:"pickup_lng" description:"Longitude of pickup location"`
	DropoffAddress string  `json:"dropoff_address" description:"Full address for dropoff location"`
	DropoffLat     float64 `json:"dropoff_lat" description:"Latitude of dropoff location"`
	DropoffLng     float64 `json:"dropoff_lng" description:"Longitude of dropoff location"`
	PickupDate     string  `json:"pickup_date" description:"Pickup date (YYYY-MM-DD format)"`
	PickupTime     string  `json:"pickup_time" description:"Pickup time (HH:MM format, 24h)"`
	Adults         int     `json:"adults" description:"Number of adults (minimum 1)"`
	Children       int     `json:"children,omitempty" description:"Number of children (0-16 years)"`
	Infants        int     `json:"infants,omitempty" description:"Number of infants (0-2 years)"`
	RoundTrip      bool    `json:"round_trip,omitempty" description:"Whether this is a round trip"`
	ReturnDate     string  `json:"return_date,omitempty" description:"Return date for round trips (YYYY-MM-DD format)"`
	ReturnTime     string  `json:"return_time,omitempty" description:"Return time for round trips (HH:MM format, 24h)"`
	Currency       string  `json:"currency,omitempty" description:"Currency code (EUR, USD, GBP, TRY, RUB); defaults to EUR"`
	Language       string  `json:"language,omitempty" description:"Language for response (en, tr, de, ru); defaults to en"`
}

type SearchTransfersTool struct {
	client *Client
}

func NewSearchTransfersTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *SearchTransfersTool {
	t := &SearchTransfersTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*SearchTransfersInput, string](
		gk,
		"search_transfers",
		"Search for available transfers between two locations. Returns vehicle options with prices, a booking reference (UUID) and the subroute ids needed by make_reservation.",
		func(ctx *ai.ToolContext, input *SearchTransfersInput) (string, error) {
			return t.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input, err := toolspkg.DecodeArgs[SearchTransfersInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(ctx, input), nil
	})
	return t
}

func (t *SearchTransfersTool) validate(input *SearchTransfersInput) string {
	if input.PickupAddress == "" || input.DropoffAddress == "" {
		return "Error: Pickup and dropoff addresses are required"
	}
	if input.Adults < 1 {
		return "Error: At least one adult passenger is required"
	}
	if input.Children < 0 || input.Infants < 0 {
		return "Error: Children and infants cannot be negative"
	}
	if !IsValidDate(input.PickupDate) {
		return "Error: Invalid pickup date format. Please use YYYY-MM-DD format"
	}
	if !IsValidTime(input.PickupTime) {
		return "Error: Invalid pickup time format. Please use HH:MM format (24h)"
	}
	if input.RoundTrip {
		if input.ReturnDate == "" || input.ReturnTime == "" {
			return "Error: Return date and time are required for round trips"
		}
		if !IsValidDate(input.ReturnDate) {
			return "Error: Invalid return date format. Please use YYYY-MM-DD format"
		}
		if !IsValidTime(input.ReturnTime) {
			return "Error: Invalid return time format. Please use HH:MM format (24h)"
		}
	}
	return ""
}

func (t *SearchTransfersTool) Execute(ctx context.Context, input *SearchTransfersInput) string {
	if msg := t.validate(input); msg != "" {
		return msg
	}

	req := &SearchTransfersRequest{
		Pickup:      input.PickupAddress,
		PickupLat:   input.PickupLat,
		PickupLng:   input.PickupLng,
		Dropoff:     input.DropoffAddress,
		DropoffLat:  input.DropoffLat,
		DropoffLng:  input.DropoffLng,
		Adult:       input.Adults,
		Child:       input.Children,
		Infant:      input.Infants,
		PickupDate:  input.PickupDate,
		PickupTime:  input.PickupTime,
		RequestType: RequestTypeOneWay,
		CurrencyID:  ParseCurrency(input.Currency),
		Language:    languageOrDefault(input.Language),
	}
	if input.RoundTrip {
		req.RequestType = RequestTypeRoundTrip
		req.DropoffDate = input.ReturnDate
		req.DropoffTime = input.ReturnTime
	}

	log.Infof(ctx, "Searching transfers from %s to %s", input.PickupAddress, input.DropoffAddress)

	result, err := t.client.SearchTransfers(ctx, req)
	if err != nil {
		log.Errorf(ctx, "SearchTransfersTool failed: %v", err)
		return fmt.Sprintf("Error searching for transfers: %v", err)
	}
	return FormatTransferResults(result)
}

// --- Make Reservation Tool ---

type MakeReservationInput struct {
	UUID               string   `json:"uuid" description:"UUID from the search results"`
	FirstName          string   `json:"first_name" description:"Customer's first name"`
	LastName           string   `json:"last_name" description:"Customer's last name"`
	Email              string   `json:"email" description:"Customer's email address"`
	Phone              string   `json:"phone" description:"Customer's phone number with country code"`
	CountryCode        string   `json:"country_code" description:"Customer's country code (2-letter ISO code)"`
	OutboundSubrouteID int64    `json:"outbound_subroute_id" description:"Subroute ID for the outbound journey"`
	FlightNumber       string   `json:"flight_number,omitempty" description:"Flight number (optional)"`
	Terminal           string   `json:"terminal,omitempty" description:"Terminal information (optional)"`
	Notes              string   `json:"notes,omitempty" description:"Additional notes for the driver"`
	ReturnSubrouteID   int64    `json:"return_subroute_id,omitempty" description:"Subroute ID for the return journey (round trips only)"`
	ReturnFlightNumber string   `json:"return_flight_number,omitempty" description:"Return flight number (optional)"`
	ReturnTerminal     string   `json:"return_terminal,omitempty" description:"Return terminal information (optional)"`
	ReturnNotes        string   `json:"return_notes,omitempty" description:"Additional notes for the return driver"`
	PassengerNames     []string `json:"passenger_names,omitempty" description:"List of passenger full names"`
	PassengerCountries []string `json:"passenger_countries,omitempty" description:"List of passenger country codes (2-letter ISO codes), same order as passenger_names"`
}

type MakeReservationTool struct {
	client *Client
}

func NewMakeReservationTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *MakeReservationTool {
	t := &MakeReservationTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*MakeReservationInput, string](
		gk,
		"make_reservation",
		"Make a transfer reservation based on search_transfers results. Requires the booking UUID and the subroute id of each leg.",
		func(ctx *ai.ToolContext, input *MakeReservationInput) (string, error) {
			return t.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input, err := toolspkg.DecodeArgs[MakeReservationInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(ctx, input), nil
	})
	return t
}

func (t *MakeReservationTool) validate(input *MakeReservationInput) string {
	switch {
	case input.UUID == "":
		return "Error: UUID is required from the search results"
	case input.FirstName == "" || input.LastName == "":
		return "Error: Customer name is required"
	case input.Email == "":
		return "Error: Email address is required"
	case input.Phone == "":
		return "Error: Phone number is required"
	case input.CountryCode == "":
		return "Error: Country code is required"
	case input.OutboundSubrouteID == 0:
		return "Error: Outbound subroute ID is required"
	case len(input.PassengerNames) > 0 && len(input.PassengerCountries) > 0 &&
		len(input.PassengerNames) != len(input.PassengerCountries):
		return "Error: Number of passenger names and countries must match"
	}
	return ""
}

// passengers uses the explicit lists when both are given, otherwise the customer alone
func (t *MakeReservationTool) passengers(input *MakeReservationInput) []Passenger {
	if len(input.PassengerNames) > 0 && len(input.PassengerCountries) > 0 {
		return lo.Map(lo.Zip2(input.PassengerNames, input.PassengerCountries), func(p lo.Tuple2[string, string], _ int) Passenger {
			return Passenger{Name: p.A, Country: strings.ToLower(p.B)}
		})
	}
	return []Passenger{{
		Name:    input.FirstName + " " + input.LastName,
		Country: strings.ToLower(input.CountryCode),
	}}
}

func (t *MakeReservationTool) Execute(ctx context.Context, input *MakeReservationInput) string {
	if msg := t.validate(input); msg != "" {
		return msg
	}

	ways := []ReservationWay{{
		SubrouteID:   input.OutboundSubrouteID,
		FlightNumber: input.FlightNumber,
		Terminal:     input.Terminal,
		Notes:        input.Notes,
	}}
	if input.ReturnSubrouteID != 0 {
		ways = append(ways, ReservationWay{
			SubrouteID:   input.ReturnSubrouteID,
			FlightNumber: input.ReturnFlightNumber,
			Terminal:     input.ReturnTerminal,
			Notes:        input.ReturnNotes,
		})
	}

	req := &ReservationRequest{
		UUID:              input.UUID,
		CustomerName:      input.FirstName,
		CustomerSurname:   input.LastName,
		CustomerEmail:     input.Email,
		CustomerTelephone: input.Phone,
		CustomerCountry:   strings.ToLower(input.CountryCode),
		TransferWays:      ways,
		Passengers:        t.passengers(input),
	}

	log.Infof(ctx, "Making reservation for %s %s", input.FirstName, input.LastName)

	result, err := t.client.CreateReservation(ctx, req)
	if err != nil {
		log.Errorf(ctx, "MakeReservationTool failed: %v", err)
		return fmt.Sprintf("Error making reservation: %v", err)
	}
	return FormatReservationResult(result)
}

// --- List Reservations Tool ---

type ListReservationsInput struct {
	QueryType         string `json:"query_type" description:"Type of search: 'createdate', 'flightdate' or 'reservationnumber'"`
	StartDate         string `json:"start_date,omitempty" description:"Start date for date-based queries (YYYY-MM-DD)"`
	EndDate           string `json:"end_date,omitempty" description:"End date for date-based queries (YYYY-MM-DD)"`
	ReservationNumber int64  `json:"reservation_number,omitempty" description:"Specific reservation number to look up"`
}

type ListReservationsTool struct {
	client *Client
}

func NewListReservationsTool(client *Client, gk *genkit.Genkit, registry *toolspkg.Registry) *ListReservationsTool {
	t := &ListReservationsTool{client: client}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*ListReservationsInput, string](
		gk,
		"list_reservations",
		"List existing reservations by creation date range, flight date range or reservation number.",
		func(ctx *ai.ToolContext, input *ListReservationsInput) (string, error) {
			return t.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input, err := toolspkg.DecodeArgs[ListReservationsInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(ctx, input), nil
	})
	return t
}

func (t *ListReservationsTool) Execute(ctx context.Context, input *ListReservationsInput) string {
	queryType, ok := ParseQueryType(input.QueryType)
	if !ok {
		return "Error: query_type must be 'createdate', 'flightdate', or 'reservationnumber'"
	}

	req := &ListReservationsRequest{QueryType: queryType}
	if queryType.IsDateRange() {
		if input.StartDate == "" || input.EndDate == "" {
			return fmt.Sprintf("Error: start_date and end_date are required for %s queries", queryType)
		}
		if !IsValidDate(input.StartDate) || !IsValidDate(input.EndDate) {
			return "Error: Invalid date format. Please use YYYY-MM-DD format"
		}
		req.Start, req.End = input.StartDate, input.EndDate
	} else {
		if input.ReservationNumber == 0 {
			return "Error: reservation_number is required for direct lookup"
		}
		req.ReservationNumber = input.ReservationNumber
	}

	log.Infof(ctx, "Listing reservations with %s", queryType)

	result, err := t.client.ListReservations(ctx, req)
	if err != nil {
		log.Errorf(ctx, "ListReservationsTool failed: %v", err)
		return fmt.Sprintf("Error listing reservations: %v", err)
	}
	return FormatReservationList(result)
}

// --- Search Places Tool ---

type SearchPlacesInput struct {
	Query    string `json:"query" description:"Search text (e.g., hotel name, airport, city)"`
	Language string `json:"language,omitempty" description:"Language code (en, tr, de, ru); defaults to en"`
}

type SearchPlacesTool struct {
	places PlacesProvider
}

func NewSearchPlacesTool(places PlacesProvider, gk *genkit.Genkit, registry *toolspkg.Registry) *SearchPlacesTool {
	t := &SearchPlacesTool{places: places}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*SearchPlacesInput, string](
		gk,
		"search_places",
		"Search for locations (hotels, airports, cities). Returns place ids for use with get_place_details.",
		func(ctx *ai.ToolContext, input *SearchPlacesInput) (string, error) {
			return t.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input, err := toolspkg.DecodeArgs[SearchPlacesInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(ctx, input), nil
	})
	return t
}

func (t *SearchPlacesTool) Execute(ctx context.Context, input *SearchPlacesInput) string {
	if input.Query == "" {
		return "Error: Search query is required"
	}

	log.Infof(ctx, "Searching places for '%s'", input.Query)

	places, err := t.places.SearchPlaces(ctx, input.Query, languageOrDefault(input.Language))
	if err != nil {
		log.Errorf(ctx, "SearchPlacesTool failed: %v", err)
		return fmt.Sprintf("Error searching places: %v", err)
	}
	return FormatPlaces(places)
}

// --- Place Details Tool ---

type PlaceDetailsInput struct {
	PlaceID  string `json:"place_id" description:"Place ID from search_places results"`
	Language string `json:"language,omitempty" description:"Language code (en, tr, de, ru); defaults to en"`
}

type PlaceDetailsTool struct {
	places PlacesProvider
}

func NewPlaceDetailsTool(places PlacesProvider, gk *genkit.Genkit, registry *toolspkg.Registry) *PlaceDetailsTool {
	t := &PlaceDetailsTool{places: places}
	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*PlaceDetailsInput, string](
		gk,
		"get_place_details",
		"Get detailed information about a location, including the coordinates search_transfers needs.",
		func(ctx *ai.ToolContext, input *PlaceDetailsInput) (string, error) {
			return t.Execute(ctx, input), nil
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		input, err := toolspkg.DecodeArgs[PlaceDetailsInput](args)
		if err != nil {
			return nil, err
		}
		return t.Execute(ctx, input), nil
	})
	return t
}

func (t *PlaceDetailsTool) Execute(ctx context.Context, input *PlaceDetailsInput) string {
	if input.PlaceID == "" {
		return "Error: Place ID is required"
	}

	log.Infof(ctx, "Getting details for place ID %s", input.PlaceID)

	details, err := t.places.GetPlaceDetails(ctx, input.PlaceID, languageOrDefault(input.Language))
	if err != nil {
		log.Errorf(ctx, "PlaceDetailsTool failed: %v", err)
		return fmt.Sprintf("Error getting place details: %v", err)
	}
	return FormatPlaceDetails(details)
}
