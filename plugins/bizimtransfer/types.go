package bizimtransfer

import "strings"

const statusSuccess = "success"

// Envelope is the status block every booking endpoint wraps its payload in
type Envelope struct {
	Status      Scalar `json:"status"`
	Description Scalar `json:"description,omitempty"`
}

// Succeeded reports whether the upstream accepted the request
func (e Envelope) Succeeded() bool {
	return e.Status.String() == statusSuccess
}

// ErrorText is the one-line message rendered for a business failure
func (e Envelope) ErrorText() string {
	if e.Description == "" {
		return "Error: Unknown error occurred"
	}
	return "Error: " + e.Description.String()
}

// --- Transfer search ---

// SearchTransfersRequest is the body of POST /query
type SearchTransfersRequest struct {
	Pickup      string      `json:"pickup"`
	PickupLat   float64     `json:"pickuplat"`
	PickupLng   float64     `json:"pickuplng"`
	Dropoff     string      `json:"dropoff"`
	DropoffLat  float64     `json:"dropofflat"`
	DropoffLng  float64     `json:"dropofflng"`
	Adult       int         `json:"adult"`
	Child       int         `json:"child"`
	Infant      int         `json:"infant"`
	PickupDate  string      `json:"pickupdate"`
	PickupTime  string      `json:"pickuptime"`
	DropoffDate string      `json:"dropoffdate"`
	DropoffTime string      `json:"dropofftime"`
	RequestType RequestType `json:"requesttype"`
	CurrencyID  Currency    `json:"currencyid"`
	Language    string      `json:"language"`
}

// TransferSearchResponse is the result of POST /query
type TransferSearchResponse struct {
	Envelope
	UUID           Scalar `json:"uuid"`
	Pickup         string `json:"pickup"`
	Dropoff        string `json:"dropoff"`
	Adult          Scalar `json:"adult"`
	Child          Scalar `json:"child"`
	Infant         Scalar `json:"infant"`
	CurrencySymbol string `json:"currencysembol"`
	Ways           []Way  `json:"ways"`
}

// Direction of a leg
type Direction string

const (
	DirectionOutbound Direction = "Outbound"
	DirectionReturn   Direction = "Return"
)

// Way is one leg of a transfer search result
type Way struct {
	Type    string           `json:"type"`
	From    string           `json:"from"`
	To      string           `json:"to"`
	Date    Scalar           `json:"date"`
	Options []TransferOption `json:"list"`
}

// Direction classifies the leg by its type tag ("yon1..." outbound, "yon2..." return).
// Any other tag falls back to position: the first leg is outbound.
func (w Way) Direction(index int) Direction {
	switch {
	case strings.HasPrefix(w.Type, "yon1"):
		return DirectionOutbound
	case strings.HasPrefix(w.Type, "yon2"):
		return DirectionReturn
	case index == 0:
		return DirectionOutbound
	default:
		return DirectionReturn
	}
}

// TransferOption is one priced vehicle within a leg
type TransferOption struct {
	CarName      string         `json:"carname"`
	ExtraMessage string         `json:"extramessage,omitempty"`
	Pickup       Scalar         `json:"pickup"`
	Duration     Scalar         `json:"duration"`
	Price        Money          `json:"price"`
	MaxPassenger Scalar         `json:"kisihakki"`
	MaxLuggage   Scalar         `json:"bavulhakki"`
	Extras       []ExtraProduct `json:"extraurunler,omitempty"`
	RouteID      Scalar         `json:"routeid"`
	SubrouteID   Scalar         `json:"subrouteid"`
}

// Category is the vehicle class label, "Standard" when the upstream sends none
func (o TransferOption) Category() string {
	if o.ExtraMessage == "" {
		return "Standard"
	}
	return o.ExtraMessage
}

// ExtraProduct is an optional paid add-on (child seat, meet & greet, ...)
type ExtraProduct struct {
	Name  string `json:"UrunTanimi"`
	Price Money  `json:"BirimFiyat"`
}

// --- Reservation ---

// ReservationRequest is the body of POST /reservation
type ReservationRequest struct {
	UUID              string           `json:"uuid"`
	CustomerName      string           `json:"customername"`
	CustomerSurname   string           `json:"customersurname"`
	CustomerEmail     string           `json:"customeremail"`
	CustomerTelephone string           `json:"customertelephone"`
	CustomerCountry   string           `json:"customercoutry"`
	TransferWays      []ReservationWay `json:"transferway"`
	Passengers        []Passenger      `json:"passangers"`
}

// ReservationWay books one leg by its subroute id
type ReservationWay struct {
	SubrouteID   int64  `json:"subrouteid"`
	FlightNumber string `json:"flightnumber"`
	Terminal     string `json:"terminal"`
	Notes        string `json:"notes"`
}

// Passenger on a reservation; Country is a lower-case ISO code
type Passenger struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ReservationResponse is the result of POST /reservation
type ReservationResponse struct {
	Envelope
	RezID Scalar `json:"rezid"`
}

// --- Reservation listing ---

// ListReservationsRequest is the body of POST /list.
// Date-range queries carry Start/End, reservation number queries carry ReservationNumber.
type ListReservationsRequest struct {
	QueryType         QueryType `json:"querytype"`
	Start             string    `json:"start,omitempty"`
	End               string    `json:"end,omitempty"`
	ReservationNumber int64     `json:"reservationnumber,omitempty"`
}

// ReservationListResponse is the result of POST /list
type ReservationListResponse struct {
	Envelope
	List []ReservationRecord `json:"list"`
}

// ReservationRecord is one booking as returned by the listing endpoint
type ReservationRecord struct {
	ReservationNumber Scalar            `json:"reservationnumber"`
	CustomerName      string            `json:"customername"`
	CustomerSurname   string            `json:"customersurname"`
	CustomerEmail     string            `json:"customeremail"`
	CustomerTel       Scalar            `json:"customertel"`
	Adult             Scalar            `json:"adult"`
	Child             Scalar            `json:"child"`
	Infant            Scalar            `json:"infant"`
	Amount            Money             `json:"Amount"`
	Currency          string            `json:"currency"`
	Status            Scalar            `json:"status"`
	PaymentType       Scalar            `json:"paymenttype"`
	CreatedAt         Scalar            `json:"createat"`
	Ways              []BookedWay       `json:"ways"`
	Passengers        []BookedPassenger `json:"passangers"`
}

// BookedWay is one leg of an existing reservation
type BookedWay struct {
	PickupAddress string `json:"pickupadres"`
	ReturnAddress string `json:"returnadres"`
	FlightDate    Scalar `json:"flightdate"`
	PickupTime    Scalar `json:"pickuptime"`
	Car           string `json:"car"`
	Duration      Scalar `json:"duration"`
	FlightNumber  Scalar `json:"flightnumber"`
	Terminal      Scalar `json:"terminal"`
}

// BookedPassenger is a passenger on an existing reservation
type BookedPassenger struct {
	NameSurname string `json:"namesurname"`
	Country     string `json:"country"`
}

// --- Places ---

// PlaceCandidate is one hit of a free-text place search
type PlaceCandidate struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// PlaceDetails describes a single place
type PlaceDetails struct {
	Name             string    `json:"name,omitempty"`
	FormattedAddress string    `json:"formatted_address,omitempty"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	Types            []string  `json:"types,omitempty"`
}

// Geometry wraps the optional coordinates of a place
type Geometry struct {
	Location *Location `json:"location,omitempty"`
}

// Location is a latitude/longitude pair; either side may be missing
type Location struct {
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

// NewLocation builds a location with both coordinates set
func NewLocation(lat, lng float64) *Location {
	return &Location{Lat: &lat, Lng: &lng}
}

// DisplayName is the place name or "N/A"
func (p PlaceDetails) DisplayName() string {
	if p.Name == "" {
		return "N/A"
	}
	return p.Name
}

// DisplayAddress is the formatted address or "N/A"
func (p PlaceDetails) DisplayAddress() string {
	if p.FormattedAddress == "" {
		return "N/A"
	}
	return p.FormattedAddress
}

// Coordinates returns the location when the upstream sent at least one coordinate
func (p PlaceDetails) Coordinates() (*Location, bool) {
	if p.Geometry == nil || p.Geometry.Location == nil {
		return nil, false
	}
	if loc := p.Geometry.Location; loc.Lat == nil && loc.Lng == nil {
		return nil, false
	}
	return p.Geometry.Location, true
}

type placesQuery struct {
	Query    string `url:"query"`
	Language string `url:"language"`
}

type placeDetailsQuery struct {
	PlaceID  string `url:"place_id"`
	Language string `url:"language"`
}
