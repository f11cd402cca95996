package bizimtransfer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// FormatTransferResults renders a transfer search for the agent, including the
// uuid and subroute ids needed by make_reservation.
func FormatTransferResults(result *TransferSearchResponse) string {
	if !result.Succeeded() {
		return result.ErrorText()
	}

	symbol := result.CurrencySymbol
	lines := []string{
		fmt.Sprintf("Transfer options from %s to %s", result.Pickup, result.Dropoff),
		fmt.Sprintf("Total passengers: %s adults, %s children, %s infants", result.Adult, result.Child, result.Infant),
		"",
		fmt.Sprintf("Booking reference (UUID): %s", result.UUID),
		"",
	}

	for i, way := range result.Ways {
		lines = append(lines,
			fmt.Sprintf("## %s Journey", way.Direction(i)),
			fmt.Sprintf("From: %s", way.From),
			fmt.Sprintf("To: %s", way.To),
			fmt.Sprintf("Date: %s", way.Date),
			"",
		)

		for j, option := range way.Options {
			lines = append(lines,
				fmt.Sprintf("### Option %d: %s", j+1, option.CarName),
				fmt.Sprintf("Type: %s", option.Category()),
				fmt.Sprintf("Pickup Time: %s", option.Pickup),
				fmt.Sprintf("Duration: %s minutes", option.Duration),
				fmt.Sprintf("Price: %s %s", option.Price, symbol),
				fmt.Sprintf("Max Passengers: %s with %s luggage items", option.MaxPassenger, option.MaxLuggage),
			)
			if len(option.Extras) > 0 {
				lines = append(lines, "Available Extras:")
				lines = append(lines, lo.Map(option.Extras, func(extra ExtraProduct, _ int) string {
					return fmt.Sprintf("- %s: %s %s", extra.Name, extra.Price, symbol)
				})...)
			}
			lines = append(lines,
				fmt.Sprintf("Route ID: %s", option.RouteID),
				fmt.Sprintf("Subroute ID: %s (needed for booking)", option.SubrouteID),
				"",
			)
		}
	}

	return strings.Join(lines, "\n")
}

// FormatReservationResult renders a reservation confirmation
func FormatReservationResult(result *ReservationResponse) string {
	if !result.Succeeded() {
		return result.ErrorText()
	}

	return strings.Join([]string{
		"✅ Reservation successfully created!",
		fmt.Sprintf("Reservation Number: %s", result.RezID),
		"",
		"Please keep this reservation number for your records.",
		"You should receive a confirmation email with your booking details.",
	}, "\n")
}

// FormatReservationList renders the bookings returned by a listing query
func FormatReservationList(result *ReservationListResponse) string {
	if !result.Succeeded() {
		return result.ErrorText()
	}
	if len(result.List) == 0 {
		return "No reservations found matching your criteria."
	}

	lines := []string{fmt.Sprintf("Found %d reservation(s):", len(result.List))}
	for i, res := range result.List {
		lines = append(lines,
			fmt.Sprintf("\n## Reservation %d", i+1),
			fmt.Sprintf("Reservation Number: %s", res.ReservationNumber),
			fmt.Sprintf("Customer: %s %s", res.CustomerName, res.CustomerSurname),
			fmt.Sprintf("Contact: %s, %s", res.CustomerEmail, res.CustomerTel),
			fmt.Sprintf("Passengers: %s adults, %s children, %s infants", res.Adult, res.Child, res.Infant),
			fmt.Sprintf("Amount: %s %s", res.Amount, res.Currency),
			fmt.Sprintf("Status: %s", res.Status),
			fmt.Sprintf("Payment: %s", res.PaymentType),
			fmt.Sprintf("Created: %s", res.CreatedAt),
			"\nTransfers:",
		)

		// Booked legs carry no type tag; the first one is the outbound leg.
		for j, way := range res.Ways {
			direction := DirectionReturn
			if j == 0 {
				direction = DirectionOutbound
			}
			lines = append(lines,
				fmt.Sprintf("- %s: %s → %s", direction, way.PickupAddress, way.ReturnAddress),
				fmt.Sprintf("  Date: %s, Pickup time: %s", way.FlightDate, way.PickupTime),
				fmt.Sprintf("  Vehicle: %s, Duration: %s min", way.Car, way.Duration),
			)
			if way.FlightNumber != "" {
				lines = append(lines, fmt.Sprintf("  Flight: %s, Terminal: %s", way.FlightNumber, way.Terminal))
			}
		}

		if len(res.Passengers) > 0 {
			lines = append(lines, "\nPassengers:")
			lines = append(lines, lo.Map(res.Passengers, func(p BookedPassenger, _ int) string {
				return fmt.Sprintf("- %s (%s)", p.NameSurname, p.Country)
			})...)
		}
	}

	return strings.Join(lines, "\n")
}

// FormatPlaces renders place search candidates with the ids get_place_details expects
func FormatPlaces(places []PlaceCandidate) string {
	if len(places) == 0 {
		return "No places found matching your query."
	}

	lines := []string{"Found locations:"}
	for i, place := range places {
		lines = append(lines, fmt.Sprintf("%d. %s (ID: %s)", i+1, place.Description, place.PlaceID))
	}
	return strings.Join(lines, "\n")
}

// FormatPlaceDetails renders a single place with coordinates when known
func FormatPlaceDetails(details *PlaceDetails) string {
	lines := []string{
		"Location Details:",
		fmt.Sprintf("Name: %s", details.DisplayName()),
		fmt.Sprintf("Address: %s", details.DisplayAddress()),
	}

	if loc, ok := details.Coordinates(); ok {
		lines = append(lines,
			fmt.Sprintf("Latitude: %s", formatCoordinate(loc.Lat)),
			fmt.Sprintf("Longitude: %s", formatCoordinate(loc.Lng)),
		)
	}

	if len(details.Types) > 0 {
		lines = append(lines, fmt.Sprintf("Type: %s", strings.Join(details.Types, ", ")))
	}

	return strings.Join(lines, "\n")
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
