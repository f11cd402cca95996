package bizimtransfer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transferSearchJSON = `{
	"status": "success",
	"uuid": "5f0c1e2a-aaaa-bbbb-cccc-1234567890ab",
	"pickup": "Antalya Airport",
	"dropoff": "Kemer",
	"adult": 2,
	"child": "1",
	"infant": 0,
	"currencysembol": "€",
	"ways": [
		{
			"type": "yon1",
			"from": "Antalya Airport",
			"to": "Kemer",
			"date": "2025-07-01",
			"list": [
				{
					"carname": "Mercedes Vito",
					"extramessage": "VIP",
					"pickup": "10:30",
					"duration": 45,
					"price": "55.00",
					"kisihakki": 6,
					"bavulhakki": 6,
					"extraurunler": [{"UrunTanimi": "Child Seat", "BirimFiyat": 5}],
					"routeid": 11,
					"subrouteid": 987
				}
			]
		},
		{
			"type": "yon2",
			"from": "Kemer",
			"to": "Antalya Airport",
			"date": "2025-07-08",
			"list": [
				{
					"carname": "Sprinter",
					"pickup": "08:00",
					"duration": "50",
					"price": 70,
					"kisihakki": 12,
					"bavulhakki": 12,
					"routeid": 12,
					"subrouteid": 988
				}
			]
		}
	]
}`

func TestFormatTransferResults(t *testing.T) {
	var result TransferSearchResponse
	require.NoError(t, json.Unmarshal([]byte(transferSearchJSON), &result))

	out := FormatTransferResults(&result)
	want := strings.Join([]string{
		"Transfer options from Antalya Airport to Kemer",
		"Total passengers: 2 adults, 1 children, 0 infants",
		"",
		"Booking reference (UUID): 5f0c1e2a-aaaa-bbbb-cccc-1234567890ab",
		"",
		"## Outbound Journey",
		"From: Antalya Airport",
		"To: Kemer",
		"Date: 2025-07-01",
		"",
		"### Option 1: Mercedes Vito",
		"Type: VIP",
		"Pickup Time: 10:30",
		"Duration: 45 minutes",
		"Price: 55.00 €",
		"Max Passengers: 6 with 6 luggage items",
		"Available Extras:",
		"- Child Seat: 5 €",
		"Route ID: 11",
		"Subroute ID: 987 (needed for booking)",
		"",
		"## Return Journey",
		"From: Kemer",
		"To: Antalya Airport",
		"Date: 2025-07-08",
		"",
		"### Option 1: Sprinter",
		"Type: Standard",
		"Pickup Time: 08:00",
		"Duration: 50 minutes",
		"Price: 70 €",
		"Max Passengers: 12 with 12 luggage items",
		"Route ID: 12",
		"Subroute ID: 988 (needed for booking)",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestFormatTransferResults_Failure(t *testing.T) {
	var result TransferSearchResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":"error","description":"No cars available"}`), &result))
	assert.Equal(t, "Error: No cars available", FormatTransferResults(&result))

	result = TransferSearchResponse{}
	assert.Equal(t, "Error: Unknown error occurred", FormatTransferResults(&result))
}

func TestFormatReservationResult(t *testing.T) {
	var result ReservationResponse
	require.NoError(t, json.Unmarshal([]byte(`{"status":"success","rezid":445566}`), &result))

	want := "✅ Reservation successfully created!\n" +
		"Reservation Number: 445566\n" +
		"\n" +
		"Please keep this reservation number for your records.\n" +
		"You should receive a confirmation email with your booking details."
	assert.Equal(t, want, FormatReservationResult(&result))

	result = ReservationResponse{Envelope: Envelope{Status: "error", Description: "Invalid uuid"}}
	assert.Equal(t, "Error: Invalid uuid", FormatReservationResult(&result))
}

func TestFormatReservationList(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		result := ReservationListResponse{Envelope: Envelope{Status: "success"}}
		assert.Equal(t, "No reservations found matching your criteria.", FormatReservationList(&result))
	})

	t.Run("Failure", func(t *testing.T) {
		result := ReservationListResponse{Envelope: Envelope{Status: "fail"}}
		assert.Equal(t, "Error: Unknown error occurred", FormatReservationList(&result))
	})

	t.Run("Records", func(t *testing.T) {
		body := `{
			"status": "success",
			"list": [{
				"reservationnumber": 1001,
				"customername": "Ayse",
				"customersurname": "Yilmaz",
				"customeremail": "ayse@example.com",
				"customertel": "+905551112233",
				"adult": 2, "child": 0, "infant": 0,
				"Amount": "110.00",
				"currency": "EUR",
				"status": "Confirmed",
				"paymenttype": "Cash",
				"createat": "2025-06-01 12:00:00",
				"ways": [
					{"pickupadres": "Antalya Airport", "returnadres": "Kemer", "flightdate": "2025-07-01", "pickuptime": "10:30", "car": "Vito", "duration": 45, "flightnumber": "TK123", "terminal": "2"},
					{"pickupadres": "Kemer", "returnadres": "Antalya Airport", "flightdate": "2025-07-08", "pickuptime": "08:00", "car": "Vito", "duration": 45, "flightnumber": "", "terminal": ""}
				],
				"passangers": [
					{"namesurname": "Ayse Yilmaz", "country": "tr"},
					{"namesurname": "Mehmet Yilmaz", "country": "tr"}
				]
			}]
		}`
		var result ReservationListResponse
		require.NoError(t, json.Unmarshal([]byte(body), &result))

		want := strings.Join([]string{
			"Found 1 reservation(s):",
			"\n## Reservation 1",
			"Reservation Number: 1001",
			"Customer: Ayse Yilmaz",
			"Contact: ayse@example.com, +905551112233",
			"Passengers: 2 adults, 0 children, 0 infants",
			"Amount: 110.00 EUR",
			"Status: Confirmed",
			"Payment: Cash",
			"Created: 2025-06-01 12:00:00",
			"\nTransfers:",
			"- Outbound: Antalya Airport → Kemer",
			"  Date: 2025-07-01, Pickup time: 10:30",
			"  Vehicle: Vito, Duration: 45 min",
			"  Flight: TK123, Terminal: 2",
			"- Return: Kemer → Antalya Airport",
			"  Date: 2025-07-08, Pickup time: 08:00",
			"  Vehicle: Vito, Duration: 45 min",
			"\nPassengers:",
			"- Ayse Yilmaz (tr)",
			"- Mehmet Yilmaz (tr)",
		}, "\n")
		assert.Equal(t, want, FormatReservationList(&result))
	})
}

func TestFormatPlaces(t *testing.T) {
	assert.Equal(t, "No places found matching your query.", FormatPlaces(nil))
	assert.Equal(t, "No places found matching your query.", FormatPlaces([]PlaceCandidate{}))

	out := FormatPlaces([]PlaceCandidate{
		{PlaceID: "ChIJ1", Description: "Antalya Airport, Antalya, Turkey"},
		{PlaceID: "ChIJ2", Description: "Kemer, Antalya, Turkey"},
	})
	assert.Equal(t, "Found locations:\n"+
		"1. Antalya Airport, Antalya, Turkey (ID: ChIJ1)\n"+
		"2. Kemer, Antalya, Turkey (ID: ChIJ2)", out)
}

func TestFormatPlaceDetails(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		details := &PlaceDetails{
			Name:             "Antalya Airport",
			FormattedAddress: "07230 Muratpasa/Antalya, Turkey",
			Geometry:         &Geometry{Location: NewLocation(36.8987, 30.8005)},
			Types:            []string{"airport", "point_of_interest"},
		}
		assert.Equal(t, "Location Details:\n"+
			"Name: Antalya Airport\n"+
			"Address: 07230 Muratpasa/Antalya, Turkey\n"+
			"Latitude: 36.8987\n"+
			"Longitude: 30.8005\n"+
			"Type: airport, point_of_interest", FormatPlaceDetails(details))
	})

	t.Run("Sparse", func(t *testing.T) {
		assert.Equal(t, "Location Details:\nName: N/A\nAddress: N/A", FormatPlaceDetails(&PlaceDetails{}))
	})

	t.Run("EmptyLocation", func(t *testing.T) {
		var details PlaceDetails
		require.NoError(t, json.Unmarshal([]byte(`{"name":"X","geometry":{"location":{}}}`), &details))
		assert.Equal(t, "Location Details:\nName: X\nAddress: N/A", FormatPlaceDetails(&details))
	})

	t.Run("MissingLongitude", func(t *testing.T) {
		var details PlaceDetails
		require.NoError(t, json.Unmarshal([]byte(`{"name":"X","geometry":{"location":{"lat":36.9}}}`), &details))
		assert.Equal(t, "Location Details:\nName: X\nAddress: N/A\nLatitude: 36.9\nLongitude: N/A", FormatPlaceDetails(&details))
	})
}
