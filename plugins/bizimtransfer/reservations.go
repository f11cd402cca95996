package bizimtransfer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// CreateReservation books the subroutes of a previous search.
// The customer country is sent lower-cased.
func (c *Client) CreateReservation(ctx context.Context, req *ReservationRequest) (*ReservationResponse, error) {
	body := *req
	body.CustomerCountry = strings.ToLower(body.CustomerCountry)

	var result ReservationResponse
	if err := c.doRequest(ctx, http.MethodPost, "/reservation", nil, &body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListReservations fetches bookings by creation date, flight date or reservation number
func (c *Client) ListReservations(ctx context.Context, req *ListReservationsRequest) (*ReservationListResponse, error) {
	body := ListReservationsRequest{QueryType: req.QueryType}
	switch {
	case req.QueryType.IsDateRange():
		body.Start, body.End = req.Start, req.End
	case req.QueryType == QueryByReservationNumber:
		body.ReservationNumber = req.ReservationNumber
	default:
		return nil, fmt.Errorf("unknown query type %q", req.QueryType)
	}

	var result ReservationListResponse
	if err := c.doRequest(ctx, http.MethodPost, "/list", nil, &body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
