package bizimtransfer

import (
	"context"
	"net/http"
)

// SearchPlaces looks up candidate places for free text (hotel, airport, city)
func (c *Client) SearchPlaces(ctx context.Context, text, language string) ([]PlaceCandidate, error) {
	var result []PlaceCandidate
	params := placesQuery{Query: text, Language: language}
	if err := c.doRequest(ctx, http.MethodGet, "/places", params, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPlaceDetails resolves a place id to its name, address and coordinates
func (c *Client) GetPlaceDetails(ctx context.Context, placeID, language string) (*PlaceDetails, error) {
	var result PlaceDetails
	params := placeDetailsQuery{PlaceID: placeID, Language: language}
	if err := c.doRequest(ctx, http.MethodGet, "/places/detail", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
