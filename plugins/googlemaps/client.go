package googlemaps

import (
	"context"
	"fmt"

	"github.com/va6996/bizimtransfer-mcp/log"
	"github.com/va6996/bizimtransfer-mcp/plugins/bizimtransfer"
	"googlemaps.github.io/maps"
)

// Client handles Google Maps API requests.
// It satisfies bizimtransfer.PlacesProvider so the place tools can use Google directly.
type Client struct {
	APIKey     string
	MapsClient *maps.Client
}

// NewClient creates a new Google Maps API client
// Returns an error if the client cannot be initialized
func NewClient(apiKey string, opts ...maps.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{
		APIKey:     apiKey,
		MapsClient: c,
	}, nil
}

// SearchPlaces searches for places using autocomplete
func (c *Client) SearchPlaces(ctx context.Context, query, language string) ([]bizimtransfer.PlaceCandidate, error) {
	if c.MapsClient == nil {
		return nil, fmt.Errorf("maps client not initialized")
	}

	resp, err := c.MapsClient.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input:    query,
		Language: language,
	})
	if err != nil {
		return nil, fmt.Errorf("autocomplete request failed: %w", err)
	}

	places := make([]bizimtransfer.PlaceCandidate, len(resp.Predictions))
	for i, pred := range resp.Predictions {
		places[i] = bizimtransfer.PlaceCandidate{
			PlaceID:     pred.PlaceID,
			Description: pred.Description,
		}
	}

	log.Debugf(ctx, "Google autocomplete returned %d predictions for '%s'", len(places), query)
	return places, nil
}

// GetPlaceDetails retrieves name, address, coordinates and types of a place
func (c *Client) GetPlaceDetails(ctx context.Context, placeID, language string) (*bizimtransfer.PlaceDetails, error) {
	if c.MapsClient == nil {
		return nil, fmt.Errorf("maps client not initialized")
	}

	result, err := c.MapsClient.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: language,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskPlaceID,
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskGeometry,
			maps.PlaceDetailsFieldMaskTypes,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}

	details := &bizimtransfer.PlaceDetails{
		Name:             result.Name,
		FormattedAddress: result.FormattedAddress,
		Types:            result.Types,
	}
	if loc := result.Geometry.Location; loc.Lat != 0 || loc.Lng != 0 {
		details.Geometry = &bizimtransfer.Geometry{
			Location: bizimtransfer.NewLocation(loc.Lat, loc.Lng),
		}
	}

	return details, nil
}
