package bizimtransfer

import (
	"context"
	"net/http"
)

// SearchTransfers queries available vehicles and prices for one or both legs
func (c *Client) SearchTransfers(ctx context.Context, req *SearchTransfersRequest) (*TransferSearchResponse, error) {
	var result TransferSearchResponse
	if err := c.doRequest(ctx, http.MethodPost, "/query", nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
