package shopify

import (
	"context"
	"fmt"
)

// CreateFulfillment creates a fulfillment on an order and returns the
// created record.
func (c *Client) CreateFulfillment(ctx context.Context, orderID int64, req FulfillmentRequest) (*Fulfillment, error) {
	payload := map[string]FulfillmentRequest{"fulfillment": req}

	var resp struct {
		Fulfillment Fulfillment `json:"fulfillment"`
	}

	path := fmt.Sprintf("/orders/%d/fulfillments.json", orderID)
	if err := c.post(ctx, path, payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to create fulfillment for order %d: %w", orderID, err)
	}

	return &resp.Fulfillment, nil
}

// CreateShippingLabel purchases a shipping label for an order and returns
// the tracking number, label URL, and cost.
func (c *Client) CreateShippingLabel(ctx context.Context, orderID int64, req ShippingLabelRequest) (*ShippingLabel, error) {
	payload := map[string]ShippingLabelRequest{"shipping_label": req}

	var resp struct {
		ShippingLabel ShippingLabel `json:"shipping_label"`
	}

	path := fmt.Sprintf("/orders/%d/shipping_labels.json", orderID)
	if err := c.post(ctx, path, payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to create shipping label for order %d: %w", orderID, err)
	}

	return &resp.ShippingLabel, nil
}

// UpdateTracking updates tracking info on an existing fulfillment.
func (c *Client) UpdateTracking(ctx context.Context, fulfillmentID int64, req TrackingUpdate) (*Fulfillment, error) {
	payload := map[string]TrackingUpdate{"fulfillment": req}

	var resp struct {
		Fulfillment Fulfillment `json:"fulfillment"`
	}

	path := fmt.Sprintf("/fulfillments/%d/update_tracking.json", fulfillmentID)
	if err := c.post(ctx, path, payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to update tracking on fulfillment %d: %w", fulfillmentID, err)
	}

	return &resp.Fulfillment, nil
}
