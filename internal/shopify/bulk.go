package shopify

import (
	"context"
	"sync"
)

// BulkItem is one order to fulfill in a batch.
type BulkItem struct {
	OrderID int64              `json:"orderId"`
	Request FulfillmentRequest `json:"request"`
}

// BulkResult records the outcome for one batch item. On failure Error is set
// and the remaining fields stay empty; the batch itself never aborts.
type BulkResult struct {
	OrderID        int64  `json:"orderId"`
	FulfillmentID  int64  `json:"fulfillmentId,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Error          string `json:"error,omitempty"`
}

// BulkFulfill creates fulfillments for every item, at most maxConcurrent in
// flight at once. Results are returned in input order.
func (c *Client) BulkFulfill(ctx context.Context, items []BulkItem, maxConcurrent int) []BulkResult {
	results := make([]BulkResult, len(items))

	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, maxConcurrent)
	)

	for i, item := range items {
		wg.Add(1)

		go func(index int, item BulkItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			result := BulkResult{OrderID: item.OrderID}

			fulfillment, err := c.CreateFulfillment(ctx, item.OrderID, item.Request)
			if err != nil {
				c.logger.Error("fulfillment failed", "order", item.OrderID, "error", err)

				result.Error = err.Error()
				results[index] = result

				return
			}

			result.FulfillmentID = fulfillment.ID
			result.TrackingNumber = fulfillment.TrackingNumber
			results[index] = result
		}(i, item)
	}

	wg.Wait()

	return results
}
