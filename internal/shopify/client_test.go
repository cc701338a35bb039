package shopify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/zerzus666/ticketforge-app-sub001/internal/logger"
)

func newTestClient(baseURL string) *Client {
	return NewClientWithBaseURL(baseURL, "shpat_test", 3, logger.NewDiscard())
}

func TestCreateFulfillment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/450789469/fulfillments.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		if got := r.Header.Get("X-Shopify-Access-Token"); got != "shpat_test" {
			t.Errorf("access token header = %q", got)
		}

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"fulfillment": {"id": 1069019888, "order_id": 450789469,
			"status": "success", "tracking_number": "1Z999AA10123456784"}}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	fulfillment, err := client.CreateFulfillment(context.Background(), 450789469, FulfillmentRequest{
		TrackingNumber:  "1Z999AA10123456784",
		TrackingCompany: "UPS",
	})
	if err != nil {
		t.Fatalf("CreateFulfillment returned error: %v", err)
	}

	if fulfillment.ID != 1069019888 || fulfillment.TrackingNumber != "1Z999AA10123456784" {
		t.Errorf("unexpected fulfillment: %+v", fulfillment)
	}
}

func TestCreateShippingLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"shipping_label": {"tracking_number": "9400100000000000000000",
			"label_url": "https://labels.example/1.pdf", "cost": "7.90", "currency": "USD"}}`)
	}))
	defer server.Close()

	label, err := newTestClient(server.URL).CreateShippingLabel(context.Background(), 1, ShippingLabelRequest{
		Carrier: "usps",
		Service: "priority",
		Weight:  0.5,
	})
	if err != nil {
		t.Fatalf("CreateShippingLabel returned error: %v", err)
	}

	if label.LabelURL != "https://labels.example/1.pdf" || label.Currency != "USD" {
		t.Errorf("unexpected label: %+v", label)
	}
}

func TestClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"errors": "Order has already been fulfilled"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateFulfillment(context.Background(), 1, FulfillmentRequest{})
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}

	if !strings.Contains(err.Error(), "422") || !strings.Contains(err.Error(), "already been fulfilled") {
		t.Errorf("error should carry status and message: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("4xx response was retried %d times, want 1 call", calls.Load())
	}
}

func TestServerErrorRetried(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		fmt.Fprint(w, `{"fulfillment": {"id": 7, "status": "success"}}`)
	}))
	defer server.Close()

	fulfillment, err := newTestClient(server.URL).CreateFulfillment(context.Background(), 1, FulfillmentRequest{})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}

	if fulfillment.ID != 7 {
		t.Errorf("unexpected fulfillment: %+v", fulfillment)
	}

	if calls.Load() != 3 {
		t.Errorf("expected 3 calls, got %d", calls.Load())
	}
}

func TestBulkFulfill_ContinuesOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/orders/2/") {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"errors": "Line items are invalid"}`)
			return
		}

		fmt.Fprint(w, `{"fulfillment": {"id": 100, "status": "success", "tracking_number": "TN-1"}}`)
	}))
	defer server.Close()

	items := []BulkItem{
		{OrderID: 1},
		{OrderID: 2},
		{OrderID: 3},
	}

	results := newTestClient(server.URL).BulkFulfill(context.Background(), items, 2)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Error != "" || results[2].Error != "" {
		t.Errorf("good orders reported errors: %+v", results)
	}

	if results[0].TrackingNumber != "TN-1" {
		t.Errorf("missing tracking number on success: %+v", results[0])
	}

	if results[1].Error == "" || !strings.Contains(results[1].Error, "Line items are invalid") {
		t.Errorf("failed order should carry the API message: %+v", results[1])
	}

	// Results stay in input order regardless of completion order.
	for i, want := range []int64{1, 2, 3} {
		if results[i].OrderID != want {
			t.Errorf("results[%d].OrderID = %d, want %d", i, results[i].OrderID, want)
		}
	}
}

func TestUpdateTracking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fulfillments/55/update_tracking.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		fmt.Fprint(w, `{"fulfillment": {"id": 55, "tracking_number": "NEW-123"}}`)
	}))
	defer server.Close()

	fulfillment, err := newTestClient(server.URL).UpdateTracking(context.Background(), 55, TrackingUpdate{
		TrackingNumber: "NEW-123",
	})
	if err != nil {
		t.Fatalf("UpdateTracking returned error: %v", err)
	}

	if fulfillment.TrackingNumber != "NEW-123" {
		t.Errorf("unexpected fulfillment: %+v", fulfillment)
	}
}
