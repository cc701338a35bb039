package shopify

import "time"

// FulfillmentRequest is the payload for creating a fulfillment on an order.
type FulfillmentRequest struct {
	LocationID      int64      `json:"location_id,omitempty"`
	TrackingNumber  string     `json:"tracking_number,omitempty"`
	TrackingCompany string     `json:"tracking_company,omitempty"`
	TrackingURL     string     `json:"tracking_url,omitempty"`
	NotifyCustomer  bool       `json:"notify_customer"`
	LineItems       []LineItem `json:"line_items,omitempty"`
}

// LineItem identifies an order line being fulfilled.
type LineItem struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// Fulfillment is the Admin API's representation of a created fulfillment.
type Fulfillment struct {
	ID              int64     `json:"id"`
	OrderID         int64     `json:"order_id"`
	Status          string    `json:"status"`
	TrackingNumber  string    `json:"tracking_number"`
	TrackingCompany string    `json:"tracking_company"`
	TrackingURL     string    `json:"tracking_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// ShippingLabelRequest asks the carrier integration for a label on an order.
type ShippingLabelRequest struct {
	Carrier     string  `json:"carrier"`
	Service     string  `json:"service"`
	Weight      float64 `json:"weight"`
	WeightUnit  string  `json:"weight_unit"`
	Origin      Address `json:"origin"`
	Destination Address `json:"destination"`
}

// Address is a shipping address in Shopify's wire format.
type Address struct {
	Name     string `json:"name,omitempty"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	Province string `json:"province,omitempty"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
}

// ShippingLabel is the label the Admin API returns.
type ShippingLabel struct {
	TrackingNumber string `json:"tracking_number"`
	LabelURL       string `json:"label_url"`
	Cost           string `json:"cost"`
	Currency       string `json:"currency"`
}

// TrackingUpdate updates tracking details on an existing fulfillment.
type TrackingUpdate struct {
	TrackingNumber  string `json:"tracking_number"`
	TrackingCompany string `json:"tracking_company,omitempty"`
	TrackingURL     string `json:"tracking_url,omitempty"`
	NotifyCustomer  bool   `json:"notify_customer"`
}
