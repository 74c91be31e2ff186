package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestPaymentDetailPaid(t *testing.T) {
	cases := []struct {
		name   string
		detail PaymentDetail
		want   bool
	}{
		{"cod without transaction", PaymentDetail{Method: "COD"}, false},
		{"cod with transaction", PaymentDetail{Method: "COD", TransactionID: "tx_1"}, true},
		{"card without transaction", PaymentDetail{Method: "Stripe"}, true},
		{"empty method", PaymentDetail{}, true},
	}
	for _, tc := range cases {
		if got := tc.detail.Paid(); got != tc.want {
			t.Fatalf("%s: expected paid=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestOrderPaidIgnoresStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		order := Order{Status: status, PaymentDetail: PaymentDetail{Method: "COD"}}
		if order.Paid() {
			t.Fatalf("expected unpaid COD order for status %q", status)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	cases := map[string]OrderStatus{
		"Delivered":        StatusDelivered,
		"Out for delivery": StatusOutForDelivery,
		"OutForDelivery":   StatusOutForDelivery,
		" OrderPlaced ":    StatusOrderPlaced,
	}
	for raw, want := range cases {
		got, ok := ParseOrderStatus(raw)
		if !ok || got != want {
			t.Fatalf("expected %q for %q, got %q (ok=%v)", want, raw, got, ok)
		}
	}
	if _, ok := ParseOrderStatus("Lost"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(100); got != "100" {
		t.Fatalf("expected 100, got %s", got)
	}
	if got := FormatAmount(49.5); got != "49.5" {
		t.Fatalf("expected 49.5, got %s", got)
	}
}

func TestSlugify(t *testing.T) {
	if got := Slugify("  Summer  Sale -- 2025! "); got != "summer-sale-2025" {
		t.Fatalf("expected summer-sale-2025, got %q", got)
	}
}

func TestStringListDecodesLegacyString(t *testing.T) {
	data, err := bson.Marshal(bson.M{"tags": " winter "})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var doc struct {
		Tags StringList `bson:"tags"`
	}
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(doc.Tags) != 1 || doc.Tags[0] != "winter" {
		t.Fatalf("expected [winter], got %v", doc.Tags)
	}
}
