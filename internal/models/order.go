package models

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethodCOD is the only payment method that is unpaid until a transaction is recorded.
const PaymentMethodCOD = "COD"

// Image is a stored product image reference.
type Image struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

// ProductSnapshot freezes the product as it looked when the order was placed.
type ProductSnapshot struct {
	Brand       string     `bson:"brand,omitempty" json:"brand,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	CoverImage  *Image     `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Images      []Image    `bson:"images,omitempty" json:"images,omitempty"`
	Tags        StringList `bson:"tags,omitempty" json:"tags,omitempty"`
}

// OrderItem represents a single product entry within an order.
type OrderItem struct {
	ProductID       primitive.ObjectID `bson:"product" json:"productId"`
	Name            string             `bson:"name" json:"name"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	SelectedSize    string             `bson:"selectedSize" json:"selectedSize"`
	SelectedColor   string             `bson:"selectedColor,omitempty" json:"selectedColor,omitempty"`
	UnitPrice       float64            `bson:"unitPrice" json:"unitPrice"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	ProductSnapshot ProductSnapshot    `bson:"productSnapshot" json:"productSnapshot"`
}

// OrderCustomer captures the customer contact details copied onto the order.
type OrderCustomer struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// ShippingAddress is the postal destination of an order.
type ShippingAddress struct {
	FullName   string `bson:"fullName" json:"fullName"`
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// PaymentDetail records how an order was paid for.
type PaymentDetail struct {
	Method        string `bson:"method" json:"method"`
	TransactionID string `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}

// Paid reports whether the payment is settled: a recorded transaction or any
// method other than cash on delivery.
func (p PaymentDetail) Paid() bool {
	return p.TransactionID != "" || p.Method != PaymentMethodCOD
}

// Order defines the persisted order document.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer        OrderCustomer      `bson:"user" json:"customer"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentDetail   PaymentDetail      `bson:"paymentDetail" json:"paymentDetail"`
	Status          OrderStatus        `bson:"status" json:"status"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// Paid is derived from the payment detail only, never from the status.
func (o Order) Paid() bool {
	return o.PaymentDetail.Paid()
}

// FormatAmount renders an amount in its shortest decimal form, e.g. 100, 49.5.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
