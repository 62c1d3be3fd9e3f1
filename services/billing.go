package services

import (
	"math"
	"time"

	"frontdesk-backend/models"
)

// DefaultTaxRate is the GST rate applied at checkout. Overridable through
// TAX_RATE; 18% is the only rate the hotel has ever billed with.
const DefaultTaxRate = 0.18

// Bill is the full checkout breakdown. All amounts are whole currency
// units; rounding is half-up at each rounding step, matching how the
// front desk has always quoted totals.
type Bill struct {
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightlyRate"`
	// RateDerived marks the nightly rate as approximated from the
	// booking's stored total because no room-type base rate was available.
	RateDerived bool `json:"rateDerived"`

	RoomCharge        float64 `json:"roomCharge"`
	AdditionalCharges float64 `json:"additionalCharges"`
	Subtotal          float64 `json:"subTotal"`
	Discount          float64 `json:"discount"`
	TaxRate           float64 `json:"taxRate"`
	TaxAmount         float64 `json:"taxAmount"`
	GrandTotal        float64 `json:"grandTotal"`

	PaymentAmount float64 `json:"paymentAmount"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"paymentStatus"`
}

// Nights is the chargeable night count: the check-in to expected-checkout
// span in days, rounded up. A 14:00 arrival against an 11:00 departure two
// days later is 2 nights. Bad data where checkout precedes checkin yields 0.
func Nights(b models.Booking) int {
	span := b.ExpectedCheckOutTime.Sub(b.CheckInTime)
	if span <= 0 {
		return 0
	}
	return int(math.Ceil(span.Hours() / 24))
}

// NightlyRate resolves the per-night rate for a booking. The room type's
// base rate wins when present and positive. When rate metadata is missing
// the rate is approximated from the booking's stored total divided by the
// night count; the second return flags that fallback. A booking with
// neither yields 0 — a known upstream data-quality gap, not an error.
func NightlyRate(b models.Booking) (float64, bool) {
	if b.Room != nil && b.Room.RoomType != nil && b.Room.RoomType.BaseRate > 0 {
		return b.Room.RoomType.BaseRate, false
	}

	nights := Nights(b)
	if nights < 1 {
		nights = 1
	}
	if b.TotalAmount > 0 {
		return math.Round(b.TotalAmount / float64(nights)), true
	}
	return 0, false
}

// ComputeBill runs the checkout arithmetic with the default tax rate.
func ComputeBill(b models.Booking, charges []models.Charge, discountPercent, discountAmount, paymentAmount float64) Bill {
	return ComputeBillWithTax(b, charges, discountPercent, discountAmount, paymentAmount, DefaultTaxRate)
}

// ComputeBillWithTax derives the complete billing breakdown for a booking
// being closed. Pure: identical inputs always produce an identical Bill.
// Step order is fixed — nights, room charge, additional charges, discount,
// tax, total, balance. A positive discount percentage always overrides the
// absolute discount amount; the two are never combined.
func ComputeBillWithTax(b models.Booking, charges []models.Charge, discountPercent, discountAmount, paymentAmount, taxRate float64) Bill {
	nights := Nights(b)
	rate, derived := NightlyRate(b)
	roomCharge := float64(nights) * rate

	additional := NewChargeLedger(charges...).Sum()
	subtotal := roomCharge + additional

	discount := discountAmount
	if discountPercent > 0 {
		discount = math.Round(subtotal * discountPercent / 100)
	}

	afterDiscount := subtotal - discount
	tax := math.Round(afterDiscount * taxRate)
	total := afterDiscount + tax
	balance := total - paymentAmount

	status := "Pending"
	if balance <= 0 {
		status = "Paid"
	}

	return Bill{
		Nights:            nights,
		NightlyRate:       rate,
		RateDerived:       derived,
		RoomCharge:        roomCharge,
		AdditionalCharges: additional,
		Subtotal:          subtotal,
		Discount:          discount,
		TaxRate:           taxRate,
		TaxAmount:         tax,
		GrandTotal:        total,
		PaymentAmount:     paymentAmount,
		Balance:           balance,
		PaymentStatus:     status,
	}
}

// QuoteStay prices a prospective stay at check-in time: nights at the room
// type's base rate plus tax. Used to seed the booking's stored totals.
func QuoteStay(checkIn, checkOut time.Time, baseRate, taxRate float64) (total, tax float64) {
	span := checkOut.Sub(checkIn)
	nights := 0
	if span > 0 {
		nights = int(math.Ceil(span.Hours() / 24))
	}
	subtotal := float64(nights) * baseRate
	tax = math.Round(subtotal * taxRate)
	return subtotal + tax, tax
}
