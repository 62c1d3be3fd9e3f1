package services

import (
	"testing"
	"time"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func bookingWithRate(baseRate float64, checkIn, checkOut time.Time) models.Booking {
	typeID := uint(1)
	return models.Booking{
		ID:                   7,
		GuestID:              3,
		RoomID:               12,
		Status:               models.BookingActive,
		CheckInTime:          checkIn,
		ExpectedCheckOutTime: checkOut,
		Adults:               2,
		Room: &models.Room{
			ID:         12,
			Number:     "204",
			RoomTypeID: &typeID,
			RoomType:   &models.RoomType{ID: typeID, Name: "Standard", BaseRate: baseRate},
		},
	}
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)

	t.Run("partial day rounds up", func(t *testing.T) {
		b := bookingWithRate(2000, checkIn, time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))
		assert.Equal(t, 2, Nights(b))
	})

	t.Run("exact 24h span is one night", func(t *testing.T) {
		b := bookingWithRate(2000, checkIn, checkIn.Add(24*time.Hour))
		assert.Equal(t, 1, Nights(b))
	})

	t.Run("checkout before checkin clamps to zero", func(t *testing.T) {
		b := bookingWithRate(2000, checkIn, checkIn.Add(-12*time.Hour))
		assert.Equal(t, 0, Nights(b))
	})
}

func TestComputeBill_WorkedExample(t *testing.T) {
	// 2024-01-01 14:00 in, 2024-01-03 11:00 out, Standard at 2000/night,
	// one 300 charge, no discount, nothing paid.
	b := bookingWithRate(2000,
		time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))
	charges := []models.Charge{{ID: 1, BookingID: b.ID, Description: "Dinner", Amount: 300}}

	bill := ComputeBill(b, charges, 0, 0, 0)

	assert.Equal(t, 2, bill.Nights)
	assert.Equal(t, 2000.0, bill.NightlyRate)
	assert.False(t, bill.RateDerived)
	assert.Equal(t, 4000.0, bill.RoomCharge)
	assert.Equal(t, 300.0, bill.AdditionalCharges)
	assert.Equal(t, 4300.0, bill.Subtotal)
	assert.Equal(t, 0.0, bill.Discount)
	assert.Equal(t, 774.0, bill.TaxAmount)
	assert.Equal(t, 5074.0, bill.GrandTotal)
	assert.Equal(t, 5074.0, bill.Balance)
	assert.Equal(t, "Pending", bill.PaymentStatus)
}

func TestComputeBill_FullPaymentMarksPaid(t *testing.T) {
	b := bookingWithRate(2000,
		time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))
	charges := []models.Charge{{Description: "Dinner", Amount: 300}}

	bill := ComputeBill(b, charges, 0, 0, 5074)

	assert.Equal(t, 0.0, bill.Balance)
	assert.Equal(t, "Paid", bill.PaymentStatus)

	overpaid := ComputeBill(b, charges, 0, 0, 6000)
	assert.Equal(t, -926.0, overpaid.Balance)
	assert.Equal(t, "Paid", overpaid.PaymentStatus)
}

func TestComputeBill_PercentOverridesAbsoluteDiscount(t *testing.T) {
	// subtotal 1000: 10% must give 100, never 500 and never 600.
	b := bookingWithRate(500,
		time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 3, 11, 0, 0, 0, time.UTC))

	bill := ComputeBill(b, nil, 10, 500, 0)

	assert.Equal(t, 1000.0, bill.Subtotal)
	assert.Equal(t, 100.0, bill.Discount)

	absolute := ComputeBill(b, nil, 0, 500, 0)
	assert.Equal(t, 500.0, absolute.Discount)
}

func TestComputeBill_Idempotent(t *testing.T) {
	b := bookingWithRate(2000,
		time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))
	charges := []models.Charge{
		{Description: "Laundry", Amount: 150},
		{Description: "Mini Bar", Amount: 420},
	}

	first := ComputeBill(b, charges, 5, 0, 1000)
	second := ComputeBill(b, charges, 5, 0, 1000)

	assert.Equal(t, first, second)
}

func TestNightlyRate_FallbackFromStoredTotal(t *testing.T) {
	t.Run("missing rate derives from total", func(t *testing.T) {
		b := bookingWithRate(0,
			time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))
		b.TotalAmount = 4000

		rate, derived := NightlyRate(b)
		assert.Equal(t, 2000.0, rate)
		assert.True(t, derived)

		// The approximation reproduces the direct-rate room charge.
		bill := ComputeBill(b, nil, 0, 0, 0)
		assert.Equal(t, 4000.0, bill.RoomCharge)
		assert.True(t, bill.RateDerived)
	})

	t.Run("no rate and no total yields zero silently", func(t *testing.T) {
		b := bookingWithRate(0,
			time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))

		rate, derived := NightlyRate(b)
		assert.Equal(t, 0.0, rate)
		assert.False(t, derived)

		bill := ComputeBill(b, nil, 0, 0, 0)
		assert.Equal(t, 0.0, bill.RoomCharge)
	})

	t.Run("missing room preload falls back too", func(t *testing.T) {
		b := bookingWithRate(0,
			time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC))
		b.Room = nil
		b.TotalAmount = 3540

		rate, derived := NightlyRate(b)
		assert.Equal(t, 3540.0, rate)
		assert.True(t, derived)
	})
}

func TestComputeBill_SumsChargesThroughLedger(t *testing.T) {
	b := bookingWithRate(2000,
		time.Date(2024, 4, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 2, 11, 0, 0, 0, time.UTC))
	charges := []models.Charge{
		{ID: 1, Description: "Dinner", Amount: 300},
		{ID: 2, Description: "Laundry", Amount: 150},
		{ID: 3, Description: "Mini Bar", Amount: 420},
	}

	bill := ComputeBill(b, charges, 0, 0, 0)

	assert.Equal(t, NewChargeLedger(charges...).Sum(), bill.AdditionalCharges)
	assert.Equal(t, 870.0, bill.AdditionalCharges)
	assert.Equal(t, 2870.0, bill.Subtotal)
}

func TestComputeBill_TaxRounding(t *testing.T) {
	// subtotal 999 at 18% → 179.82 → rounds half-up to 180.
	b := bookingWithRate(999,
		time.Date(2024, 5, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 11, 0, 0, 0, time.UTC))

	bill := ComputeBill(b, nil, 0, 0, 0)

	assert.Equal(t, 999.0, bill.Subtotal)
	assert.Equal(t, 180.0, bill.TaxAmount)
	assert.Equal(t, 1179.0, bill.GrandTotal)
}

func TestQuoteStay(t *testing.T) {
	total, tax := QuoteStay(
		time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC),
		2000, DefaultTaxRate)

	assert.Equal(t, 720.0, tax)
	assert.Equal(t, 4720.0, total)
}
