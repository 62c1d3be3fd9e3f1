package services

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoice(t *testing.T) {
	b := bookingWithRate(2000,
		time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 11, 0, 0, 0, time.UTC))
	b.Guest = &models.Guest{
		ID: 3, FullName: "Asha Verma", Mobile: "9876543210",
		Email: "asha@example.com", IDType: "Passport", IDNumber: "P1234567",
	}
	charges := []models.Charge{{ID: 1, Description: "Dinner", Amount: 300}}
	bill := ComputeBill(b, charges, 0, 0, 5074)
	now := time.Date(2024, 1, 3, 10, 45, 0, 0, time.UTC)

	inv := BuildInvoice(b, bill, charges, "UPI", now)

	assert.Equal(t, b.ID, inv.BookingID)
	assert.Equal(t, fmt.Sprintf("INV-%d-%d", b.ID, now.UnixMilli()), inv.InvoiceNumber)
	assert.Equal(t, now, inv.CreatedOn)
	assert.Equal(t, now, inv.CheckOutDate)

	assert.Equal(t, "Asha Verma", inv.GuestName)
	assert.Equal(t, "Passport", inv.IDProofType)
	assert.Equal(t, "204", inv.RoomNumber)
	assert.Equal(t, "Standard", inv.RoomType)

	assert.Equal(t, 2, inv.TotalNights)
	assert.Equal(t, 2000.0, inv.RoomRate)
	assert.Equal(t, 4300.0, inv.SubTotal)
	assert.Equal(t, 18.0, inv.TaxPercentage)
	assert.Equal(t, 774.0, inv.TaxAmount)
	assert.Equal(t, 5074.0, inv.GrandTotal)
	assert.Equal(t, "Paid", inv.PaymentStatus)
	assert.Equal(t, "UPI", inv.PaymentMethod)

	var lines []models.InvoiceLine
	require.NoError(t, json.Unmarshal(inv.AdditionalCharges, &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, models.InvoiceLine{Description: "Dinner", Quantity: 1, Rate: 300, Amount: 300}, lines[0])
}

func TestBuildInvoice_MissingRelationsTolerated(t *testing.T) {
	// Invoice creation is best-effort: thin booking rows still produce a
	// valid snapshot rather than a panic.
	b := models.Booking{ID: 42, CheckInTime: time.Date(2024, 2, 1, 14, 0, 0, 0, time.UTC)}
	bill := ComputeBill(b, nil, 0, 0, 0)
	now := time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC)

	inv := BuildInvoice(b, bill, nil, "Cash", now)

	assert.Equal(t, uint(42), inv.BookingID)
	assert.Empty(t, inv.GuestName)
	assert.Empty(t, inv.RoomNumber)
	assert.Equal(t, "Cash", inv.PaymentMethod)
	// zero total against zero payment: balance 0, which reads as settled
	assert.Equal(t, "Paid", inv.PaymentStatus)

	var lines []models.InvoiceLine
	require.NoError(t, json.Unmarshal(inv.AdditionalCharges, &lines))
	assert.Empty(t, lines)
}
