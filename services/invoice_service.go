package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frontdesk-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

// BuildInvoice assembles the write-once invoice snapshot from a completed
// checkout. The invoice number is a composite of booking id and submission
// time — advisory, human-readable, not a primary key.
func BuildInvoice(b models.Booking, bill Bill, charges []models.Charge, paymentMode string, now time.Time) models.Invoice {
	inv := models.Invoice{
		BookingID:     b.ID,
		InvoiceNumber: fmt.Sprintf("INV-%d-%d", b.ID, now.UnixMilli()),
		CreatedOn:     now,

		CheckInDate:  b.CheckInTime,
		CheckOutDate: now,
		Adults:       b.Adults,
		Children:     b.Children,
		TotalNights:  bill.Nights,

		RoomRate:      bill.NightlyRate,
		SubTotal:      bill.Subtotal,
		TaxPercentage: bill.TaxRate * 100,
		TaxAmount:     bill.TaxAmount,
		Discount:      bill.Discount,
		GrandTotal:    bill.GrandTotal,
		PaymentStatus: bill.PaymentStatus,
		PaymentMethod: paymentMode,
	}

	if b.Guest != nil {
		inv.GuestName = b.Guest.FullName
		inv.GuestMobile = b.Guest.Mobile
		inv.GuestEmail = b.Guest.Email
		inv.IDProofType = b.Guest.IDType
		inv.IDProofNumber = b.Guest.IDNumber
	}
	if b.Room != nil {
		inv.RoomNumber = b.Room.Number
		if b.Room.RoomType != nil {
			inv.RoomType = b.Room.RoomType.Name
		}
	}

	lines := make([]models.InvoiceLine, 0, len(charges))
	for _, c := range charges {
		lines = append(lines, models.InvoiceLine{
			Description: c.Description,
			Quantity:    1,
			Rate:        c.Amount,
			Amount:      c.Amount,
		})
	}
	if raw, err := json.Marshal(lines); err == nil {
		inv.AdditionalCharges = datatypes.JSON(raw)
	}

	return inv
}

func (s *InvoiceService) Create(inv *models.Invoice) error {
	return s.DB.Create(inv).Error
}

// EmitAsync persists the invoice on a separate goroutine, strictly after
// the checkout transition has committed. Failure is logged and nothing
// else: the checkout already succeeded and must not be blocked or undone
// by invoice bookkeeping.
func (s *InvoiceService) EmitAsync(inv models.Invoice) {
	go func() {
		if err := s.Create(&inv); err != nil {
			logrus.WithFields(logrus.Fields{
				"booking_id":     inv.BookingID,
				"invoice_number": inv.InvoiceNumber,
			}).WithError(err).Warn("invoice creation failed; checkout unaffected")
		}
	}()
}

func (s *InvoiceService) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.DB.Order("created_on DESC").Find(&invoices).Error
	return invoices, err
}

func (s *InvoiceService) GetByID(id uint) (models.Invoice, error) {
	var inv models.Invoice
	err := s.DB.First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return inv, ErrNotFound
	}
	return inv, err
}
