package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InvoiceLine is one additional-charge row snapshotted onto an invoice.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Invoice is a write-once denormalized snapshot produced after a completed
// checkout. Guest and room facts are copied in so the invoice stays intact
// even if the underlying records are later edited or removed.
type Invoice struct {
	ID        uint           `gorm:"primaryKey" json:"invoiceId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID     uint      `gorm:"index;column:booking_id" json:"bookingId"`
	InvoiceNumber string    `gorm:"size:64;index" json:"invoiceNumber"`
	CreatedOn     time.Time `gorm:"column:created_on" json:"createdOn"`

	GuestName     string `gorm:"size:255" json:"guestName"`
	GuestMobile   string `gorm:"size:32" json:"guestMobile"`
	GuestEmail    string `gorm:"size:150" json:"guestEmail"`
	IDProofType   string `gorm:"column:id_proof_type;size:64" json:"idProofType"`
	IDProofNumber string `gorm:"column:id_proof_number;size:64" json:"idProofNumber"`

	RoomNumber string `gorm:"size:50" json:"roomNumber"`
	RoomType   string `gorm:"size:100" json:"roomType"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	TotalNights  int       `gorm:"column:total_nights" json:"totalNights"`

	RoomRate      float64 `gorm:"column:room_rate" json:"roomRate"`
	SubTotal      float64 `gorm:"column:sub_total" json:"subTotal"`
	TaxPercentage float64 `gorm:"column:tax_percentage" json:"taxPercentage"`
	TaxAmount     float64 `gorm:"column:tax_amount" json:"taxAmount"`
	Discount      float64 `json:"discount"`
	GrandTotal    float64 `gorm:"column:grand_total" json:"grandTotal"`

	PaymentStatus string `gorm:"size:32" json:"paymentStatus"`
	PaymentMethod string `gorm:"size:50" json:"paymentMethod"`

	AdditionalCharges datatypes.JSON `gorm:"column:additional_charges" json:"additionalCharges,omitempty"`
}
