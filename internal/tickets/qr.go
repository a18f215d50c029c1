// Package tickets renders the booking confirmation ticket as a QR code.
package tickets

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"

	"ms-booking-client/internal/models"
)

const DefaultQRSize = 256

// ConfirmationPayload is the JSON encoded into the ticket QR code.
type ConfirmationPayload struct {
	BookingID models.ID `json:"bookingId"`
	Event     string    `json:"event"`
	Seats     int       `json:"seats"`
	Status    string    `json:"status"`
}

func NewConfirmationPayload(b models.Booking) ConfirmationPayload {
	return ConfirmationPayload{
		BookingID: b.Key(),
		Event:     b.EventTitle,
		Seats:     b.SeatsBooked,
		Status:    models.BookingConfirmed,
	}
}

type QRGenerator struct {
	size int
}

func NewQRGenerator(size int) *QRGenerator {
	if size <= 0 {
		size = DefaultQRSize
	}
	return &QRGenerator{size: size}
}

// ConfirmationQR returns a PNG for the booking's confirmation payload.
func (q *QRGenerator) ConfirmationQR(b models.Booking) ([]byte, error) {
	if b.Key() == "" {
		return nil, errors.New("booking has no identifier")
	}
	data, err := json.Marshal(NewConfirmationPayload(b))
	if err != nil {
		return nil, fmt.Errorf("failed to encode confirmation: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, q.size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

// FileName is the download name offered for the ticket image.
func FileName(id models.ID) string {
	return fmt.Sprintf("Summitra_Ticket_%s.png", id)
}
