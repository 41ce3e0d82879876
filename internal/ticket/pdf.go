// Package ticket renders a booking as a printable PDF.
package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/zhanrui-dev/devbus/internal/domain"
)

// Render produces the e-ticket for one booking.
func Render(b *domain.Booking, passengerName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("DevBus E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "DEVBUS E-TICKET")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Booking %s", b.Ref))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", orDash(passengerName)),
		fmt.Sprintf("Route       : %s -> %s", b.Source, b.Destination),
		fmt.Sprintf("Travel Date : %s", orDash(b.Date)),
		fmt.Sprintf("Seats       : %s", strings.Join(b.Seats, ", ")),
		fmt.Sprintf("Total Paid  : NT$ %d", b.Price),
		fmt.Sprintf("Status      : %s", b.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Present this ticket and a valid ID when boarding.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
