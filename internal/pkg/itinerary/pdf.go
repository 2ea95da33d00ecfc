// Package itinerary renders a trip and the catalog items it references as a
// printable PDF.
package itinerary

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"travelmate/internal/domain/catalog"
	"travelmate/internal/domain/trip"
	"travelmate/internal/pkg/errs"

	"github.com/jung-kurt/gofpdf"
)

// Document is everything printed on an itinerary. References that no longer
// resolve are simply absent from the slices.
type Document struct {
	Trip       trip.Trip
	Flights    []catalog.Flight
	Hotels     []catalog.Hotel
	Activities []catalog.Activity
}

const (
	pageWidth    = 210.0
	contentWidth = 170.0
	labelWidth   = 50.0
)

// Render lays out doc on A4 pages and returns the encoded PDF.
func Render(doc Document, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	// header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, pageWidth, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(contentWidth, 10, tr(doc.Trip.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(contentWidth, 6, tr(doc.Trip.Destination), "", 1, "L", false, 0, "")
	pdf.SetY(35)

	section := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(labelWidth, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(contentWidth-labelWidth, 7, tr(value), "", 1, "L", false, 0, "")
	}

	section("Trip Overview")
	row("Status", doc.Trip.Status.String())
	row("Dates", dateSpan(doc.Trip.StartDate, doc.Trip.EndDate))
	if doc.Trip.TotalPrice != nil {
		row("Total price", "$"+*doc.Trip.TotalPrice)
	}
	row("Generated", generatedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	if len(doc.Flights) > 0 {
		section("Flights")
		for _, f := range doc.Flights {
			row(f.Airline, fmt.Sprintf("%s to %s, %s", f.FromCity, f.ToCity, readableDate(f.DepartureDate)))
			row("", fmt.Sprintf("%s class, %d passenger(s), $%s", f.Class, f.Passengers, f.Price))
		}
		pdf.Ln(4)
	}

	if len(doc.Hotels) > 0 {
		section("Hotels")
		for _, h := range doc.Hotels {
			row(h.Name, fmt.Sprintf("%s, %s to %s", h.Location, readableDate(h.CheckIn), readableDate(h.CheckOut)))
			row("", fmt.Sprintf("$%s per night, rated %s", h.Price, h.Rating))
			if len(h.Amenities) > 0 {
				row("", strings.Join(h.Amenities, ", "))
			}
		}
		pdf.Ln(4)
	}

	if len(doc.Activities) > 0 {
		section("Activities")
		for _, a := range doc.Activities {
			row(a.Name, fmt.Sprintf("%s, %s, $%s", a.Location, a.Duration, a.Price))
			if a.Description != nil {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.SetTextColor(60, 60, 60)
				pdf.SetX(20 + labelWidth)
				pdf.MultiCell(contentWidth-labelWidth, 5, tr(*a.Description), "", "L", false)
			}
		}
		pdf.Ln(4)
	}

	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8, "Not a booking confirmation. Prices subject to change.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "render itinerary pdf")
	}
	return buf.Bytes(), nil
}

func dateSpan(start, end *string) string {
	switch {
	case start == nil && end == nil:
		return "Not scheduled"
	case end == nil:
		return "From " + readableDate(*start)
	case start == nil:
		return "Until " + readableDate(*end)
	}
	return readableDate(*start) + " to " + readableDate(*end)
}

func readableDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
