package itinerary

import (
	"fmt"
	"io"

	"roamly/models"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders the itinerary as a printable schedule.
func WritePDF(w io.Writer, trip models.Trip, it models.Itinerary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(trip.Name, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, trip.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s | %s to %s", trip.Destination, trip.StartDate, trip.EndDate), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, day := range it.Days {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, day.DayLabel, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)

		if len(day.Items) == 0 {
			pdf.CellFormat(0, 6, "Free day", "", 1, "L", false, 0, "")
		}
		for _, item := range day.Items {
			line := fmt.Sprintf("%-9s %s", item.Time, item.Title)
			if item.Subtitle != "" {
				line += " (" + item.Subtitle + ")"
			}
			if item.EstimatedCost > 0 {
				line += fmt.Sprintf(" - $%d", item.EstimatedCost)
			}
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Estimated total: $%d per person", it.TotalCost), "T", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, it.Summary, "", "L", false)

	return pdf.Output(w)
}
