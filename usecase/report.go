package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"main/model"
	"main/repository"

	"github.com/jung-kurt/gofpdf"
)

const reportWindowDays = 30

// ReportService renders a 30-day adherence summary as a PDF document.
type ReportService struct {
	MedicinesRepo *repository.MedicinesRepo
	DosesRepo     *repository.DosesRepo
	Now           func() time.Time
}

func NewReportService(medicinesRepo *repository.MedicinesRepo, dosesRepo *repository.DosesRepo) *ReportService {
	return &ReportService{
		MedicinesRepo: medicinesRepo,
		DosesRepo:     dosesRepo,
		Now:           time.Now,
	}
}

// AdherenceReport builds the PDF for the trailing 30-day window and returns
// the rendered bytes along with a suggested filename.
func (svc *ReportService) AdherenceReport(ctx context.Context, userID, displayName string) ([]byte, string, error) {
	now := svc.Now()
	from := now.AddDate(0, 0, -reportWindowDays)

	records, err := svc.DosesRepo.ListDoseRecordsInRange(ctx, userID, from, now)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load dose history: %w", err)
	}

	medicines, err := svc.MedicinesRepo.GetActiveMedicines(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load medicines: %w", err)
	}

	taken, missed := 0, 0
	for _, record := range records {
		switch record.Status {
		case model.DoseTaken:
			taken++
		case model.DoseMissed:
			missed++
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Medication Usage Report", false)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(37, 99, 235)
	pdf.Rect(0, 0, 210, 32, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(10, 9)
	pdf.CellFormat(190, 10, "Medication Usage Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(10)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s  |  %s - %s", displayName,
		from.Format("Jan 2, 2006"), now.Format("Jan 2, 2006")), "", 1, "L", false, 0, "")

	pdf.SetTextColor(31, 41, 55)
	pdf.SetY(40)

	// Summary boxes
	svc.statBox(pdf, 10, 40, "Adherence Rate", fmt.Sprintf("%d%%", AdherenceRate(records)))
	svc.statBox(pdf, 75, 40, "Doses Taken", fmt.Sprintf("%d", taken))
	svc.statBox(pdf, 140, 40, "Doses Missed", fmt.Sprintf("%d", missed))

	// Active medicines
	pdf.SetY(72)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(190, 8, "Active Medications", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	if len(medicines) == 0 {
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(190, 7, "No active medications.", "", 1, "L", false, 0, "")
		pdf.SetTextColor(31, 41, 55)
	}

	for _, medicine := range medicines {
		if pdf.GetY() > 260 {
			pdf.AddPage()
			pdf.SetY(15)
		}
		y := pdf.GetY() + 2
		pdf.SetFillColor(243, 244, 246)
		pdf.Rect(10, y, 190, 16, "F")
		pdf.SetXY(13, y+2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(120, 6, medicine.Name, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(64, 6, medicine.Dosage, "", 1, "R", false, 0, "")
		pdf.SetX(13)
		pdf.SetTextColor(107, 114, 128)
		schedule := medicine.Frequency
		if len(medicine.Times) > 0 {
			schedule = fmt.Sprintf("%s at %s", medicine.Frequency, joinTimes(medicine.Times))
		}
		pdf.CellFormat(184, 5, schedule, "", 1, "L", false, 0, "")
		pdf.SetTextColor(31, 41, 55)
		pdf.SetY(y + 18)
	}

	// Recent history, newest first
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(190, 8, "Recent Dose History", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	medicineNames := make(map[string]string, len(medicines))
	for _, medicine := range medicines {
		medicineNames[medicine.MedicineID] = medicine.Name
	}

	limit := len(records)
	if limit > 40 {
		limit = 40
	}
	for _, record := range records[:limit] {
		if pdf.GetY() > 275 {
			pdf.AddPage()
			pdf.SetY(15)
		}
		name := medicineNames[record.MedicineID]
		if name == "" {
			name = "Removed medication"
		}
		pdf.SetX(10)
		pdf.CellFormat(40, 6, record.TakenAt.Format("Jan 2 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(110, 6, name, "", 0, "L", false, 0, "")
		switch record.Status {
		case model.DoseTaken:
			pdf.SetTextColor(22, 163, 74)
		case model.DoseMissed:
			pdf.SetTextColor(220, 38, 38)
		default:
			pdf.SetTextColor(107, 114, 128)
		}
		pdf.CellFormat(40, 6, string(record.Status), "", 1, "R", false, 0, "")
		pdf.SetTextColor(31, 41, 55)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render report: %w", err)
	}

	filename := fmt.Sprintf("adherence-report-%s.pdf", now.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (svc *ReportService) statBox(pdf *gofpdf.Fpdf, x, y float64, label, value string) {
	pdf.SetFillColor(239, 246, 255)
	pdf.Rect(x, y, 60, 24, "F")
	pdf.SetXY(x, y+4)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(60, 8, value, "", 1, "C", false, 0, "")
	pdf.SetX(x)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(60, 6, label, "", 1, "C", false, 0, "")
	pdf.SetTextColor(31, 41, 55)
}

func joinTimes(times []string) string {
	out := ""
	for i, t := range times {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}
