package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	content "venue-content-backend/internal/domains/content/model"
)

var exportHeaders = []string{
	"ID", "Venue", "Title", "When", "Date", "Recurring Day", "Start", "End",
	"Performer", "Type", "Cover", "Status",
}

// ExportEvents builds a workbook of a venue's events (every venue when venue is empty).
func (a *Aggregator) ExportEvents(ctx context.Context, venue content.VenueTag) (*excelize.File, int, error) {
	events, err := a.EventsWithPerformers(ctx, content.EventFilter{Venue: venue})
	if err != nil {
		return nil, 0, err
	}

	f := excelize.NewFile()
	sheet := "Events"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, 0, err
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, e := range events {
		row := make([]interface{}, 0, len(exportHeaders))
		row = append(row, e.ID.String(), string(e.VenueTag), e.Title, e.ScheduleLabel)
		if e.EventDate != nil {
			row = append(row, e.EventDate.Format("2006-01-02"))
		} else {
			row = append(row, nil)
		}
		row = append(row, deref(e.RecurringDay), deref(e.StartTime), deref(e.EndTime))
		if e.Performer != nil {
			row = append(row, e.Performer.Name)
		} else {
			row = append(row, nil)
		}
		row = append(row, deref(e.EventType))
		if e.CoverCharge != nil {
			row = append(row, e.CoverCharge.InexactFloat64())
		} else {
			row = append(row, nil)
		}
		row = append(row, string(e.Status))

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, 0, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	f.SetColWidth(sheet, "B", "D", 24)

	return f, len(events), nil
}

func deref(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
