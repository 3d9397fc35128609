package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/campusvoice/feedback-service/internal/models"
	"github.com/campusvoice/feedback-service/internal/store"
)

// ExportService renders the full feedback collection as a downloadable
// report for the admin dashboard.
type ExportService interface {
	ExportFeedbackToCSV(ctx context.Context) ([]byte, error)
	ExportFeedbackToExcel(ctx context.Context) ([]byte, error)
}

type exportService struct {
	store   store.Store
	logger  *slog.Logger
	latency latency
}

func NewExportService(st store.Store, logger *slog.Logger, delay time.Duration) ExportService {
	return &exportService{
		store:   st,
		logger:  logger,
		latency: latency{delay: delay},
	}
}

var exportHeaders = []string{
	"ID", "Student Name", "Student Email", "Faculty", "Course", "Rating", "Comments", "Date", "Updated At",
}

func (s *exportService) ExportFeedbackToCSV(ctx context.Context) ([]byte, error) {
	all, err := s.loadFeedback(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, fb := range all {
		if err := writer.Write(feedbackToRow(fb)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Exported feedback to CSV", "rows", len(all))
	return buf.Bytes(), nil
}

func (s *exportService) ExportFeedbackToExcel(ctx context.Context) ([]byte, error) {
	all, err := s.loadFeedback(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Feedback"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, fb := range all {
		for colIndex, value := range feedbackToRow(fb) {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	if err := s.latency.simulate(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Exported feedback to Excel", "rows", len(all))
	return buf.Bytes(), nil
}

func (s *exportService) loadFeedback(ctx context.Context) ([]models.Feedback, error) {
	all := []models.Feedback{}
	if _, err := s.store.Read(ctx, models.StorageKeyFeedback, &all); err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	return all, nil
}

func feedbackToRow(fb models.Feedback) []string {
	return []string{
		strconv.FormatInt(fb.ID, 10),
		fb.StudentName,
		fb.StudentEmail,
		fb.FacultyName,
		fb.Course,
		strconv.Itoa(fb.Rating),
		fb.Comments,
		fb.Date,
		fb.UpdatedAt,
	}
}
