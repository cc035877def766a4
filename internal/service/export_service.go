package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dkg1212/interHostelTournaumentManagementSystem-sub000/internal/repository"
)

// ── export module errors ──

var (
	ErrExportNotFinalized = errors.New("event results are not finalized yet")
	ErrExportNoEntries    = errors.New("event has no result entries to export")
)

// ExportService renders finalized results as an Excel workbook. The file is
// returned as a buffer; the handler sets the download headers and writes it.
type ExportService interface {
	// ExportResults builds the .xlsx for one finalized event.
	// Returns the content, a suggested filename and an error.
	ExportResults(ctx context.Context, eventID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo    *repository.Repository
	results ResultService
	logger  *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, results ResultService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, results: results, logger: logger}
}

func (s *exportService) ExportResults(ctx context.Context, eventID string) (*bytes.Buffer, string, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEventNotFound
		}
		s.logger.Error("look up event failed", zap.Error(err))
		return nil, "", err
	}
	if !event.FinalApproved {
		return nil, "", ErrExportNotFinalized
	}

	res, err := s.results.EventResults(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	if len(res.Entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Rank", "Participant", "Hostel", "Position", "Score"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		s.logger.Error("write export header failed", zap.Error(err))
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "E1", headerStyle)
	}

	for i, entry := range res.Entries {
		row := []interface{}{i + 1, entry.ParticipantName, entry.HostelName, entry.Position, entry.Score}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			s.logger.Error("write export row failed", zap.Error(err))
			return nil, "", err
		}
	}

	f.SetColWidth(sheet, "B", "C", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write export buffer failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("results-%s.xlsx", event.EventID)
	return buf, filename, nil
}
