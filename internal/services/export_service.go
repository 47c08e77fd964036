package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/litconnect/account-service/internal/repositories"
)

const exportSheet = "Users"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportUsers renders the current directory page as an XLSX workbook.
func (s *exportService) ExportUsers(ctx context.Context) ([]byte, error) {
	users, err := s.repo.User().List(ctx, directoryLimit)
	if err != nil {
		return nil, fmt.Errorf("listing users for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Full Name", "Email", "Role", "Headline", "School", "Registered"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}

	for row, user := range users {
		values := []interface{}{
			user.ID,
			user.FullName,
			user.Email,
			string(user.Role),
			derefOrEmpty(user.Headline),
			derefOrEmpty(user.School),
			user.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	s.logger.Info("exported user directory", "count", len(users))
	return buf.Bytes(), nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
