package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/litconnect/account-service/internal/models"
)

func TestExportUsers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &memoryRepository{user: newMemoryUserRepository()}
	ctx := context.Background()

	headline := "Engineer"
	require.NoError(t, repo.user.Create(ctx, &models.User{
		FullName:     "Grace Hopper",
		Email:        "grace@example.com",
		Role:         models.RoleInstructor,
		PasswordHash: "x",
		Headline:     &headline,
	}))

	service := NewExportService(repo, logger)
	data, err := service.ExportUsers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one user

	assert.Equal(t, "Full Name", rows[0][1])
	assert.Equal(t, "Grace Hopper", rows[1][1])
	assert.Equal(t, "instructor", rows[1][3])
	assert.Equal(t, "Engineer", rows[1][4])
}

func TestExportUsers_Empty(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &memoryRepository{user: newMemoryUserRepository()}

	service := NewExportService(repo, logger)
	data, err := service.ExportUsers(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
