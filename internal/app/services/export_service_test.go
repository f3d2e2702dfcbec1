package services

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekaya/folio-gateway/internal/app/models"
	"github.com/emrekaya/folio-gateway/internal/upstream"
)

func newTestExportService(t *testing.T) *ExportService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	client := upstream.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	return NewExportService(client, "Test Institute", "CONFIDENTIAL", zerolog.Nop())
}

func exportStudent() models.StudentRecord {
	return models.StudentRecord{
		User: models.User{
			ID:      "S1",
			Name:    "Asha Verma",
			Email:   "asha@example.edu",
			Role:    models.RoleStudent,
			Faculty: models.Ref{ID: "F1", Name: "Dr. Rao"},
		},
		Portfolio: models.Portfolio{
			Projects: []models.Item{
				{ID: "p1", Title: "Solar tracker", StartDate: "2025-06", EndDate: "2025-12", Status: models.StatusApproved},
				{ID: "p2", Title: "Hidden draft", Status: models.StatusPending},
			},
			Certifications: []models.Item{
				{ID: "c1", Title: "Rejected cert", Status: models.StatusRejected},
			},
		},
		Profile: &models.Profile{FirstName: "Asha", LastName: "Verma", Program: "B.Tech"},
	}
}

func TestGeneratePortfolioPDF(t *testing.T) {
	svc := newTestExportService(t)

	data, err := svc.GeneratePortfolioPDF(context.Background(), "tok", exportStudent())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output is not a PDF document")
	assert.Greater(t, len(data), 1000)
}

func TestGeneratePortfolioPDFEmptyPortfolio(t *testing.T) {
	svc := newTestExportService(t)

	// A student with zero approved items still gets a valid document with
	// the cover page and signature block.
	rec := exportStudent()
	rec.Portfolio = models.Portfolio{}

	data, err := svc.GeneratePortfolioPDF(context.Background(), "tok", rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestGeneratePortfolioPDFSkipsUnfetchablePhoto(t *testing.T) {
	svc := newTestExportService(t)

	// The photo endpoint 404s; export must log and continue, not fail.
	rec := exportStudent()
	rec.Profile.Photo = "uploads/missing.jpg"

	data, err := svc.GeneratePortfolioPDF(context.Background(), "tok", rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestApprovedItemsFilter(t *testing.T) {
	items := []models.Item{
		{ID: "a", Status: models.StatusApproved},
		{ID: "b", Status: models.StatusPending},
		{ID: "c", Status: models.StatusRejected},
		{ID: "d"},
	}

	got := approvedItems(items)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestGeneratePortfolioPDFManyRowsPaginates(t *testing.T) {
	svc := newTestExportService(t)

	rec := exportStudent()
	var many []models.Item
	for i := 0; i < 60; i++ {
		many = append(many, models.Item{
			Title:       "Seminar on distributed systems and their failure modes",
			Date:        "2026-02-01",
			Description: "A long description that wraps across several lines in the narrow summary column of the export table.",
			Status:      models.StatusApproved,
		})
	}
	rec.Portfolio.Seminars = many

	data, err := svc.GeneratePortfolioPDF(context.Background(), "tok", rec)
	require.NoError(t, err)
	// More rows than fit one page: the document must have grown well past
	// the single-page baseline.
	assert.Greater(t, len(data), 5000)
}
