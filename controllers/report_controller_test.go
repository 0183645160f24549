package controller_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teampulse/models"
)

func TestExportFeedbackNotFound(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)

	resp, _ := doRequest(t, app, http.MethodGet, "/api/feedback/export/424242", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportFeedbackReturnsPDFAttachment(t *testing.T) {
	app, db := setupTestApp(t)
	manager, token := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)
	employee, _ := createUser(t, db, "Eli", "eli@example.com", models.RoleEmployee)

	feedback := models.Feedback{
		EmployeeID:   employee.ID,
		ManagerID:    manager.ID,
		Strengths:    "clear communicator",
		Improvements: "delegate more",
		Sentiment:    models.SentimentPositive,
	}
	require.NoError(t, db.Create(&feedback).Error)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/feedback/export/%d", feedback.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t,
		fmt.Sprintf("attachment; filename=feedback_%d.pdf", feedback.ID),
		resp.Header.Get("Content-Disposition"))

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}
