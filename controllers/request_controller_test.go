package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teampulse/models"
)

func TestCreateRequestRequiresIDs(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := createUser(t, db, "Eli", "eli@example.com", models.RoleEmployee)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/feedback/request", token, map[string]interface{}{
		"message": "please",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestStatusWorkflow(t *testing.T) {
	app, db := setupTestApp(t)
	manager, managerToken := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)
	employee, employeeToken := createUser(t, db, "Eli", "eli@example.com", models.RoleEmployee)

	resp, body := doRequest(t, app, http.MethodPost, "/api/feedback/request", employeeToken, map[string]interface{}{
		"requester_id":      employee.ID,
		"target_manager_id": manager.ID,
		"message":           "quarterly review please",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	request := dataMap(t, body)
	assert.Equal(t, "pending", request["status"])
	requestID := uint(request["id"].(float64))

	// pending is not a settable target
	resp, _ = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/feedback/request/%d", requestID), managerToken, map[string]interface{}{
		"status": "pending",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/feedback/request/%d", requestID), managerToken, map[string]interface{}{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "approved", dataMap(t, body)["status"])

	resp, _ = doRequest(t, app, http.MethodPut, "/api/feedback/request/424242", managerToken, map[string]interface{}{
		"status": "declined",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestManagerRequestsAnonymized(t *testing.T) {
	app, db := setupTestApp(t)
	manager, managerToken := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)
	employee, employeeToken := createUser(t, db, "Eli", "eli@example.com", models.RoleEmployee)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/feedback/request", employeeToken, map[string]interface{}{
		"requester_id":      employee.ID,
		"target_manager_id": manager.ID,
		"is_anonymous":      true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/feedback/request", employeeToken, map[string]interface{}{
		"requester_id":      employee.ID,
		"target_manager_id": manager.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/feedback/requests/%d", manager.ID), managerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := dataList(t, body)
	require.Len(t, items, 2)
	names := map[bool]string{}
	for _, raw := range items {
		entry := raw.(map[string]interface{})
		names[entry["is_anonymous"].(bool)] = entry["requester_name"].(string)
	}
	assert.Equal(t, models.AnonymousLabel, names[true])
	assert.Equal(t, "Eli", names[false])
}

// Anonymity hides the requester from the manager, never the manager from
// the requester.
func TestEmployeeRequestsNeverAnonymized(t *testing.T) {
	app, db := setupTestApp(t)
	manager, _ := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)
	employee, employeeToken := createUser(t, db, "Eli", "eli@example.com", models.RoleEmployee)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/feedback/request", employeeToken, map[string]interface{}{
		"requester_id":      employee.ID,
		"target_manager_id": manager.ID,
		"is_anonymous":      true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/feedback/requests/employee/%d", employee.ID), employeeToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := dataList(t, body)
	require.Len(t, items, 1)
	assert.Equal(t, "Mia", items[0].(map[string]interface{})["manager_name"])
}

func TestRequestStatusUpdateIsManagerOnly(t *testing.T) {
	app, db := setupTestApp(t)
	manager, _ := createUser(t, db, "Mia", "mia@example.com", models.RoleManager)
	employee, employeeToken := createUser(t, db, "Eli", "eli@example.com", models.RoleEmployee)

	request := models.FeedbackRequest{
		RequesterID:     employee.ID,
		TargetManagerID: manager.ID,
		Status:          models.RequestStatusPending,
	}
	require.NoError(t, db.Create(&request).Error)

	resp, _ := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/feedback/request/%d", request.ID), employeeToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
