package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gastropass_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubscriptionFlow covers the whole manual payment loop: subscribe,
// wait on the pending payment, admin approval, activation on status check.
func TestSubscriptionFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "Fernanda", "fernanda@test.com", "password123")
	adminToken := helpers.LoginAdmin(t, ts, adminEmail, adminPassword)

	// Subscribe to the premium plan.
	subRes, subBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/subscription/subscribe", token, map[string]interface{}{
		"planId": "premium",
	})
	assert.Equal(t, http.StatusCreated, subRes.StatusCode)

	var subscribe struct {
		PaymentID  string  `json:"paymentId"`
		Amount     float64 `json:"amount"`
		Status     string  `json:"status"`
		HandoffURL string  `json:"handoffUrl"`
	}
	require.NoError(t, json.Unmarshal([]byte(subBodyStr), &subscribe))
	assert.Equal(t, 39.90, subscribe.Amount)
	assert.Equal(t, "pendente", subscribe.Status)
	assert.Contains(t, subscribe.HandoffURL, "wa.me")

	// Nothing is active before the admin approves.
	statusRes, statusBodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/subscription/check-status", token, nil)
	assert.Equal(t, http.StatusOK, statusRes.StatusCode)
	assert.Contains(t, statusBodyStr, `"state":"pending"`)

	// The payment shows up in the admin queue.
	listRes, listBodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/payments", adminToken, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, subscribe.PaymentID)

	// Approve and re-check: subscription goes active, pending marker clears.
	approveRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/payments/"+subscribe.PaymentID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusOK, approveRes.StatusCode)

	statusRes, statusBodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/subscription/check-status", token, nil)
	assert.Equal(t, http.StatusOK, statusRes.StatusCode)

	var status struct {
		State        string `json:"state"`
		Subscription *struct {
			PlanID string `json:"planId"`
			Status string `json:"status"`
		} `json:"subscription"`
	}
	require.NoError(t, json.Unmarshal([]byte(statusBodyStr), &status))
	assert.Equal(t, "active", status.State)
	require.NotNil(t, status.Subscription)
	assert.Equal(t, "premium", status.Subscription.PlanID)
	assert.Equal(t, "ativo", status.Subscription.Status)

	infoRes, infoBodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/subscription", token, nil)
	assert.Equal(t, http.StatusOK, infoRes.StatusCode)
	assert.Contains(t, infoBodyStr, `"state":"active"`)
	assert.NotContains(t, infoBodyStr, "paymentPending")
}

func TestSubscription_CancelledPayment(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "Paulo", "paulo@test.com", "password123")
	adminToken := helpers.LoginAdmin(t, ts, adminEmail, adminPassword)

	subRes, subBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/subscription/subscribe", token, map[string]interface{}{
		"planId": "basico",
	})
	assert.Equal(t, http.StatusCreated, subRes.StatusCode)

	var subscribe struct {
		PaymentID string `json:"paymentId"`
	}
	require.NoError(t, json.Unmarshal([]byte(subBodyStr), &subscribe))

	cancelRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/payments/"+subscribe.PaymentID+"/cancel", adminToken, nil)
	assert.Equal(t, http.StatusOK, cancelRes.StatusCode)

	statusRes, statusBodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/subscription/check-status", token, nil)
	assert.Equal(t, http.StatusOK, statusRes.StatusCode)
	assert.Contains(t, statusBodyStr, `"state":"none"`)
	assert.Contains(t, statusBodyStr, "cancelado")
}

func TestSubscription_UnknownPlan(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "Sem Plano", "semplano@test.com", "password123")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/subscription/subscribe", token, map[string]interface{}{
		"planId": "inexistente",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Plan not found")
}

func TestSubscription_PaymentHistory(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, userID := helpers.RegisterAndLogin(t, ts, "Historico", "historico@test.com", "password123")

	_, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/subscription/subscribe", token, map[string]interface{}{"planId": "basico"})
	_, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/subscription/subscribe", token, map[string]interface{}{"planId": "vip"})

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/subscription/payments", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var history struct {
		Payments []struct {
			UserID string `json:"userId"`
			Status string `json:"status"`
		} `json:"payments"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &history))
	assert.Equal(t, 2, history.Total)
	for _, p := range history.Payments {
		assert.Equal(t, userID, p.UserID)
	}

	// The first payment was orphaned by the second subscribe.
	statuses := []string{history.Payments[0].Status, history.Payments[1].Status}
	assert.Contains(t, statuses, "cancelado")
	assert.Contains(t, statuses, "pendente")
}

func TestAdminPayments_ExportSpreadsheet(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "Planilha", "planilha@test.com", "password123")
	adminToken := helpers.LoginAdmin(t, ts, adminEmail, adminPassword)

	_, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/subscription/subscribe", token, map[string]interface{}{"planId": "premium"})

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/payments/export", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "pagamentos_")
	assert.NotEmpty(t, bodyStr)
}
