package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"gastropass_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlans_DefaultCatalogSeeded(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/plans", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Plans []struct {
			ID    string  `json:"id"`
			Name  string  `json:"name"`
			Price float64 `json:"price"`
		} `json:"plans"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.Equal(t, 3, response.Total)

	prices := map[string]float64{}
	for _, p := range response.Plans {
		prices[p.ID] = p.Price
	}
	assert.Equal(t, 19.90, prices["basico"])
	assert.Equal(t, 39.90, prices["premium"])
	assert.Equal(t, 59.90, prices["vip"])
}

func TestPlans_AdminCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts, adminEmail, adminPassword)

	createRes, createBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/plans", adminToken, map[string]interface{}{
		"name":        "Corporativo",
		"price":       99.90,
		"description": "Para empresas",
		"features":    []string{"Até 20 dependentes"},
	})
	assert.Equal(t, http.StatusCreated, createRes.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(createBodyStr), &created))
	require.NotEmpty(t, created.ID)

	updateRes, updateBodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/plans/"+created.ID, adminToken, map[string]interface{}{
		"price": 89.90,
	})
	assert.Equal(t, http.StatusOK, updateRes.StatusCode)
	assert.Contains(t, updateBodyStr, "89.9")

	deleteRes, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/plans/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, deleteRes.StatusCode)

	getRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/plans/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, getRes.StatusCode)
}

func TestRestaurants_PublicListAndAdminCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken := helpers.LoginAdmin(t, ts, adminEmail, adminPassword)

	// Empty catalog still answers with a list.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/restaurants", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"restaurants":[]`)

	createRes, createBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/restaurants", adminToken, map[string]interface{}{
		"name":     "Cantina da Nonna",
		"category": "Italiana",
		"address":  "Rua Augusta, 1500",
		"city":     "São Paulo",
		"estado":   "SP",
		"discount": "20%",
		"rating":   4.7,
	})
	assert.Equal(t, http.StatusCreated, createRes.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(createBodyStr), &created))

	getRes, getBodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/restaurants/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBodyStr, "Cantina da Nonna")

	updateRes, updateBodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/restaurants/"+created.ID, adminToken, map[string]interface{}{
		"discount": "25%",
	})
	assert.Equal(t, http.StatusOK, updateRes.StatusCode)
	assert.Contains(t, updateBodyStr, "25%")

	deleteRes, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/restaurants/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, deleteRes.StatusCode)

	notFoundRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/restaurants/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, notFoundRes.StatusCode)
}

func TestRestaurants_CreateRequiresAdmin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.RegisterAndLogin(t, ts, "Visitante", "visitante@test.com", "password123")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/restaurants", token, map[string]interface{}{
		"name":     "Tentativa",
		"category": "Qualquer",
		"address":  "Rua X",
		"city":     "Recife",
		"estado":   "PE",
		"discount": "10%",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
