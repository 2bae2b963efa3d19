package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warmsync.app/warmsync/model"
)

func TestSettingsRoundTrip(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/settings", gin.H{
		"employeeName": "Alex Lu",
		"hourlyRate":   210,
		"sourceUrl":    "https://example.com/feed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/settings", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.Settings `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alex Lu", resp.Data.EmployeeName)
	assert.Equal(t, 210.0, resp.Data.HourlyRate)
	assert.Equal(t, "https://example.com/feed", resp.Data.SourceURL)
}

func TestSaveSettingsValidation(t *testing.T) {
	r := setupRouter(t)

	t.Run("negative rate", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/settings", gin.H{
			"hourlyRate": -5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad url", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/settings", gin.H{
			"hourlyRate": 100,
			"sourceUrl":  "nope",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
