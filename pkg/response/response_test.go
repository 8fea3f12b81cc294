package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appErrors "github.com/rvishnuram/orgdir/pkg/errors"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	router := gin.New()
	router.GET("/", handler)
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestSuccessEnvelope(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Success(c, http.StatusCreated, gin.H{"slug": "acme"})
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Nil(t, body.Error)
}

func TestSuccessKeepsEmptySlices(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Success(c, http.StatusOK, []string{})
	})

	// Empty result sets serialise as [], not null.
	require.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestErrorEnvelope(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Error(c, appErrors.NewNotFound("Organization not found"))
	})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "NOT_FOUND", body.Error.Code)
	require.Equal(t, "Organization not found", body.Error.Message)
}

func TestErrorHidesInternalDetails(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Error(c, errors.New("pq: connection refused"))
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection refused")
	require.Contains(t, rec.Body.String(), "Internal server error")
}

func TestErrorWithNil(t *testing.T) {
	rec := record(func(c *gin.Context) {
		Error(c, nil)
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
