package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lancerhq/lancer/internal/models"
)

func TestSignAgreementAdvancesTimeline(t *testing.T) {
	app := models.Application{ID: 12, ProjectID: 3, Status: models.Eligible}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/applications/12":
			json.NewEncoder(w).Encode(app)
		case r.Method == http.MethodPost && r.URL.Path == "/applications/12/sign-agreement":
			app.Status = models.PendingVerification
			json.NewEncoder(w).Encode(app)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c, _ := newTestClient(srv.URL, "tok")
	ctx := context.Background()

	before, err := c.GetApplication(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, models.Eligible, before.Status)

	// ELIGIBLE is where the sign-agreement action unlocks.
	assert.True(t, models.HasReached(before.Status, models.Eligible))

	after, err := c.SignAgreement(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, models.PendingVerification, after.Status)

	// The timeline now shows ELIGIBLE as passed, ACTIVE as still ahead.
	assert.True(t, models.HasReached(after.Status, models.Eligible))
	assert.False(t, models.HasReached(after.Status, models.ApplicationActive))
}

func TestUpdateApplicationStatusUsesQueryParam(t *testing.T) {
	var gotQuery, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotMethod = r.Method
		json.NewEncoder(w).Encode(models.Application{ID: 4, Status: models.ApplicationActive})
	}))
	defer srv.Close()

	c, _ := newTestClient(srv.URL, "tok")
	app, err := c.UpdateApplicationStatus(context.Background(), 4, models.ApplicationActive)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "status=ACTIVE", gotQuery)
	assert.Equal(t, models.ApplicationActive, app.Status)
}
