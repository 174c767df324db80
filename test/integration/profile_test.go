package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats_backend/test/helpers"
)

func listProfiles(t *testing.T, ts *helpers.TestServer, token string) (int, []map[string]interface{}, string) {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodGet, "/profiles/", token, nil)
	var profiles []map[string]interface{}
	if res.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal([]byte(body), &profiles))
	}
	return res.StatusCode, profiles, body
}

func TestProfileList_ScopedToSelf(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	alice := helpers.CreateAndLoginCandidate(t, ts)
	bob := helpers.CreateAndLoginCandidate(t, ts)

	status, profiles, body := listProfiles(t, ts, alice.Access)
	require.Equal(t, http.StatusOK, status, body)
	require.Len(t, profiles, 1)

	user := profiles[0]["user"].(map[string]interface{})
	assert.Equal(t, alice.Username, user["username"])
	assert.NotEqual(t, bob.Username, user["username"])
}

func TestProfileList_AdminSeesAll(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	alice := helpers.CreateAndLoginCandidate(t, ts)
	admin := helpers.CreateAndLoginAdmin(t, ts)

	status, _, body := listProfiles(t, ts, admin.Access)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, alice.Username)
	assert.Contains(t, body, admin.Username)
}

func TestProfileCreate_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	account := helpers.CreateAndLoginCandidate(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/profiles/", account.Access, map[string]interface{}{
		"role": "admin",
	})
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode, body)
}

func TestProfileUpdate_OwnContactFields(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	account := helpers.CreateAndLoginEmployer(t, ts)

	status, profiles, body := listProfiles(t, ts, account.Access)
	require.Equal(t, http.StatusOK, status, body)
	require.Len(t, profiles, 1)
	profileID := profiles[0]["id"].(string)

	res, patched := ts.SendRequest(t, http.MethodPatch, "/profiles/"+profileID+"/", account.Access, map[string]interface{}{
		"phone_number": "+7 777 123 4567",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, patched)
	assert.Contains(t, patched, "+7 777 123 4567")
	assert.Contains(t, patched, "Test Company Inc.")
}

func TestProfileGet_OtherUserHidden(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	alice := helpers.CreateAndLoginCandidate(t, ts)
	bob := helpers.CreateAndLoginCandidate(t, ts)

	_, bobProfiles, _ := listProfiles(t, ts, bob.Access)
	require.Len(t, bobProfiles, 1)
	bobProfileID := bobProfiles[0]["id"].(string)

	res, _ := ts.SendRequest(t, http.MethodGet, "/profiles/"+bobProfileID+"/", alice.Access, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
