package dhesend

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyService_Create(t *testing.T) {
	id := uuid.NewString()
	srv := newFakeAPI(t, http.StatusOK, map[string]string{"id": id, "title": "ci", "token": "dhe_secret"})
	client := srv.client(t)

	resp, err := client.APIKeys.Create(t.Context(), "ci")
	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "dhe_secret", resp.Token)

	req := srv.last(t)
	assert.Equal(t, "/apikey/create", req.Path)
	assert.JSONEq(t, `{"title":"ci"}`, string(req.Body))
}

func TestAPIKeyService_Create_NoTitle(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, map[string]string{"id": uuid.NewString()})
	client := srv.client(t)

	_, err := client.APIKeys.Create(t.Context(), "")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(srv.last(t).Body))
}

func TestAPIKeyService_List(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `[{"id":"k1","title":"ci","token":"dhe_***","createdAt":"2026-05-01T00:00:00Z"}]`)
	client := srv.client(t)

	keys, err := client.APIKeys.List(t.Context())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "ci", keys[0].Title)
	assert.Equal(t, 2026, keys[0].CreatedAt.Year())
}

func TestAPIKeyService_Delete(t *testing.T) {
	id := uuid.NewString()
	srv := newFakeAPI(t, http.StatusOK, `{"success":"API key deleted"}`)
	client := srv.client(t)

	resp, err := client.APIKeys.Delete(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "API key deleted", resp.Success)

	req := srv.last(t)
	assert.Equal(t, "/apikey/delete", req.Path)
	assert.JSONEq(t, `{"id":"`+id+`"}`, string(req.Body))
}

func TestAPIKeyService_Delete_ServerError(t *testing.T) {
	srv := newFakeAPI(t, http.StatusInternalServerError, `<html>Internal Server Error</html>`)
	client := srv.client(t)

	_, err := client.APIKeys.Delete(t.Context(), "k1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindRemoteUnparseable, apiErr.Kind)
	assert.Equal(t, MessageInternal, apiErr.Payload.Message)
}
