package dhesend

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainService_Create(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `{
		"id": "dom_1",
		"name": "acme.com",
		"message": "Add the records below to verify your domain.",
		"txt": {"name": "_amazonses.acme.com", "value": "abc"},
		"dkim": [{"name": "k1._domainkey.acme.com", "type": "CNAME", "value": "k1.dkim.example"}]
	}`)
	client := srv.client(t)

	resp, err := client.Domains.Create(t.Context(), "acme.com")
	require.NoError(t, err)
	assert.Equal(t, "acme.com", resp.Name)
	assert.Equal(t, "_amazonses.acme.com", resp.TXT.Name)
	require.Len(t, resp.DKIM, 1)
	assert.Equal(t, "CNAME", resp.DKIM[0].Type)

	req := srv.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/domain/create", req.Path)
	assert.JSONEq(t, `{"domain":"acme.com"}`, string(req.Body))
}

func TestDomainService_Create_InvalidName(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `{}`)
	client := srv.client(t)

	for _, name := range []string{"notadomain", ""} {
		resp, err := client.Domains.Create(t.Context(), name)
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDomain)

		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, KindValidation, apiErr.Kind)
		assert.Equal(t, "Provide a valid domain, e.g., `dhesend.com`.", apiErr.Payload.Message)
	}

	assert.Empty(t, srv.calls(), "no request may be sent")
}

func TestDomainService_Get(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `{"domainName": "acme.com", "status": "Pending", "createdAt": "2026-03-01T10:00:00Z"}`)
	client := srv.client(t)

	domain, err := client.Domains.Get(t.Context(), "acme.com")
	require.NoError(t, err)
	assert.Equal(t, DomainStatusPending, domain.Status)
	assert.Equal(t, "/domain/acme.com", srv.last(t).Path)
}

func TestDomainService_List(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `[
		{"domainName": "acme.com", "status": "Success", "createdAt": "2026-03-01T10:00:00Z", "updatedAt": "2026-03-02T10:00:00Z"},
		{"domainName": "acme.io", "status": "Failed", "createdAt": "2026-03-01T10:00:00Z", "updatedAt": "2026-03-02T10:00:00Z"}
	]`)
	client := srv.client(t)

	domains, err := client.Domains.List(t.Context())
	require.NoError(t, err)
	require.Len(t, domains, 2)
	assert.Equal(t, DomainStatusSuccess, domains[0].Status)
	assert.Equal(t, "acme.io", domains[1].DomainName)
	assert.Equal(t, "/domain/list", srv.last(t).Path)
}

func TestDomainService_List_Error(t *testing.T) {
	srv := newFakeAPI(t, http.StatusUnauthorized, `{"error":"Invalid API key"}`)
	client := srv.client(t)

	domains, err := client.Domains.List(t.Context())
	assert.Nil(t, domains)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "dhesend: API error 401: Invalid API key")
}

func TestDomainService_Delete(t *testing.T) {
	srv := newFakeAPI(t, http.StatusOK, `{"success":"Domain deleted"}`)
	client := srv.client(t)

	resp, err := client.Domains.Delete(t.Context(), "acme.com")
	require.NoError(t, err)
	assert.Equal(t, "Domain deleted", resp.Success)

	req := srv.last(t)
	assert.Equal(t, "/domain/delete", req.Path)
	assert.JSONEq(t, `{"domain":"acme.com"}`, string(req.Body))
}
