package customer

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xpointcnc/xpoint-backend/internal/domain"
	"github.com/xpointcnc/xpoint-backend/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := store.Open(store.NewFileBackend(filepath.Join(t.TempDir(), "data.json"), false))
	router := chi.NewRouter()
	NewHandler(NewService(NewRepository(s))).RegisterRoutes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func do(t *testing.T, method, url string, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestCreateAndListCustomers(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/customers", CustomerRequest{
		Name:    "Hasan Yıldız",
		Company: "Yıldız Reklam",
		Phone:   "0532 111 2233",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created domain.Customer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Hasan Yıldız", created.Name)

	listResp, err := http.Get(srv.URL + "/api/v1/customers")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var list []domain.Customer
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestCreateCustomerMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/customers", "{not json")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCustomer(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/customers", CustomerRequest{Name: "old"})
	resp.Body.Close()

	upResp := do(t, http.MethodPut, srv.URL+"/api/v1/customers/1", `{"name":"new"}`)
	defer upResp.Body.Close()
	require.Equal(t, http.StatusOK, upResp.StatusCode)

	var updated domain.Customer
	require.NoError(t, json.NewDecoder(upResp.Body).Decode(&updated))
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "new", updated.Name)
}

func TestUnknownAndUnparseableIDBothAnswer404(t *testing.T) {
	srv := newTestServer(t)

	for _, id := range []string{"99", "abc"} {
		resp := do(t, http.MethodPut, srv.URL+"/api/v1/customers/"+id, `{"name":"x"}`)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "PUT id=%s", id)

		resp = do(t, http.MethodDelete, srv.URL+"/api/v1/customers/"+id, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "DELETE id=%s", id)
	}
}

func TestDeleteCustomer(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/customers", CustomerRequest{Name: "gone soon"})
	resp.Body.Close()

	delResp := do(t, http.MethodDelete, srv.URL+"/api/v1/customers/1", "")
	defer delResp.Body.Close()
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(delResp.Body).Decode(&body))
	assert.True(t, body["success"])

	listResp, err := http.Get(srv.URL + "/api/v1/customers")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var list []domain.Customer
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	assert.Empty(t, list)
}
