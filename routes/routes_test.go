package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mptransport/handlers"
	"mptransport/repository/memory"
	"mptransport/services"
	"mptransport/utils"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	deps := services.Deps{
		Store:  memory.NewStore(),
		Logger: logger,
		Now: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
	}
	svc := services.New(deps)
	pdf := services.NewPDFService(deps, nil, utils.LocalStore{Dir: t.TempDir()})
	srv := httptest.NewServer(NewRouter(Options{Logger: logger, RateLimitPerMinute: 1000}, handlers.New(svc, pdf, logger)))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func booking() map[string]any {
	return map[string]any{
		"date":          "15-07-2025",
		"fromLocation":  "Indore",
		"consignor":     "Acme Traders",
		"toLocation":    "Bhopal",
		"consignee":     "Bharat Stores",
		"paymentType":   "TO PAY",
		"articleLength": 2,
		"articleNo":     "2|1",
		"saidToContain": "Cartons|Drum",
		"amount":        "10|20",
		"motorFreight":  "5",
		"hammali":       5,
	}
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)
	res, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestBookingAndDispatchFlow(t *testing.T) {
	srv := newServer(t)

	status, env := call(t, srv, http.MethodPost, "/api/transport-records", booking())
	require.Equal(t, http.StatusCreated, status, env.Error)
	var rec struct {
		GRNo  string `json:"gr_no"`
		ToPay string `json:"to_pay"`
		Paid  string `json:"paid"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "GR00001", rec.GRNo)
	assert.Equal(t, "40", rec.ToPay)
	assert.Equal(t, "0", rec.Paid)

	challan := map[string]any{
		"date": "16-07-2025", "truck_no": "MP09AB1234", "driver_no": "9000000000",
		"from": "Indore", "destination": "Bhopal", "builty_no": "GR00001",
	}
	status, env = call(t, srv, http.MethodPost, "/api/challan", challan)
	require.Equal(t, http.StatusCreated, status, env.Error)

	status, env = call(t, srv, http.MethodPost, "/api/challan", challan)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "25CH00001")

	status, env = call(t, srv, http.MethodGet, "/api/status?gr_no=gr00001", nil)
	require.Equal(t, http.StatusOK, status)
	var st struct {
		ChallanStatus string `json:"challan_status"`
		PaymentStatus string `json:"payment_status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, "25CH00001", st.ChallanStatus)
	assert.Equal(t, "Pending", st.PaymentStatus)

	status, _ = call(t, srv, http.MethodDelete, "/api/transport-records/GR00001", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/challan/25CH00001", nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = call(t, srv, http.MethodDelete, "/api/challan/25CH00001", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPaymentFlow(t *testing.T) {
	srv := newServer(t)
	status, _ := call(t, srv, http.MethodPost, "/api/transport-records", booking())
	require.Equal(t, http.StatusCreated, status)

	status, env := call(t, srv, http.MethodGet, "/api/transport-records/GR00001/invoice", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"invoiceNumber":"GR00001","invoiceType":"To Pay","invoiceAmount":"40","consignor":"Acme Traders","consignee":"Bharat Stores","date":"2025-07-15T00:00:00Z","createdAt":"2025-07-01T09:00:01Z"}`, string(env.Data))

	status, env = call(t, srv, http.MethodPost, "/api/payments", map[string]any{
		"invoiceNumber": "GR00001", "amountCollected": 50, "modeOfCollection": "Cash",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "amountCollected")

	status, _ = call(t, srv, http.MethodPost, "/api/payments", map[string]any{
		"invoiceNumber": "GR00001", "amountCollected": 40, "modeOfCollection": "Cash",
	})
	require.Equal(t, http.StatusCreated, status)

	status, env = call(t, srv, http.MethodGet, "/api/status?gr_no=GR00001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"payment_status":"Paid"`)
}

func TestErrorResponses(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown GR", http.MethodGet, "/api/transport-records/GR00099", nil, http.StatusNotFound},
		{"malformed body", http.MethodPost, "/api/transport-records", "{", http.StatusBadRequest},
		{"empty body", http.MethodPost, "/api/customers", "", http.StatusBadRequest},
		{"missing field", http.MethodPost, "/api/customers", map[string]any{"name": "Acme"}, http.StatusBadRequest},
		{"bad user id", http.MethodGet, "/api/users/abc", nil, http.StatusBadRequest},
		{"history without parties", http.MethodGet, "/api/transport-records/history", nil, http.StatusBadRequest},
		{"no company profile", http.MethodGet, "/api/company-profile", nil, http.StatusNotFound},
		{"unknown transporter", http.MethodGet, "/api/transporters?search=nobody", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := call(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, status)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestCustomerEndpoints(t *testing.T) {
	srv := newServer(t)
	customer := map[string]any{
		"name": "Acme Traders", "type": "Business", "idType": "GST Number",
		"idNumber": "23AAACA1234A1Z5", "contactNumber": "9000000000",
	}

	status, env := call(t, srv, http.MethodPost, "/api/customers", customer)
	require.Equal(t, http.StatusCreated, status, env.Error)
	assert.Contains(t, string(env.Data), `"customer_code":"A0001"`)

	customer["name"] = "Another"
	status, env = call(t, srv, http.MethodPost, "/api/customers", customer)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, env.Error, "Acme Traders")

	status, env = call(t, srv, http.MethodGet, "/api/customers?name=acme", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"gstin":"23AAACA1234A1Z5"`)

	status, env = call(t, srv, http.MethodGet, "/api/customers/all-names", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["Acme Traders"]`, string(env.Data))

	status, _ = call(t, srv, http.MethodDelete, "/api/customers/Acme%20Traders", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/customers", nil)
	require.NoError(t, err)
	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
