package product

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/eskrenkovic/storefront-admin/internal/modules/core"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	repository = NewMemoryRepository()
	clock      = &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

// Now returns the current test time and advances it by one second.
func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(time.Second)
	return now
}

func TestMain(m *testing.M) {
	logger := zap.NewNop()
	mediator.RegisterPipelineBehavior(&core.RequestLoggingBehavior{Logger: logger})
	mediator.RegisterPipelineBehavior(&core.HandlerErrorLoggingBehavior{Logger: logger})
	mediator.RegisterPipelineBehavior(&core.RequestValidationBehavior{})

	if err := RegisterHandlers(repository, clock.Now); err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(core.CORSMiddleware)
	r.Post("/api/products", HandleProductProxy)
	r.Get("/api/products/{id}", HandleGetProduct)
	return r
}

func sendEnvelope(t *testing.T, envelope interface{}) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	payload, err := json.Marshal(envelope)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	newRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(payload)))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	return rr, body
}

func decodeObject(t *testing.T, raw json.RawMessage) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func createProduct(t *testing.T, data Data) map[string]interface{} {
	t.Helper()

	rr, body := sendEnvelope(t, Envelope{Method: MethodCreate, ProductData: data})
	require.Equal(t, http.StatusOK, rr.Code)

	return decodeObject(t, body["data"])
}

func Test_Create_Returns_Inserted_Row_With_Generated_ID(t *testing.T) {
	// Arrange
	data := Data{"name": "Linen shirt", "price": 49.5, "tags": []interface{}{"summer"}}

	// Act
	created := createProduct(t, data)

	// Assert
	require.NotEmpty(t, created["id"])
	require.Equal(t, "Linen shirt", created["name"])
	require.Equal(t, 49.5, created["price"])
	require.Equal(t, []interface{}{"summer"}, created["tags"])

	stored, err := repository.Load(context.Background(), created["id"].(string))
	require.NoError(t, err)
	require.JSONEq(t, mustJSON(t, created), string(stored))
}

func Test_Update_Merges_Data_With_Newer_Timestamp(t *testing.T) {
	// Arrange
	created := createProduct(t, Data{"name": "Mug", "stock": 3})
	id := created["id"].(string)

	_, first := sendEnvelope(t, Envelope{Method: MethodUpdate, ProductID: id, ProductData: Data{"stock": 4}})
	previous := decodeObject(t, first["data"])[UpdatedAtField].(string)

	// Act
	rr, body := sendEnvelope(t, Envelope{
		Method:      MethodUpdate,
		ProductID:   id,
		ProductData: Data{"name": "Tall mug", "stock": 5},
	})

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)

	updated := decodeObject(t, body["data"])
	require.Equal(t, id, updated["id"])
	require.Equal(t, "Tall mug", updated["name"])
	require.Equal(t, float64(5), updated["stock"])

	previousAt, err := time.Parse(TimestampLayout, previous)
	require.NoError(t, err)
	updatedAt, err := time.Parse(TimestampLayout, updated[UpdatedAtField].(string))
	require.NoError(t, err)
	require.True(t, updatedAt.After(previousAt), "expected %s to be after %s", updatedAt, previousAt)
}

func Test_Update_Of_Missing_Row_Returns_500(t *testing.T) {
	rr, body := sendEnvelope(t, Envelope{Method: MethodUpdate, ProductID: "does-not-exist", ProductData: Data{"name": "x"}})

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var detail core.ErrorDetail
	require.NoError(t, json.Unmarshal(body["error"], &detail))
	require.Equal(t, ErrNotFound.Error(), detail.Message)
}

func Test_Update_And_Delete_Require_Product_ID(t *testing.T) {
	for _, method := range []Method{MethodUpdate, MethodDelete} {
		t.Run(string(method), func(t *testing.T) {
			rr, body := sendEnvelope(t, Envelope{Method: method, ProductData: Data{"name": "x"}})

			require.Equal(t, http.StatusInternalServerError, rr.Code)

			var detail core.ErrorDetail
			require.NoError(t, json.Unmarshal(body["error"], &detail))
			require.Equal(t, ErrProductIDRequired.Error(), detail.Message)
		})
	}
}

func Test_Delete_Returns_Success_And_Row_Is_Gone(t *testing.T) {
	// Arrange
	created := createProduct(t, Data{"name": "Poster"})
	id := created["id"].(string)

	// Act
	rr, body := sendEnvelope(t, Envelope{Method: MethodDelete, ProductID: id})

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"success":true}`, string(body["data"]))

	getRR := httptest.NewRecorder()
	newRouter().ServeHTTP(getRR, httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil))
	require.Equal(t, http.StatusNotFound, getRR.Code)
}

func Test_Invalid_Method_Returns_500(t *testing.T) {
	for _, method := range []Method{"", "PATCH", "create", "UPSERT"} {
		t.Run(string(method), func(t *testing.T) {
			rr, body := sendEnvelope(t, map[string]interface{}{"method": method, "productData": map[string]string{"name": "x"}})

			require.Equal(t, http.StatusInternalServerError, rr.Code)

			var detail core.ErrorDetail
			require.NoError(t, json.Unmarshal(body["error"], &detail))
			require.Contains(t, detail.Message, "invalid method")
		})
	}
}

func Test_Malformed_Body_Returns_500(t *testing.T) {
	rr := httptest.NewRecorder()
	newRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString("{not json")))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Contains(t, rr.Body.String(), `"message"`)
}

func Test_Create_Without_Data_Surfaces_Database_Error(t *testing.T) {
	rr, body := sendEnvelope(t, map[string]string{"method": "CREATE"})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Contains(t, string(body["error"]), "not-null")
}

func Test_Options_Returns_200_Without_Body(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://shop.example.com")

	newRouter().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, rr.Body.Bytes())
	require.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func Test_Get_Product_Returns_Row(t *testing.T) {
	created := createProduct(t, Data{"name": "Lamp"})

	rr := httptest.NewRecorder()
	newRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/products/"+created["id"].(string), nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "Lamp", decodeObject(t, body["data"])["name"])
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
