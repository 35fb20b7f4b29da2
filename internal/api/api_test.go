package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/omgohel/digital-wallet/internal/api"
	"github.com/omgohel/digital-wallet/internal/domain"
	"github.com/omgohel/digital-wallet/internal/ledger"
	"github.com/omgohel/digital-wallet/internal/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouter wires the API against the in-memory store with caching disabled
func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.RegisterRoutes(r, ledger.NewService(memory.NewStore()), nil)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type userEnvelope struct {
	User domain.User `json:"user"`
}

func createUser(t *testing.T, r *gin.Engine, name string, balance int64) domain.User {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": name, "balance": balance})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp userEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User
}

func TestCreateUserEndpoint(t *testing.T) {
	r := newRouter()

	t.Run("success", func(t *testing.T) {
		user := createUser(t, r, "Alice", 100)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Alice", user.Name)
		assert.True(t, user.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("missing name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"balance": 10})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative balance", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Bob", "balance": -5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	r := newRouter()
	user := createUser(t, r, "Alice", 100)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/users/"+user.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp userEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.User.ID)
		assert.True(t, resp.User.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/users/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/users/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListUsersEndpoint(t *testing.T) {
	r := newRouter()
	createUser(t, r, "Alice", 0)
	createUser(t, r, "Bob", 0)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Users []domain.User `json:"users"`
		Total int64         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp.Total)
	assert.Len(t, resp.Users, 2)
}

func TestAddTransactionEndpoint(t *testing.T) {
	r := newRouter()
	user := createUser(t, r, "Alice", 100)

	addTx := func(amount int64, kind string) *httptest.ResponseRecorder {
		return doJSON(t, r, http.MethodPost, "/api/transactions", gin.H{
			"userId":      user.ID.String(),
			"amount":      amount,
			"type":        kind,
			"description": fmt.Sprintf("%s of %d", kind, amount),
		})
	}

	t.Run("credit", func(t *testing.T) {
		w := addTx(30, "Credit")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := doJSON(t, r, http.MethodGet, "/api/users/"+user.ID.String(), nil)
		var resp userEnvelope
		require.NoError(t, json.Unmarshal(got.Body.Bytes(), &resp))
		assert.True(t, resp.User.Balance.Equal(decimal.NewFromInt(130)))
	})

	t.Run("debit", func(t *testing.T) {
		w := addTx(50, "Debit")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := doJSON(t, r, http.MethodGet, "/api/users/"+user.ID.String(), nil)
		var resp userEnvelope
		require.NoError(t, json.Unmarshal(got.Body.Bytes(), &resp))
		assert.True(t, resp.User.Balance.Equal(decimal.NewFromInt(80)))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		w := addTx(1000, "Debit")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Insufficient balance")

		// Balance unchanged after the rejected debit
		got := doJSON(t, r, http.MethodGet, "/api/users/"+user.ID.String(), nil)
		var resp userEnvelope
		require.NoError(t, json.Unmarshal(got.Body.Bytes(), &resp))
		assert.True(t, resp.User.Balance.Equal(decimal.NewFromInt(80)))
	})

	t.Run("invalid type", func(t *testing.T) {
		w := addTx(10, "Transfer")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		w := addTx(0, "Credit")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", gin.H{
			"userId": uuid.NewString(),
			"amount": 10,
			"type":   "Credit",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListUserTransactionsEndpoint(t *testing.T) {
	r := newRouter()
	user := createUser(t, r, "Alice", 100)

	type historyResponse struct {
		Transactions []domain.Transaction `json:"transactions"`
		Page         int                  `json:"page"`
		PageSize     int                  `json:"page_size"`
		Total        int64                `json:"total"`
	}

	t.Run("empty history", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/transactions/user/"+user.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp historyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Transactions)
		assert.EqualValues(t, 0, resp.Total)
	})

	t.Run("newest first after writes", func(t *testing.T) {
		for _, body := range []gin.H{
			{"userId": user.ID.String(), "amount": 30, "type": "Credit"},
			{"userId": user.ID.String(), "amount": 50, "type": "Debit"},
		} {
			w := doJSON(t, r, http.MethodPost, "/api/transactions", body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		w := doJSON(t, r, http.MethodGet, "/api/transactions/user/"+user.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp historyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.EqualValues(t, 2, resp.Total)
		require.Len(t, resp.Transactions, 2)
		for i := 1; i < len(resp.Transactions); i++ {
			assert.False(t, resp.Transactions[i].Timestamp.After(resp.Transactions[i-1].Timestamp))
		}
		for _, txn := range resp.Transactions {
			assert.Equal(t, user.ID, txn.UserID)
			assert.True(t, txn.Amount.IsPositive())
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/transactions/user/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
