package indexer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inferenco/cedra-randomness-demos/internal/clients/indexer"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

const testHash = "0x9f2c4e"

func newServer(t *testing.T, status int, body string) (indexer.Client, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := indexer.New(&indexer.Config{BaseURL: srv.URL + "/", HttpClient: srv.Client()})
	require.NoError(t, err)
	return client, &gotPath
}

func TestTransactionByHash(t *testing.T) {
	body := `{
		"hash": "0x9f2c4e",
		"success": true,
		"vm_status": "Executed successfully",
		"events": [
			{"type": "0x1::transaction_fee::FeeStatement", "data": {"total_charge_gas_units": "7"}},
			{"type": "0xabc::game_examples::LootDropped", "data": {"item_id": "4521", "rarity": "2", "power": "77"}}
		]
	}`
	client, path := newServer(t, http.StatusOK, body)

	tx, err := client.TransactionByHash(context.Background(), testHash)
	require.NoError(t, err)
	assert.Equal(t, "/transactions/by_hash/"+testHash, *path)
	assert.Equal(t, testHash, tx.Hash)
	assert.True(t, tx.Success)
	assert.Len(t, tx.Events, 2)
	assert.Equal(t, "0xabc::game_examples::LootDropped", tx.Events[1].Type)
	assert.JSONEq(t, `{"item_id": "4521", "rarity": "2", "power": "77"}`, string(tx.EventData()[1]))
	assert.NotEmpty(t, tx.Raw)
}

func TestTransactionByHash_NotIndexed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "not found message", status: http.StatusNotFound, body: `{"message":"not found"}`},
		{name: "error code", status: http.StatusNotFound, body: `{"message":"Transaction not found by Transaction hash(0x9f2c4e)","error_code":"transaction_not_found","vm_error_code":null}`},
		{name: "empty body", status: http.StatusOK, body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newServer(t, tt.status, tt.body)

			_, err := client.TransactionByHash(context.Background(), testHash)
			require.Error(t, err)
			assert.True(t, dnderr.IsNotFound(err))
		})
	}
}

func TestTransactionByHash_Failures(t *testing.T) {
	client, _ := newServer(t, http.StatusInternalServerError, `<html>bad gateway</html>`)
	_, err := client.TransactionByHash(context.Background(), testHash)
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))

	client, _ = newServer(t, http.StatusOK, `{"hash": 12`)
	_, err = client.TransactionByHash(context.Background(), testHash)
	assert.Equal(t, dnderr.CodeParse, dnderr.GetCode(err))

	_, err = client.TransactionByHash(context.Background(), "")
	assert.Equal(t, dnderr.CodeInvalidArgument, dnderr.GetCode(err))
}

func TestTransactionByHash_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := indexer.New(&indexer.Config{BaseURL: url})
	require.NoError(t, err)

	_, err = client.TransactionByHash(context.Background(), testHash)
	require.Error(t, err)
	assert.Equal(t, dnderr.CodeUnavailable, dnderr.GetCode(err))
	assert.False(t, dnderr.IsNotFound(err))
}

func TestNotIndexed(t *testing.T) {
	assert.True(t, indexer.NotIndexed([]byte(`  `)))
	assert.True(t, indexer.NotIndexed([]byte(`{"message":"Not Found"}`)))
	assert.True(t, indexer.NotIndexed([]byte(`{"error_code":"internal_error"}`)))
	assert.False(t, indexer.NotIndexed([]byte(`{"hash":"0x1","events":[]}`)))
	assert.False(t, indexer.NotIndexed([]byte(`not json`)))
}

func TestNew_Validation(t *testing.T) {
	_, err := indexer.New(nil)
	assert.Error(t, err)

	_, err = indexer.New(&indexer.Config{})
	assert.Error(t, err)
}
