//go:build unit

package btc_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra/rail/btc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wallet      = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	confirmedTx = "9f3c1a7e0b6d4f2a8c5e1b3d7f9a0c2e4b6d8f1a3c5e7b9d0f2a4c6e8b1d3f5a"
	mempoolTx   = "1d3f5a9f3c1a7e0b6d4f2a8c5e1b3d7f9a0c2e4b6d8f1a3c5e7b9d0f2a4c6e8b"
	brokenTx    = "ffff5a9f3c1a7e0b6d4f2a8c5e1b3d7f9a0c2e4b6d8f1a3c5e7b9d0f2a4c6e8b"
	missingTx   = "0000000000000000000000000000000000000000000000000000000000000000"
	malformedTx = "zz"
)

func esplora(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/tx/"+confirmedTx, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"txid": "` + confirmedTx + `",
			"vout": [
				{"scriptpubkey_address": "` + wallet + `", "value": 150000},
				{"scriptpubkey_address": "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", "value": 9000},
				{"scriptpubkey_address": "` + wallet + `", "value": 50000}
			],
			"status": {"confirmed": true, "block_height": 861042, "block_hash": "00000000000000000001"}
		}`))
	})
	mux.HandleFunc("/tx/"+mempoolTx, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"txid": "` + mempoolTx + `", "vout": [], "status": {"confirmed": false}}`))
	})
	mux.HandleFunc("/tx/"+brokenTx, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusInternalServerError)
	})
	mux.HandleFunc("/tx/"+malformedTx, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Invalid hex string", http.StatusBadRequest)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Transaction not found", http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	srv := esplora(t)

	testCases := []struct {
		name          string
		reference     string
		wallet        string
		expectState   payment.VerifyState
		expectSettled string
		expectErrText string
	}{
		{name: "confirmed sums outputs to the wallet", reference: confirmedTx, wallet: wallet, expectState: payment.VerifyConfirmed, expectSettled: "0.002"},
		{name: "confirmed without a wallet settles zero", reference: confirmedTx, expectState: payment.VerifyConfirmed, expectSettled: "0"},
		{name: "mempool transaction is pending", reference: mempoolTx, wallet: wallet, expectState: payment.VerifyPending},
		{name: "unknown txid is not found", reference: missingTx, wallet: wallet, expectState: payment.VerifyNotFound},
		{name: "malformed txid is not found", reference: malformedTx, wallet: wallet, expectState: payment.VerifyNotFound},
		{name: "server error is returned", reference: brokenTx, wallet: wallet, expectErrText: "esplora returned 500: upstream unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := btc.NewVerifier(btc.NewClient(srv.URL+"/"), tc.wallet)

			res, err := v.Verify(ctx, tc.reference, payment.ZeroMoney(payment.AssetBTC))
			if tc.expectErrText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErrText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectState, res.State)
			if tc.expectSettled != "" {
				assert.Equal(t, tc.expectSettled, res.Settled.Amount().String())
				assert.Equal(t, payment.AssetBTC, res.Settled.Asset())
			}
		})
	}
}

func TestClient_Transaction(t *testing.T) {
	srv := esplora(t)
	client := btc.NewClient(srv.URL)

	tx, err := client.Transaction(context.Background(), confirmedTx)
	require.NoError(t, err)
	assert.Equal(t, confirmedTx, tx.TxID)
	assert.Len(t, tx.Vout, 3)
	require.NotNil(t, tx.Status.BlockHeight)
	assert.Equal(t, int64(861042), *tx.Status.BlockHeight)

	_, err = client.Transaction(context.Background(), missingTx)
	assert.ErrorIs(t, err, btc.ErrTxNotFound)
}
