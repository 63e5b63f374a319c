package httphandler

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gaze-network/realpay-receipts/core/eventlog"
	"github.com/gaze-network/realpay-receipts/core/host"
	"github.com/gaze-network/realpay-receipts/modules/receipts/contract"
	"github.com/gaze-network/realpay-receipts/modules/receipts/datagateway"
	"github.com/gaze-network/realpay-receipts/modules/receipts/entity"
	"github.com/gaze-network/realpay-receipts/modules/receipts/repository/memory"
	"github.com/gaze-network/realpay-receipts/modules/receipts/usecase"
	"github.com/gaze-network/realpay-receipts/pkg/errorhandler"
	"github.com/gaze-network/realpay-receipts/pkg/serial"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Unix(1700000000, 0).UTC()

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := memory.NewRepository()
	sink := eventlog.NewMemorySink(100)
	h := host.New[datagateway.ReceiptsDataGateway](contract.New(), contract.NewStateStore(repo, 1), sink,
		host.WithVersion("test"),
		host.WithClock(func() time.Time { return testNow }),
	)
	require.NoError(t, h.Init(context.Background()))

	handler := New(usecase.New(repo, h, sink), 6)
	handler.now = func() time.Time { return testNow }

	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	require.NoError(t, handler.Mount(app))
	return app
}

func doRequest[T any](t *testing.T, app *fiber.App, method, path, body string) (int, HttpResponse[T]) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out HttpResponse[T]
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestMintAndGetReceipt(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	status, minted := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts",
		`{"receiptId":"r1","txHash":"0xabc","amountPlt":"1000","tsUnix":1700000000}`)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, minted.Result)
	assert.EqualValues(t, 1, minted.Result.Sequence)
	require.Len(t, minted.Result.Events, 1)
	assert.Equal(t, contract.EventReceiptEmitted, minted.Result.Events[0].Tag)
	assert.Equal(t, "0.001000", minted.Result.Receipt.Amount)

	status, got := doRequest[receipt](t, app, http.MethodGet, "/receipts/v1/receipts/r1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, &receipt{
		ReceiptID: "r1",
		TxHash:    "0xabc",
		AmountPlt: "1000",
		Amount:    "0.001000",
		Decimals:  6,
		TsUnix:    1700000000,
	}, got.Result)

	status, missing := doRequest[receipt](t, app, http.MethodGet, "/receipts/v1/receipts/r2", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, missing.Error)
	assert.Equal(t, "receipt not found", *missing.Error)
}

func TestGetReceiptEscapedID(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	testCases := []struct {
		id   string
		path string
	}{
		{id: "a+b", path: "a+b"},
		{id: "a+b", path: "a%2Bb"},
		{id: "a/b", path: "a%2Fb"},
		{id: "a b", path: "a%20b"},
	}
	for _, tc := range testCases {
		status, _ := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts",
			`{"receiptId":"`+tc.id+`","txHash":"0xabc","amountPlt":"1","tsUnix":1}`)
		require.Equal(t, http.StatusOK, status, tc.id)

		status, got := doRequest[receipt](t, app, http.MethodGet, "/receipts/v1/receipts/"+tc.path, "")
		require.Equal(t, http.StatusOK, status, tc.path)
		require.NotNil(t, got.Result)
		assert.Equal(t, tc.id, got.Result.ReceiptID, tc.path)
	}
}

func TestMintReceiptDefaults(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	status, minted := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts", `{"amount":"1.5"}`)
	require.Equal(t, http.StatusOK, status)
	r := minted.Result.Receipt
	assert.NotEmpty(t, r.ReceiptID)
	assert.True(t, strings.HasPrefix(r.TxHash, "tx_"))
	assert.Equal(t, "1500000", r.AmountPlt)
	assert.EqualValues(t, testNow.Unix(), r.TsUnix)
}

func TestMintReceiptValidation(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	testCases := []struct {
		name string
		body string
	}{
		{name: "no amount", body: `{"receiptId":"r1"}`},
		{name: "both amounts", body: `{"amountPlt":"1","amount":"1"}`},
		{name: "negative amount", body: `{"amount":"-1"}`},
		{name: "too many decimals", body: `{"amount":"0.0000001"}`},
		{name: "invalid raw amount", body: `{"amountPlt":"abc"}`},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			status, resp := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts", tc.body)
			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, resp.Error)
			assert.Contains(t, *resp.Error, "validation error")
		})
	}
}

func TestGetReceiptsBatch(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	for _, id := range []string{"a", "b"} {
		status, _ := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts",
			`{"receiptId":"`+id+`","amountPlt":"1"}`)
		require.Equal(t, http.StatusOK, status)
	}

	status, resp := doRequest[getReceiptsBatchResult](t, app, http.MethodPost, "/receipts/v1/receipts/batch", `{"ids":["b","missing","a"]}`)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Result.List, 3)
	assert.Equal(t, "b", resp.Result.List[0].ReceiptID)
	assert.Nil(t, resp.Result.List[1])
	assert.Equal(t, "a", resp.Result.List[2].ReceiptID)

	status, resp = doRequest[getReceiptsBatchResult](t, app, http.MethodPost, "/receipts/v1/receipts/batch", `{"ids":["a","a"]}`)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Result.List, 2)
	assert.Equal(t, "a", resp.Result.List[0].ReceiptID)
	assert.Equal(t, "a", resp.Result.List[1].ReceiptID)

	status, _ = doRequest[getReceiptsBatchResult](t, app, http.MethodPost, "/receipts/v1/receipts/batch", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetReceipts(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	for _, id := range []string{"c", "a", "b"} {
		status, _ := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts",
			`{"receiptId":"`+id+`","amountPlt":"1"}`)
		require.Equal(t, http.StatusOK, status)
	}
	ids := func(list []*receipt) []string {
		out := make([]string, 0, len(list))
		for _, r := range list {
			out = append(out, r.ReceiptID)
		}
		return out
	}

	status, page := doRequest[getReceiptsResult](t, app, http.MethodGet, "/receipts/v1/receipts?limit=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"a", "b"}, ids(page.Result.List))
	assert.EqualValues(t, 3, page.Result.Total)
	assert.Equal(t, "b", page.Result.Next)

	status, page = doRequest[getReceiptsResult](t, app, http.MethodGet, "/receipts/v1/receipts?limit=2&after=b", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"c"}, ids(page.Result.List))
	assert.Empty(t, page.Result.Next)

	status, page = doRequest[getReceiptsResult](t, app, http.MethodGet, "/receipts/v1/receipts", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, page.Result.List, 3)

	status, _ = doRequest[getReceiptsResult](t, app, http.MethodGet, "/receipts/v1/receipts?limit=1001", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetRecentReceipts(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	for _, id := range []string{"first", "second", "third"} {
		status, _ := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts",
			`{"receiptId":"`+id+`","amountPlt":"1"}`)
		require.Equal(t, http.StatusOK, status)
	}

	status, resp := doRequest[getRecentReceiptsResult](t, app, http.MethodGet, "/receipts/v1/receipts/recent?n=2", "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Result.List, 2)
	assert.Equal(t, "third", resp.Result.List[0].ReceiptID)
	assert.Equal(t, "second", resp.Result.List[1].ReceiptID)
	assert.EqualValues(t, 3, resp.Result.List[0].Sequence)

	status, _ = doRequest[getRecentReceiptsResult](t, app, http.MethodGet, "/receipts/v1/receipts/recent?n=101", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetInfo(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	status, _ := doRequest[mintReceiptResult](t, app, http.MethodPost, "/receipts/v1/receipts", `{"receiptId":"r1","amountPlt":"1"}`)
	require.Equal(t, http.StatusOK, status)

	status, resp := doRequest[getInfoResult](t, app, http.MethodGet, "/receipts/v1/info", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, contract.Name, resp.Result.Contract)
	assert.Equal(t, "test", resp.Result.Version)
	assert.ElementsMatch(t, []string{contract.EntryPointMintReceipt, contract.EntryPointGetReceipt}, resp.Result.EntryPoints)
	assert.Equal(t, testNow.Unix(), resp.Result.CreatedAt)
	assert.EqualValues(t, 1, resp.Result.ReceiptCount)
}

func TestInvoke(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	mintParam := hex.EncodeToString(serial.Encode(entity.Receipt{ReceiptID: "r1", TxHash: "0xabc", TsUnix: 42}))
	status, minted := doRequest[invokeResult](t, app, http.MethodPost, "/receipts/v1/invoke/mint_receipt", `{"parameter":"`+mintParam+`"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, minted.Result.ReturnValue)
	require.Len(t, minted.Result.Events, 1)

	getParam := hex.EncodeToString(serial.Encode(serial.String("r1")))
	status, got := doRequest[invokeResult](t, app, http.MethodPost, "/receipts/v1/invoke/get_receipt", `{"parameter":"`+getParam+`"}`)
	require.Equal(t, http.StatusOK, status)
	ret, err := hex.DecodeString(got.Result.ReturnValue)
	require.NoError(t, err)
	r, err := serial.DecodeOption[entity.Receipt](ret)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "0xabc", r.TxHash)

	status, _ = doRequest[invokeResult](t, app, http.MethodPost, "/receipts/v1/invoke/get_receipt", `{"parameter":"0100"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest[invokeResult](t, app, http.MethodPost, "/receipts/v1/invoke/burn", `{"parameter":""}`)
	assert.Equal(t, http.StatusNotFound, status)
}
