package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/config"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/svc"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

func newHandlerSvcCtx() *svc.ServiceContext {
	var c config.Config
	c.Scan = config.ScanConf{
		DefaultChain:       "Base",
		MaxTokensFree:      15,
		MaxTokensPro:       40,
		TokenConcurrency:   4,
		SpenderConcurrency: 6,
	}
	c.Chains = map[string]config.ChainConf{
		"Base": {Name: "Base", RpcUrl: "http://unused.invalid", ChainId: 8453, BlockscoutUrl: "http://unused.invalid"},
	}
	return svc.NewServiceContext(c)
}

func TestScanHandlerInvalidOwnerEnvelope(t *testing.T) {
	h := ScanHandler(newHandlerSvcCtx())

	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{"owner": "not-an-address"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp types.ScanResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a non-empty error message")
	}
	if len(resp.Items) != 0 || resp.Meta.Calls != 0 {
		t.Errorf("expected empty items and zero calls, got %+v", resp)
	}
}

func TestScanHandlerMalformedBody(t *testing.T) {
	h := ScanHandler(newHandlerSvcCtx())

	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp types.ScanResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failure response must still be a well-formed envelope: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestSpenderListHandler(t *testing.T) {
	h := SpenderListHandler(newHandlerSvcCtx())

	req := httptest.NewRequest(http.MethodGet, "/api/spenders?isPro=true", nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp types.GetSpendersResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Count == 0 || len(resp.Spenders) != resp.Count {
		t.Errorf("unexpected spender list: %+v", resp)
	}
}
