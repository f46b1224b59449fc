package handler

import (
	"errors"
	"net/http"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/logic/scan"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/svc"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// ScanHandler 扫描接口：成功返回 items+meta，
// 失败也返回同样形状的信封（items 空、error 填上），状态码 400/500
func ScanHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScanReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse scan request: %v", err)
			httpx.WriteJsonCtx(r.Context(), w, http.StatusBadRequest, &types.ScanResp{
				Items: []types.ScanItem{},
				Error: "Invalid request body",
			})
			return
		}

		l := scan.NewScanLogic(r.Context(), svcCtx)
		resp, err := l.Scan(&req)
		if err != nil {
			httpx.WriteJsonCtx(r.Context(), w, scanStatus(err), resp)
			return
		}
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}

// scanStatus 错误分类到状态码：请求错误 400，发现失败和内部错误 500
func scanStatus(err error) int {
	if errors.Is(err, scan.ErrInvalidOwner) || errors.Is(err, scan.ErrUnknownChain) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
