package handler

import (
	"net/http"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/logic/spender"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/svc"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// SpenderListHandler 返回档位对应的静态 spender 列表
func SpenderListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetSpendersReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := spender.NewSpenderLogic(r.Context(), svcCtx)
		resp, err := l.List(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// CustomSpenderSaveHandler 保存自定义 spender
func CustomSpenderSaveHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SaveCustomSpenderReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := spender.NewSpenderLogic(r.Context(), svcCtx)
		resp, err := l.SaveCustom(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// CustomSpenderListHandler 列出 owner 的自定义 spender
func CustomSpenderListHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListCustomSpendersReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := spender.NewSpenderLogic(r.Context(), svcCtx)
		resp, err := l.ListCustom(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// CustomSpenderDeleteHandler 删除自定义 spender
func CustomSpenderDeleteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DeleteCustomSpenderReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := spender.NewSpenderLogic(r.Context(), svcCtx)
		resp, err := l.DeleteCustom(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
