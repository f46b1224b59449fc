package handler

import (
	"net/http"
	"time"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			// --- Scan Routes ---
			{
				Method:  http.MethodPost,
				Path:    "/scan",
				Handler: ScanHandler(serverCtx),
			},
			// --- Spender Routes ---
			{
				Method:  http.MethodGet,
				Path:    "/spenders",
				Handler: SpenderListHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/spenders/custom",
				Handler: CustomSpenderSaveHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/spenders/custom",
				Handler: CustomSpenderListHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/spenders/custom",
				Handler: CustomSpenderDeleteHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/"),
		// 请求级超时由这里兜底，扫描核心自己不做取消
		rest.WithTimeout(30000*time.Millisecond),
	)
}
