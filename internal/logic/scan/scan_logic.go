package scan

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/constant"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/svc"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/types"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/zeromicro/go-zero/core/logx"
)

// 请求类错误走 400，其余都是 500
var (
	ErrInvalidOwner = errors.New("invalid owner address")
	ErrUnknownChain = errors.New("unsupported chain")
	ErrInternal     = errors.New("internal scan failure")
)

var ownerAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ScanLogic 审批扫描编排逻辑
type ScanLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

// NewScanLogic 创建扫描逻辑实例
func NewScanLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ScanLogic {
	return &ScanLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Scan 执行一次授权扫描：校验 -> 发现代币 -> 两层限并发展开读 allowance
// -> 风险分类 -> 排序聚合。失败时返回的 resp 也是完整的错误信封，
// err 只用来给 handler 定状态码。
func (l *ScanLogic) Scan(req *types.ScanReq) (resp *types.ScanResp, err error) {
	start := time.Now()

	var calls, errCount atomic.Int64

	failResp := func(tokens, spenders int, msg string) *types.ScanResp {
		return &types.ScanResp{
			Items: []types.ScanItem{},
			Meta:  buildMeta(tokens, spenders, &calls, &errCount, start),
			Error: msg,
		}
	}

	// 编排过程中任何漏网的 panic 都收到这里，响应必须保持完整
	defer func() {
		if r := recover(); r != nil {
			l.Errorf("扫描发生未处理异常: %v", r)
			errCount.Add(1)
			resp = failResp(0, 0, fmt.Sprintf("internal error: %v", r))
			err = ErrInternal
		}
	}()

	// Validating
	owner := strings.TrimSpace(req.Owner)
	if !ownerAddressRe.MatchString(owner) {
		return failResp(0, 0, "Invalid owner"), ErrInvalidOwner
	}

	chainName := req.Chain
	if chainName == "" {
		chainName = l.svcCtx.Config.Scan.DefaultChain
	}
	chainConf, ok := l.svcCtx.Config.Chains[chainName]
	if !ok {
		return failResp(0, 0, fmt.Sprintf("unsupported chain: %s", chainName)), ErrUnknownChain
	}

	spenders := constant.SpendersForTier(req.IsPro)
	spenders = append(spenders, l.customSpenders(owner)...)

	maxTokens := l.svcCtx.Config.Scan.MaxTokensFree
	if req.IsPro {
		maxTokens = l.svcCtx.Config.Scan.MaxTokensPro
	}

	l.Infof("开始扫描: owner=%s, chain=%s, isPro=%v, spenders=%d, maxTokens=%d",
		owner, chainName, req.IsPro, len(spenders), maxTokens)

	// Discovering：发现失败对整次扫描是致命的，此时还没有任何读调用发生
	tokens, err := NewDiscoveryLogic(l.ctx).DiscoverTokens(chainConf.BlockscoutUrl, owner, maxTokens)
	if err != nil {
		l.Errorf("代币发现失败: %v", err)
		errCount.Add(1)
		return failResp(0, 0, err.Error()), err
	}

	client, err := ethclient.Dial(chainConf.RpcUrl)
	if err != nil {
		errCount.Add(1)
		return failResp(len(tokens), len(spenders), fmt.Sprintf("failed to connect to chain: %v", err)), ErrInternal
	}
	defer client.Close()

	// Scanning：外层按代币、内层按 spender 两级限并发展开，
	// 单个 pair 的失败在读取器里就地消化
	reader := NewAllowanceLogic(l.ctx, client, &calls, &errCount)
	nested := mapBounded(tokens, l.svcCtx.Config.Scan.TokenConcurrency, func(tok tokenRecord, _ int) []types.ScanItem {
		rows := mapBounded(spenders, l.svcCtx.Config.Scan.SpenderConcurrency, func(sp types.Spender, _ int) *types.ScanItem {
			allowance := reader.ReadAllowance(tok.Address, owner, sp.Address)
			if allowance.Sign() == 0 {
				// 零授权（包括失败按零处理的）不产生条目
				return nil
			}

			risk, reason := classifyAllowance(allowance)
			return &types.ScanItem{
				ChainId:        chainConf.ChainId,
				ChainName:      chainConf.Name,
				TokenSymbol:    tok.Symbol,
				TokenAddress:   tok.Address,
				SpenderName:    sp.Name,
				SpenderAddress: sp.Address,
				AllowanceLabel: formatAllowance(allowance, tok.Decimals),
				Risk:           string(risk),
				Reason:         reason,
			}
		})

		items := make([]types.ScanItem, 0, len(rows))
		for _, it := range rows {
			if it != nil {
				items = append(items, *it)
			}
		}
		return items
	})

	// Aggregating：展平后按风险稳定排序，red < orange < green，
	// 同级保持发现顺序
	items := make([]types.ScanItem, 0)
	for _, rows := range nested {
		items = append(items, rows...)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return constant.RiskOrder(items[i].Risk) < constant.RiskOrder(items[j].Risk)
	})

	meta := buildMeta(len(tokens), len(spenders), &calls, &errCount, start)
	l.Infof("扫描完成: items=%d, calls=%d, errors=%d, durationMs=%d",
		len(items), meta.Calls, meta.Errors, meta.DurationMs)

	return &types.ScanResp{
		Items: items,
		Meta:  meta,
	}, nil
}

// customSpenders 合并 owner 保存的自定义 spender；没配数据库或查询失败都不阻塞扫描
func (l *ScanLogic) customSpenders(owner string) []types.Spender {
	if l.svcCtx.CustomSpendersDao == nil {
		return nil
	}

	rows, err := l.svcCtx.CustomSpendersDao.FindByOwner(l.ctx, owner)
	if err != nil {
		l.Errorf("查询自定义 spender 失败: owner=%s, err=%v", owner, err)
		return nil
	}

	spenders := make([]types.Spender, 0, len(rows))
	for _, row := range rows {
		spenders = append(spenders, types.Spender{
			Name:    row.Name,
			Address: row.Address,
			Tier:    constant.SpenderTierCustom,
		})
	}
	return spenders
}

func buildMeta(tokens, spenders int, calls, errs *atomic.Int64, start time.Time) types.ScanMeta {
	return types.ScanMeta{
		TokensChecked:   tokens,
		SpendersChecked: spenders,
		Calls:           calls.Load(),
		Errors:          errs.Load(),
		DurationMs:      time.Since(start).Milliseconds(),
	}
}
