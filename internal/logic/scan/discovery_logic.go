package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

const defaultDecimals = 18

// tokenRecord 发现服务返回的一条规范化代币记录
type tokenRecord struct {
	Address  string
	Symbol   string
	Decimals int
}

// DiscoveryError 代币发现失败，对整次扫描是致命错误
type DiscoveryError struct {
	Status int
	Err    error
}

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token discovery failed: %v", e.Err)
	}
	return fmt.Sprintf("token discovery failed: blockscout status %d", e.Status)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// blockscoutToken blockscout 代币字段，同一个字段在不同实例上名字不一样，
// 这里把已知的几种别名都收下来
type blockscoutToken struct {
	Address         string          `json:"address"`
	AddressHash     string          `json:"address_hash"`
	ContractAddress string          `json:"contract_address"`
	TokenAddress    string          `json:"token_address"`
	Symbol          string          `json:"symbol"`
	TokenSymbol     string          `json:"token_symbol"`
	Decimals        json.RawMessage `json:"decimals"`
	TokenDecimals   json.RawMessage `json:"token_decimals"`
}

// blockscoutRow 余额行：代币字段可能平铺，也可能嵌在 token 对象里
type blockscoutRow struct {
	Token *blockscoutToken `json:"token"`
	blockscoutToken
}

type blockscoutResponse struct {
	Items []blockscoutRow `json:"items"`
}

// DiscoveryLogic 代币发现适配器
type DiscoveryLogic struct {
	ctx    context.Context
	client *http.Client
	logx.Logger
}

// NewDiscoveryLogic 创建代币发现实例
func NewDiscoveryLogic(ctx context.Context) *DiscoveryLogic {
	return &DiscoveryLogic{
		ctx:    ctx,
		client: &http.Client{Timeout: 15 * time.Second},
		Logger: logx.WithContext(ctx),
	}
}

// DiscoverTokens 查询 owner 持有的代币列表并截断到 maxTokens。
// owner 由上层校验过；没有可用地址的行静默丢弃，不算错误。
func (l *DiscoveryLogic) DiscoverTokens(blockscoutUrl, owner string, maxTokens int) ([]tokenRecord, error) {
	url := fmt.Sprintf("%s/api/v2/addresses/%s/token-balances", strings.TrimRight(blockscoutUrl, "/"), owner)
	l.Infof("发现代币: owner=%s, url=%s", owner, url)

	req, err := http.NewRequestWithContext(l.ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &DiscoveryError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}

	rows, err := parseBalanceRows(body)
	if err != nil {
		return nil, &DiscoveryError{Err: err}
	}
	if len(rows) > maxTokens {
		rows = rows[:maxTokens]
	}

	tokens := make([]tokenRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := normalizeRow(row); ok {
			tokens = append(tokens, rec)
		}
	}

	l.Infof("发现代币完成: %d 行原始数据, %d 条有效代币", len(rows), len(tokens))
	return tokens, nil
}

// parseBalanceRows 兼容裸数组和 {items: [...]} 两种响应结构
func parseBalanceRows(body []byte) ([]blockscoutRow, error) {
	var rows []blockscoutRow
	if err := json.Unmarshal(body, &rows); err == nil {
		return rows, nil
	}

	var wrapped blockscoutResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("unexpected blockscout response: %w", err)
	}
	return wrapped.Items, nil
}

// normalizeRow 从一行里解出地址/符号/精度，按别名顺序取第一个可用值
func normalizeRow(row blockscoutRow) (tokenRecord, bool) {
	tok := row.blockscoutToken
	if row.Token != nil {
		tok = *row.Token
	}

	addr := firstNonEmpty(tok.Address, tok.AddressHash, tok.ContractAddress, tok.TokenAddress)
	if !strings.HasPrefix(addr, "0x") {
		return tokenRecord{}, false
	}

	symbol := firstNonEmpty(tok.Symbol, tok.TokenSymbol)
	if symbol == "" {
		symbol = "TOKEN"
	}

	decRaw := tok.Decimals
	if len(decRaw) == 0 || string(decRaw) == "null" {
		decRaw = tok.TokenDecimals
	}

	return tokenRecord{
		Address:  addr,
		Symbol:   symbol,
		Decimals: parseDecimals(decRaw),
	}, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// parseDecimals 解析 decimals 字段，数字和字符串都接受，解析不了给 18
func parseDecimals(raw json.RawMessage) int {
	if len(raw) == 0 {
		return defaultDecimals
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return defaultDecimals
		}
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n >= 0 {
			return n
		}
	}
	return defaultDecimals
}
