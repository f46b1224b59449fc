package types

// ScanReq defines the request body for an approval scan.
// owner 必须是 0x 开头的 40 位十六进制地址，isPro 决定 spender 列表与代币配额
type ScanReq struct {
	Owner string `json:"owner,optional"`
	IsPro bool   `json:"isPro,optional"`
	// Chain selects the target chain by name (e.g., "Base"). Empty uses the configured default.
	Chain string `json:"chain,optional"`
}

// ScanItem 单条风险授权记录，只有非零 allowance 才会产生
type ScanItem struct {
	ChainId        int64  `json:"chainId"`
	ChainName      string `json:"chainName"`
	TokenSymbol    string `json:"tokenSymbol"`
	TokenAddress   string `json:"tokenAddress"`
	SpenderName    string `json:"spenderName"`
	SpenderAddress string `json:"spenderAddress"`
	AllowanceLabel string `json:"allowanceLabel"`
	Risk           string `json:"risk"` // red/orange/green
	Reason         string `json:"reason"`
}

// ScanMeta 扫描遥测数据
type ScanMeta struct {
	// TokensChecked and SpendersChecked are input cardinalities, not filtered counts.
	TokensChecked   int `json:"tokensChecked"`
	SpendersChecked int `json:"spendersChecked"`
	// Calls counts every allowance read attempt, success or failure.
	Calls      int64 `json:"calls"`
	Errors     int64 `json:"errors"`
	DurationMs int64 `json:"durationMs"`
}

// ScanResp defines the response body for a scan. On failure Items is empty
// and Error carries the top-level message.
type ScanResp struct {
	Items []ScanItem `json:"items"`
	Meta  ScanMeta   `json:"meta"`
	Error string     `json:"error,omitempty"`
}

// Spender 候选授权合约，静态列表或用户自定义
type Spender struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Tier    string `json:"tier,omitempty"` // core/known/custom
}

// GetSpendersReq requests the static spender list for a tier.
type GetSpendersReq struct {
	IsPro bool `form:"isPro,optional"`
}

// GetSpendersResp returns the spender list that a scan with this tier would check.
type GetSpendersResp struct {
	Spenders []Spender `json:"spenders"`
	Count    int       `json:"count"`
}

// SaveCustomSpenderReq 保存用户自定义 spender
type SaveCustomSpenderReq struct {
	Owner   string `json:"owner"`
	Name    string `json:"name,optional"`
	Address string `json:"address"`
}

// SaveCustomSpenderResp confirms a saved custom spender.
type SaveCustomSpenderResp struct {
	Spender Spender `json:"spender"`
	Message string  `json:"message"`
}

// ListCustomSpendersReq lists the custom spenders saved for an owner.
type ListCustomSpendersReq struct {
	Owner string `form:"owner"`
}

// ListCustomSpendersResp returns an owner's saved custom spenders.
type ListCustomSpendersResp struct {
	Owner    string    `json:"owner"`
	Spenders []Spender `json:"spenders"`
	Count    int       `json:"count"`
}

// DeleteCustomSpenderReq removes one saved custom spender.
type DeleteCustomSpenderReq struct {
	Owner   string `json:"owner"`
	Address string `json:"address"`
}

// DeleteCustomSpenderResp confirms the removal.
type DeleteCustomSpenderResp struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}
