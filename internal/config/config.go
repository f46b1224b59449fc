package config

import "github.com/zeromicro/go-zero/rest"

type ChainConf struct {
	Name string `json:"Name"`
	// RpcUrl is the JSON-RPC endpoint used for allowance reads.
	RpcUrl  string `json:"RpcUrl"`
	ChainId int64  `json:"ChainId"`
	// BlockscoutUrl is the base URL of the blockscout instance used for token discovery.
	BlockscoutUrl string `json:"BlockscoutUrl"`
}

// ScanConf 扫描调优参数，配置文件可覆盖默认值
type ScanConf struct {
	DefaultChain string `json:",default=Base"`
	// Token quota per tier for the discovery step.
	MaxTokensFree int `json:",default=15"`
	MaxTokensPro  int `json:",default=40"`
	// Concurrency ceilings for the two fan-out levels (tokens, then spenders per token).
	TokenConcurrency   int `json:",default=4"`
	SpenderConcurrency int `json:",default=6"`
}

type Config struct {
	rest.RestConf
	Postgres struct {
		// DSN may be left empty to run without custom spender storage.
		DSN string `json:",optional"`
	}
	Scan ScanConf `json:",optional"`
	// Chains maps a chain name (e.g., "Base") to its configuration.
	Chains map[string]ChainConf
}
