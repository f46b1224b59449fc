package constant

import "github.com/blockchainguru4444/revoke-radar-mini/internal/types"

type RiskLevel string

const (
	RiskRed    RiskLevel = "red"
	RiskOrange RiskLevel = "orange"
	RiskGreen  RiskLevel = "green"
)

// RiskOrder 风险排序权重，red 最靠前
func RiskOrder(risk string) int {
	switch RiskLevel(risk) {
	case RiskRed:
		return 0
	case RiskOrange:
		return 1
	case RiskGreen:
		return 2
	}
	return 3
}

const (
	SpenderTierCore   = "core"
	SpenderTierKnown  = "known"
	SpenderTierCustom = "custom"
)

// BaseSpendersFree 免费档 spender 列表：小而命中率高
var BaseSpendersFree = []types.Spender{
	{Name: "Aerodrome Router", Address: "0xcF77a3Ba9A5CA399B7c97c74d54e5b1Beb874E43", Tier: SpenderTierCore},
	{Name: "1inch Router v6", Address: "0x54b5eb235c3935c39f834e58fd439b826f2a1dfb", Tier: SpenderTierCore},
	{Name: "Uniswap Universal Router", Address: "0xEf1c6E67703c7BD7107eed8303Fbe6EC2554BF6B", Tier: SpenderTierCore},
	{Name: "Uniswap V3 SwapRouter", Address: "0xE592427A0AEce92De3Edee1F18E0157C05861564", Tier: SpenderTierCore},
	{Name: "Permit2", Address: "0x000000000022D473030F116dDEE9F6B43aC78BA3", Tier: SpenderTierKnown},
}

// BaseSpendersPro Pro 档：在免费档基础上扩充
var BaseSpendersPro = append(append([]types.Spender{}, BaseSpendersFree...),
	types.Spender{Name: "Uniswap V3 NonfungiblePositionManager", Address: "0xC36442b4a4522E871399CD717aBDD847Ab11FE88", Tier: SpenderTierKnown},
)

// SpendersForTier returns a copy of the static spender list for the tier,
// safe for the caller to append custom entries to.
func SpendersForTier(isPro bool) []types.Spender {
	src := BaseSpendersFree
	if isPro {
		src = BaseSpendersPro
	}
	out := make([]types.Spender, len(src))
	copy(out, src)
	return out
}
