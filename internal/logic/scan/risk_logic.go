package scan

import (
	"fmt"
	"math"
	"math/big"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/constant"
)

// unlimitedThreshold 无限授权判定阈值 2^255。
// 很多授权工具用的是接近 uint256 最大值的数，所以不用 2^256-1 精确比较。
var unlimitedThreshold = new(big.Int).Lsh(big.NewInt(1), 255)

const (
	reasonUnlimited = "Unlimited approval — spender could drain funds if compromised."
	reasonActive    = "Active approval — revoke if you no longer use this spender."
)

// isUnlimitedAllowance 判断是否为无限授权
func isUnlimitedAllowance(allowance *big.Int) bool {
	return allowance.Cmp(unlimitedThreshold) >= 0
}

// classifyAllowance 对非零 allowance 给出风险等级和理由。
// 非零授权只会是 red 或 orange；green 表示没有任何风险授权，由上层通过"不产生条目"体现。
func classifyAllowance(allowance *big.Int) (constant.RiskLevel, string) {
	if isUnlimitedAllowance(allowance) {
		return constant.RiskRed, reasonUnlimited
	}
	return constant.RiskOrange, reasonActive
}

// formatAllowance 把原始 uint256 按 decimals 渲染成可读标签：
// 0 -> "0"，无限 -> "Unlimited"，>=1000 取整加 "+"，
// >=10 保留 2 位小数，>=1 保留 4 位，其余 6 位。
func formatAllowance(allowance *big.Int, decimals int) string {
	if allowance.Sign() == 0 {
		return "0"
	}
	if isUnlimitedAllowance(allowance) {
		return "Unlimited"
	}
	if decimals < 0 {
		decimals = 18
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	val := new(big.Float).Quo(new(big.Float).SetInt(allowance), new(big.Float).SetInt(scale))
	num, _ := val.Float64()

	if math.IsInf(num, 0) || math.IsNaN(num) {
		// float64 放不下就退回整数单位
		return new(big.Int).Div(allowance, scale).String() + "+"
	}
	if num >= 1000 {
		// 四舍五入，.5 进位
		return fmt.Sprintf("%.0f+", math.Round(num))
	}
	if num >= 10 {
		return fmt.Sprintf("%.2f", num)
	}
	if num >= 1 {
		return fmt.Sprintf("%.4f", num)
	}
	return fmt.Sprintf("%.6f", num)
}
