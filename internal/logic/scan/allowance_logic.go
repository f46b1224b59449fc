package scan

import (
	"context"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/zeromicro/go-zero/core/logx"
)

// AllowanceLogic 单笔 allowance 读取器。
// 任何失败都吃掉并返回 0，只通过错误计数器向外暴露；
// 每次调用不管成败 calls 都加一。两层并发都会写计数器，必须用原子操作。
type AllowanceLogic struct {
	ctx    context.Context
	client *ethclient.Client
	calls  *atomic.Int64
	errs   *atomic.Int64
	logx.Logger
}

// NewAllowanceLogic 创建 allowance 读取器
func NewAllowanceLogic(ctx context.Context, client *ethclient.Client, calls, errs *atomic.Int64) *AllowanceLogic {
	return &AllowanceLogic{
		ctx:    ctx,
		client: client,
		calls:  calls,
		errs:   errs,
		Logger: logx.WithContext(ctx),
	}
}

// ReadAllowance 查询 ERC20 allowance(owner, spender)，一次 eth_call，不重试。
// 单个 pair 失败不能拖垮整批扫描，所以失败按 0 处理。
func (l *AllowanceLogic) ReadAllowance(token, owner, spender string) *big.Int {
	l.calls.Add(1)

	// allowance(address owner, address spender) returns (uint256)
	// 方法签名: 0xdd62ed3e
	allowanceMethodId := []byte{0xdd, 0x62, 0xed, 0x3e}

	ownerAddr := common.HexToAddress(owner)
	spenderAddr := common.HexToAddress(spender)

	paddedOwner := common.LeftPadBytes(ownerAddr.Bytes(), 32)
	paddedSpender := common.LeftPadBytes(spenderAddr.Bytes(), 32)

	data := append(allowanceMethodId, paddedOwner...)
	data = append(data, paddedSpender...)

	tokenAddr := common.HexToAddress(token)
	result, err := l.client.CallContract(l.ctx, ethereum.CallMsg{
		To:   &tokenAddr,
		Data: data,
	}, nil)
	if err != nil {
		l.errs.Add(1)
		l.Errorf("allowance 查询失败: token=%s, spender=%s, err=%v", token, spender, err)
		return big.NewInt(0)
	}
	if len(result) != 32 {
		// 没部署合约或返回数据不是 uint256，按失败处理
		l.errs.Add(1)
		l.Errorf("allowance 返回数据异常: token=%s, spender=%s, len=%d", token, spender, len(result))
		return big.NewInt(0)
	}

	return new(big.Int).SetBytes(result)
}
