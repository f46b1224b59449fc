package spender

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/constant"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/model"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/svc"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

const maxSpenderNameLen = 32

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// SpenderLogic spender 列表管理逻辑
type SpenderLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

// NewSpenderLogic 创建 spender 管理逻辑实例
func NewSpenderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SpenderLogic {
	return &SpenderLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// List 返回对应档位扫描会检查的静态 spender 列表
func (l *SpenderLogic) List(req *types.GetSpendersReq) (*types.GetSpendersResp, error) {
	spenders := constant.SpendersForTier(req.IsPro)
	return &types.GetSpendersResp{
		Spenders: spenders,
		Count:    len(spenders),
	}, nil
}

// SaveCustom 保存用户自定义 spender，同一 (owner, address) 再次保存只更新名字
func (l *SpenderLogic) SaveCustom(req *types.SaveCustomSpenderReq) (*types.SaveCustomSpenderResp, error) {
	if err := l.checkStorage(); err != nil {
		return nil, err
	}

	owner := strings.TrimSpace(req.Owner)
	address := strings.TrimSpace(req.Address)
	if !addressRe.MatchString(owner) {
		return nil, fmt.Errorf("invalid owner address: %s", req.Owner)
	}
	if !addressRe.MatchString(address) {
		return nil, fmt.Errorf("invalid spender address: %s", req.Address)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Custom"
	}
	if len(name) > maxSpenderNameLen {
		name = name[:maxSpenderNameLen]
	}

	existing, err := l.svcCtx.CustomSpendersDao.FindOne(l.ctx, owner, address)
	switch {
	case err == nil:
		existing.Name = name
		if err := l.svcCtx.CustomSpendersDao.Update(l.ctx, existing); err != nil {
			l.Errorf("更新自定义 spender 失败: %v", err)
			return nil, fmt.Errorf("failed to save custom spender: %v", err)
		}
	case errors.Is(err, model.ErrNotFound):
		row := &model.CustomSpenders{
			OwnerAddress: owner,
			Name:         name,
			Address:      address,
		}
		if err := l.svcCtx.CustomSpendersDao.Insert(l.ctx, row); err != nil {
			l.Errorf("保存自定义 spender 失败: %v", err)
			return nil, fmt.Errorf("failed to save custom spender: %v", err)
		}
	default:
		return nil, fmt.Errorf("failed to save custom spender: %v", err)
	}

	return &types.SaveCustomSpenderResp{
		Spender: types.Spender{
			Name:    name,
			Address: address,
			Tier:    constant.SpenderTierCustom,
		},
		Message: fmt.Sprintf("已保存自定义 spender: %s", name),
	}, nil
}

// ListCustom 列出 owner 保存的自定义 spender
func (l *SpenderLogic) ListCustom(req *types.ListCustomSpendersReq) (*types.ListCustomSpendersResp, error) {
	if err := l.checkStorage(); err != nil {
		return nil, err
	}

	owner := strings.TrimSpace(req.Owner)
	if !addressRe.MatchString(owner) {
		return nil, fmt.Errorf("invalid owner address: %s", req.Owner)
	}

	rows, err := l.svcCtx.CustomSpendersDao.FindByOwner(l.ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom spenders: %v", err)
	}

	spenders := make([]types.Spender, 0, len(rows))
	for _, row := range rows {
		spenders = append(spenders, types.Spender{
			Name:    row.Name,
			Address: row.Address,
			Tier:    constant.SpenderTierCustom,
		})
	}

	return &types.ListCustomSpendersResp{
		Owner:    owner,
		Spenders: spenders,
		Count:    len(spenders),
	}, nil
}

// DeleteCustom 删除一条自定义 spender
func (l *SpenderLogic) DeleteCustom(req *types.DeleteCustomSpenderReq) (*types.DeleteCustomSpenderResp, error) {
	if err := l.checkStorage(); err != nil {
		return nil, err
	}

	owner := strings.TrimSpace(req.Owner)
	address := strings.TrimSpace(req.Address)
	if !addressRe.MatchString(owner) || !addressRe.MatchString(address) {
		return nil, errors.New("invalid owner or spender address")
	}

	affected, err := l.svcCtx.CustomSpendersDao.Delete(l.ctx, owner, address)
	if err != nil {
		return nil, fmt.Errorf("failed to delete custom spender: %v", err)
	}

	msg := "自定义 spender 已删除"
	if affected == 0 {
		msg = "没有找到要删除的 spender"
	}
	return &types.DeleteCustomSpenderResp{
		Deleted: affected > 0,
		Message: msg,
	}, nil
}

func (l *SpenderLogic) checkStorage() error {
	if l.svcCtx.CustomSpendersDao == nil {
		return errors.New("custom spender storage is not configured")
	}
	return nil
}
