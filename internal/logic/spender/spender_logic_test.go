package spender

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/blockchainguru4444/revoke-radar-mini/internal/constant"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/model"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/svc"
	"github.com/blockchainguru4444/revoke-radar-mini/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

const (
	owner       = "0x1111111111111111111111111111111111111111"
	spenderAddr = "0x2222222222222222222222222222222222222222"
)

// fakeDao 内存版 CustomSpendersDao
type fakeDao struct {
	rows   []*model.CustomSpenders
	nextId int64
}

func (d *fakeDao) Insert(_ context.Context, data *model.CustomSpenders) error {
	d.nextId++
	data.Id = d.nextId
	d.rows = append(d.rows, data)
	return nil
}

func (d *fakeDao) Update(_ context.Context, data *model.CustomSpenders) error {
	for i, row := range d.rows {
		if row.Id == data.Id {
			d.rows[i] = data
			return nil
		}
	}
	return model.ErrNotFound
}

func (d *fakeDao) FindOne(_ context.Context, owner, address string) (*model.CustomSpenders, error) {
	for _, row := range d.rows {
		if row.OwnerAddress == owner && row.Address == address {
			return row, nil
		}
	}
	return nil, model.ErrNotFound
}

func (d *fakeDao) FindByOwner(_ context.Context, owner string) ([]*model.CustomSpenders, error) {
	var out []*model.CustomSpenders
	for _, row := range d.rows {
		if row.OwnerAddress == owner {
			out = append(out, row)
		}
	}
	return out, nil
}

func (d *fakeDao) Delete(_ context.Context, owner, address string) (int64, error) {
	for i, row := range d.rows {
		if row.OwnerAddress == owner && row.Address == address {
			d.rows = append(d.rows[:i], d.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newTestLogic(dao model.CustomSpendersDao) *SpenderLogic {
	return NewSpenderLogic(context.Background(), &svc.ServiceContext{CustomSpendersDao: dao})
}

func TestListStaticSpenders(t *testing.T) {
	l := newTestLogic(nil)

	free, err := l.List(&types.GetSpendersReq{IsPro: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pro, err := l.List(&types.GetSpendersReq{IsPro: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if free.Count != len(constant.BaseSpendersFree) || pro.Count != len(constant.BaseSpendersPro) {
		t.Errorf("unexpected counts: free=%d pro=%d", free.Count, pro.Count)
	}
	if pro.Count <= free.Count {
		t.Errorf("pro list should extend the free list")
	}
}

func TestSaveCustomValidation(t *testing.T) {
	l := newTestLogic(&fakeDao{})

	if _, err := l.SaveCustom(&types.SaveCustomSpenderReq{Owner: "bad", Address: spenderAddr}); err == nil {
		t.Error("expected error for invalid owner")
	}
	if _, err := l.SaveCustom(&types.SaveCustomSpenderReq{Owner: owner, Address: "0xzz"}); err == nil {
		t.Error("expected error for invalid spender address")
	}
}

func TestSaveCustomDefaultsAndTrimming(t *testing.T) {
	dao := &fakeDao{}
	l := newTestLogic(dao)

	resp, err := l.SaveCustom(&types.SaveCustomSpenderReq{Owner: owner, Address: spenderAddr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Spender.Name != "Custom" {
		t.Errorf("empty name should default to Custom, got %q", resp.Spender.Name)
	}
	if resp.Spender.Tier != constant.SpenderTierCustom {
		t.Errorf("expected custom tier, got %q", resp.Spender.Tier)
	}

	long := strings.Repeat("x", 50)
	resp, err = l.SaveCustom(&types.SaveCustomSpenderReq{Owner: owner, Name: long, Address: spenderAddr})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Spender.Name) != 32 {
		t.Errorf("name should be trimmed to 32 chars, got %d", len(resp.Spender.Name))
	}

	// 同一 (owner, address) 重复保存只更新名字，不新增行
	if len(dao.rows) != 1 {
		t.Errorf("duplicate save should update in place, got %d rows", len(dao.rows))
	}
}

func TestListAndDeleteCustom(t *testing.T) {
	dao := &fakeDao{}
	l := newTestLogic(dao)

	if _, err := l.SaveCustom(&types.SaveCustomSpenderReq{Owner: owner, Name: "My DEX", Address: spenderAddr}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	list, err := l.ListCustom(&types.ListCustomSpendersReq{Owner: owner})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list.Count != 1 || list.Spenders[0].Name != "My DEX" {
		t.Errorf("unexpected list: %+v", list)
	}

	del, err := l.DeleteCustom(&types.DeleteCustomSpenderReq{Owner: owner, Address: spenderAddr})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !del.Deleted {
		t.Error("expected deletion to report success")
	}

	del, err = l.DeleteCustom(&types.DeleteCustomSpenderReq{Owner: owner, Address: spenderAddr})
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if del.Deleted {
		t.Error("second delete should report nothing removed")
	}
}

func TestCustomStorageNotConfigured(t *testing.T) {
	l := newTestLogic(nil)

	if _, err := l.SaveCustom(&types.SaveCustomSpenderReq{Owner: owner, Address: spenderAddr}); err == nil {
		t.Error("expected error when storage is not configured")
	}
	if _, err := l.ListCustom(&types.ListCustomSpendersReq{Owner: owner}); err == nil {
		t.Error("expected error when storage is not configured")
	}
}
