package model

import "time"

// CustomSpenders corresponds to the custom_spenders table in the database.
// 每行是某个 owner 地址保存的一个自定义 spender
type CustomSpenders struct {
	Id           int64     `db:"id"`
	OwnerAddress string    `db:"owner_address"`
	Name         string    `db:"name"`
	Address      string    `db:"address"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
