package admin

import (
	"sort"

	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// AdminSet 值對象
// ===========================

// AdminSet 管理員名單（不可變集合）
//
// 業務規則：
// 1. 名單內容只在啟動同步時整批替換，其餘時間不變
// 2. 重複的 ID 只保留一個
// 3. 不接受零值 ID
//
// 名單成員是唯一的授權依據，與平台端的管理員身分只在同步當下一致。
type AdminSet struct {
	ids []shared.UserID
}

// NewAdminSet 從平台返回的 ID 列表建立管理員名單
//
// 返回：
// - AdminSet: 去重並排序後的名單
// - error: 列表中包含零值 ID 時返回 ErrInvalidAdminID
func NewAdminSet(ids []shared.UserID) (AdminSet, error) {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]shared.UserID, 0, len(ids))

	for i, id := range ids {
		if id.IsEmpty() {
			return AdminSet{}, ErrInvalidAdminID.WithContext("index", i)
		}
		if _, dup := seen[id.Int64()]; dup {
			continue
		}
		seen[id.Int64()] = struct{}{}
		unique = append(unique, id)
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Int64() < unique[j].Int64()
	})

	return AdminSet{ids: unique}, nil
}

// IDs 返回名單副本
func (s AdminSet) IDs() []shared.UserID {
	out := make([]shared.UserID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len 名單人數
func (s AdminSet) Len() int {
	return len(s.ids)
}

// Contains 判斷用戶是否在名單中
func (s AdminSet) Contains(id shared.UserID) bool {
	for _, existing := range s.ids {
		if existing.Equals(id) {
			return true
		}
	}
	return false
}
