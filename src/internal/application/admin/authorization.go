package admin

import (
	"fmt"

	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
)

// ===========================
// AuthorizationService
// ===========================

// AuthorizationService 管理員權限檢查
//
// 業務規則：
// - 管理員表是唯一的授權依據
// - 每次檢查都讀取資料庫，不快取（名單只在同步時變更）
type AuthorizationService struct {
	adminRepo admin.AdminRepository
}

// NewAuthorizationService 創建權限檢查服務
func NewAuthorizationService(repo admin.AdminRepository) *AuthorizationService {
	return &AuthorizationService{adminRepo: repo}
}

// IsAdmin 判斷用戶是否為管理員
func (s *AuthorizationService) IsAdmin(userID shared.UserID) (bool, error) {
	ok, err := s.adminRepo.IsAdmin(nil, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return ok, nil
}

// RequireAdmin 非管理員時返回 ErrPermissionDenied
//
// command 只用於錯誤上下文。
func (s *AuthorizationService) RequireAdmin(userID shared.UserID, command string) error {
	ok, err := s.IsAdmin(userID)
	if err != nil {
		return err
	}
	if !ok {
		return admin.ErrPermissionDenied.WithContext(
			"user_id", userID.String(),
			"command", command,
		)
	}
	return nil
}
