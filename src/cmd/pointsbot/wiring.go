package main

import (
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	appadmin "github.com/jackyeh168/points_bot/src/internal/application/admin"
	"github.com/jackyeh168/points_bot/src/internal/config"
	"github.com/jackyeh168/points_bot/src/internal/domain/admin"
	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/shared"
	"github.com/jackyeh168/points_bot/src/internal/infrastructure/persistence"
	adminrepo "github.com/jackyeh168/points_bot/src/internal/infrastructure/persistence/admin"
	pointsrepo "github.com/jackyeh168/points_bot/src/internal/infrastructure/persistence/points"
	"github.com/jackyeh168/points_bot/src/internal/interfaces/telegram"
)

// components 是 serve 與 sync-admins 共用的依賴
type components struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *gorm.DB
	bot       *tgbotapi.BotAPI
	txManager shared.TransactionManager
	accounts  points.PointsAccountRepository
	admins    admin.AdminRepository
}

func setup(cmd *cobra.Command) (*components, error) {
	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		return nil, errors.New("no config found in context")
	}
	logger := commonRun(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := persistence.OpenDatabase(
		cfg.DatabasePath,
		logger,
		append(pointsrepo.Models(), adminrepo.Models()...)...,
	)
	if err != nil {
		return nil, err
	}

	if err := tgbotapi.SetLogger(telegram.NewBotLogger(logger)); err != nil {
		_ = persistence.CloseDatabase(db)
		return nil, err
	}
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		_ = persistence.CloseDatabase(db)
		return nil, fmt.Errorf("failed to start bot: %w", err)
	}
	logger.Info("bot authorized", "username", bot.Self.UserName)

	return &components{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		bot:       bot,
		txManager: persistence.NewGORMTransactionManager(db),
		accounts:  pointsrepo.NewPointsAccountRepository(db),
		admins:    adminrepo.NewAdminRepository(db),
	}, nil
}

func (c *components) close() {
	if err := persistence.CloseDatabase(c.db); err != nil {
		c.logger.Warn("failed to close database", tint.Err(err))
	}
}

// syncAdmins 以設定的聊天室管理員替換管理員名單
func (c *components) syncAdmins() (*appadmin.SyncAdminsResult, error) {
	source, err := telegram.NewAdminSource(c.bot, c.cfg.ChatID)
	if err != nil {
		return nil, err
	}
	result, err := appadmin.NewSyncAdminsUseCase(source, c.admins, c.txManager).Execute()
	if err != nil {
		return nil, fmt.Errorf("admin sync failed: %w", err)
	}
	c.logger.Info("admins synchronized", "chat", c.cfg.ChatID, "count", len(result.AdminIDs))
	return result, nil
}
