package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/internal/config"
	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/db"
)

// AppContext holds the application dependencies shared across all commands.
// Notifier is nil when mail is not configured.
type AppContext struct {
	Cfg      *config.Config
	Store    db.Store
	Notifier engine.Notifier
	Logger   *zap.Logger
	Ctx      context.Context
}
