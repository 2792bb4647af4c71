package app

import (
	"github.com/example/skool/internal/achievements"
	"github.com/example/skool/internal/config"
	"github.com/example/skool/internal/database"
	"github.com/example/skool/internal/generator"
	"github.com/example/skool/internal/quest"
	"github.com/example/skool/internal/rewards"
	"github.com/example/skool/internal/session"
	"github.com/example/skool/pkg/models"
)

// NewEngine wires a session engine with its database-backed collaborators.
// This is the composition root used by the serving layer; database.Connect
// must have been called first.
func NewEngine(cfg config.Settings) *session.Engine {
	users := database.NewUserRepository()
	items := database.NewItemRepository()
	progress := database.NewProgressRepository()
	sessions := database.NewSessionRepository()
	ledger := database.NewLedgerRepository()

	rewardsSvc := rewards.New(cfg, ledger)
	badgesSvc := achievements.New(database.NewAchievementRepository(), cfg.SpeedBonusThreshold)
	questSvc := quest.New(cfg, database.NewQuestRepository())

	engine := session.New(cfg, users, items, progress, sessions, rewardsSvc, badgesSvc, questSvc)
	engine.RegisterGenerator(models.GameMath, &generator.MathGenerator{Age: 5})
	return engine
}
