package settings

import "github.com/heartmarshall/focuslog-backend/internal/domain"

// BootstrapResult describes the account state after a first-login bootstrap.
// Seeded is true only for the call that created the defaults.
type BootstrapResult struct {
	Settings   *domain.UserSettings
	Categories []*domain.Category
	Seeded     bool
}
