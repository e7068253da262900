package setup

import (
	"context"

	"github.com/marchand/storefront/internal/config"
	"gorm.io/gorm"
)

// DatabaseFromConfig exposes the shared database handle to commands that
// operate on storage directly.
func DatabaseFromConfig(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	return getGormDatabaseFromConfig(ctx, conf)
}
