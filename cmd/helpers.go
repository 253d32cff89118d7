package cmd

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/logging"
	"github.com/iburimskiy/particle-portfolio/internal/prefs"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "loading config (run `portfolio config init` to create one)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log, verbose)
}

// openThemeStore builds the theme store over the preference database. When
// the database cannot be opened the store runs without persistence, unless
// required is set, in which case the failure is returned.
func openThemeStore(cfg *config.Config, logger *zap.Logger, required bool) (*theme.Store, func(), error) {
	def, err := theme.ParseMode(cfg.Theme.Default)
	if err != nil {
		def = theme.Light
	}
	opts := theme.Options{
		Key:     cfg.Theme.StorageKey,
		Default: def,
		Logger:  logger,
	}
	if cfg.Theme.FollowSystem {
		opts.Scheme = theme.OSScheme{}
	}

	closeFn := func() {}
	db, err := prefs.Open(cfg.Theme.StorePath)
	if err != nil {
		if required {
			return nil, closeFn, errors.Wrapf(err, "opening preferences at %s", cfg.Theme.StorePath)
		}
		logger.Warn("preferences unavailable, theme will not persist",
			zap.String("path", cfg.Theme.StorePath), zap.Error(err))
	} else {
		opts.Prefs = db
		closeFn = func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing preferences", zap.Error(err))
			}
		}
	}
	return theme.NewStore(opts), closeFn, nil
}
