package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/contact"
	"github.com/iburimskiy/particle-portfolio/internal/game"
	"github.com/iburimskiy/particle-portfolio/internal/particle"
	"github.com/iburimskiy/particle-portfolio/internal/sound"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal profile card over an animated particle background",
	Long: `portfolio opens a window showing a profile card (name, titles, bio,
contact and social links) over a drifting, pointer-reactive particle field.
Press T or click the round button to switch between light and dark; the
choice is remembered. Tab switches card tabs, Esc or Q quits.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, _ := openThemeStore(cfg, logger, false)
	defer closeStore()
	mode := store.ResolveInitial()
	logger.Info("starting", zap.Stringer("theme", mode), zap.Strings("classes", store.Root().Classes()))

	var out sound.Output
	if cfg.Sound.Enabled {
		if out, err = game.OpenSpeaker(); err != nil {
			logger.Warn("audio unavailable, toggle click disabled", zap.Error(err))
			out = nil
		}
	}

	err = game.Run(ctx, game.Options{
		Store:   store,
		Field:   particle.NewField(nil),
		Sound:   sound.NewPlayer(out, cfg.Sound.Volume),
		Contact: contact.NewHandler(contact.Options{Logger: logger.Named("contact")}),
		Window:  cfg.Window,
		Profile: cfg.Profile,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("window failed", zap.Error(err))
		if derr := game.ShowError(cfg.Window.Title, "The particle window could not start:\n"+err.Error()); derr != nil {
			logger.Debug("error dialog unavailable", zap.Error(derr))
		}
		return err
	}
	return nil
}
