package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-portfolio/internal/config"
	"github.com/iburimskiy/particle-portfolio/internal/prefs"
	"github.com/iburimskiy/particle-portfolio/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect or change the remembered light/dark theme",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the theme the window would start with",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withThemeStore(func(store *theme.Store, _ *config.Config) error {
			fmt.Fprintln(cmd.OutOrStdout(), store.ResolveInitial())
			return nil
		})
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Remember a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := theme.ParseMode(args[0])
		if err != nil {
			return err
		}
		return withThemeStore(func(store *theme.Store, _ *config.Config) error {
			store.ResolveInitial()
			store.SetTheme(mode)
			fmt.Fprintln(cmd.OutOrStdout(), store.Theme())
			return nil
		})
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the remembered theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withThemeStore(func(store *theme.Store, _ *config.Config) error {
			store.ResolveInitial()
			fmt.Fprintln(cmd.OutOrStdout(), store.Toggle())
			return nil
		})
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the remembered theme so the system preference applies again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := prefs.Open(cfg.Theme.StorePath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Delete(cfg.Theme.StorageKey); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cfg.Theme.StorageKey)
		return nil
	},
}

// withThemeStore runs fn against a store backed by the configured
// preference database, failing if the database cannot be opened.
func withThemeStore(fn func(*theme.Store, *config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, closeStore, err := openThemeStore(cfg, logger, true)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store, cfg)
}

func init() {
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd, themeResetCmd)
	rootCmd.AddCommand(themeCmd)
}
