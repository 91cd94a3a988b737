package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color" //nolint:misspell
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/go-arrower/recordstore"
	"github.com/go-arrower/recordstore/alog"
	school_init "github.com/go-arrower/recordstore/contexts/school/init"
	shop_init "github.com/go-arrower/recordstore/contexts/shop/init"
)

func newServeCmd(osSignal <-chan os.Signal) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API until interrupted",
		Long: `Serve the API until interrupted.
All settings can be given in a config file or as environment variables, e.g. RECORDSTORE_HTTP_PORT=8000.`,
		Args: cobra.NoArgs,
	}

	configFile := cmd.Flags().StringP("config", "c", "", "path to a yaml config file")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		vip, conf, err := loadConfig(*configFile)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		di, err := recordstore.InitialiseDefaultDependencies(ctx, conf)
		if err != nil {
			return fmt.Errorf("could not initialise dependencies: %w", err)
		}

		shop, err := shop_init.NewShopContext(ctx, di)
		if err != nil {
			return err //nolint:wrapcheck // already wrapped with the context name
		}

		school, err := school_init.NewSchoolContext(ctx, di)
		if err != nil {
			return err //nolint:wrapcheck // already wrapped with the context name
		}

		if *configFile != "" {
			watchLogLevel(ctx, vip, di.Logger)
		}

		printBanner(ctx, cmd, conf, shop, school)

		go func() {
			select {
			case <-osSignal:
				cancel()
			case <-ctx.Done():
			}
		}()

		return di.Run(ctx) //nolint:wrapcheck // errors are wrapped by the container
	}

	return cmd
}

func loadConfig(file string) (*recordstore.Viper, *recordstore.Config, error) {
	vip := recordstore.DefaultViper()

	if file != "" {
		vip.SetConfigFile(file)

		if err := vip.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	conf := &recordstore.Config{}
	if err := vip.Unmarshal(conf); err != nil {
		return nil, nil, err //nolint:wrapcheck // already wrapped by Unmarshal
	}

	return vip, conf, nil
}

// watchLogLevel applies changes of log.level in the config file without a restart.
// All other settings require a restart.
func watchLogLevel(ctx context.Context, vip *recordstore.Viper, logger *slog.Logger) {
	setter := alog.Unwrap(logger)
	if setter == nil {
		return
	}

	vip.OnConfigChange(func(_ fsnotify.Event) {
		conf := recordstore.Config{}
		if err := vip.Unmarshal(&conf); err != nil {
			logger.WarnContext(ctx, "ignoring changed config", alog.Error(err))

			return
		}

		if conf.Log.Level != setter.Level() {
			setter.SetLevel(conf.Log.Level)
			logger.InfoContext(ctx, "changed log level", slog.String("level", conf.Log.Level.String()))
		}
	})
	vip.WatchConfig()
}

func printBanner(
	ctx context.Context,
	cmd *cobra.Command,
	conf *recordstore.Config,
	shop *shop_init.ShopContext,
	school *school_init.SchoolContext,
) {
	blue := color.New(color.FgBlue, color.Bold).FprintfFunc()
	yellow := color.New(color.FgYellow).FprintfFunc()

	version, _ := getVersionHashAndTimestamp()
	items, _ := shop.Items(ctx)
	students, _ := school.Students(ctx)

	blue(cmd.OutOrStdout(), "%s %s (%s)\n", appName, version, conf.Environment)
	yellow(cmd.OutOrStdout(), "serving on :%d with %d items and %d students\n", conf.HTTP.Port, items, students)

	if conf.HTTP.StatusEndpointEnabled {
		yellow(cmd.OutOrStdout(), "status on :%d/status\n", conf.HTTP.StatusEndpointPort)
	}
}
