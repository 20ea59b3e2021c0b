package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pixel-weather/internal/bootstrap"
	"pixel-weather/internal/config"
	"pixel-weather/internal/geolocation"
	"pixel-weather/internal/lookup"
	"pixel-weather/internal/types"

	"github.com/spf13/cobra"
)

// session is one command invocation's wiring.
type session struct {
	controller  *lookup.Controller
	services    *bootstrap.Services
	defaultCity string
}

func (s *session) Close() error {
	return s.services.Close()
}

type globalFlags struct {
	logLevel string
	days     int
}

func newSession(ctx context.Context, flags *globalFlags, locator geolocation.Locator) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.days > 0 {
		cfg.App.ForecastDays = flags.days
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	services, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	controller := lookup.NewController(
		services.Lookup,
		services.Preferences,
		services.Cities,
		locator,
		lookup.ControllerConfig{
			DefaultCity:  cfg.App.DefaultCity,
			ForecastDays: cfg.App.ForecastDays,
		},
		logger,
	)
	controller.Restore(ctx)

	return &session{
		controller:  controller,
		services:    services,
		defaultCity: cfg.App.DefaultCity,
	}, nil
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "weather",
		Short:         "Current weather and forecasts from Open-Meteo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().IntVar(&flags.days, "days", 0, "Forecast days (1-16)")

	cmd.AddCommand(
		nowCmd(flags),
		hereCmd(flags),
		unitsCmd(flags),
		themeCmd(flags),
		citiesCmd(flags),
	)

	return cmd
}

func nowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "now [city]",
		Short: "Show weather for a city, or the default city",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := newSession(ctx, flags, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			city := strings.TrimSpace(strings.Join(args, " "))
			if city == "" {
				city = s.defaultCity
			}

			return showLookup(cmd, s.controller.Search(ctx, city))
		},
	}
}

func hereCmd(flags *globalFlags) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "here",
		Short: "Show weather for a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			var locator geolocation.Locator = geolocation.DeniedLocator{}
			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
				locator = geolocation.NewStaticLocator(lat, lon)
			}

			ctx := cmd.Context()
			s, err := newSession(ctx, flags, locator)
			if err != nil {
				return err
			}
			defer s.Close()

			return showLookup(cmd, s.controller.Locate(ctx))
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in decimal degrees")

	return cmd
}

func unitsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "units <metric|imperial>",
		Short:     "Set the unit system",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(types.Metric), string(types.Imperial)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := newSession(ctx, flags, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			state, err := s.controller.ChangeUnits(ctx, types.UnitSystem(strings.ToLower(args[0])))
			if err != nil {
				return err
			}
			renderPreferences(cmd.OutOrStdout(), state.Preferences)
			return nil
		},
	}
}

func themeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Toggle dark mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := newSession(ctx, flags, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			state, err := s.controller.ToggleTheme(ctx)
			if err != nil {
				return err
			}
			renderPreferences(cmd.OutOrStdout(), state.Preferences)
			return nil
		},
	}
}

func citiesCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "Manage saved cities",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved cities",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := newSession(cmd.Context(), flags, nil)
				if err != nil {
					return err
				}
				defer s.Close()

				renderCities(cmd.OutOrStdout(), s.controller.State().SavedCities)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <city>",
			Short: "Save a city",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				s, err := newSession(ctx, flags, nil)
				if err != nil {
					return err
				}
				defer s.Close()

				state, err := s.controller.SaveCity(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				renderCities(cmd.OutOrStdout(), state.SavedCities)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <city>",
			Short: "Remove a saved city",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				s, err := newSession(ctx, flags, nil)
				if err != nil {
					return err
				}
				defer s.Close()

				state, err := s.controller.RemoveCity(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				renderCities(cmd.OutOrStdout(), state.SavedCities)
				return nil
			},
		},
	)

	return cmd
}

// showLookup prints a lookup outcome; a failed lookup becomes the command error.
func showLookup(cmd *cobra.Command, state lookup.State) error {
	if state.Error != "" {
		return errors.New(state.Error)
	}
	renderResult(cmd.OutOrStdout(), state.Result)
	return nil
}
