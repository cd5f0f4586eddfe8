package cmd

import (
	"fmt"
	"strconv"

	"abfahrt/pkg/config"
	"abfahrt/pkg/journey"
	"abfahrt/pkg/rmv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage abfahrt configuration",
	Long:  "View or edit your local configuration (home station, home city, spoken answer style).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setHome, _ := cmd.Flags().GetString("set-home")
		if setHome != "" {
			if cfg.APIKey == "" {
				return fmt.Errorf("no RMV API key configured. Set RMV_API_KEY first")
			}

			fmt.Printf("Searching RMV for station: '%s'...\n", setHome)

			// Resolve through the station search so the id is saved alongside
			resolver := journey.NewResolver(rmv.NewClient(cfg.APIKey))
			match, err := resolver.Resolve(setHome)
			if err != nil {
				return fmt.Errorf("could not lookup station: %w", err)
			}

			cfg.HomeStation = match.Name
			cfg.HomeStationID = match.ExtID

			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Home station successfully saved as: %s (ID: %s)\n", match.Name, match.ExtID)
			return nil
		}

		setCity, _ := cmd.Flags().GetString("set-city")
		if setCity != "" {
			cfg.HomeCity = setCity
			cityOnly, _ := cmd.Flags().GetBool("city-only")
			cfg.HomeCityOnly = cityOnly

			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Home city saved as: %s (restrict lookups: %v)\n", setCity, cityOnly)
			return nil
		}

		// If no flags are given, launch the interactive form flow
		return runConfigForm(cfg)
	},
}

func runConfigForm(cfg *config.AppConfig) error {
	offsetStr := strconv.Itoa(cfg.TimeOffsetMinutes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Home station").
				Description("The station all journeys depart from").
				Value(&cfg.HomeStation),
			huh.NewInput().
				Title("Home city").
				Description("Used to disambiguate same-named stations elsewhere").
				Value(&cfg.HomeCity),
			huh.NewConfirm().
				Title("Restrict destinations to the home city?").
				Value(&cfg.HomeCityOnly),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Departure time offset (minutes)").
				Description("Head start for reaching the station; 0 disables it").
				Value(&offsetStr).
				Validate(func(s string) error {
					_, err := strconv.Atoi(s)
					return err
				}),
			huh.NewConfirm().
				Title("Short answers (first train only)?").
				Value(&cfg.ShortInfo),
			huh.NewInput().
				Title("Accent color (ANSI number)").
				Value(&cfg.AccentColor),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if offset, err := strconv.Atoi(offsetStr); err == nil {
		cfg.TimeOffsetMinutes = offset
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Configuration saved to ~/.abfahrt.json\n"))
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-home", "s", "", "Set your home station by name (resolved via RMV)")
	configCmd.Flags().StringP("set-city", "c", "", "Set your home city for station disambiguation")
	configCmd.Flags().Bool("city-only", true, "Append the home city to destination lookups")
}
