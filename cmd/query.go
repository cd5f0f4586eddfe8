package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"abfahrt/pkg/config"
	"abfahrt/pkg/exporter"
	"abfahrt/pkg/intent"
	"abfahrt/pkg/journey"
	"abfahrt/pkg/rmv"
	"abfahrt/pkg/speech"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var queryCmd = &cobra.Command{
	Use:   "query <destination>",
	Short: "Find the next connection from home to a destination",
	Long: `Resolves the destination against the RMV station search (applying the
home-city policy from your configuration), queries the next connection from
your home station and prints it along with the spoken answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		destination := strings.TrimSpace(args[0])

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("no RMV API key configured. Set RMV_API_KEY or run 'abfahrt config'")
		}
		if cfg.HomeStation == "" {
			return fmt.Errorf("no home station configured. Run 'abfahrt config --set-home \"Your Station\"' first")
		}

		timeFlag, _ := cmd.Flags().GetString("time")
		shortInfo, _ := cmd.Flags().GetBool("short")
		exportICS, _ := cmd.Flags().GetBool("export")

		var when *time.Time
		if timeFlag != "" {
			when, err = intent.ParseDepTime(timeFlag, time.Now())
			if err != nil {
				return fmt.Errorf("invalid --time value: %w", err)
			}
		}

		orch := journey.NewOrchestrator(
			rmv.NewClient(cfg.APIKey),
			journey.Home{StationName: cfg.HomeStation, StationID: cfg.HomeStationID, CityName: cfg.HomeCity, CityOnly: cfg.HomeCityOnly},
			time.Duration(cfg.TimeOffsetMinutes)*time.Minute,
		)

		var result *journey.Result
		var lookupErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Searching next connection to %s...", destination)).
			Action(func() {
				result, lookupErr = orch.FindNextDeparture(destination, when)
			}).
			Run()

		if lookupErr != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("❌ %v", lookupErr)))
			fmt.Printf("\n🗣  %s\n", speech.RenderError(lookupErr))
			return nil
		}

		title := cases.Title(language.German)
		fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🚆 %s -> %s ---", title.String(cfg.HomeStation), result.Destination)))

		for i, leg := range result.Legs {
			name := leg.Train
			if leg.Walk {
				name = fmt.Sprintf("%d m Fußweg 🚶", leg.DistanceM)
			} else if leg.Category != "" {
				name = fmt.Sprintf("%s %s", leg.Category, leg.Train)
			}

			platform := ""
			if leg.Platform != "" {
				platform = fmt.Sprintf(" (Gleis %s)", leg.Platform)
			}

			fmt.Printf("%d. [%s] %s -> %s%s (Ankunft: %s)\n",
				i+1,
				leg.Departure.Format("15:04"),
				name,
				leg.Destination,
				platform,
				leg.Arrival.Format("15:04"))
		}

		fmt.Printf("\n🗣  %s\n", speech.Render(result.Legs, shortInfo))

		if exportICS {
			filename := fmt.Sprintf("journey_%s.ics", sanitizeFilename(destination))
			f, err := os.Create(filename)
			if err != nil {
				return fmt.Errorf("could not create ics file: %w", err)
			}
			defer f.Close()

			if err := exporter.GenerateICS(result, f); err != nil {
				return err
			}
			fmt.Printf("\n✨ Successfully exported journey to: %s\n", filename)
		}

		return nil
	},
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringP("time", "t", "", "Departure time, e.g. 16:33 (default: now)")
	queryCmd.Flags().BoolP("short", "s", false, "Only announce the first train of the connection")
	queryCmd.Flags().BoolP("export", "e", false, "Export the found journey to an .ics calendar file")
}
