package commands

import (
	"fmt"
	"strings"

	"github.com/klabast/wb-services/hcal/internal/app"
	"github.com/klabast/wb-services/hcal/internal/holidays"
	"github.com/spf13/cobra"
)

// newHolidaysCommand builds the holidays subcommand listing the observed
// holidays of one year
func newHolidaysCommand(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "holidays [year]",
		Short: "List the holidays of a year",
		Long: `List the holidays of a year, including citizens' holidays and
substitute holidays, in one of the formats: ` + strings.Join(app.Formats, ", ") + `.`,
		Example: `  hcal holidays --country japan
  hcal holidays 2020 --format ics > holidays-2020.ics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := c.now().Year()
			if len(args) == 1 {
				y, err := parseYear(args[0])
				if err != nil {
					return err
				}
				year = y
			}

			if c.cfg.Country == "" {
				return fmt.Errorf("no country configured; set country in %s or use --country", app.ConfigPath())
			}
			if _, ok := holidays.Lookup(c.cfg.Country); !ok {
				c.log.Warn().Str("country", c.cfg.Country).Msg("no holiday rules for country")
			}

			hs := holidays.Observed(c.cfg.Country, year)
			c.log.Debug().Int("year", year).Int("holidays", len(hs)).Msg("exporting holidays")

			return app.Export(c.stdout, format, c.cfg.Country, year, hs, c.now())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", app.FormatText, "output format: "+strings.Join(app.Formats, ", "))

	return cmd
}
