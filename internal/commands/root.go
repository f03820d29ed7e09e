package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/klabast/wb-services/hcal/internal/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// cli carries state shared by the root command and its subcommands
type cli struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	// persistent flags
	country  string
	logLevel string

	// root flags
	one         bool
	three       bool
	year        bool
	julian      bool
	noHighlight bool
	before      int
	after       int
	color       string

	log zerolog.Logger
	cfg app.Config
}

// Execute runs hcal with the process arguments and exits non-zero on error
func Execute() {
	cmd := NewRootCommand(os.Stdout, os.Stderr, time.Now)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hcal: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the hcal command tree writing to stdout and stderr.
// now supplies the current date.
func NewRootCommand(stdout, stderr io.Writer, now func() time.Time) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr, now: now}

	root := &cobra.Command{
		Use:   "hcal [flags] [[month] year]",
		Short: "Show calendar on terminal, highlighting today, weekends and holidays",
		Long: `hcal prints a calendar like cal(1) and highlights today, weekends and
national holidays. Settings are read from ~/.hcalrc (or $HCALRC):

  country=Japan
  holiday_color=red
  first_weekday=sunday`,
		Args:              cobra.MaximumNArgs(2),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE:              c.runCalendar,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.country, "country", "", "country for holidays (overrides the config file)")
	pf.StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	f := root.Flags()
	f.BoolVarP(&c.one, "one", "1", false, "show only the current month (default)")
	f.BoolVarP(&c.three, "three", "3", false, "show the previous, current and next month")
	f.IntVarP(&c.after, "after", "A", 0, "show `n` months after the current month")
	f.IntVarP(&c.before, "before", "B", 0, "show `n` months before the current month")
	f.BoolVarP(&c.year, "year", "y", false, "show the whole year")
	f.BoolVarP(&c.julian, "julian", "j", false, "number days by their ordinal in the year")
	f.BoolVarP(&c.noHighlight, "no-highlight", "h", false, "do not highlight today")
	f.StringVar(&c.color, "color", app.ColorAlways, "when to use colors: auto, always, never")
	// -h is taken by --no-highlight
	f.Bool("help", false, "help for hcal")

	root.AddCommand(newHolidaysCommand(c))

	return root
}

// setup creates the logger and loads the configuration
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	c.log = app.NewLogger(app.LogConfig{Level: c.logLevel, Pretty: true, Out: c.stderr})

	path := app.ConfigPath()
	cfg, err := app.LoadConfig(path, c.log)
	if err != nil {
		c.log.Warn().Err(err).Msg("using default configuration")
	}
	if cmd.Flags().Changed("country") {
		cfg.Country = c.country
	}
	c.cfg = cfg

	c.log.Debug().
		Str("config", path).
		Str("country", cfg.Country).
		Str("holiday_color", cfg.HolidayColor).
		Stringer("first_weekday", cfg.FirstWeekday).
		Msg("configuration loaded")
	return nil
}

// runCalendar renders the requested window of months
func (c *cli) runCalendar(cmd *cobra.Command, args []string) error {
	today := c.now()
	year, month := today.Year(), today.Month()

	yearOnly := false
	switch len(args) {
	case 1:
		y, err := parseYear(args[0])
		if err != nil {
			return err
		}
		year, yearOnly = y, true
	case 2:
		m, err := parseMonth(args[0])
		if err != nil {
			return err
		}
		y, err := parseYear(args[1])
		if err != nil {
			return err
		}
		year, month = y, m
	}

	window, err := c.window(cmd, yearOnly)
	if err != nil {
		return err
	}

	palette, err := c.palette()
	if err != nil {
		return err
	}

	opts := app.Options{
		Country: c.cfg.Country,
		Render: app.RenderOptions{
			Julian:       c.julian,
			FirstWeekday: c.cfg.FirstWeekday,
			Palette:      palette,
		},
	}
	if !c.noHighlight {
		opts.Today = today
	}

	composer := app.NewComposer(opts, c.log)
	_, err = fmt.Fprint(c.stdout, composer.Compose(year, month, window))
	return err
}

// window validates the mode flags and turns them into a window
func (c *cli) window(cmd *cobra.Command, yearOnly bool) (app.Window, error) {
	flags := cmd.Flags()

	if c.before < 0 || c.after < 0 {
		return app.Window{}, fmt.Errorf("month counts must not be negative")
	}
	if c.year && c.three {
		return app.Window{}, fmt.Errorf("options -3 and -y are mutually exclusive")
	}

	// A bare year means the whole year, which only -y may extend
	if yearOnly && !c.year {
		switch {
		case c.three:
			return app.Window{}, fmt.Errorf("option -3 not valid with year")
		case flags.Changed("after"):
			return app.Window{}, fmt.Errorf("option -A not valid with year")
		case flags.Changed("before"):
			return app.Window{}, fmt.Errorf("option -B not valid with year")
		}
	}

	return app.Window{
		ThreeMonths: c.three && !c.one,
		Before:      c.before,
		After:       c.after,
		Year:        c.year || yearOnly,
	}, nil
}

// palette resolves the holiday color and the --color mode
func (c *cli) palette() (app.Palette, error) {
	switch c.color {
	case app.ColorAlways:
	case app.ColorNever:
		return app.Palette{}, nil
	case app.ColorAuto:
		f, ok := c.stdout.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return app.Palette{}, nil
		}
	default:
		return app.Palette{}, fmt.Errorf("invalid --color %q (want auto, always or never)", c.color)
	}
	return app.NewPalette(c.cfg.HolidayColor), nil
}

// parseYear accepts years 1 through 9999
func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil || y < 1 || y > 9999 {
		return 0, fmt.Errorf("year %q not in range 1..9999", s)
	}
	return y, nil
}

// parseMonth accepts months 1 through 12
func parseMonth(s string) (time.Month, error) {
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("month %q not in range 1..12", s)
	}
	return time.Month(m), nil
}
