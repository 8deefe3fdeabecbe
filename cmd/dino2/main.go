package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/d3d9/dino2"
	"github.com/d3d9/dino2/export"
)

func main() {
	app := &cli.App{
		Name:  "dino2",
		Usage: "inspect and export DINO 2.1 timetable datasets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:    "dataset",
				Aliases: []string{"d"},
				Usage:   "DINO dataset directory",
			},
			&cli.IntSliceFlag{
				Name:  "version",
				Usage: "restrict to the given version ids",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log parse warnings",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "parse a dataset and print entity counts",
				Action: func(ctx *cli.Context) error {
					ds, err := loadDataset(ctx)
					if err != nil {
						return err
					}
					printStats(ds)
					return nil
				},
			},
			{
				Name:      "stops",
				Usage:     "export all stop positions as CSV",
				ArgsUsage: "output.csv",
				Action: func(ctx *cli.Context) error {
					ds, err := loadDataset(ctx)
					if err != nil {
						return err
					}
					return withOutput(ctx, func(w *os.File) error {
						return export.Stops(ds, w)
					})
				},
			},
			{
				Name:      "courses",
				Usage:     "export one stop sequence file per course",
				ArgsUsage: "outputdir",
				Flags: []cli.Flag{
					&cli.IntSliceFlag{
						Name:  "line",
						Usage: "restrict to the given line numbers",
					},
					&cli.BoolFlag{
						Name:  "full-names",
						Usage: "export stop names including the locality",
					},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.Args().Len() == 0 {
						return fmt.Errorf("an output directory was not provided")
					}
					ds, err := loadDataset(ctx)
					if err != nil {
						return err
					}
					return export.Courses(ds, ctx.Args().First(), export.CoursesOptions{
						Lines:    ctx.IntSlice("line"),
						FullName: ctx.Bool("full-names"),
					})
				},
			},
			{
				Name:      "trips",
				Usage:     "export all trips valid on a date as CSV, with geometry",
				ArgsUsage: "output.csv",
				Flags: []cli.Flag{
					&cli.TimestampFlag{
						Name:     "date",
						Layout:   "2006-01-02",
						Required: true,
						Usage:    "date to export trips for",
					},
					&cli.IntSliceFlag{
						Name:  "line",
						Usage: "restrict to the given line numbers",
					},
				},
				Action: func(ctx *cli.Context) error {
					ds, err := loadDataset(ctx)
					if err != nil {
						return err
					}
					resolver := dino2.NewResolver(ds)
					links := dino2.NewLinkIndex(ds)
					return withOutput(ctx, func(w *os.File) error {
						return export.TripsForDate(ds, resolver, links, *ctx.Timestamp("date"), ctx.IntSlice("line"), w)
					})
				},
			},
			{
				Name:      "linestats",
				Usage:     "export year-kilometers per version, line, and course",
				ArgsUsage: "output.csv",
				Action: func(ctx *cli.Context) error {
					ds, err := loadDataset(ctx)
					if err != nil {
						return err
					}
					resolver := dino2.NewResolver(ds)
					return withOutput(ctx, func(w *os.File) error {
						return export.LineStats(ds, resolver, w)
					})
				},
			},
			{
				Name:      "departures",
				Usage:     "export the departure board of a stop",
				ArgsUsage: "output.csv",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "stop",
						Required: true,
						Usage:    "stop id",
					},
					&cli.TimestampFlag{
						Name:     "date",
						Layout:   "2006-01-02",
						Required: true,
						Usage:    "first date of the board",
					},
					&cli.IntFlag{
						Name:  "days",
						Value: 1,
						Usage: "number of consecutive dates to cover",
					},
				},
				Action: func(ctx *cli.Context) error {
					ds, err := loadDataset(ctx)
					if err != nil {
						return err
					}
					var stop *dino2.Stop
					for i := range ds.Stops {
						if ds.Stops[i].ID == ctx.Int("stop") {
							stop = &ds.Stops[i]
							break
						}
					}
					if stop == nil {
						return fmt.Errorf("stop %d not found in dataset", ctx.Int("stop"))
					}
					resolver := dino2.NewResolver(ds)
					return withOutput(ctx, func(w *os.File) error {
						return export.Departures(ds, resolver, stop, *ctx.Timestamp("date"), ctx.Int("days"), w)
					})
				},
			},
			{
				Name:  "calendar",
				Usage: "print the day calendars of all service restrictions",
				Action: func(ctx *cli.Context) error {
					ds, err := loadDataset(ctx)
					if err != nil {
						return err
					}
					rc := color.New(color.FgCyan)
					for i := range ds.Restrictions {
						r := &ds.Restrictions[i]
						cal, err := r.TextCalendar()
						if err != nil {
							return fmt.Errorf("restriction %q: %w", r.ID, err)
						}
						fmt.Printf("%s (version %d): %s\n%s\n\n", rc.Sprint(r.ID), r.VersionID, r.Text, cal)
					}
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// loadDataset merges config file and flags and parses the dataset.
func loadDataset(ctx *cli.Context) (*dino2.Dataset, error) {
	config, err := loadConfig(ctx.String("config"))
	if err != nil {
		return nil, err
	}
	if ctx.IsSet("dataset") {
		config.Dataset = ctx.String("dataset")
	}
	if ctx.IsSet("version") {
		config.Versions = ctx.IntSlice("version")
	}
	if ctx.Bool("verbose") {
		config.LogLevel = "info"
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	start := time.Now()
	ds, err := dino2.ParseDataset(os.DirFS(config.Dataset), dino2.ParseOptions{
		VersionIDs: config.Versions,
		Logger:     &logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	logger.Info().
		Dur("elapsed", time.Since(start)).
		Int("warnings", len(ds.Warnings)).
		Msg("dataset parsed")
	return ds, nil
}

// withOutput runs f with the file named by the first argument, or stdout.
func withOutput(ctx *cli.Context, f func(w *os.File) error) error {
	if ctx.Args().Len() == 0 {
		return f(os.Stdout)
	}
	out, err := os.Create(ctx.Args().First())
	if err != nil {
		return err
	}
	if err := f(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printStats(ds *dino2.Dataset) {
	nc := color.New(color.FgCyan)
	rows := []struct {
		name  string
		count int
	}{
		{"versions", len(ds.Versions)},
		{"day types", len(ds.DayTypes)},
		{"day attributes", len(ds.DayAttributes)},
		{"calendar days", len(ds.CalendarDays)},
		{"restrictions", len(ds.Restrictions)},
		{"fare zones", len(ds.FareZones)},
		{"stops", len(ds.Stops)},
		{"stop areas", len(ds.StopAreas)},
		{"stop points", len(ds.StopPoints)},
		{"links", len(ds.Links)},
		{"branches", len(ds.Branches)},
		{"operators", len(ds.Operators)},
		{"vehicle types", len(ds.VehicleTypes)},
		{"destination texts", len(ds.DestinationTexts)},
		{"courses", len(ds.Courses)},
		{"notices", len(ds.Notices)},
		{"trips", len(ds.Trips)},
		{"stop constraints", len(ds.Constraints)},
		{"destination text changes", len(ds.VDTChanges)},
		{"warnings", len(ds.Warnings)},
	}
	for _, row := range rows {
		fmt.Printf("%-26s %s\n", row.name, nc.Sprint(row.count))
	}
}
