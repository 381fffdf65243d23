// Command julianday converts between calendar dates and Julian Days and
// prints the derived day of the week, day of the year and intervals.
//
// Dates are given as numeric year, month and day arguments. Years use
// astronomical numbering and the day may be fractional.
//
// Usage:
//
//	julianday [-v] jd <year> <month> <day>
//	julianday [-v] date <julian-day>
//	julianday [-v] weekday <year> <month> <day>
//	julianday [-v] yearday <year> <month> <day>
//	julianday [-v] between <year> <month> <day> <year> <month> <day>
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	julianday "github.com/rabitt1ove/julian-day"
	"github.com/shopspring/decimal"
)

type command struct {
	name  string
	args  string
	nargs int
	run   func(ctx context.Context, w io.Writer, args []string) error
}

var commands = []command{
	{"jd", "<year> <month> <day>", 3, toJulianDay},
	{"date", "<julian-day>", 1, toCalendarDate},
	{"weekday", "<year> <month> <day>", 3, weekday},
	{"yearday", "<year> <month> <day>", 3, yearday},
	{"between", "<year> <month> <day> <year> <month> <day>", 6, between},
}

func main() {
	verbose := flag.Bool("v", false, "log intermediate values at debug level")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ctx := ctxlog.NewJSONLogger(context.Background(), os.Stderr, &slog.HandlerOptions{Level: level})

	if err := run(ctx, os.Stdout, flag.Args()); err != nil {
		cmdutil.Exit("julianday: %v", err)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage of julianday:\n")
	for _, c := range commands {
		fmt.Fprintf(out, "  julianday [-v] %s %s\n", c.name, c.args)
	}
	flag.PrintDefaults()
}

// run dispatches args[0] to its command.
func run(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command: available commands are: %v", strings.Join(commandNames(), ", "))
	}
	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if got := len(args) - 1; got != c.nargs {
			return fmt.Errorf("%s: expected %d arguments (%s), got %d", c.name, c.nargs, c.args, got)
		}
		ctx = ctxlog.WithAttributes(ctx, "command", c.name)
		return c.run(ctx, w, args[1:])
	}
	return fmt.Errorf("unknown command %q: available commands are: %v", args[0], strings.Join(commandNames(), ", "))
}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}
	return names
}

// parseDate parses numeric year, month and day arguments. Only the month
// and the sign of the day are checked; the date itself must be valid.
func parseDate(args []string) (julianday.CalendarDate, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return julianday.CalendarDate{}, fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return julianday.CalendarDate{}, fmt.Errorf("invalid month %q: %w", args[1], err)
	}
	if month < 1 || month > 12 {
		return julianday.CalendarDate{}, fmt.Errorf("invalid month %d: must be 1-12", month)
	}
	day, err := decimal.NewFromString(args[2])
	if err != nil {
		return julianday.CalendarDate{}, fmt.Errorf("invalid day %q: %w", args[2], err)
	}
	if day.IsNegative() {
		return julianday.CalendarDate{}, fmt.Errorf("invalid day %v: must not be negative", day)
	}
	return julianday.NewCalendarDate(year, time.Month(month), day), nil
}

func toJulianDay(ctx context.Context, w io.Writer, args []string) error {
	date, err := parseDate(args)
	if err != nil {
		return err
	}
	jd := date.JulianDay()
	ctxlog.Logger(ctx).Debug("converted", "date", date.String(), "calendar", date.Calendar().String(), "julian_day", jd.String())
	_, err = fmt.Fprintln(w, jd)
	return err
}

func toCalendarDate(ctx context.Context, w io.Writer, args []string) error {
	day, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid julian day %q: %w", args[0], err)
	}
	date, err := julianday.NewJulianDay(day).CalendarDate()
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("converted", "julian_day", day.String(), "date", date.String())
	_, err = fmt.Fprintf(w, "%v %v\n", date, date.Calendar())
	return err
}

func weekday(ctx context.Context, w io.Writer, args []string) error {
	date, err := parseDate(args)
	if err != nil {
		return err
	}
	wd, err := date.DayOfTheWeekContext(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, wd)
	return err
}

func yearday(_ context.Context, w io.Writer, args []string) error {
	date, err := parseDate(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, date.DayOfTheYear())
	return err
}

func between(_ context.Context, w io.Writer, args []string) error {
	lhs, err := parseDate(args[:3])
	if err != nil {
		return err
	}
	rhs, err := parseDate(args[3:])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "difference: %v\ndays between: %v\n",
		julianday.Difference(lhs, rhs), julianday.DaysBetween(lhs, rhs))
	return err
}
