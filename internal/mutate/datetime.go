package mutate

import (
	"strings"
	"time"
)

// dateMutation emits a random calendar date within [start, end] years,
// rendered with a strftime-style date_format. Grounded on
// original_source/src/mutator/datetime.rs, which bounds its random
// day-of-month draw by the target month's actual length, leap years
// included; daysIn below reproduces that bound with time.Date's
// day-zero-of-next-month trick.
type dateMutation struct {
	startYear, endYear int
	layout             string
}

func newDateMutation(kwargs map[string]any) (Mutation, error) {
	currentYear := time.Now().Year()
	start, err := kwargFloat(kwargs, "start", false, float64(currentYear-1))
	if err != nil {
		return nil, err
	}
	end, err := kwargFloat(kwargs, "end", false, float64(currentYear))
	if err != nil {
		return nil, err
	}
	format, err := kwargString(kwargs, "date_format", false, "%Y-%m-%d")
	if err != nil {
		return nil, err
	}
	return dateMutation{startYear: int(start), endYear: int(end), layout: strftimeToGoLayout(format)}, nil
}

func (m dateMutation) Apply(ctx *Context) (string, error) {
	span := m.endYear - m.startYear
	if span < 0 {
		span = 0
	}
	year := m.startYear + ctx.Rng.Intn(span+1)
	month := ctx.Rng.Intn(12) + 1
	day := ctx.Rng.Intn(daysIn(year, month)) + 1
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Format(m.layout), nil
}

func daysIn(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}

// strftimeReplacer translates the strftime directives date_format
// accepts into Go's reference-time layout; unrecognised directives
// pass through literally.
var strftimeReplacer = strings.NewReplacer(
	"%Y", "2006",
	"%y", "06",
	"%m", "01",
	"%d", "02",
	"%H", "15",
	"%M", "04",
	"%S", "05",
	"%B", "January",
	"%b", "Jan",
	"%A", "Monday",
	"%a", "Mon",
)

func strftimeToGoLayout(format string) string {
	return strftimeReplacer.Replace(format)
}
