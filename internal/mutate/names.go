package mutate

import (
	"fmt"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// Grounded on original_source/src/mutator/names.rs: first/last/middle
// name mutators draw from the active locale's catalog, picking the
// male/female list pair at random when a locale splits by gender
// (ru) and falling back to the flat list otherwise (en).

type firstNameMutation struct{}

func (firstNameMutation) Apply(ctx *Context) (string, error) {
	return pickGendered(ctx, ctx.Locale.FirstNames, ctx.Locale.FirstNamesMale, ctx.Locale.FirstNamesFemale), nil
}

type lastNameMutation struct{}

func (lastNameMutation) Apply(ctx *Context) (string, error) {
	return pickGendered(ctx, ctx.Locale.LastNames, ctx.Locale.LastNamesMale, ctx.Locale.LastNamesFemale), nil
}

// fullNameMutation renders "<last> <first> <patronymic>" for locales
// that carry a patronymic table (ru) and "<first> <last>" otherwise.
// names.rs's own full_name puts last before first for every locale;
// spec.md §4.6 says en is "<first> <last>" instead, and that explicit
// wording wins over the original's ordering.
type fullNameMutation struct{}

func (fullNameMutation) Apply(ctx *Context) (string, error) {
	female := ctx.Rng.Intn(2) == 0
	first := pickGenderedAs(ctx, ctx.Locale.FirstNames, ctx.Locale.FirstNamesMale, ctx.Locale.FirstNamesFemale, female)
	last := pickGenderedAs(ctx, ctx.Locale.LastNames, ctx.Locale.LastNamesMale, ctx.Locale.LastNamesFemale, female)
	if len(ctx.Locale.Patronymics) > 0 {
		patronymic := ctx.Locale.Patronymics[ctx.Rng.Intn(len(ctx.Locale.Patronymics))]
		return fmt.Sprintf("%s %s %s", last, first, patronymic), nil
	}
	return fmt.Sprintf("%s %s", first, last), nil
}

// middleNameMutation only exists for locales with a patronymic table
// (ru); names.rs's middle_name hard-fails for any other locale rather
// than falling back to a different name pool.
type middleNameMutation struct{}

func (middleNameMutation) Apply(ctx *Context) (string, error) {
	if len(ctx.Locale.Patronymics) == 0 {
		return "", anonerr.New(anonerr.KindUnsupportedLocale, "middle_name", fmt.Errorf("middle_name is only available for the ru locale"))
	}
	return ctx.Locale.Patronymics[ctx.Rng.Intn(len(ctx.Locale.Patronymics))], nil
}

// pickGendered draws from flat if non-empty, else from a random
// choice of male/female.
func pickGendered(ctx *Context, flat, male, female []string) string {
	return pickGenderedAs(ctx, flat, male, female, ctx.Rng.Intn(2) == 0)
}

func pickGenderedAs(ctx *Context, flat, male, female []string, wantFemale bool) string {
	if len(flat) > 0 {
		return flat[ctx.Rng.Intn(len(flat))]
	}
	list := male
	if wantFemale && len(female) > 0 {
		list = female
	}
	if len(list) == 0 {
		return ""
	}
	return list[ctx.Rng.Intn(len(list))]
}
