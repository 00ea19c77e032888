package mutate

// stringByMaskMutation replaces characters in the current value
// according to a mask pattern, where each mask character is either a
// literal to keep or a marker drawn from a *pool* of replacement
// characters declared via the char/digit kwargs.
//
// original_source/src/mutator/mask.rs treats 'X'/'9' as fixed
// placeholder symbols replaced from a hardcoded A-Z/0-9 alphabet;
// spec.md instead documents char/digit as caller-supplied pools of
// candidate replacement characters. The two disagree outright rather
// than one merely being silent, so this follows spec.md's literal
// wording.
type stringByMaskMutation struct {
	mask   string
	chars  []rune
	digits []rune
}

const (
	defaultMaskChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultMaskDigits = "0123456789"
)

func newStringByMaskMutation(kwargs map[string]any) (Mutation, error) {
	mask, err := kwargString(kwargs, "mask", true, "")
	if err != nil {
		return nil, err
	}
	chars, err := kwargString(kwargs, "char", false, defaultMaskChars)
	if err != nil {
		return nil, err
	}
	digits, err := kwargString(kwargs, "digit", false, defaultMaskDigits)
	if err != nil {
		return nil, err
	}
	return stringByMaskMutation{mask: mask, chars: []rune(chars), digits: []rune(digits)}, nil
}

func (m stringByMaskMutation) Apply(ctx *Context) (string, error) {
	out := make([]rune, 0, len(m.mask))
	for _, r := range m.mask {
		switch r {
		case 'X':
			if len(m.chars) == 0 {
				out = append(out, r)
				continue
			}
			out = append(out, m.chars[ctx.Rng.Intn(len(m.chars))])
		case '9':
			if len(m.digits) == 0 {
				out = append(out, r)
				continue
			}
			out = append(out, m.digits[ctx.Rng.Intn(len(m.digits))])
		default:
			out = append(out, r)
		}
	}
	return string(out), nil
}
