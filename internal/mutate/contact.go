package mutate

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// emailMutation draws a local part from the locale's name pool and a
// domain from its email domain pool, matching
// original_source/src/mutator/contact.rs's locale-bound domain choice
// rather than a fully random address.
type emailMutation struct{}

func (emailMutation) Apply(ctx *Context) (string, error) {
	local := strings.ToLower(pickGendered(ctx, ctx.Locale.FirstNames, ctx.Locale.FirstNamesMale, ctx.Locale.FirstNamesFemale))
	local = strings.ReplaceAll(local, " ", ".")
	domain := ctx.Locale.EmailDomains[ctx.Rng.Intn(len(ctx.Locale.EmailDomains))]
	return fmt.Sprintf("%s.%d@%s", local, ctx.Rng.Intn(10000), domain), nil
}

// phoneNumberMutation expands a mask kwarg into a phone number: X and
// # become random digits, every other character passes through
// literal. Grounded on original_source/src/mutator/contact.rs's
// phone_number.
type phoneNumberMutation struct {
	mask string
}

func newPhoneNumberMutation(kwargs map[string]any) (Mutation, error) {
	mask, err := kwargString(kwargs, "mask", true, "")
	if err != nil {
		return nil, err
	}
	return phoneNumberMutation{mask: mask}, nil
}

func (m phoneNumberMutation) Apply(ctx *Context) (string, error) {
	var out strings.Builder
	out.Grow(len(m.mask))
	for _, b := range []byte(m.mask) {
		if b == 'X' || b == '#' {
			out.WriteByte("0123456789"[ctx.Rng.Intn(10)])
		} else {
			out.WriteByte(b)
		}
	}
	return out.String(), nil
}

// deterministicPhoneNumberMutation preserves the column's current
// value except for its last obfuscated_numbers_count digits (default
// 4), which are replaced with digits derived from
// HMAC-SHA256(SECRET_KEY, current_value||nonce) so the same input
// always anonymises to the same output without a relation entry.
// Grounded on original_source/src/mutator/contact.rs's
// deterministic_phone.
type deterministicPhoneNumberMutation struct {
	count int
}

func newDeterministicPhoneNumberMutation(kwargs map[string]any) (Mutation, error) {
	countF, err := kwargFloat(kwargs, "obfuscated_numbers_count", false, 4)
	if err != nil {
		return nil, err
	}
	return deterministicPhoneNumberMutation{count: int(countF)}, nil
}

func (m deterministicPhoneNumberMutation) Apply(ctx *Context) (string, error) {
	if ctx.Secrets.Key == "" {
		return "", errMissingSecret
	}

	digitCount := 0
	for _, r := range ctx.CurrentValue {
		if r >= '0' && r <= '9' {
			digitCount++
		}
	}
	if digitCount < m.count {
		return "", anonerr.New(anonerr.KindRuleParse, "deterministic_phone_number", fmt.Errorf("not enough digits to obfuscate"))
	}

	mac := hmac.New(sha256.New, []byte(ctx.Secrets.Key))
	mac.Write([]byte(ctx.CurrentValue))
	mac.Write([]byte(ctx.Secrets.Nonce))
	sum := mac.Sum(nil)

	newDigits := make([]byte, m.count)
	for i := 0; i < m.count && i < len(sum); i++ {
		newDigits[i] = "0123456789"[sum[i]%10]
	}

	result := []rune(ctx.CurrentValue)
	replaced := 0
	for i := len(result) - 1; i >= 0 && replaced < m.count; i-- {
		if result[i] >= '0' && result[i] <= '9' {
			digitIdx := m.count - 1 - replaced
			if digitIdx < len(newDigits) {
				result[i] = rune(newDigits[digitIdx])
			}
			replaced++
		}
	}
	return string(result), nil
}

// addressMutation composes a locale-flavoured street address from the
// catalog, mirroring original_source/src/mutator/contact.rs's Address.
type addressMutation struct{}

func (addressMutation) Apply(ctx *Context) (string, error) {
	num := ctx.Rng.Intn(9999) + 1
	street := ctx.Locale.StreetNames[ctx.Rng.Intn(len(ctx.Locale.StreetNames))]
	suffix := ctx.Locale.StreetSuffixes[ctx.Rng.Intn(len(ctx.Locale.StreetSuffixes))]
	city := ctx.Locale.Cities[ctx.Rng.Intn(len(ctx.Locale.Cities))]
	region := ctx.Locale.Regions[ctx.Rng.Intn(len(ctx.Locale.Regions))]
	return fmt.Sprintf("%d %s %s, %s, %s", num, street, suffix, city, region), nil
}
