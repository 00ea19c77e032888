package mutate

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// ipv4Mutation and ipv6Mutation lean on gofakeit for well-formed
// address generation; original_source/src/mutator/network.rs rolls
// its own octet/segment loops, which gofakeit's IPv4Address/
// IPv6Address already does correctly.
type ipv4Mutation struct{}

func (ipv4Mutation) Apply(ctx *Context) (string, error) {
	return gofakeit.IPv4Address(), nil
}

type ipv6Mutation struct{}

func (ipv6Mutation) Apply(ctx *Context) (string, error) {
	return gofakeit.IPv6Address(), nil
}

// uriMutation composes a URI from the locale's scheme/domain pools,
// matching original_source/src/mutator/network.rs's Uri, which draws
// its domain from the same locale tables as email addresses rather
// than from an unbounded random string.
type uriMutation struct{}

func (uriMutation) Apply(ctx *Context) (string, error) {
	scheme := ctx.Locale.URISchemes[ctx.Rng.Intn(len(ctx.Locale.URISchemes))]
	domain := ctx.Locale.URIDomains[ctx.Rng.Intn(len(ctx.Locale.URIDomains))]
	path := ctx.Rng.Intn(9000) + 100
	return fmt.Sprintf("%s://%s/%d", scheme, domain, path), nil
}
