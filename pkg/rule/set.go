package rule

import "log/slog"

// EnabledPredicate reports whether a code is enabled. Predicates returned by
// this package are pure and referentially stable for a given token pair, so
// callers may cache them and share them across goroutines.
type EnabledPredicate func(Code) bool

// Resolver prunes select/ignore token lists against a catalog and resolves
// them into [EnabledPredicate] values.
type Resolver struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewResolver creates a [Resolver] over the given catalog. If the catalog is
// nil or empty, unknown-token pruning is disabled and tokens are taken at
// face value.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger used for unknown-token warnings.
func (r *Resolver) WithLogger(logger *slog.Logger) *Resolver {
	r.logger = logger

	return r
}

// Prune returns the tokens recognized by the catalog. Unrecognized tokens
// are logged as warnings and dropped, so they match no code; rule catalogs
// evolve, and an unknown token must not invalidate the whole configuration.
func (r *Resolver) Prune(origin string, tokens []string) []string {
	if r.catalog == nil || r.catalog.Len() == 0 {
		return tokens
	}

	known := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !r.catalog.Recognizes(token) {
			r.logger.Warn("unknown rule token, ignoring",
				slog.String("token", token),
				slog.String("list", origin),
			)

			continue
		}

		known = append(known, token)
	}

	return known
}

// Resolve computes the enablement predicate for a select/ignore token pair.
//
// A code is a candidate only if some select token contains it; the default is
// deny. Among all select and ignore tokens containing the code, the most
// specific token wins. When the best select and the best ignore are equally
// specific, the ignore suppresses the code: an exclusion at the same
// precision always beats an inclusion.
func (r *Resolver) Resolve(selectTokens, ignoreTokens []string) EnabledPredicate {
	return ResolveTokens(r.Prune("select", selectTokens), r.Prune("ignore", ignoreTokens))
}

// ResolveTokens resolves already-pruned token lists into a predicate. Most
// callers want [Resolver.Resolve], which prunes unknown tokens first.
func ResolveTokens(selectTokens, ignoreTokens []string) EnabledPredicate {
	return func(code Code) bool {
		_, sel := LongestMatch(selectTokens, code)
		if sel < 0 {
			return false
		}

		_, ign := LongestMatch(ignoreTokens, code)

		return sel > ign
	}
}

// LongestMatch returns the most specific token containing the code and its
// specificity, or ("", -1) when no token matches.
func LongestMatch(tokens []string, code Code) (string, int) {
	best, bestSpec := "", -1
	for _, token := range tokens {
		if spec := Specificity(token); spec > bestSpec && Contains(token, code) {
			best, bestSpec = token, spec
		}
	}

	return best, bestSpec
}

// Touches reports whether any token in the list contains the code. Override
// composition uses this to decide which codes an override speaks to.
func Touches(tokens []string, code Code) bool {
	for _, token := range tokens {
		if Contains(token, code) {
			return true
		}
	}

	return false
}
