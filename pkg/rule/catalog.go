package rule

import (
	"fmt"
	"sort"
)

// Catalog holds the set of known rule codes. It is populated once at load
// time and answers prefix-containment queries with a sorted-slice search, so
// lookups never scan the full catalog.
//
// A Catalog is immutable after the last Register call completes; all query
// methods are safe for concurrent use.
type Catalog struct {
	codes []Code // Sorted, unique.
}

// NewCatalog creates a [Catalog] containing the given codes.
func NewCatalog(codes ...Code) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Register(codes...); err != nil {
		return nil, err
	}

	return c, nil
}

// MustNewCatalog creates a [Catalog] and panics if any code is malformed.
func MustNewCatalog(codes ...Code) *Catalog {
	c, err := NewCatalog(codes...)
	if err != nil {
		panic(err)
	}

	return c
}

// Register ingests codes into the catalog. Already-known codes are a no-op.
// Malformed codes fail here, at load time, never during queries.
func (c *Catalog) Register(codes ...Code) error {
	for _, code := range codes {
		if err := code.Validate(); err != nil {
			return fmt.Errorf("register: %w", err)
		}
	}

	c.codes = append(c.codes, codes...)
	sort.Slice(c.codes, func(i, j int) bool { return c.codes[i] < c.codes[j] })

	// Drop duplicates in place.
	uniq := c.codes[:0]
	for i, code := range c.codes {
		if i == 0 || code != c.codes[i-1] {
			uniq = append(uniq, code)
		}
	}
	c.codes = uniq

	return nil
}

// Len returns the number of registered codes.
func (c *Catalog) Len() int {
	return len(c.codes)
}

// Known reports whether the exact code is registered.
func (c *Catalog) Known(code Code) bool {
	i := sort.Search(len(c.codes), func(i int) bool { return c.codes[i] >= code })

	return i < len(c.codes) && c.codes[i] == code
}

// Recognizes reports whether the token covers at least one registered code,
// either by equality or as a category prefix. Since the codes are sorted,
// every code covered by a prefix token sits immediately at or after the
// token's insertion point.
func (c *Catalog) Recognizes(token string) bool {
	if token == "" {
		return false
	}

	i := sort.Search(len(c.codes), func(i int) bool { return string(c.codes[i]) >= token })

	return i < len(c.codes) && Contains(token, c.codes[i])
}

// Covered returns all registered codes covered by the token, in sorted order.
func (c *Catalog) Covered(token string) []Code {
	if token == "" {
		return nil
	}

	i := sort.Search(len(c.codes), func(i int) bool { return string(c.codes[i]) >= token })

	var covered []Code
	for ; i < len(c.codes) && Contains(token, c.codes[i]); i++ {
		covered = append(covered, c.codes[i])
	}

	return covered
}
