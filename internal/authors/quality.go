// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"strings"

	"github.com/pdiddy/pubflow/pkg/types"
)

// Assess buckets a raw author field by completeness. Checks run in order and
// the first match wins: abbreviated, single author, bracketed list, needs
// validation, good.
func Assess(raw string) types.AuthorQuality {
	s := strings.TrimSpace(raw)
	switch {
	case strings.Contains(s, "[+ others]") || strings.Contains(strings.ToLower(s), "et al"):
		return types.AuthorsAbbreviated
	case !strings.Contains(s, ";") && strings.Count(s, ".") <= 2:
		return types.AuthorsSingle
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return types.AuthorsBracketed
	case len(s) < 10 || !strings.Contains(s, ";"):
		return types.AuthorsNeedsValidation
	default:
		return types.AuthorsGood
	}
}
