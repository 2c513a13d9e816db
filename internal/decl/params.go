package decl

import (
	"strings"

	"probe-generator/internal/common"
)

// Param is one (type, name) pair of a parameter list.
// Its index in the parsed list is the argument register it is read from.
type Param struct {
	Type string
	Name string
}

// ParseParams splits a comma-separated list of alternating type and name
// tokens into pairs. Tokens are trimmed. A trailing token without a name is
// dropped, and an empty list yields no params.
//
// Types that themselves contain commas, such as function pointers, are split
// like any other text.
func ParseParams(raw string) []Param {
	tokens := tokenize(raw)
	if common.IsEmpty(tokens) {
		return nil
	}

	params := make([]Param, 0, len(tokens)/2)

	common.Pairs(tokens, func(typ, name string) {
		params = append(params, Param{Type: typ, Name: name})
	})

	return params
}

// DroppedToken returns the token ParseParams discards for an odd-length list.
func DroppedToken(raw string) (string, bool) {
	return common.Pairs(tokenize(raw), func(string, string) {})
}

func tokenize(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	tokens := strings.Split(raw, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	return tokens
}
