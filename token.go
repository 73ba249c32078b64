package argbind

import "strings"

// token is one parsed command name plus its attached plain arguments.
// The token at index 0 always carries the program identity and no
// semantic command.
type token struct {
	name string
	args []string
}

// tokenize splits argv into tokens. argv[0] opens the program-identity
// token verbatim, with no dash stripping. For every later argument: two
// leading dashes and length > 2 open a token named by the rest; one
// leading dash and length > 1 open a token named by the rest (so "--"
// alone opens a token named "-"); anything else, including a bare "-",
// is appended to the currently open token's arguments. The bare "-"
// rule keeps conventional read-from-stdin placeholders usable as plain
// arguments.
func tokenize(argv []string) []token {
	tokens := []token{{name: argv[0]}}
	for _, arg := range argv[1:] {
		switch {
		case strings.HasPrefix(arg, "--") && len(arg) > 2:
			tokens = append(tokens, token{name: arg[2:]})
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			tokens = append(tokens, token{name: arg[1:]})
		default:
			last := &tokens[len(tokens)-1]
			last.args = append(last.args, arg)
		}
	}
	return tokens
}

// expandClusters rewrites tokens like -abc into -a -b -c when "abc" is
// not itself registered but every rune is an independently registered
// command or alias. Clustered short flags take no values, so arguments
// attached to the clustered form are discarded with a warning each.
// A fresh slice is built rather than splicing the input in place.
func (c *CLI) expandClusters(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	out = append(out, tokens[0])
	for _, t := range tokens[1:] {
		if !c.isCluster(t.name) {
			out = append(out, t)
			continue
		}
		for _, r := range t.name {
			out = append(out, token{name: string(r)})
		}
		for _, a := range t.args {
			c.Warnf("discarded argument %q", a)
		}
	}
	return out
}

// isCluster reports whether name should be treated as a cluster of
// single-rune commands. A directly registered name is never a cluster,
// even if it would also pass the per-rune test.
func (c *CLI) isCluster(name string) bool {
	if _, ok := c.resolve(name); ok {
		return false
	}
	for _, r := range name {
		if _, ok := c.resolve(string(r)); !ok {
			return false
		}
	}
	return true
}
