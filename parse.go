package flagtok

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Role describes how a single input token was consumed by the scan.
type Role uint8

const (
	// RolePositional is a token that is neither a flag nor a flag value, including a lone "-".
	RolePositional Role = iota + 1
	// RoleLongFlag is a token starting with "--".
	RoleLongFlag
	// RoleShortFlag is a token starting with a single "-" and longer than one byte.
	RoleShortFlag
	// RoleValue is a token consumed as the value of the flag immediately before it.
	RoleValue
)

func (r Role) String() string {
	switch r {
	case RolePositional:
		return "positional"
	case RoleLongFlag:
		return "long-flag"
	case RoleShortFlag:
		return "short-flag"
	case RoleValue:
		return "value"
	}
	return "unknown"
}

// Token is one input argument together with the role it played.
type Token struct {
	// Index is the position of Arg in the input.
	Index int
	// Arg is the input token, verbatim.
	Arg string
	Role Role
	// Name is the flag name with its prefix (and any inline "=value") removed. For RoleValue it
	// names the flag the value belongs to. Empty for positional tokens.
	Name string
	// Value is the value recorded for the flag. It is set on flag tokens and on value tokens.
	Value Value
}

// Tokens returns a single-pass scan over args yielding exactly one Token per input token, in input
// order. A flag without an inline value looks one token ahead: if the next token exists and does
// not start with "-", it is consumed as the flag's value and yielded with RoleValue. Otherwise the
// flag's value is [Presence].
//
// A bare "--" is a long flag with an empty name, not an end-of-options marker. Short flags are
// never split on "=" and never unclustered.
func Tokens(args []string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := 0; i < len(args); i++ {
			arg := args[i]
			tok := Token{Index: i, Arg: arg}
			switch {
			case strings.HasPrefix(arg, "--"):
				tok.Role = RoleLongFlag
				tok.Name = arg[2:]
				if name, value, ok := strings.Cut(tok.Name, "="); ok {
					tok.Name = name
					tok.Value = StringValue(value)
					if !yield(tok) {
						return
					}
					continue
				}
			case len(arg) > 1 && arg[0] == '-':
				tok.Role = RoleShortFlag
				tok.Name = arg[1:]
			default:
				tok.Role = RolePositional
				if !yield(tok) {
					return
				}
				continue
			}

			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				tok.Value = Presence()
				if !yield(tok) {
					return
				}
				continue
			}
			tok.Value = StringValue(args[i+1])
			if !yield(tok) {
				return
			}
			i++
			if !yield(Token{Index: i, Arg: args[i], Role: RoleValue, Name: tok.Name, Value: tok.Value}) {
				return
			}
		}
	}
}

// Result is the outcome of [Parse]. Each call returns a fresh Result that shares nothing with the
// input or with other calls; the caller owns Flags and Args and may modify them.
type Result struct {
	// Flags maps each flag name to its value. When a name appears more than once, the last
	// occurrence wins.
	Flags map[string]Value
	// Args holds the positional arguments in the order they appeared.
	Args []string
}

// Parse splits args, typically os.Args[1:], into flags and positional arguments. It never fails:
// every sequence of strings is valid input, and validating flag names or values is left to the
// caller. args is neither modified nor retained.
//
// Parse is a collector over [Tokens]; see there for the classification rules.
func Parse(args []string) *Result {
	res := &Result{
		Flags: make(map[string]Value),
		Args:  []string{},
	}
	for tok := range Tokens(args) {
		switch tok.Role {
		case RoleLongFlag, RoleShortFlag:
			res.Flags[tok.Name] = tok.Value
		case RolePositional:
			res.Args = append(res.Args, tok.Arg)
		}
	}
	return res
}

// Lookup returns the value recorded for the named flag and whether the flag appeared at all.
func (r *Result) Lookup(name string) (Value, bool) {
	v, ok := r.Flags[name]
	return v, ok
}

// Has reports whether the named flag appeared, with or without a value.
func (r *Result) Has(name string) bool {
	_, ok := r.Flags[name]
	return ok
}

// GetString returns the string value of the named flag. It returns false if the flag is absent or
// appeared without a value.
func (r *Result) GetString(name string) (string, bool) {
	return r.Flags[name].Str()
}

// IsPresence reports whether the named flag appeared without a value.
func (r *Result) IsPresence(name string) bool {
	return r.Flags[name].IsPresence()
}

// Names returns the flag names in sorted order.
func (r *Result) Names() []string {
	return slices.Sorted(maps.Keys(r.Flags))
}
