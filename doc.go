// Package flagtok splits a raw argument list into flags and positional arguments without any flag
// declarations.
//
// Tokens beginning with "--" are long flags and tokens beginning with a single "-" (other than "-"
// itself) are short flags. A long flag may carry an inline value after the first "=". Otherwise a
// flag takes the next token as its value unless that token also begins with "-", in which case the
// flag is recorded as present without a value:
//
//	res := flagtok.Parse([]string{"build.yaml", "--env=prod", "-p", "8080", "--verbose"})
//	env, _ := res.GetString("env") // "prod"
//	port, _ := res.GetString("p")  // "8080"
//	res.IsPresence("verbose")      // true
//	res.Args                       // ["build.yaml"]
//
// Values are never typed or validated; converting "8080" to a number is up to the caller.
package flagtok
