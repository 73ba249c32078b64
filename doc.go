// Package argbind binds command-line arguments to typed variables and
// deferred actions.
//
// Callers register named commands against callbacks, typed target
// variables, or boolean flags, then hand the package a raw argument
// vector. Parsing tokenizes the vector, expands clustered short flags
// (-abc becomes -a -b -c when each letter is itself a registered
// command), resolves aliases, checks argument counts, and defers each
// matched action. Run executes the deferred actions ordered by
// descending priority.
//
// Supported registration forms:
//   - AddCmd: an arbitrary callback with optional alias, arity, priority
//   - AddValue: a one-argument command that converts, validates, and
//     assigns into a target variable
//   - AddOption: a zero-argument command that sets a boolean to true
//
// Example usage:
//
//	var level int
//	var verbose bool
//
//	cli := argbind.New()
//	argbind.AddValue(cli, "l", &level, argbind.Range(0, 10), argbind.Alias("level"))
//	cli.AddOption("v", &verbose)
//
//	if err := cli.Parse(os.Args); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cli.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Misusing the API (duplicate names, registering after Parse, running
// before Parse) panics with *UsageError; malformed input surfaces as
// ordinary errors from Parse and Run.
package argbind
