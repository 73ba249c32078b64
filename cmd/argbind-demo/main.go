// Command argbind-demo exercises the argbind registration surface:
// restricted value bindings, a boolean option, and a prioritized
// variadic command.
//
// Try:
//
//	argbind-demo -s gopher@example.com -r 0.5 --oneof 3 -o -p hello world
//	argbind-demo -op                         (clustered short flags)
//	argbind-demo -r 1.5                      (rejected by the range restrictor)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rickgorman/argbind"
	"github.com/rickgorman/argbind/internal/ui"
)

func main() {
	var (
		email string
		ratio float64
		pick  int
		opt   bool
	)

	cli := argbind.New()
	argbind.AddValue(cli, "s", &email, argbind.Email())
	argbind.AddValue(cli, "r", &ratio, argbind.Range(0.0, 1.0))
	argbind.AddValue(cli, "f", &pick, argbind.OneOf(1, 3, 5), argbind.Alias("oneof"))
	cli.AddOption("o", &opt, argbind.Alias("option"))
	cli.AddCmd("p", echo, argbind.Alias("print"), argbind.Priority(10))

	if err := cli.Parse(os.Args); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}
	if err := cli.Run(); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}

	ui.Success("email=%q ratio=%v pick=%d option=%v", email, ratio, pick, opt)
}

// echo prints its arguments quoted, in order.
func echo(args argbind.Args) error {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	fmt.Println("print:", strings.Join(quoted, " "))
	return nil
}
