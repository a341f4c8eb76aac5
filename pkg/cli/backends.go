package cli

import (
	"flag"
	"fmt"

	"github.com/platinummonkey/syspropc/pkg/codegen"
)

func newBackendsCommand() *Command {
	return &Command{
		Name:        "backends",
		Description: "List available code generation backends",
		Flags:       flag.NewFlagSet("backends", flag.ExitOnError),
		Run: func(args []string) error {
			for _, id := range codegen.BackendIDs() {
				fmt.Println(id)
			}
			return nil
		},
	}
}
