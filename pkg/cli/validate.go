package cli

import (
	"flag"
	"fmt"

	"github.com/platinummonkey/syspropc/pkg/schema"
	"github.com/platinummonkey/syspropc/pkg/validation"
)

func newValidateCommand() *Command {
	cmd := &Command{
		Name:        "validate",
		Description: "Validate a sysprop schema file without generating code",
		Flags:       flag.NewFlagSet("validate", flag.ExitOnError),
		Run:         runValidate,
	}

	cmd.Flags.String("schema", "", "Schema file to validate")

	return cmd
}

func runValidate(args []string) error {
	flags := flag.NewFlagSet("validate", flag.ExitOnError)
	schemaPath := flags.String("schema", "", "Schema file to validate")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *schemaPath == "" {
		return fmt.Errorf("missing required flag: -schema")
	}

	props, err := schema.ParseFile(*schemaPath)
	if err != nil {
		return err
	}

	if diag := validation.Validate(props); diag != nil {
		return fmt.Errorf("%s: %s", *schemaPath, diag.Message)
	}

	for _, warning := range validation.Normalize(props) {
		fmt.Printf("%s: %s: %s\n", *schemaPath, warning.Severity, warning.Message)
	}

	fmt.Printf("%s: OK (%d properties)\n", *schemaPath, len(props.Props))
	return nil
}
