package cli

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/syspropc/pkg/codegen"
)

func newCompileCommand() *Command {
	cmd := &Command{
		Name:        "compile",
		Description: "Compile a sysprop schema file into accessor code",
		Flags:       flag.NewFlagSet("compile", flag.ExitOnError),
		Run:         runCompile,
	}

	cmd.Flags.String("schema", "", "Schema file to compile")
	cmd.Flags.String("decl-dir", ".", "Output directory for the declaration artifact")
	cmd.Flags.String("def-dir", ".", "Output directory for the definition artifact")
	cmd.Flags.String("include-path", "", "Path the definition artifact uses to include the declaration artifact")
	cmd.Flags.String("language", "cpp", "Target language backend")

	return cmd
}

func runCompile(args []string) error {
	flags := flag.NewFlagSet("compile", flag.ExitOnError)
	schemaPath := flags.String("schema", "", "Schema file to compile")
	declDir := flags.String("decl-dir", ".", "Output directory for the declaration artifact")
	defDir := flags.String("def-dir", ".", "Output directory for the definition artifact")
	includePath := flags.String("include-path", "", "Path the definition artifact uses to include the declaration artifact")
	language := flags.String("language", "cpp", "Target language backend")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *schemaPath == "" {
		return fmt.Errorf("missing required flag: -schema")
	}

	include := *includePath
	if include == "" {
		// Default to the declaration artifact's own file name.
		base := filepath.Base(*schemaPath)
		include = base[:len(base)-len(filepath.Ext(base))] + ".sysprop.h"
	}

	result, err := codegen.Compile(&codegen.Request{
		SchemaPath:  *schemaPath,
		DeclDir:     *declDir,
		DefDir:      *defDir,
		IncludePath: include,
		Language:    *language,
	})
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		logrus.WithField("api", warning.Location).Warn(warning.Message)
	}
	for _, file := range result.Files {
		logrus.WithFields(logrus.Fields{
			"module": result.Module,
			"file":   file.Name,
		}).Info("generated")
	}

	return nil
}
