package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/syspropc/pkg/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
