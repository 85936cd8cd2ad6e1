// Command schedgen runs one league schedule generation from a JSON
// input file and writes the resulting ScheduleResult as JSON.
//
// Usage:
//
//	schedgen generate --input input.json --output result.json
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.New()

func main() {
	root := &cobra.Command{
		Use:   "schedgen",
		Short: "League schedule generator",
	}

	root.AddCommand(generateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
