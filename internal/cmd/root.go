// Package cmd provides the CLI surface for mlsblk.
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlsblk/mlsblk/internal/build"
)

// MainCommand provides the main program entrypoint.
func MainCommand() *cobra.Command {
	cmd := rootCommand()
	configureListing(cmd)

	return cmd
}

// rootCommand builds the root command object for a program run. The listing
// behavior itself is wired on separately, this sets up the shared pieces:
// version output and logging.
func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mlsblk [device]",
		Short: "list block devices",
		Long: strings.TrimSpace(`
mlsblk lists information about the block devices known to macOS's diskutil,
modeled after util-linux's lsblk. Devices print as a tree by default; -l
flattens the output into one line per device and -J emits a JSON document.

A device identifier (e.g. disk1, /dev/disk1, or disk1s2) may be given to
limit the listing to that device.
`),
		Args:         cobra.MaximumNArgs(1),
		Version:      build.Version,
		SilenceUsage: true,
	}

	versionTemplate := "{{.Name}} {{.Version}} [%s]\n\n%s\n"
	cmd.SetVersionTemplate(fmt.Sprintf(versionTemplate, build.CommitDate, build.GitHubLink))

	var verbose bool
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := logrus.InfoLevel
		if verbose {
			level = logrus.DebugLevel
		}
		setupLogging(level)

		return nil
	}

	return cmd
}

// setupLogging configures logrus to use the desired timestamp format and log
// level. Logs go to stderr so the success stream carries only rendered output.
func setupLogging(level logrus.Level) {
	Formatter := &logrus.TextFormatter{}

	// Configure the formatter
	Formatter.TimestampFormat = time.RFC822
	Formatter.FullTimestamp = true

	// Set the desired log level
	logrus.SetLevel(level)

	logrus.SetFormatter(Formatter)
}
