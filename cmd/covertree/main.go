package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jacoco-tools/covertree/coverage"
	"github.com/jacoco-tools/covertree/internal/config"
	"github.com/jacoco-tools/covertree/internal/logging"
	"github.com/jacoco-tools/covertree/internal/report"
	"github.com/jacoco-tools/covertree/jacoco"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logger = logging.AppLogger().WithFields(log.Fields{"component": "main"})
)

func main() {
	// Init configuration
	config, err := config.NewConfiguration()
	if err != nil {
		logger.Fatal(err)
	}

	// configure the Logger
	logging.SetLevel(config.Level())
	logger.Debugf("starting %s with config: %s", logging.AppName, config)

	rootCmd := &cobra.Command{
		Use:           "covertree",
		Short:         "Build coverage trees from JaCoCo XML reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var outputFormat string
	parseCmd := &cobra.Command{
		Use:   "parse <file-or-url>",
		Short: "Parse a JaCoCo report and print the resulting coverage tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadReport(args[0], config)
			if err != nil {
				return err
			}

			switch outputFormat {
			case "text":
				printTree(os.Stdout, root, 0)
				printSummary(os.Stdout, root)
			case "json":
				return printJSON(os.Stdout, root)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func loadReport(source string, config config.Configuration) (*coverage.Node, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		seconds, err := strconv.Atoi(config.FetchTimeout())
		if err == nil {
			report.SetTimeout(time.Duration(seconds) * time.Second)
		}
		return report.RetrieveReport(source)
	}
	return jacoco.ParseFile(source)
}
