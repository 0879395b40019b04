// Command pageviews cleans a CSV export of daily forum page views and
// draws a line chart, a bar chart of monthly means and box plots per
// year and month.
package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdobler/pageviews/internal/config"
	"github.com/vdobler/pageviews/internal/report"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pageviews",
	Short: "Draw page view charts",
	Long: `pageviews reads daily page view counts, drops values outside a
quantile band and writes line_plot.png, bar_plot.png and box_plot.png.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load(viper.GetViper(), configFile)
		if err != nil {
			return err
		}
		return run(conf)
	},
}

func init() {
	d := config.Default()
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "TOML configuration file")
	flags.String("input", d.Input, "CSV file with date and value columns")
	flags.String("output-dir", d.OutputDir, "Directory receiving the charts")
	flags.String("line-output", d.LineOutput, "File name of the line chart")
	flags.String("bar-output", d.BarOutput, "File name of the bar chart")
	flags.String("box-output", d.BoxOutput, "File name of the box plots")
	flags.Float64("lower-quantile", d.LowerQuantile, "Values below this quantile are dropped")
	flags.Float64("upper-quantile", d.UpperQuantile, "Values above this quantile are dropped")
	flags.String("quantile-method", d.QuantileMethod, "Quantile method: linear, nearest-rank or empirical")
	flags.Int("dpi", d.DPI, "Resolution of the charts")
	flags.String("summary", d.Summary, "Write the chart aggregates to this .xlsx file")
	flags.String("log-level", d.LogLevel, "Log level (debug, info, warn, error)")

	viper.BindPFlags(flags)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func run(conf config.Config) error {
	level, err := conf.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)

	logger := log.StandardLogger()
	p, err := conf.Pipeline(logger)
	if err != nil {
		return err
	}
	if conf.OutputDir != "" {
		if err := os.MkdirAll(conf.OutputDir, 0755); err != nil {
			return err
		}
	}
	if err := p.Run(); err != nil {
		return err
	}

	if conf.Summary == "" {
		return nil
	}
	sum, err := p.Summary()
	if err != nil {
		return err
	}
	return report.Write(conf.Path(conf.Summary), sum, logger)
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %s", err)
	}
	if err := rootCmd.Execute(); err != nil {
		log.WithField("module", "main").Error(err)
		os.Exit(1)
	}
}
