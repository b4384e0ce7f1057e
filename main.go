// Package main provides the CLI entry point for the airbnb-insights tool.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"airbnb-insights/config"
	"airbnb-insights/console"
	"airbnb-insights/dataset"
	"airbnb-insights/loader"
	"airbnb-insights/models"
	"airbnb-insights/storage"
	"airbnb-insights/utils"
)

// Exit codes
const (
	ExitSuccess       = 0
	ExitLoadError     = 1
	ExitCriteriaError = 2
	ExitExportError   = 3
	ExitUsageError    = 4
)

var (
	// Global flags
	verbose bool

	// Run command flags
	minPrice     float64
	maxPrice     float64
	minBedrooms  float64
	maxBedrooms  float64
	minReview    float64
	maxReview    float64
	amenities    []string
	criteriaPath string
	whereExpr    string
	showListings bool
	writeReport  bool
	exportCSV    bool
	exportSQLite bool

	// Build information (set via ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "airbnb-insights",
	Short: "Filter and analyse Airbnb listing data",
	Long: `airbnb-insights loads a CSV of listings into an immutable record set,
applies chained range and amenity filters, and reports summary
statistics plus a ranking of hosts by listing count.

Examples:
  # Interactive session over the configured dataset
  airbnb-insights analyze

  # Non-interactive run with explicit bounds
  airbnb-insights run --min-price 50 --max-price 300 listings.csv

  # Preset bounds plus an expression filter and a JSON report
  airbnb-insights run --criteria presets/city.yaml --where 'float(bedrooms) >= 2' --report`,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [dataset.csv]",
	Short: "Interactively filter listings and show the analysis",
	Long: `Run an interactive session: the tool prompts for optional price,
bedroom and review-score bounds plus a required-amenity list, then
shows the analysis of every listing that survives the filters.

Without a dataset argument the path comes from LISTINGS_CSV_PATH.

Examples:
  airbnb-insights analyze
  airbnb-insights analyze data/listings.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

var runCmd = &cobra.Command{
	Use:   "run [dataset.csv]",
	Short: "Filter listings from flags and print the analysis",
	Long: `Run a non-interactive analysis.

Bounds come from an optional YAML preset (--criteria) overridden by any
explicitly set flag. --where adds an expression filter evaluated
against each record's raw fields, e.g. 'float(price) < 200'.

Exit codes:
  0 - Success
  1 - Dataset load failure
  2 - Criteria preset or expression failure
  3 - Export failure
  4 - Invalid usage

Examples:
  airbnb-insights run --min-bedrooms 2 --amenities Wifi,Kitchen
  airbnb-insights run --criteria presets/city.yaml --export-csv --export-sqlite
  airbnb-insights run --where 'host_name != ""' --report listings.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalysis,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print version, commit hash, and build date information.",
	Run:   runVersion,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")

	// Run command flags
	runCmd.Flags().Float64Var(&minPrice, "min-price", 0, "Minimum price per night")
	runCmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Maximum price per night")
	runCmd.Flags().Float64Var(&minBedrooms, "min-bedrooms", 0, "Minimum bedroom count")
	runCmd.Flags().Float64Var(&maxBedrooms, "max-bedrooms", 0, "Maximum bedroom count")
	runCmd.Flags().Float64Var(&minReview, "min-review", 0, "Minimum review score")
	runCmd.Flags().Float64Var(&maxReview, "max-review", 0, "Maximum review score")
	runCmd.Flags().StringSliceVar(&amenities, "amenities", nil, "Required amenities (exact match)")
	runCmd.Flags().StringVar(&criteriaPath, "criteria", "", "Path to a YAML criteria preset")
	runCmd.Flags().StringVar(&whereExpr, "where", "", "Expression filter over raw record fields")
	runCmd.Flags().BoolVar(&showListings, "show-listings", false, "Print every surviving listing in full")
	runCmd.Flags().BoolVar(&writeReport, "report", false, "Write the JSON report")
	runCmd.Flags().BoolVar(&exportCSV, "export-csv", false, "Write surviving listings to CSV")
	runCmd.Flags().BoolVar(&exportSQLite, "export-sqlite", false, "Write surviving listings to SQLite")

	// Add commands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func runAnalyze(_ *cobra.Command, args []string) {
	logger, cfg := setup()

	path := cfg.DatasetPath
	if len(args) == 1 {
		path = args[0]
	}

	headers, records, err := loader.New(logger).Load(path)
	if err != nil {
		logger.Error("Dataset load failed: %v", err)
		os.Exit(ExitLoadError)
	}

	set := dataset.New(records)

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	criteria := prompter.Criteria()
	required := prompter.Amenities()

	filtered := set.FilterByRange(criteria).FilterByAmenities(required)
	logger.Info("Filters kept %d of %d listings", filtered.Len(), set.Len())

	report := buildReport(filtered)
	console.RenderReport(os.Stdout, report)

	if prompter.Confirm("Show full listing detail?") {
		console.RenderRecords(os.Stdout, headers, report.Listings)
	}

	if prompter.Confirm("Export JSON report to " + cfg.ReportPath + "?") {
		if err := storage.NewJSONReportWriter(cfg.ReportPath, logger).WriteReport(report); err != nil {
			logger.Error("Export failed: %v", err)
			os.Exit(ExitExportError)
		}
	}

	os.Exit(ExitSuccess)
}

func runAnalysis(cmd *cobra.Command, args []string) {
	logger, cfg := setup()

	path := cfg.DatasetPath
	if len(args) == 1 {
		path = args[0]
	}

	criteria, err := assembleCriteria(cmd, cfg)
	if err != nil {
		logger.Error("Criteria preset failed: %v", err)
		os.Exit(ExitCriteriaError)
	}

	var expression *dataset.Expression
	if whereExpr != "" {
		expression, err = dataset.CompileExpression(whereExpr)
		if err != nil {
			logger.Error("Expression rejected: %v", err)
			os.Exit(ExitCriteriaError)
		}
	}

	headers, records, err := loader.New(logger).Load(path)
	if err != nil {
		logger.Error("Dataset load failed: %v", err)
		os.Exit(ExitLoadError)
	}

	set := dataset.New(records)
	filtered := set.
		FilterByRange(criteria).
		FilterByAmenities(amenities).
		FilterByExpression(expression)
	logger.Info("Filters kept %d of %d listings", filtered.Len(), set.Len())

	report := buildReport(filtered)
	console.RenderReport(os.Stdout, report)

	if showListings {
		console.RenderRecords(os.Stdout, headers, report.Listings)
	}

	if err := exportResults(cfg, logger, headers, report); err != nil {
		logger.Error("Export failed: %v", err)
		os.Exit(ExitExportError)
	}

	os.Exit(ExitSuccess)
}

func runVersion(_ *cobra.Command, _ []string) {
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Commit: %s\n", commit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

func setup() (*utils.Logger, *config.Config) {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(verbose || cfg.Verbose)
	return logger, cfg
}

func buildReport(set *dataset.RecordSet) *models.Report {
	return &models.Report{
		GeneratedAt:  time.Now().UTC(),
		Stats:        set.ComputeStats(),
		HostRankings: set.ComputeHostRankings(),
		Listings:     set.Records(),
	}
}

// assembleCriteria merges the optional preset with explicit flags; a flag
// that was set always wins over its preset value.
func assembleCriteria(cmd *cobra.Command, cfg *config.Config) (models.Criteria, error) {
	var criteria models.Criteria

	presetPath := criteriaPath
	if presetPath == "" {
		presetPath = cfg.CriteriaPath
	}
	if presetPath != "" {
		preset, err := config.LoadCriteria(presetPath)
		if err != nil {
			return models.Criteria{}, err
		}
		criteria = *preset
	}

	flags := cmd.Flags()
	if flags.Changed("min-price") {
		criteria.MinPrice = &minPrice
	}
	if flags.Changed("max-price") {
		criteria.MaxPrice = &maxPrice
	}
	if flags.Changed("min-bedrooms") {
		criteria.MinBedrooms = &minBedrooms
	}
	if flags.Changed("max-bedrooms") {
		criteria.MaxBedrooms = &maxBedrooms
	}
	if flags.Changed("min-review") {
		criteria.MinReview = &minReview
	}
	if flags.Changed("max-review") {
		criteria.MaxReview = &maxReview
	}

	return criteria, nil
}

// exportResults fans the report and surviving records out to every writer
// enabled by a flag.
func exportResults(cfg *config.Config, logger *utils.Logger, headers []string, report *models.Report) error {
	if writeReport {
		if err := storage.NewJSONReportWriter(cfg.ReportPath, logger).WriteReport(report); err != nil {
			return err
		}
	}

	var writers []storage.RecordWriter
	if exportCSV {
		writers = append(writers, storage.NewCSVWriter(cfg.CSVPath, logger))
	}
	if exportSQLite {
		writers = append(writers, storage.NewSQLiteWriter(cfg.SQLitePath, logger))
	}
	for _, w := range writers {
		if err := w.WriteRecords(headers, report.Listings); err != nil {
			return err
		}
	}

	return nil
}
