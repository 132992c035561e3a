package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/StinkyLord/sbom-exchange/internal/exchange"
)

const toolVersion = "1.0.0"

var (
	flagInput        string
	flagOutput       string
	flagInputFormat  string
	flagOutputFormat string
	flagInputSpec    string
	flagOutputSpec   string
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:     "sbom-exchange",
	Version: toolVersion,
	Short:   "CycloneDX BOM version and format converter",
	Long: `sbom-exchange converts CycloneDX BOM documents between schema versions
and wire formats through a single canonical in-memory model.

Supported spec versions: 1.3, 1.4
Supported formats:       xml, json

Every conversion goes payload -> version projection -> canonical model and
back out, so any (version, format) pair converts to any other.`,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a BOM document between spec versions and formats",
	Long: `Read a BOM document, rebuild the canonical model, and write it back out
in the requested spec version and format.

Examples:
  sbom-exchange convert --input bom.xml --input-format xml --input-spec 1.3 \
      --output bom.json --output-format json --output-spec 1.4
  sbom-exchange convert --input - --input-format json --input-spec 1.4 \
      --output - --output-format xml --output-spec 1.4`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagInput, "input", "i", "-", "Input file path (use '-' for stdin)")
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", "Output file path (use '-' for stdout)")
	convertCmd.Flags().StringVar(&flagInputFormat, "input-format", "xml", "Input format: xml or json")
	convertCmd.Flags().StringVar(&flagOutputFormat, "output-format", "xml", "Output format: xml or json")
	convertCmd.Flags().StringVar(&flagInputSpec, "input-spec", "1.4", "Input spec version: 1.3 or 1.4")
	convertCmd.Flags().StringVar(&flagOutputSpec, "output-spec", "1.4", "Output spec version: 1.3 or 1.4")
	convertCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(convertCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	inSpec, err := exchange.ParseSpecVersion(flagInputSpec)
	if err != nil {
		return err
	}
	outSpec, err := exchange.ParseSpecVersion(flagOutputSpec)
	if err != nil {
		return err
	}
	inFormat, err := exchange.ParseFormat(flagInputFormat)
	if err != nil {
		return err
	}
	outFormat, err := exchange.ParseFormat(flagOutputFormat)
	if err != nil {
		return err
	}

	var in io.ReadCloser = os.Stdin
	if flagInput != "-" {
		f, err := os.Open(flagInput)
		if err != nil {
			return fmt.Errorf("cannot open input %q: %w", flagInput, err)
		}
		in = f
	}
	defer in.Close()

	log.WithFields(logrus.Fields{
		"input":  flagInput,
		"spec":   inSpec,
		"format": inFormat,
	}).Debug("reading document")

	bom, err := exchange.Read(in, inSpec, inFormat)
	if err != nil {
		return fmt.Errorf("failed to read BOM: %w", err)
	}

	log.WithFields(logrus.Fields{
		"output": flagOutput,
		"spec":   outSpec,
		"format": outFormat,
	}).Debug("writing document")

	if flagOutput == "-" {
		if err := exchange.Write(os.Stdout, bom, outSpec, outFormat); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
		return nil
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("cannot create output %q: %w", flagOutput, err)
	}
	if err := exchange.Write(f, bom, outSpec, outFormat); err != nil {
		f.Close()
		return fmt.Errorf("failed to write BOM: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	fmt.Fprintf(os.Stderr, "BOM written to: %s\n", flagOutput)
	return nil
}
