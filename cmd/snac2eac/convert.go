package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"snac2eac/internal/constellation"
	"snac2eac/internal/diagnostic"
	"snac2eac/internal/eac"
	"snac2eac/internal/logging"
	"snac2eac/internal/naming"
	"snac2eac/internal/output"
	"snac2eac/internal/report"
)

var (
	outDir     string
	indent     int
	reportPath string
	toStdout   bool
)

// convertCmd converts constellation files to EAC-CPF documents
var convertCmd = &cobra.Command{
	Use:   "convert FILE...",
	Short: "Convert constellation JSON files to EAC-CPF XML",
	Long: `Convert one or more SNAC constellation JSON files to EAC-CPF XML.

Each file is converted on its own; a record that fails is logged and
skipped. Output files are named after the entity's display name.

Examples:
  # Convert into the configured output directory
  snac2eac convert snac_jsons/w6fn1kqp.json

  # Pretty-print a single record to stdout
  snac2eac convert --stdout --indent 2 snac_jsons/w6fn1kqp.json

  # Write a YAML report of warnings and failures
  snac2eac convert --out eacs --report report.yaml snac_jsons/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides output.dir)")
	convertCmd.Flags().IntVar(&indent, "indent", -1, "spaces per indent level, 0 for compact (overrides output.indent)")
	convertCmd.Flags().StringVar(&reportPath, "report", "", "write a YAML conversion report to this path")
	convertCmd.Flags().BoolVar(&toStdout, "stdout", false, "write documents to stdout instead of files")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outDir != "" {
		cfg.Output.Dir = outDir
	}

	if indent >= 0 {
		cfg.Output.Indent = indent
	}

	if reportPath != "" {
		cfg.Report.Path = reportPath
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cv := eac.NewConverter(eac.WithLogger(logger))
	opts := eac.SerializeOptions{Indent: cfg.Output.Indent}
	rep := report.New()

	var files []output.File

	seen := map[string]string{}

	for _, path := range args {
		log := logger.With(zap.String("input", path))

		file, record, diags, err := convertFile(cv, path, opts)
		if err != nil {
			log.Error("conversion failed", zap.String("record", record), zap.Error(err))
			rep.AddFailed(path, record, failureCode(err), err)

			continue
		}

		if prev, dup := seen[file.Filename]; dup {
			log.Warn("output name collides with an earlier record",
				zap.String("output", file.Filename), zap.String("previous", prev))
		}

		seen[file.Filename] = path

		if toStdout {
			if _, err := cmd.OutOrStdout().Write(append(file.Content, '\n')); err != nil {
				return fmt.Errorf("writing to stdout: %w", err)
			}
		} else {
			files = append(files, file)
		}

		log.Info("converted", zap.String("record", record), zap.String("output", file.Filename))
		rep.AddConverted(path, record, file.Filename, diags)
	}

	if len(files) > 0 {
		if err := output.WriteFiles(files, cfg.Output.Dir); err != nil {
			return err
		}
	}

	if cfg.Report.Path != "" {
		if err := report.WriteFile(rep, cfg.Report.Path); err != nil {
			return err
		}
	}

	logger.Info("done", zap.Int("converted", rep.Converted), zap.Int("failed", rep.Failed))

	if rep.Failed > 0 {
		return fmt.Errorf("%d of %d records failed", rep.Failed, len(args))
	}

	return nil
}

// convertFile converts one constellation file into a named output file.
func convertFile(cv *eac.Converter, path string, opts eac.SerializeOptions) (output.File, string, diagnostic.Diagnostics, error) {
	c, err := constellation.LoadFile(path)
	if err != nil {
		return output.File{}, "", diagnostic.Diagnostics{}, err
	}

	record := c.RecordID()

	res, err := cv.Convert(c)
	if err != nil {
		return output.File{}, record, diagnostic.Diagnostics{}, err
	}

	name, err := eac.ExtractName(res.Document)
	if err != nil {
		return output.File{}, record, res.Diagnostics, err
	}

	content, err := eac.Serialize(res.Document, opts)
	if err != nil {
		return output.File{}, record, res.Diagnostics, err
	}

	return output.File{Filename: naming.FileName(name), Content: content}, record, res.Diagnostics, nil
}

func failureCode(err error) string {
	switch {
	case errors.Is(err, constellation.ErrMissingRequiredField):
		return diagnostic.CodeMissingField
	case errors.Is(err, eac.ErrMalformedMarkup):
		return diagnostic.CodeMalformedMarkup
	default:
		return diagnostic.CodeConversionFailed
	}
}
