// Command jsonschema-validate is a thin demonstration harness over the
// validation engine: it is not part of the core, it just exercises the
// public API end to end from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schemakit/jsonschema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
)

var (
	schemaPath   string
	instancePath string
	instancePtr  string
	assertFormat bool
	baseURI      string
)

// outputFormatFlag adapts jsonschema.OutputFormat to pflag.Value so --output
// is validated at parse time instead of in run().
type outputFormatFlag struct {
	format *jsonschema.OutputFormat
}

func (f outputFormatFlag) String() string { return string(*f.format) }
func (f outputFormatFlag) Type() string   { return "string" }
func (f outputFormatFlag) Set(value string) error {
	switch jsonschema.OutputFormat(value) {
	case jsonschema.OutputFlag, jsonschema.OutputBasic, jsonschema.OutputDetailed, jsonschema.OutputVerbose:
		*f.format = jsonschema.OutputFormat(value)
		return nil
	default:
		return fmt.Errorf("must be one of: flag, basic, detailed, verbose")
	}
}

var selectedOutputFormat = jsonschema.OutputDetailed

func main() {
	root := &cobra.Command{
		Use:   "jsonschema-validate",
		Short: "Validate a JSON instance against a JSON Schema document",
		RunE:  run,
	}

	var flags *pflag.FlagSet = root.Flags()
	flags.StringVar(&schemaPath, "schema", "", "path to the schema document (required)")
	flags.StringVar(&instancePath, "instance", "", "path to the instance document (required)")
	flags.StringVar(&instancePtr, "path", "", "gjson path selecting a sub-document of --instance to validate")
	flags.Var(outputFormatFlag{format: &selectedOutputFormat}, "output", "one of: flag, basic, detailed, verbose")
	flags.BoolVar(&assertFormat, "assert-format", false, "fail validation on unmatched \"format\" values")
	flags.StringVar(&baseURI, "base-uri", "", "default base URI for resolving relative $ref")
	_ = root.MarkFlagRequired("schema")
	_ = root.MarkFlagRequired("instance")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	opts, err := optionsFromFlags()
	if err != nil {
		return err
	}

	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	instanceBytes, err := os.ReadFile(instancePath)
	if err != nil {
		return fmt.Errorf("reading instance: %w", err)
	}

	compiler := jsonschema.NewCompiler().ApplyOptions(opts)
	schema, err := compiler.Compile(schemaBytes)
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	instance, err := decodeInstance(instanceBytes)
	if err != nil {
		return err
	}

	result := schema.ValidateWithOptions(instance, opts)
	return printResult(cmd, result, opts.OutputFormat)
}

// decodeInstance parses instanceBytes as JSON, optionally narrowing to the
// sub-document selected by --path first via gjson (useful when the instance
// file is a larger document than the one the schema actually describes).
func decodeInstance(instanceBytes []byte) (any, error) {
	raw := instanceBytes
	if instancePtr != "" {
		result := gjson.GetBytes(instanceBytes, instancePtr)
		if !result.Exists() {
			return nil, fmt.Errorf("path %q not found in instance document", instancePtr)
		}
		raw = []byte(result.Raw)
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("decoding instance: %w", err)
	}
	return instance, nil
}

func optionsFromFlags() (*jsonschema.Options, error) {
	opts := jsonschema.DefaultOptions()
	opts.RequireFormatValidation = assertFormat
	opts.DefaultBaseURI = baseURI
	opts.OutputFormat = selectedOutputFormat
	return opts, nil
}

func printResult(cmd *cobra.Command, result *jsonschema.EvaluationResult, format jsonschema.OutputFormat) error {
	out := cmd.OutOrStdout()

	var payload any
	switch format {
	case jsonschema.OutputFlag:
		payload = result.ToFlag()
	case jsonschema.OutputBasic:
		payload = result.ToList(false)
	case jsonschema.OutputVerbose:
		payload = result.ToVerbose()
	default:
		payload = result.ToList(true)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(out, string(encoded))

	if !result.IsValid() {
		return fmt.Errorf("instance is not valid")
	}
	return nil
}
