package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/formstate"
)

// Report is printed after the submit.
type Report struct {
	Valid  bool                `yaml:"valid"`
	Errors map[string][]string `yaml:"errors,omitempty"`
}

type checkOptions struct {
	definition string
	values     string
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Submit values against a form definition",
		Long: `Submit values against a form definition and print the errors.

Rules are go-playground/validator tags, for example "required,email" or
"required,min=8". Values are read from --values, or from stdin when it is "-".

Environment:
  FORMSTATE_VALIDATION_TIMEOUT  bound for each field validation
  FORMSTATE_LOG_LEVEL           log level for diagnostics on stderr
  FORMSTATE_LOG_FORMAT          text or json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.definition, "def", "d", "", "Path to the YAML form definition")
	cmd.Flags().StringVarP(&opts.values, "values", "v", "-", "Path to the YAML values file, - for stdin")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	if opts.definition == "" {
		return ErrMissingDefinition
	}

	cfg, err := formstate.LoadConfig()
	if err != nil {
		return err
	}
	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	def, rules, err := parseDefinitionFile(opts.definition)
	if err != nil {
		return err
	}
	formOpts, err := def.FormOptions()
	if err != nil {
		return err
	}

	values, err := readValues(cmd.InOrStdin(), opts.values)
	if err != nil {
		return err
	}

	// Rules from a definition file are always validator tags.
	cfg.Adapter = formstate.AdapterSchema.String()
	fs, err := formstate.NewFieldsetFromConfig(cfg, rules, formstate.WithLogger(log))
	if err != nil {
		return err
	}

	formOpts = append(formOpts, form.WithInitialValues(values), form.WithLogger(log))
	f, err := form.New(fs, formOpts...)
	if err != nil {
		return err
	}

	res := f.Submit(cmd.Context())
	if err := writeReport(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if !res.IsValid {
		return ErrInvalidForm
	}
	return nil
}

func readValues(stdin io.Reader, path string) (formstate.Values, error) {
	if path == "-" {
		return ParseValues(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadValues, err)
	}
	defer file.Close()
	return ParseValues(file)
}

func writeReport(w io.Writer, res form.Result) error {
	report := Report{Valid: res.IsValid}
	for name, msgs := range res.Errors {
		if len(msgs) == 0 {
			continue
		}
		if report.Errors == nil {
			report.Errors = make(map[string][]string)
		}
		report.Errors[name] = msgs
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
