package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formstate/pkg/config"
	"github.com/dmitrymomot/formstate/pkg/formapi"
	"github.com/dmitrymomot/formstate/pkg/formstate"
	"github.com/dmitrymomot/formstate/pkg/httpserver"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

type serveOptions struct {
	definitions []string
	addr        string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve form validation over HTTP",
		Long: `Serve form validation over HTTP for one or more form definitions.

Each form is exposed under /forms/{name}, where name is the definition's
"name" key or the file name without extension:

  GET  /healthz
  GET  /forms
  POST /forms/{name}/submit
  POST /forms/{name}/fields/{field}

Environment:
  FORMSTATE_HTTP_ADDR              listen address (default :8080)
  FORMSTATE_HTTP_SHUTDOWN_TIMEOUT  graceful shutdown bound`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.definitions, "def", "d", nil, "Path to a YAML form definition (repeatable)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address, overrides FORMSTATE_HTTP_ADDR")
	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	if len(opts.definitions) == 0 {
		return ErrMissingDefinition
	}

	cfg, err := formstate.LoadConfig()
	if err != nil {
		return err
	}
	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	if opts.addr != "" {
		srvCfg.Addr = opts.addr
	}

	log, err := cfg.Logger(cmd.ErrOrStderr(), logger.WithContextExtractors(formapi.RequestIDExtractor))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	// Rules from a definition file are always validator tags.
	cfg.Adapter = formstate.AdapterSchema.String()

	forms, apiOpts, err := loadForms(cfg, opts.definitions, formstate.WithLogger(log))
	if err != nil {
		return err
	}
	apiOpts = append(apiOpts, formapi.WithLogger(log))

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthHandler(log))
	r.Mount("/", formapi.NewHandler(forms, apiOpts...).Handle())

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(cmd.Context(), r)
}

// loadForms parses every definition file into a named fieldset factory plus
// the handler options carrying each form's sanitizers.
func loadForms(cfg formstate.Config, paths []string, opts ...formstate.Option) (map[string]formapi.Factory, []formapi.Option, error) {
	forms := make(map[string]formapi.Factory, len(paths))
	var apiOpts []formapi.Option
	for _, path := range paths {
		def, rules, err := parseDefinitionFile(path)
		if err != nil {
			return nil, nil, err
		}
		formOpts, err := def.FormOptions()
		if err != nil {
			return nil, nil, err
		}

		name := def.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		if _, exists := forms[name]; exists {
			return nil, nil, fmt.Errorf("%w: duplicate form name %q", ErrReadDefinition, name)
		}

		forms[name] = func() (*formstate.Fieldset, error) {
			return formstate.NewFieldsetFromConfig(cfg, rules, opts...)
		}
		if len(formOpts) > 0 {
			apiOpts = append(apiOpts, formapi.WithFormOptions(name, formOpts...))
		}
	}
	return forms, apiOpts, nil
}

func parseDefinitionFile(path string) (*Definition, []formstate.FieldRule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrReadDefinition, err)
	}
	defer file.Close()

	def, rules, err := ParseDefinition(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, rules, nil
}
