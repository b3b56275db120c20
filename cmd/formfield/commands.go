package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/internal/config"
	"github.com/goliatone/go-formfield/internal/logging"
	"github.com/goliatone/go-formfield/pkg/docs"
	"github.com/goliatone/go-formfield/pkg/formdoc"
	"github.com/goliatone/go-formfield/pkg/openapi"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
	"github.com/goliatone/go-formfield/pkg/render"
)

type app struct {
	stdout   io.Writer
	prompter prompter

	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCommand(stdout io.Writer, p prompter) *cobra.Command {
	a := &app{stdout: stdout, prompter: p, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "formfield",
		Short:         "Render Semantic UI form fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error or off")

	root.AddCommand(
		a.renderCommand(),
		a.docsCommand(),
		a.promptCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

type renderFlags struct {
	doc       string
	openAPI   string
	operation string
	submit    string
	errors    string
	renderer  string
	output    string
	sanitize  bool
	strict    bool
}

func (a *app) renderCommand() *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form from a form document or an OpenAPI operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRender(cmd, flags)
		},
	}
	cmd.Flags().StringVar(&flags.doc, "doc", "", "form document (yaml)")
	cmd.Flags().StringVar(&flags.openAPI, "openapi", "", "OpenAPI document path or URL")
	cmd.Flags().StringVar(&flags.operation, "operation", "", "OpenAPI operation id")
	cmd.Flags().StringVar(&flags.submit, "submit", "", "submit button label")
	cmd.Flags().StringVar(&flags.errors, "errors", "", "server error payload (yaml or json map of path to messages)")
	cmd.Flags().StringVarP(&flags.renderer, "renderer", "r", "", "renderer: html, tree or page")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&flags.sanitize, "sanitize", false, "sanitize rendered HTML")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on field configuration warnings")
	cmd.MarkFlagsMutuallyExclusive("doc", "openapi")
	cmd.MarkFlagsOneRequired("doc", "openapi")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, flags renderFlags) error {
	req := orchestrator.Request{
		Submit:   flags.submit,
		Renderer: pick(cmd, "renderer", flags.renderer, a.cfg.Renderer),
		RenderOptions: render.RenderOptions{
			Sanitize: pickBool(cmd, "sanitize", flags.sanitize, a.cfg.Sanitize),
		},
	}

	switch {
	case flags.doc != "":
		doc, err := formdoc.LoadFile(flags.doc)
		if err != nil {
			return err
		}
		req.Document = &doc
	default:
		if flags.operation == "" {
			return errors.New("--operation is required with --openapi")
		}
		src := openapi.SourceFromLocation(flags.openAPI)
		req.OpenAPISource = &src
		req.OperationID = flags.operation
	}

	if flags.errors != "" {
		payload, err := loadErrors(flags.errors)
		if err != nil {
			return err
		}
		req.Errors = payload
	}

	orch := orchestrator.New(
		orchestrator.WithLogger(a.logger),
		orchestrator.WithStrict(pickBool(cmd, "strict", flags.strict, a.cfg.Strict)),
	)
	out, err := orch.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}
	return a.write(pick(cmd, "output", flags.output, a.cfg.Output), out)
}

func (a *app) docsCommand() *cobra.Command {
	var (
		tree   bool
		list   bool
		title  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "docs [example...]",
		Short: "Render the example catalogue as an HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := docs.DefaultCatalog()
			if list {
				for _, example := range catalog.List() {
					fmt.Fprintf(a.stdout, "%s\t%s\n", example.Name, example.Section)
				}
				return nil
			}

			examples := catalog.List()
			if len(args) > 0 {
				selected, err := catalog.Select(args...)
				if err != nil {
					return err
				}
				examples = selected
			}

			options := []docs.PageOption{
				docs.WithTitle(pick(cmd, "title", title, a.cfg.Title)),
				docs.WithLogger(a.logger),
			}
			if pickBool(cmd, "tree", tree, a.cfg.Tree) {
				options = append(options, docs.WithTree())
			}
			page, err := docs.NewPage(options...)
			if err != nil {
				return err
			}
			out, err := page.RenderExamples(cmd.Context(), examples, render.RenderOptions{Sanitize: a.cfg.Sanitize})
			if err != nil {
				return err
			}
			return a.write(pick(cmd, "output", output, a.cfg.Output), out)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "include the element tree under each example")
	cmd.Flags().BoolVar(&list, "list", false, "list example names and exit")
	cmd.Flags().StringVar(&title, "title", "", "page title")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the formfield version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(a.stdout, version)
			return err
		},
	}
}

func (a *app) write(path string, out []byte) error {
	if path == "" {
		_, err := a.stdout.Write(append(out, '\n'))
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Info("output written", zap.String("path", path), zap.Int("bytes", len(out)))
	return nil
}

func loadErrors(path string) (map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read errors: %w", err)
	}
	var payload map[string][]string
	if err := yaml.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode errors %s: %w", path, err)
	}
	return payload, nil
}

// pick prefers an explicitly set flag over the configured value.
func pick(cmd *cobra.Command, name, flag, configured string) string {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return configured
}

func pickBool(cmd *cobra.Command, name string, flag, configured bool) bool {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return configured
}
