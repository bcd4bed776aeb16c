package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/docserver"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/openapi"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// app holds what every subcommand needs. It is filled in by the root
// command's pre-run hook.
type app struct {
	settings config.Settings
	log      *slog.Logger
	cat      *catalog
	doc      *openapi.Document
}

func (a *app) init(settings config.Settings, logOutput io.Writer) {
	a.settings = settings
	a.log = logger.New(
		logger.WithService("schemadoc"),
		logger.WithLevelName(settings.LogLevel),
		logger.WithFormat(logger.Format(settings.LogFormat)),
		logger.WithOutput(logOutput),
		logger.WithContextExtractors(logger.RequestIDExtractor()),
	)
	a.cat = newCatalog(settings)
	a.doc = openapi.NewDocument(openapi.Info{
		Title:       "Catalog BFF",
		Version:     version,
		Description: "DTO schemas declared with fieldkit",
	}, a.cat.all()...)
}

func newRootCmd() *cobra.Command {
	var (
		a      app
		format string
	)

	root := &cobra.Command{
		Use:           "schemadoc",
		Short:         "Render the catalog schema document",
		Long:          "Render, serve or check payloads against the catalog DTO schemas",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			a.init(settings, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), a.doc, format)
		},
	}
	root.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")

	root.AddCommand(newServeCmd(&a), newCheckCmd(&a))
	return root
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the document with Swagger UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg docserver.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			a.doc.Register("fieldkit")
			opts := append(cfg.Options(),
				docserver.WithAddr(a.settings.DocsAddr),
				docserver.WithLogger(a.log),
			)
			return docserver.New(a.doc, opts...).Run(cmd.Context())
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check SCHEMA [FILE]",
		Short: "Validate a JSON payload (file or stdin) against a schema",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("%w: %w", errUsage, err)
				}
				defer f.Close()
				in = f
			}
			return a.check(cmd.Context(), args[0], in, cmd.OutOrStdout())
		},
	}
}

func render(w io.Writer, doc *openapi.Document, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = doc.JSON()
	case "yaml", "yml":
		data, err = doc.YAML()
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// check validates a payload and prints the validated output or the failures
// as JSON. Failures are reported with errRejected.
func (a *app) check(ctx context.Context, schemaName string, in io.Reader, out io.Writer) error {
	schema, ok := a.cat.lookup(schemaName)
	if !ok {
		return fmt.Errorf("%w: unknown schema %q", errUsage, schemaName)
	}

	decoder := json.NewDecoder(in)
	decoder.UseNumber()
	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("%w: decode payload: %w", errUsage, err)
	}

	mode, err := a.settings.Mode()
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	result, err := schema.ValidateMode(payload, mode)

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		a.log.DebugContext(ctx, "payload rejected", logger.Schema(schemaName), logger.Fields(errs.Fields()))
		if err := enc.Encode(map[string]any{"errors": errs}); err != nil {
			return err
		}
		return errRejected
	}
	return enc.Encode(map[string]any{"data": schema.Serialize(result)})
}
