// Command render genera el PDF de un documento JSON sin levantar el servicio HTTP.
//
//	render -kind quotation -in q.json -out out/
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/paktech/tender-docs/internal/domain/entity"
	infrapdf "github.com/paktech/tender-docs/internal/infrastructure/pdf"
	"github.com/paktech/tender-docs/pkg/config"
	"github.com/paktech/tender-docs/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", "", "invoice | purchase-order | quotation")
	in := fs.String("in", "", "archivo JSON del documento")
	out := fs.String("out", ".", "directorio de salida")
	assetsDir := fs.String("assets", "", "directorio de imágenes (por defecto ASSETS_DIR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in requerido")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if *assetsDir == "" {
		*assetsDir = cfg.PDF.AssetsDir
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Output: stderr})

	body, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	gen := infrapdf.NewGenerator(infrapdf.NewAssetLoader(os.DirFS(*assetsDir)), infrapdf.OptionsFromConfig(cfg), log)

	res, err := render(ctx, gen, *kind, body)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return err
	}
	path := filepath.Join(*out, res.Filename)
	if err := os.WriteFile(path, res.Content, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(stdout, path)
	return nil
}

func render(ctx context.Context, gen *infrapdf.Generator, kind string, body []byte) (*entity.RenderedPDF, error) {
	switch kind {
	case "invoice":
		var inv entity.Invoice
		if err := json.Unmarshal(body, &inv); err != nil {
			return nil, fmt.Errorf("json inválido: %w", err)
		}
		return gen.RenderInvoice(ctx, &inv)
	case "purchase-order":
		var po entity.PurchaseOrder
		if err := json.Unmarshal(body, &po); err != nil {
			return nil, fmt.Errorf("json inválido: %w", err)
		}
		return gen.RenderPurchaseOrder(ctx, &po)
	case "quotation":
		var q entity.Quotation
		if err := json.Unmarshal(body, &q); err != nil {
			return nil, fmt.Errorf("json inválido: %w", err)
		}
		return gen.RenderQuotation(ctx, &q)
	default:
		return nil, fmt.Errorf("-kind desconocido %q", kind)
	}
}
