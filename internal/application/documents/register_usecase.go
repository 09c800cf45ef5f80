package documents

import (
	"context"
	"fmt"

	"github.com/paktech/tender-docs/internal/domain"
	"github.com/paktech/tender-docs/internal/domain/entity"
	"github.com/paktech/tender-docs/internal/domain/repository"
	"github.com/paktech/tender-docs/pkg/logger"
)

// RegisterUseCase exporta el listado de un tipo de documento como PDF tabular.
type RegisterUseCase struct {
	repo     repository.DocumentRepository
	renderer RegisterRenderer
	log      *logger.Logger
}

// NewRegisterUseCase construye el caso de uso.
func NewRegisterUseCase(repo repository.DocumentRepository, renderer RegisterRenderer, log *logger.Logger) *RegisterUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RegisterUseCase{repo: repo, renderer: renderer, log: log.Named("register")}
}

// Export domain.ErrInvalidInput si kind no es un tipo conocido.
func (uc *RegisterUseCase) Export(ctx context.Context, kind entity.DocumentKind, limit, offset int) (*entity.RenderedPDF, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, kind)
	}
	if uc.repo == nil {
		return nil, errNoRepository
	}
	rows, err := uc.repo.ListSummaries(ctx, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("register: listar %s: %w", kind, err)
	}
	res, err := uc.renderer.Render(ctx, kind, rows)
	if err != nil {
		return nil, fmt.Errorf("register: generación fallida: %w", err)
	}
	uc.log.Info().Str("kind", string(kind)).Int("rows", len(rows)).Int("pages", res.Pages).Msg("registro exportado")
	return res, nil
}
