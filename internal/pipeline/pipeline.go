// Package pipeline liga parser, filtro, leitura de trechos e emissão de mensagens.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/Sena-ops/cppcheck2teamcity/internal/adapters"
	"github.com/Sena-ops/cppcheck2teamcity/internal/config"
	"github.com/Sena-ops/cppcheck2teamcity/internal/filter"
	"github.com/Sena-ops/cppcheck2teamcity/internal/model"
	"github.com/Sena-ops/cppcheck2teamcity/internal/sarif"
	"github.com/Sena-ops/cppcheck2teamcity/internal/scanner"
	"github.com/Sena-ops/cppcheck2teamcity/internal/source"
	"github.com/Sena-ops/cppcheck2teamcity/internal/teamcity"
	"go.uber.org/zap"
)

type Converter struct {
	cfg     config.Config
	filter  filter.Filter
	fetcher source.Fetcher
	emitter *teamcity.Emitter
	logger  *zap.SugaredLogger
}

func New(cfg config.Config, out io.Writer, logger *zap.SugaredLogger) *Converter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Converter{
		cfg:     cfg,
		filter:  filter.New(cfg.Root, cfg.Exclude),
		fetcher: source.Fetcher{BaseDir: cfg.SourceDir},
		emitter: teamcity.NewEmitter(out),
		logger:  logger,
	}
}

// Run executa o fluxo completo: catálogo de tipos (se pedido), findings e SARIF opcional.
// Qualquer erro interrompe a execução; uma falha no catálogo impede a leitura do relatório.
func (c *Converter) Run(ctx context.Context) error {
	if c.cfg.PrintTypes {
		if err := c.PrintTypes(ctx); err != nil {
			return err
		}
	}

	emitted, err := c.Convert(c.cfg.XMLFile)
	if err != nil {
		return err
	}

	if c.cfg.SarifOut != "" {
		if err := sarif.Export(emitted, c.cfg.SarifOut, "cppcheck", ""); err != nil {
			return err
		}
		c.logger.Infow("SARIF gerado", "arquivo", c.cfg.SarifOut, "resultados", len(emitted))
	}
	return nil
}

// PrintTypes emite um inspectionType por entrada de `cppcheck --errorlist`.
func (c *Converter) PrintTypes(ctx context.Context) error {
	c.logger.Debugw("Consultando catálogo de tipos", "cppcheck", c.cfg.CppcheckBin)
	n := 0
	err := scanner.ErrorList(ctx, c.cfg.CppcheckBin, func(t model.IssueType) error {
		n++
		return c.emitter.InspectionType(t)
	})
	if err != nil {
		return fmt.Errorf("catálogo de tipos: %w", err)
	}
	c.logger.Infow("Tipos emitidos", "total", n)
	return nil
}

// Convert lê o relatório em xmlPath e emite uma inspection por finding aceito.
// Devolve os findings emitidos, já com caminho reescrito e trecho anexado.
func (c *Converter) Convert(xmlPath string) ([]model.Finding, error) {
	findings, err := adapters.ParseCppcheckFile(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("relatório %s: %w", xmlPath, err)
	}
	c.logger.Debugw("Relatório carregado",
		"arquivo", xmlPath,
		"findings", len(findings),
		"filtro_raiz", c.filter.Enabled(),
	)

	var emitted []model.Finding
	skipped, filtered := 0, 0
	for _, f := range findings {
		if !f.HasLocation() {
			c.logger.Errorw("Finding sem <location> ignorado", "id", f.ID)
			skipped++
			continue
		}
		if !c.filter.Passes(f.File) {
			filtered++
			continue
		}

		out, err := c.process(f)
		if err != nil {
			return emitted, err
		}
		emitted = append(emitted, out)
	}

	c.logger.Infow("Conversão concluída",
		"emitidos", len(emitted),
		"mensagens", c.emitter.Count(),
		"filtrados", filtered,
		"sem_localizacao", skipped,
	)
	return emitted, nil
}

func (c *Converter) process(f model.Finding) (model.Finding, error) {
	line, ok, err := c.fetcher.Line(f.File, f.Line)
	if err != nil {
		return f, err
	}
	if ok {
		f.Msg = source.Enrich(f.Msg, line)
	}
	f.File = c.filter.Rewrite(f.File)

	if err := c.emitter.Inspection(f); err != nil {
		return f, err
	}
	return f, nil
}
