package sarif

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/cppcheck2teamcity/internal/model"
	"github.com/Sena-ops/cppcheck2teamcity/internal/teamcity"
)

const (
	Version = "2.1.0"
	Schema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// Build converte os findings emitidos em um log SARIF 2.1.0.
// Os textos chegam escapados para o TeamCity e são desescapados aqui.
func Build(findings []model.Finding, toolName, toolVersion string) Log {
	results := make([]Result, 0, len(findings))
	for _, f := range findings {
		fileURI := toURI(f.File)
		if fileURI == "" {
			fileURI = "UNKNOWN"
		}
		start := f.Line
		if start <= 0 {
			start = 1
		}

		results = append(results, Result{
			RuleID: teamcity.Unescape(f.ID),
			Level:  sevToLevel(f.Severity),
			Message: Message{
				Text: strings.TrimSpace(teamcity.Unescape(f.Msg)),
			},
			Locations: []Location{
				{
					PhysicalLocation: PhysicalLocation{
						ArtifactLocation: ArtifactLocation{URI: fileURI},
						Region:           Region{StartLine: start},
					},
				},
			},
		})
	}

	return Log{
		Version: Version,
		Schema:  Schema,
		Runs: []Run{
			{
				Tool:    Tool{Driver: Driver{Name: toolName, Version: toolVersion}},
				Results: results,
			},
		},
	}
}

// Export grava o log SARIF em outPath, criando o diretório se preciso.
func Export(findings []model.Finding, outPath, toolName, toolVersion string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("criar dir sarif: %w", err)
		}
	}

	data, err := json.MarshalIndent(Build(findings, toolName, toolVersion), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sarif: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("escrever sarif: %w", err)
	}
	return nil
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SevError:
		return "error"
	case model.SevWarning, model.SevPerformance, model.SevPortability:
		return "warning"
	default:
		return "note"
	}
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
