package teamcity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	InspectionTemplate = "##teamcity[inspection " +
		"typeId='{id}' message='{msg}' " +
		"severity='{severity}' file='{file}' line='{line}']"
	InspectionTypeTemplate = "##teamcity[inspectionType id='{id}' " +
		"name='{msg}' description='{verbose}' category='{severity}']"
)

var ErrFormat = errors.New("campo obrigatório ausente na mensagem")

// FormatInspection renderiza um finding já enriquecido e filtrado.
func FormatInspection(fields map[string]string) (string, error) {
	return render(InspectionTemplate, fields)
}

// FormatInspectionType renderiza uma entrada do catálogo de tipos.
func FormatInspectionType(fields map[string]string) (string, error) {
	return render(InspectionTypeTemplate, fields)
}

// render substitui cada {chave} do template pelo valor correspondente.
func render(tmpl string, fields map[string]string) (string, error) {
	var b strings.Builder
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		key := rest[open+1 : open+end]
		val, ok := fields[key]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrFormat, key)
		}
		b.WriteString(rest[:open])
		b.WriteString(val)
		rest = rest[open+end+1:]
	}
}
