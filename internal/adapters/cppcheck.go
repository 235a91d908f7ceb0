package adapters

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Sena-ops/cppcheck2teamcity/internal/model"
	"github.com/Sena-ops/cppcheck2teamcity/internal/teamcity"
)

var ErrParse = errors.New("XML do cppcheck inválido")

// node é um elemento genérico do documento; o relatório é mantido inteiro em memória.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
}

func (n node) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParseCppcheckBytes decodifica um relatório --xml do cppcheck (v1 ou v2).
// Os findings saem na ordem do documento.
func ParseCppcheckBytes(b []byte) ([]model.Finding, error) {
	var root node
	dec := xml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	out := make([]model.Finding, 0, 32)
	var walkErr error
	walk(root, func(n node) bool {
		if n.XMLName.Local != "error" {
			return true
		}
		f, err := toFinding(n)
		if err != nil {
			walkErr = err
			return false
		}
		out = append(out, f)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

func ParseCppcheckFile(path string) ([]model.Finding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCppcheckBytes(b)
}

// expectEOF rejeita qualquer elemento ou texto depois do elemento raiz.
// Comentários e instruções de processamento continuam permitidos.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("%w: elemento <%s> após o elemento raiz", ErrParse, t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("%w: conteúdo após o elemento raiz", ErrParse)
			}
		}
	}
}

// walk percorre a árvore em pré-ordem; visit devolve false para interromper.
func walk(n node, visit func(node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// DecodeAttrs escapa todos os atributos de um nó <error>.
func DecodeAttrs(attrs []xml.Attr) model.IssueType {
	t := model.IssueType{Attrs: make(map[string]string, len(attrs))}
	for _, a := range attrs {
		v := teamcity.EscapeAttr(a.Value)
		t.Attrs[a.Name.Local] = v
		switch a.Name.Local {
		case "id":
			t.ID = v
		case "msg":
			t.Msg = v
		case "verbose":
			t.Verbose = v
		case "severity":
			t.Severity = model.Severity(v)
		}
	}
	return t
}

func toFinding(n node) (model.Finding, error) {
	f := model.Finding{IssueType: DecodeAttrs(n.Attrs)}

	// Só filhos diretos; o primeiro <location> é a posição principal do erro.
	// O conversor em Python emitia uma inspection por <location>; aqui é uma por <error>.
	for _, c := range n.Children {
		if c.XMLName.Local != "location" {
			continue
		}
		file, _ := c.attr("file")
		rawLine, _ := c.attr("line")
		line, err := strconv.Atoi(rawLine)
		if err != nil {
			return f, fmt.Errorf("%w: linha %q inválida em %s: %v", ErrParse, rawLine, f.ID, err)
		}
		f.File = file
		f.Line = line
		f.Located = true
		break
	}
	return f, nil
}
