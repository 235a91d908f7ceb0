package model

import "strconv"

type Severity string

// Severidades emitidas pelo cppcheck.
const (
	SevError       Severity = "error"
	SevWarning     Severity = "warning"
	SevStyle       Severity = "style"
	SevPerformance Severity = "performance"
	SevPortability Severity = "portability"
	SevInformation Severity = "information"
)

// IssueType é uma classe de defeito conhecida pelo analisador (sem localização).
type IssueType struct {
	ID       string
	Msg      string
	Verbose  string
	Severity Severity
	Attrs    map[string]string // todos os atributos do nó <error>, já escapados
}

// Fields devolve os atributos mesclados com os campos obrigatórios.
func (t IssueType) Fields() map[string]string {
	out := make(map[string]string, len(t.Attrs)+4)
	for k, v := range t.Attrs {
		out[k] = v
	}
	setIf(out, "id", t.ID)
	setIf(out, "msg", t.Msg)
	setIf(out, "verbose", t.Verbose)
	setIf(out, "severity", string(t.Severity))
	return out
}

// Finding é uma ocorrência de defeito reportada no XML do cppcheck.
type Finding struct {
	IssueType
	File    string
	Line    int  // 1-based
	Located bool // false quando o nó não tem <location>
}

func (f Finding) HasLocation() bool {
	return f.Located
}

func (f Finding) Fields() map[string]string {
	out := f.IssueType.Fields()
	if f.HasLocation() {
		out["file"] = f.File
		out["line"] = strconv.Itoa(f.Line)
	}
	return out
}

func setIf(m map[string]string, k, v string) {
	if v != "" {
		m[k] = v
	}
}
