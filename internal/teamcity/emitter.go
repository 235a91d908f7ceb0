package teamcity

import (
	"fmt"
	"io"

	"github.com/Sena-ops/cppcheck2teamcity/internal/model"
)

// Emitter escreve uma service message por linha.
type Emitter struct {
	w     io.Writer
	count int
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

func (e *Emitter) Inspection(f model.Finding) error {
	line, err := FormatInspection(f.Fields())
	if err != nil {
		return fmt.Errorf("inspection %s: %w", f.ID, err)
	}
	return e.writeLine(line)
}

func (e *Emitter) InspectionType(t model.IssueType) error {
	line, err := FormatInspectionType(t.Fields())
	if err != nil {
		return fmt.Errorf("inspectionType %s: %w", t.ID, err)
	}
	return e.writeLine(line)
}

// Count devolve quantas mensagens já foram escritas.
func (e *Emitter) Count() int { return e.count }

func (e *Emitter) writeLine(line string) error {
	if _, err := fmt.Fprintln(e.w, line); err != nil {
		return fmt.Errorf("escrever mensagem: %w", err)
	}
	e.count++
	return nil
}
