package scanner

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/Sena-ops/cppcheck2teamcity/internal/adapters"
	"github.com/Sena-ops/cppcheck2teamcity/internal/model"
)

var (
	ErrProcess = errors.New("erro ao executar o cppcheck")
	ErrParse   = errors.New("saída --errorlist do cppcheck inválida")
)

// ErrorList executa `<bin> --errorlist` e chama fn para cada <error> assim que
// a tag de abertura é lida, sem esperar o fim do documento.
// stdout e stderr do processo vão para o mesmo pipe.
func ErrorList(ctx context.Context, bin string, fn func(model.IssueType) error) error {
	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("%w: pipe: %v", ErrProcess, err)
	}
	defer r.Close()

	cmd := exec.CommandContext(ctx, bin, "--errorlist")
	cmd.Stdout = w
	cmd.Stderr = w
	if err := cmd.Start(); err != nil {
		w.Close()
		return fmt.Errorf("%w: %v", ErrProcess, err)
	}
	// O filho mantém sua cópia; fechando a nossa o leitor recebe EOF quando ele terminar.
	w.Close()

	if err := streamIssueTypes(r, fn); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return err
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%w: %s --errorlist: %v", ErrProcess, bin, err)
	}
	return nil
}

func streamIssueTypes(r io.Reader, fn func(model.IssueType) error) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "error" {
			continue
		}
		if err := fn(adapters.DecodeAttrs(se.Attr)); err != nil {
			return err
		}
	}
}
