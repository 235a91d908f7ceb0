// Package source lê trechos do código analisado para enriquecer as mensagens.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Sena-ops/cppcheck2teamcity/internal/teamcity"
	"golang.org/x/text/encoding/unicode"
)

var ErrSourceFile = errors.New("não foi possível abrir o arquivo fonte")

// Fetcher lê uma linha específica de um arquivo fonte.
// Caminhos relativos são resolvidos a partir de BaseDir (vazio = diretório atual).
type Fetcher struct {
	BaseDir string
}

// Line devolve a linha n (1-based) com o terminador original.
// ok é false quando o arquivo tem menos de n linhas.
func (f Fetcher) Line(path string, n int) (line string, ok bool, err error) {
	if f.BaseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.BaseDir, path)
	}
	fh, err := os.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrSourceFile, err)
	}
	defer fh.Close()

	r := bufio.NewReader(fh)
	for i := 1; ; i++ {
		raw, rerr := r.ReadBytes('\n')
		if len(raw) > 0 && i == n {
			text, derr := unicode.UTF8.NewDecoder().Bytes(raw)
			if derr != nil {
				return "", false, fmt.Errorf("decodificar %s:%d: %w", path, n, derr)
			}
			return string(text), true, nil
		}
		if rerr == io.EOF {
			return "", false, nil
		}
		if rerr != nil {
			return "", false, fmt.Errorf("ler %s: %w", path, rerr)
		}
	}
}

// Enrich anexa o trecho escapado à mensagem: msg, duas quebras, trecho, uma quebra.
func Enrich(msg, snippet string) string {
	return msg + "|n|n" + teamcity.EscapeSnippet(snippet) + "|n"
}
