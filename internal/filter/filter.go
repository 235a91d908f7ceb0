// Package filter decide quais findings entram no relatório a partir da raiz do projeto.
package filter

import "strings"

const separator = "/"

// Filter guarda a raiz de inclusão e o prefixo de exclusão (relativo à raiz).
type Filter struct {
	Root    string
	Exclude string
}

// New normaliza a raiz para sempre terminar com separador.
func New(root, exclude string) Filter {
	if root != "" && !strings.HasSuffix(root, separator) {
		root += separator
	}
	return Filter{Root: root, Exclude: exclude}
}

// Enabled indica se há raiz configurada; sem raiz tudo passa.
func (f Filter) Enabled() bool {
	return f.Root != ""
}

func (f Filter) Passes(file string) bool {
	if f.Root == "" {
		return true
	}
	if !strings.HasPrefix(file, f.Root) {
		return false
	}
	return f.Exclude == "" || !strings.HasPrefix(file, f.Root+f.Exclude)
}

// Rewrite remove a primeira ocorrência da raiz, em qualquer posição do caminho.
func (f Filter) Rewrite(file string) string {
	if f.Root == "" {
		return file
	}
	return strings.Replace(file, f.Root, "", 1)
}

// Passes é a forma funcional de New(root, exclude).Passes(file).
func Passes(file, root, exclude string) bool {
	return New(root, exclude).Passes(file)
}
