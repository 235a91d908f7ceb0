// Package teamcity implementa a sintaxe de service messages do TeamCity
// (https://www.jetbrains.com/help/teamcity/service-messages.html).
package teamcity

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxValueLen acima disso o valor é cortado para TruncatedLen runas + "...".
	MaxValueLen  = 4000
	TruncatedLen = 396
)

// A ordem importa: "|" precisa ser escapado antes dos demais.
var escaper = strings.NewReplacer(
	"|", "||",
	"'", "|'",
	"[", "|[",
	"]", "|]",
	`\012`, "|n",
)

var snippetEscaper = strings.NewReplacer(
	"\n", "|n",
	"\r", "",
)

// Escape converte texto cru em valor literal de service message.
// O "\012" que o cppcheck grava nos atributos vira |n.
func Escape(s string) string {
	return escaper.Replace(s)
}

// EscapeSnippet escapa uma linha de código-fonte, incluindo quebras reais.
func EscapeSnippet(s string) string {
	return snippetEscaper.Replace(Escape(s))
}

// Truncate corta valores grandes demais. Pode partir uma sequência de escape ao meio.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxValueLen {
		return s
	}
	return string([]rune(s)[:TruncatedLen]) + "..."
}

// EscapeAttr é o tratamento aplicado a todo atributo vindo do XML.
func EscapeAttr(s string) string {
	return Truncate(Escape(s))
}

// Unescape desfaz Escape segundo as regras do TeamCity.
func Unescape(s string) string {
	if !strings.Contains(s, "|") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '|' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
