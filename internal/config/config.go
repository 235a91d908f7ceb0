// Package config resolve as configurações do conversor: arquivo YAML opcional,
// .env e variáveis de ambiente. É o único lugar que lê CPPCHECK_BIN.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultXMLFile     = "cppcheck.xml"
	DefaultCppcheckBin = "/usr/bin/cppcheck"
	EnvCppcheckBin     = "CPPCHECK_BIN"
)

type Config struct {
	XMLFile     string `yaml:"xmlfile"`
	Root        string `yaml:"root"`
	Exclude     string `yaml:"exclude"`
	PrintTypes  bool   `yaml:"print_types"`
	CppcheckBin string `yaml:"cppcheck_bin"`
	SourceDir   string `yaml:"source_dir"`
	SarifOut    string `yaml:"sarif"`
	Debug       bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		XMLFile:     DefaultXMLFile,
		CppcheckBin: DefaultCppcheckBin,
	}
}

// Load monta a configuração: padrões, depois o arquivo YAML (se path != ""),
// depois CPPCHECK_BIN. Flags da linha de comando são aplicadas por quem chama.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("ler config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if bin := strings.TrimSpace(os.Getenv(EnvCppcheckBin)); bin != "" {
		cfg.CppcheckBin = bin
	}
	if cfg.XMLFile == "" {
		cfg.XMLFile = DefaultXMLFile
	}
	if cfg.CppcheckBin == "" {
		cfg.CppcheckBin = DefaultCppcheckBin
	}
	return cfg, nil
}
