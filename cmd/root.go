package cmd

import (
	"github.com/Sena-ops/cppcheck2teamcity/internal/config"
	"github.com/Sena-ops/cppcheck2teamcity/internal/logging"
	"github.com/Sena-ops/cppcheck2teamcity/internal/pipeline"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	cfg        config.Config
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "cppcheck2teamcity",
		Short: "Converte o XML do cppcheck em service messages do TeamCity",
		Long: `Lê o relatório XML do cppcheck e imprime uma mensagem ##teamcity[inspection ...]
por finding, com a linha de código ofendida anexada à mensagem.
Com --print-types também emite ##teamcity[inspectionType ...] a partir de "cppcheck --errorlist".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return pipeline.New(cfg, cmd.OutOrStdout(), logging.Logger).Run(cmd.Context())
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Arquivo YAML com as opções")
	f.BoolVar(&opts.cfg.Debug, "debug", false, "Habilita logs em nível debug")
	f.StringVar(&opts.cfg.SourceDir, "source-dir", "", "Diretório base para caminhos relativos do relatório")

	cmd.Flags().BoolVar(&opts.cfg.PrintTypes, "print-types", false, "Imprime também mensagens inspectionType (requer o executável do cppcheck)")
	cmd.Flags().StringVarP(&opts.cfg.XMLFile, "xmlfile", "f", config.DefaultXMLFile, "Arquivo XML gerado pelo cppcheck")
	cmd.Flags().StringVarP(&opts.cfg.Root, "root", "r", "", "Raiz do projeto; findings fora dela são descartados")
	cmd.Flags().StringVarP(&opts.cfg.Exclude, "exclude", "e", "", "Prefixo (relativo à raiz) a ignorar")
	cmd.Flags().StringVar(&opts.cfg.SarifOut, "sarif", "", "Grava também os findings emitidos em SARIF neste caminho")

	cmd.AddCommand(newTypesCmd(opts))
	return cmd
}

// resolve aplica o arquivo de config e o ambiente, mantendo as flags passadas explicitamente.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = o.cfg.Debug
	}
	if flags.Changed("source-dir") {
		cfg.SourceDir = o.cfg.SourceDir
	}
	if flags.Changed("print-types") {
		cfg.PrintTypes = o.cfg.PrintTypes
	}
	if flags.Changed("xmlfile") {
		cfg.XMLFile = o.cfg.XMLFile
	}
	if flags.Changed("root") {
		cfg.Root = o.cfg.Root
	}
	if flags.Changed("exclude") {
		cfg.Exclude = o.cfg.Exclude
	}
	if flags.Changed("sarif") {
		cfg.SarifOut = o.cfg.SarifOut
	}

	logging.InitLogger(cfg.Debug)
	logging.Logger.Debugw("Configuração resolvida",
		"xmlfile", cfg.XMLFile,
		"root", cfg.Root,
		"exclude", cfg.Exclude,
		"print_types", cfg.PrintTypes,
		"cppcheck", cfg.CppcheckBin,
	)
	return cfg, nil
}

// execute roda o comando e descarrega o logger antes de devolver o erro,
// já que cobra.CheckErr encerra o processo com os.Exit.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	logging.Sync()
	return err
}

func Execute() {
	cobra.CheckErr(execute(rootCmd))
}
