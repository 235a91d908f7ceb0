package logging

import (
	"go.uber.org/zap"
)

// Logger começa como no-op para que pacotes possam logar antes de InitLogger (e nos testes).
var Logger = zap.NewNop().Sugar()

// InitLogger configura o logger global. stdout fica reservado às service messages,
// então toda saída de log vai para stderr.
func InitLogger(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		panic("erro ao inicializar logger: " + err.Error())
	}
	Logger = logger.Sugar()
}

func Sync() {
	_ = Logger.Sync()
}
