package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envFile   = ".env"
	envPrefix = "XLSXYAML_"
)

// loadEnv merges the variables of the .env file in dir, when it exists, with
// the process environment. Process variables win. The file cannot move the
// input folder, so its XLSXYAML_DIR is ignored.
func loadEnv(dir string) map[string]string {
	env := map[string]string{}
	if fileEnv, err := godotenv.Read(filepath.Join(dir, envFile)); err == nil {
		for k, v := range fileEnv {
			env[k] = v
		}
		delete(env, envName("dir"))
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
	return env
}

// envDir returns the folder holding the .env file: --dir when given, else
// XLSXYAML_DIR from the process environment, else the flag default.
func envDir(fs *pflag.FlagSet) string {
	f := fs.Lookup("dir")
	if !f.Changed {
		if v, ok := os.LookupEnv(envName(f.Name)); ok {
			return v
		}
	}
	return f.Value.String()
}

// envName maps a flag name such as "output-dir" to XLSXYAML_OUTPUT_DIR.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv sets every flag not given on the command line from env.
func applyEnv(fs *pflag.FlagSet, env map[string]string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		v, ok := env[envName(f.Name)]
		if !ok {
			return
		}
		if setErr := fs.Set(f.Name, v); setErr != nil {
			err = fmt.Errorf("invalid %s: %w", envName(f.Name), setErr)
		}
	})
	return err
}

// newLogger returns a console logger without timestamps writing to w.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.StacktraceKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
