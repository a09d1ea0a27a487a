package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	cfgName     = "application"
	testCfgName = "application_test"
)

// Keys understood by the walkthrough. Everything under datasource.default feeds the
// connection singleton; see the datasource package.
const (
	DatasourceKey = "datasource.default"
	LogLevelKey   = "log.level"
)

var (
	cfg     *viper.Viper
	cfgErr  error
	once    sync.Once
	logger  zerolog.Logger
	logOnce sync.Once
)

// Config loads the application configuration once per process.
//
// Rules:
//  1. If the current process is running `go test`, it prefers application_test.yml.
//  2. Otherwise it reads application.yml.
//  3. It searches the project root, the working directory and their ./config folders.
//
// A missing file is not an error: the built-in defaults (the fixed demo credentials and
// log level) are always registered, so the returned viper is usable on its own.
func Config() mo.Result[*viper.Viper] {
	once.Do(func() {
		cfg, cfgErr = loadViper()
	})
	return lo.If(cfg == nil, mo.Err[*viper.Viper](fmt.Errorf("load %s: %w", cfgName, cfgErr))).Else(mo.Ok(cfg))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(DatasourceKey+".driver", "mysql")
	v.SetDefault(DatasourceKey+".host", "localhost:3306")
	v.SetDefault(DatasourceKey+".db", "mi_base_de_datos")
	v.SetDefault(DatasourceKey+".user", "usuario")
	v.SetDefault(DatasourceKey+".password", "contraseña")
	v.SetDefault(LogLevelKey, zerolog.WarnLevel.String())
}

func loadViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	addDefaultConfigPaths(v)

	cwd, _ := os.Getwd()
	readFile := func(cand string) bool {
		if _, err := os.Stat(cand); err != nil {
			return false
		}
		v.SetConfigFile(cand)
		return v.ReadInConfig() == nil
	}

	if isTestProcess() {
		dirs := []string{cwd, filepath.Join(cwd, "config")}
		if root, ok := findProjectRoot(cwd); ok {
			dirs = append([]string{root, filepath.Join(root, "config")}, dirs...)
		}
		for _, dir := range dirs {
			if readFile(filepath.Join(dir, testCfgName+".yml")) {
				return v, nil
			}
		}
	}

	v.SetConfigName(cfgName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read %s: %w", cfgName, err)
	}
	return v, nil
}

// addDefaultConfigPaths registers the project root (nearest parent holding go.mod) and
// the working directory, each with its "config" subdir.
func addDefaultConfigPaths(v *viper.Viper) {
	cwd, err := os.Getwd()
	if err != nil {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		return
	}
	if root, ok := findProjectRoot(cwd); ok {
		v.AddConfigPath(root)
		v.AddConfigPath(filepath.Join(root, "config"))
	}
	v.AddConfigPath(cwd)
	v.AddConfigPath(filepath.Join(cwd, "config"))
}

// findProjectRoot walks upward from start until it finds a directory containing a go.mod.
func findProjectRoot(start string) (string, bool) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// isTestProcess detects whether we are running under `go test`.
func isTestProcess() bool {
	for _, a := range os.Args {
		if strings.HasPrefix(a, "-test.") {
			return true
		}
	}
	const maxFrames = 256
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if strings.HasSuffix(f.File, "_test.go") {
			return true
		}
		if !more {
			break
		}
	}
	return false
}

// Logger returns the process-wide logger. It writes human-readable lines to stderr so
// that stdout carries only the walkthrough output. The level comes from log.level.
func Logger() zerolog.Logger {
	logOnce.Do(func() {
		level := zerolog.WarnLevel
		if res := Config(); res.IsOk() {
			if parsed, err := zerolog.ParseLevel(res.MustGet().GetString(LogLevelKey)); err == nil {
				level = parsed
			}
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
			Level(level).
			With().Timestamp().Logger()
	})
	return logger
}
