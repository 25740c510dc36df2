package providers

import (
	"folio/internal/structures"
	"github.com/rs/zerolog"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == http.MethodPost {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	appLog  zerolog.Logger
	httpLog zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	mode := fs.FileMode(conf.Logger.Mode)
	appFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "app.log"), mode)
	if err != nil {
		return nil, err
	}
	httpFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "http.log"), mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	appOut := io.Writer(appFile)
	httpOut := io.Writer(httpFile)
	if conf.Debug {
		console := zerolog.ConsoleWriter{Out: os.Stderr}
		appOut = zerolog.MultiLevelWriter(appFile, console)
		httpOut = zerolog.MultiLevelWriter(httpFile, console)
	}

	return &LogProvider{
		appLog:  zerolog.New(appOut).Level(level).With().Timestamp().Logger(),
		httpLog: zerolog.New(httpOut).Level(level).With().Timestamp().Logger(),
		files:   []*os.File{appFile, httpFile},
	}, nil
}

func openLogFile(path string, mode fs.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
}

func (l *LogProvider) log(t TypeEnum) *zerolog.Logger {
	if t == TypeApp {
		return &l.appLog
	}
	return &l.httpLog
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.log(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.log(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.log(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.log(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.log(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
}
