package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// LogWriter owns the optional log file opened by InitLogger.
type LogWriter struct {
	file *os.File
}

// Dispose closes the log file, if any.
func (lw *LogWriter) Dispose() {
	if lw.file != nil {
		lw.file.Close()
		lw.file = nil
	}
}

type logFileHook struct {
	writer    *os.File
	formatter logger.Formatter
	levels    []logger.Level
}

func (hook *logFileHook) Levels() []logger.Level {
	return hook.levels
}

func (hook *logFileHook) Fire(entry *logger.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.writer.Write(line)
	return err
}

// InitLogger configures the standard logrus logger from the logging section of the config.
func InitLogger() (*LogWriter, *logger.Logger) {
	log := logger.StandardLogger()
	logWriter := &LogWriter{}

	outputLevel, err := logger.ParseLevel(Config.Logging.OutputLevel)
	if err != nil {
		outputLevel = logger.InfoLevel
	}
	log.SetLevel(outputLevel)
	if Config.Logging.OutputStderr {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(os.Stdout)
	}

	if Config.Logging.FilePath != "" {
		fileLevel, err := logger.ParseLevel(Config.Logging.FileLevel)
		if err != nil {
			fileLevel = outputLevel
		}
		if fileLevel > log.GetLevel() {
			log.SetLevel(fileLevel)
		}

		file, err := os.OpenFile(Config.Logging.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.WithError(err).Errorf("error opening log file %v", Config.Logging.FilePath)
		} else {
			logWriter.file = file
			log.AddHook(&logFileHook{
				writer:    file,
				formatter: &logger.JSONFormatter{},
				levels:    logger.AllLevels[:fileLevel+1],
			})
		}
	}

	return logWriter, log
}

// LogFatal logs a fatal error with callstack info that skips callerSkip many levels with arbitrarily many additional infos.
// callerSkip equal to 0 gives you info directly where LogFatal is called.
func LogFatal(err error, errorMsg interface{}, callerSkip int, additionalInfos ...map[string]interface{}) {
	logErrorInfo(err, callerSkip, additionalInfos...).Fatal(errorMsg)
}

// LogError logs an error with callstack info that skips callerSkip many levels with arbitrarily many additional infos.
// callerSkip equal to 0 gives you info directly where LogError is called.
func LogError(err error, errorMsg interface{}, callerSkip int, additionalInfos ...map[string]interface{}) {
	logErrorInfo(err, callerSkip, additionalInfos...).Error(errorMsg)
}

func logErrorInfo(err error, callerSkip int, additionalInfos ...map[string]interface{}) *logger.Entry {
	logFields := logger.NewEntry(logger.StandardLogger())

	pc, fullFilePath, line, ok := runtime.Caller(callerSkip + 2)
	if ok {
		logFields = logFields.WithFields(logger.Fields{
			"_file":     filepath.Base(fullFilePath),
			"_function": runtime.FuncForPC(pc).Name(),
			"_line":     line,
		})
	} else {
		logFields = logFields.WithField("runtime", "Callstack cannot be read")
	}

	errColl := []string{}
	for {
		errColl = append(errColl, fmt.Sprint(err))
		nextErr := errors.Unwrap(err)
		if nextErr != nil {
			err = nextErr
		} else {
			break
		}
	}

	for idx := 0; idx < (len(errColl) - 1); idx++ {
		nextErrInfoText := fmt.Sprintf("~errInfo_%v~", idx+1)
		if idx == (len(errColl) - 2) {
			nextErrInfoText = "~error~"
		}

		// replace the last occurrence of the wrapped error text
		lastIdx := strings.LastIndex(errColl[idx], errColl[idx+1])
		if lastIdx != -1 {
			errColl[idx] = errColl[idx][:lastIdx] + nextErrInfoText + errColl[idx][lastIdx+len(errColl[idx+1]):]
		}

		logFields = logFields.WithField(fmt.Sprintf("errInfo_%v", idx), errColl[idx])
	}

	if err != nil {
		logFields = logFields.WithField("errType", fmt.Sprintf("%T", err)).WithError(err)
	}

	for _, infoMap := range additionalInfos {
		for name, info := range infoMap {
			logFields = logFields.WithField(name, info)
		}
	}

	return logFields
}
