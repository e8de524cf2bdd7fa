package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	InfoLog  = slog.Default()
	ErrorLog = slog.Default()
)

// InicializarLogger configura los loggers globales.
// Se escribe en stderr (stdout queda para el reporte) y, si se pasa logPath, también en ese archivo.
// La función devuelta cierra el archivo de log; sin logPath no hace nada.
func InicializarLogger(logLevel string, moduleName string, logPath string) (func() error, error) {
	level, errNivel := convertirNivel(logLevel)

	cerrar := func() error { return nil }
	var salida io.Writer = os.Stderr
	if logPath != "" {
		archivo, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			return nil, fmt.Errorf("error al abrir archivo de log %s: %w", logPath, err)
		}
		salida = io.MultiWriter(os.Stderr, archivo)
		cerrar = archivo.Close
	}

	configurarLoggers(salida, level, moduleName)

	if errNivel != nil {
		InfoLog.Warn(errNivel.Error())
	}
	return cerrar, nil
}

func configurarLoggers(salida io.Writer, level slog.Level, moduleName string) {
	handler := slog.NewTextHandler(salida, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler).With("modulo", moduleName)

	InfoLog = logger
	ErrorLog = logger
}

// convertirNivel traduce el LOG_LEVEL del config a slog.Level. Por defecto INFO.
func convertirNivel(logLevel string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("nivel de log %q inexistente, se usa INFO", logLevel)
	}
}
