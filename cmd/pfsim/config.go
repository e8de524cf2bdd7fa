package main

import (
	"github.com/LucasIBorrat/pfsim/memoria"
	"github.com/LucasIBorrat/pfsim/utils"
)

// PfsimConfig es la configuración completa del binario: parámetros de la memoria más el entorno
type PfsimConfig struct {
	memoria.Configuracion
	LogLevel      string `json:"LOG_LEVEL"`
	LogPath       string `json:"LOG_PATH"`       // Vacío: sólo stderr
	DumpPath      string `json:"DUMP_PATH"`      // Directorio para los volcados
	IPMemoria     string `json:"IP_MEMORIA"`     // Modo servicio
	PuertoMemoria int    `json:"PUERTO_MEMORIA"` // Modo servicio
}

func configPorDefecto() PfsimConfig {
	return PfsimConfig{
		Configuracion: memoria.ConfiguracionPorDefecto(),
		LogLevel:      "info",
		IPMemoria:     "127.0.0.1",
		PuertoMemoria: 8002,
	}
}

// cargarConfig lee ruta sobre los valores por defecto. Sin ruta, usa sólo los valores por defecto.
func cargarConfig(ruta string) (*PfsimConfig, error) {
	if ruta == "" {
		config := configPorDefecto()
		return &config, nil
	}

	config, err := utils.CargarConfiguracion(ruta, configPorDefecto())
	if err != nil {
		return nil, err
	}
	if err := config.Validar(); err != nil {
		return nil, err
	}
	return config, nil
}
