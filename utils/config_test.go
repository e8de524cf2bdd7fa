package utils

import (
	"os"
	"path/filepath"
	"testing"
)

type configPrueba struct {
	Nombre string `json:"NOMBRE"`
	Marcos int    `json:"CANTIDAD_MARCOS"`
	Nivel  string `json:"LOG_LEVEL"`
}

func escribirConfig(t *testing.T, contenido string) string {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(ruta, []byte(contenido), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return ruta
}

func TestCargarConfiguracion(t *testing.T) {
	ruta := escribirConfig(t, `{"CANTIDAD_MARCOS": 8, "LOG_LEVEL": "debug"}`)

	config, err := CargarConfiguracion(ruta, configPrueba{Nombre: "pfsim", Marcos: 32, Nivel: "info"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	esperado := configPrueba{Nombre: "pfsim", Marcos: 8, Nivel: "debug"}
	if *config != esperado {
		t.Errorf("Expected %+v, got %+v", esperado, *config)
	}
}

func TestCargarConfiguracion_Errores(t *testing.T) {
	if _, err := CargarConfiguracion(filepath.Join(t.TempDir(), "no-existe.json"), configPrueba{}); err == nil {
		t.Error("Expected error for missing file, got nil")
	}

	ruta := escribirConfig(t, `{"CANTIDAD_MARCOS": "muchos"}`)
	if _, err := CargarConfiguracion(ruta, configPrueba{}); err == nil {
		t.Error("Expected error for malformed config, got nil")
	}
}
