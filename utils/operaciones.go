package utils

import (
	"time"
)

// AplicarRetardo simula la latencia de un dispositivo. Con duracionMs <= 0 no hace nada.
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	InfoLog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}

// DatoEntero extrae un número de un mapa decodificado desde JSON (llegan como float64).
func DatoEntero(datos map[string]interface{}, clave string) (int, bool) {
	valor, ok := datos[clave].(float64)
	if !ok || valor < 0 || valor != float64(int(valor)) {
		return 0, false
	}
	return int(valor), true
}

// DatoTexto extrae un string de un mapa decodificado desde JSON.
func DatoTexto(datos map[string]interface{}, clave string) (string, bool) {
	valor, ok := datos[clave].(string)
	return valor, ok
}
