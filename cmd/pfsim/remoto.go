package main

import (
	"fmt"
	"io"
	"os"

	"github.com/LucasIBorrat/pfsim/memoria"
	"github.com/LucasIBorrat/pfsim/utils"
)

// reproducirRemoto envía la traza operación por operación a un servicio de memoria
// y imprime el reporte con los contadores que devuelve.
func reproducirRemoto(baseURL string, rutaTraza string, stdout io.Writer) error {
	archivo, err := os.Open(rutaTraza)
	if err != nil {
		return fmt.Errorf("archivo de traza inválido: %w", err)
	}
	defer archivo.Close()

	return reproducirRemotoDesde(utils.NewHTTPClient(baseURL, "pfsim"), archivo, stdout)
}

func reproducirRemotoDesde(cliente *utils.HTTPClient, r io.Reader, stdout io.Writer) error {
	if err := cliente.VerificarConexion(); err != nil {
		return err
	}

	var handshake respuestaHandshake
	if err := cliente.EnviarHTTPMensaje(utils.MensajeHandshake, "handshake", nil, &handshake); err != nil {
		return fmt.Errorf("handshake con memoria: %w", err)
	}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeReiniciar, "reiniciar", nil, nil); err != nil {
		return fmt.Errorf("reinicio de memoria: %w", err)
	}

	err := LeerTraza(r, handshake.BitsDesplazamiento, func(op memoria.Operacion) error {
		datos := map[string]interface{}{
			"pid":    op.PID,
			"pagina": op.Pagina,
			"tipo":   op.Tipo.String(),
		}
		return cliente.EnviarHTTPMensaje(utils.MensajeAcceso, "acceso", datos, nil)
	})
	if err != nil {
		return err
	}

	var e memoria.Estadisticas
	if err := cliente.EnviarHTTPMensaje(utils.MensajeEstadisticas, "estadisticas", nil, &e); err != nil {
		return fmt.Errorf("estadísticas de memoria: %w", err)
	}
	return imprimirReporte(stdout, e)
}
