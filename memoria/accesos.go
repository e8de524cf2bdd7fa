package memoria

import (
	"fmt"

	"github.com/LucasIBorrat/pfsim/utils"
)

// ResultadoAcceso describe cómo se resolvió una operación
type ResultadoAcceso struct {
	Fallo    bool          `json:"fallo"`
	Marco    int           `json:"marco"`
	Desalojo NivelDesalojo `json:"desalojo"`
}

// Acceder aplica una operación: resuelve el fallo si la página no está mapeada,
// actualiza los bits del marco y los contadores, y cada PeriodoEnvejecimiento
// accesos limpia los bits de referencia de todos los marcos.
func (s *Simulador) Acceder(op Operacion) (ResultadoAcceso, error) {
	if op.Tipo != Lectura && op.Tipo != Escritura {
		return ResultadoAcceso{}, fmt.Errorf("%w: %v", ErrAccesoInvalido, op.Tipo)
	}

	indice, valido, err := s.Traducir(op.PID, op.Pagina)
	if err != nil {
		return ResultadoAcceso{}, err
	}

	resultado := ResultadoAcceso{Marco: indice}
	if !valido {
		indice, resultado.Desalojo, err = s.manejarFallo(op)
		if err != nil {
			return ResultadoAcceso{}, err
		}
		s.registrarFallo(op.PID)
		resultado.Fallo = true
		resultado.Marco = indice
	}

	marco := &s.marcos[indice]
	if op.Tipo == Escritura {
		marco.Modificado = true
	}
	marco.Referenciado = true

	s.registrarAcceso(op.PID)

	if s.estadisticas.Accesos%s.config.PeriodoEnvejecimiento == 0 {
		s.envejecer()
	}

	return resultado, nil
}

// envejecer limpia el bit de referencia de todos los marcos
func (s *Simulador) envejecer() {
	for i := range s.marcos {
		s.marcos[i].Referenciado = false
	}
	s.estadisticas.Envejecimientos++
	utils.InfoLog.Debug("Bits de referencia limpiados", "accesos", s.estadisticas.Accesos)
}
