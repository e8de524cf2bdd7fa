package memoria

import (
	"github.com/LucasIBorrat/pfsim/utils"
)

// manejarFallo consigue un marco (libre o desalojando) para la operación,
// carga la página y la mapea en la tabla del proceso.
func (s *Simulador) manejarFallo(op Operacion) (int, NivelDesalojo, error) {
	indice, hayLibre := s.buscarMarcoLibre()
	nivel := SinDesalojo

	if !hayLibre {
		var err error
		indice, nivel, err = s.elegirVictima()
		if err != nil {
			return 0, SinDesalojo, err
		}
		if err := s.desalojar(indice, nivel); err != nil {
			return 0, SinDesalojo, err
		}
	}

	marco := &s.marcos[indice]
	marco.Libre = false
	marco.Propietario = &Propietario{PID: op.PID, Pagina: op.Pagina}

	// Carga de la página desde disco
	s.contarAccesoDisco("lectura")
	marco.Modificado = false

	entrada := &s.tablas[op.PID][op.Pagina]
	entrada.Marco = indice
	entrada.Valido = true

	utils.InfoLog.Debug("Fallo de página resuelto",
		"pid", op.PID,
		"pagina", op.Pagina,
		"marco", indice,
		"desalojo", nivel.String())

	return indice, nivel, nil
}

func (s *Simulador) contarAccesoDisco(operacion string) {
	s.estadisticas.AccesosDisco++
	utils.AplicarRetardo("disco-"+operacion, s.config.RetardoDisco)
}
