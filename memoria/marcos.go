package memoria

import (
	"fmt"

	"github.com/LucasIBorrat/pfsim/utils"
)

// Orden de las pasadas del desalojo. Cada pasada recorre los marcos por índice
// y se queda con el primero que coincide.
var pasadasDesalojo = []struct {
	nivel        NivelDesalojo
	referenciado bool
	modificado   bool
}{
	{NivelLimpio, false, false},
	{NivelSucio, false, true},
	{NivelReferenciadoSucio, true, true},
	{NivelReferenciadoLimpio, true, false},
}

// buscarMarcoLibre devuelve el primer marco libre por índice
func (s *Simulador) buscarMarcoLibre() (int, bool) {
	for i := range s.marcos {
		if s.marcos[i].Libre {
			return i, true
		}
	}
	return 0, false
}

// elegirVictima recorre los marcos ocupados según pasadasDesalojo.
func (s *Simulador) elegirVictima() (int, NivelDesalojo, error) {
	for _, pasada := range pasadasDesalojo {
		for i := range s.marcos {
			marco := &s.marcos[i]
			if marco.Libre {
				continue
			}
			if marco.Referenciado == pasada.referenciado && marco.Modificado == pasada.modificado {
				return i, pasada.nivel, nil
			}
		}
	}
	return 0, SinDesalojo, fmt.Errorf("%w: no se encontró marco víctima entre %d marcos", ErrInvarianteViolado, len(s.marcos))
}

// desalojar invalida la entrada que apunta al marco y lo deja libre.
// Si el nivel lo requiere cuenta la escritura a disco del contenido modificado.
func (s *Simulador) desalojar(indice int, nivel NivelDesalojo) error {
	marco := &s.marcos[indice]
	victima := marco.Propietario
	if victima == nil {
		return fmt.Errorf("%w: marco %d ocupado sin propietario", ErrInvarianteViolado, indice)
	}
	if err := s.validarRango(victima.PID, victima.Pagina); err != nil {
		return fmt.Errorf("%w: marco %d con propietario inválido: %v", ErrInvarianteViolado, indice, err)
	}

	entrada := &s.tablas[victima.PID][victima.Pagina]
	if !entrada.Valido || entrada.Marco != indice {
		return fmt.Errorf("%w: marco %d no coincide con la tabla de pid %d página %d",
			ErrInvarianteViolado, indice, victima.PID, victima.Pagina)
	}

	if nivel.RequiereEscritura() {
		s.contarAccesoDisco("escritura")
	}

	entrada.Valido = false
	marco.Libre = true
	marco.Propietario = nil
	s.registrarDesalojo(*victima, nivel)

	utils.InfoLog.Debug("Página desalojada",
		"pid", victima.PID,
		"pagina", victima.Pagina,
		"marco", indice,
		"nivel", nivel.String())
	return nil
}
