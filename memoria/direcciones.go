package memoria

import (
	"fmt"
)

// PaginaDeDireccion descarta los bits de desplazamiento de una dirección virtual
func PaginaDeDireccion(direccion uint64, bitsDesplazamiento uint) int {
	return int(direccion >> bitsDesplazamiento)
}

// Traducir indica si (pid, pagina) tiene un marco asignado y cuál es. No modifica el estado.
func (s *Simulador) Traducir(pid int, pagina int) (int, bool, error) {
	if err := s.validarRango(pid, pagina); err != nil {
		return 0, false, err
	}

	entrada := s.tablas[pid][pagina]
	if !entrada.Valido {
		return 0, false, nil
	}

	if entrada.Marco < 0 || entrada.Marco >= len(s.marcos) {
		return 0, false, fmt.Errorf("%w: pid %d página %d apunta al marco inexistente %d",
			ErrInvarianteViolado, pid, pagina, entrada.Marco)
	}
	return entrada.Marco, true, nil
}

func (s *Simulador) validarRango(pid int, pagina int) error {
	if pid < 0 || pid >= s.config.Procesos {
		return fmt.Errorf("%w: %d (procesos: %d)", ErrProcesoInvalido, pid, s.config.Procesos)
	}
	if pagina < 0 || pagina >= s.config.EntradasPorTabla {
		return fmt.Errorf("%w: %d (entradas por tabla: %d)", ErrPaginaInvalida, pagina, s.config.EntradasPorTabla)
	}
	return nil
}
