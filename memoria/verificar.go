package memoria

import "fmt"

// VerificarConsistencia comprueba que el mapeo directo (tablas) y el inverso
// (propietario de cada marco) coincidan en ambos sentidos.
func (s *Simulador) VerificarConsistencia() error {
	referencias := make(map[int]Propietario)

	for pid, tabla := range s.tablas {
		for pagina, entrada := range tabla {
			if !entrada.Valido {
				continue
			}
			if entrada.Marco < 0 || entrada.Marco >= len(s.marcos) {
				return fmt.Errorf("%w: pid %d página %d apunta al marco inexistente %d",
					ErrInvarianteViolado, pid, pagina, entrada.Marco)
			}
			if otra, repetido := referencias[entrada.Marco]; repetido {
				return fmt.Errorf("%w: marco %d mapeado por pid %d página %d y pid %d página %d",
					ErrInvarianteViolado, entrada.Marco, otra.PID, otra.Pagina, pid, pagina)
			}
			referencias[entrada.Marco] = Propietario{PID: pid, Pagina: pagina}
		}
	}

	for i, marco := range s.marcos {
		esperado, mapeado := referencias[i]
		switch {
		case marco.Libre && mapeado:
			return fmt.Errorf("%w: marco libre %d referenciado por pid %d página %d",
				ErrInvarianteViolado, i, esperado.PID, esperado.Pagina)
		case marco.Libre:
			continue
		case marco.Propietario == nil:
			return fmt.Errorf("%w: marco %d ocupado sin propietario", ErrInvarianteViolado, i)
		case !mapeado:
			return fmt.Errorf("%w: marco %d ocupado por pid %d página %d sin entrada válida",
				ErrInvarianteViolado, i, marco.Propietario.PID, marco.Propietario.Pagina)
		case *marco.Propietario != esperado:
			return fmt.Errorf("%w: marco %d dice pertenecer a pid %d página %d pero lo mapea pid %d página %d",
				ErrInvarianteViolado, i, marco.Propietario.PID, marco.Propietario.Pagina, esperado.PID, esperado.Pagina)
		}
	}

	return nil
}
