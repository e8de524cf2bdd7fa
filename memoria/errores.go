package memoria

import "errors"

var (
	ErrConfiguracionInvalida = errors.New("configuración inválida")
	ErrProcesoInvalido       = errors.New("pid fuera de rango")
	ErrPaginaInvalida        = errors.New("página virtual fuera de rango")
	ErrAccesoInvalido        = errors.New("tipo de acceso inválido")

	// ErrInvarianteViolado indica tablas corruptas: no se puede seguir simulando.
	ErrInvarianteViolado = errors.New("invariante de memoria violado")
)
