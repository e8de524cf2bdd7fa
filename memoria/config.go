package memoria

import "fmt"

// Valores de referencia del simulador
const (
	ProcesosPorDefecto              = 4
	EntradasPorTablaPorDefecto      = 128
	MarcosPorDefecto                = 32
	BitsDesplazamientoPorDefecto    = 9 // páginas de 512 posiciones
	PeriodoEnvejecimientoPorDefecto = 200
)

// Configuracion agrupa los parámetros de la memoria simulada
type Configuracion struct {
	Procesos              int  `json:"CANTIDAD_PROCESOS"`      // Slots de proceso
	EntradasPorTabla      int  `json:"ENTRADAS_POR_TABLA"`     // Entradas de la tabla de cada proceso
	Marcos                int  `json:"CANTIDAD_MARCOS"`        // Marcos físicos
	BitsDesplazamiento    uint `json:"BITS_DESPLAZAMIENTO"`    // Bits de offset dentro de la página
	PeriodoEnvejecimiento int  `json:"PERIODO_ENVEJECIMIENTO"` // Cada cuántos accesos se limpian los bits de referencia
	RetardoDisco          int  `json:"RETARDO_DISCO"`          // Retardo simulado por acceso a disco (ms)
}

// ConfiguracionPorDefecto devuelve 4 procesos, 128 entradas, 32 marcos, offset de 9 bits y envejecimiento cada 200 accesos.
func ConfiguracionPorDefecto() Configuracion {
	return Configuracion{
		Procesos:              ProcesosPorDefecto,
		EntradasPorTabla:      EntradasPorTablaPorDefecto,
		Marcos:                MarcosPorDefecto,
		BitsDesplazamiento:    BitsDesplazamientoPorDefecto,
		PeriodoEnvejecimiento: PeriodoEnvejecimientoPorDefecto,
	}
}

func (c Configuracion) Validar() error {
	switch {
	case c.Procesos <= 0:
		return fmt.Errorf("%w: CANTIDAD_PROCESOS debe ser positivo (%d)", ErrConfiguracionInvalida, c.Procesos)
	case c.EntradasPorTabla <= 0:
		return fmt.Errorf("%w: ENTRADAS_POR_TABLA debe ser positivo (%d)", ErrConfiguracionInvalida, c.EntradasPorTabla)
	case c.Marcos <= 0:
		return fmt.Errorf("%w: CANTIDAD_MARCOS debe ser positivo (%d)", ErrConfiguracionInvalida, c.Marcos)
	case c.BitsDesplazamiento >= 32:
		return fmt.Errorf("%w: BITS_DESPLAZAMIENTO fuera de rango (%d)", ErrConfiguracionInvalida, c.BitsDesplazamiento)
	case c.PeriodoEnvejecimiento <= 0:
		return fmt.Errorf("%w: PERIODO_ENVEJECIMIENTO debe ser positivo (%d)", ErrConfiguracionInvalida, c.PeriodoEnvejecimiento)
	case c.RetardoDisco < 0:
		return fmt.Errorf("%w: RETARDO_DISCO no puede ser negativo (%d)", ErrConfiguracionInvalida, c.RetardoDisco)
	}
	return nil
}
