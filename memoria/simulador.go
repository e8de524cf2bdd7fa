package memoria

import (
	"github.com/LucasIBorrat/pfsim/utils"
)

// Simulador contiene todo el estado de la memoria virtual: tablas de páginas,
// marcos físicos y contadores. No es seguro para uso concurrente; las
// operaciones se aplican de a una, en el orden de la traza.
type Simulador struct {
	config       Configuracion
	tablas       [][]EntradaTabla // PID -> página virtual
	marcos       []Marco          // indexado por número de marco
	estadisticas Estadisticas
}

// NuevoSimulador crea un simulador con todas las entradas inválidas y todos los marcos libres.
func NuevoSimulador(config Configuracion) (*Simulador, error) {
	if err := config.Validar(); err != nil {
		return nil, err
	}

	s := &Simulador{config: config}
	s.Reiniciar()

	utils.InfoLog.Info("Memoria inicializada",
		"procesos", config.Procesos,
		"entradas_por_tabla", config.EntradasPorTabla,
		"marcos", config.Marcos,
		"bits_desplazamiento", config.BitsDesplazamiento,
		"periodo_envejecimiento", config.PeriodoEnvejecimiento)

	return s, nil
}

// Reiniciar vuelve al estado inicial, descartando mapeos y contadores.
func (s *Simulador) Reiniciar() {
	s.tablas = make([][]EntradaTabla, s.config.Procesos)
	for pid := range s.tablas {
		s.tablas[pid] = make([]EntradaTabla, s.config.EntradasPorTabla)
	}

	s.marcos = make([]Marco, s.config.Marcos)
	for i := range s.marcos {
		s.marcos[i] = Marco{Libre: true}
	}

	s.estadisticas = nuevasEstadisticas(s.config.Procesos)
	utils.InfoLog.Debug("Tablas de páginas y marcos reiniciados")
}

func (s *Simulador) Configuracion() Configuracion {
	return s.config
}
