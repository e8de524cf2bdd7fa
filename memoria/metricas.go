package memoria

import (
	"maps"
	"slices"
)

// MetricasProceso almacena estadísticas sobre el uso de memoria de un proceso
type MetricasProceso struct {
	Accesos    int `json:"accesos"`
	Fallos     int `json:"fallos"`
	Desalojos  int `json:"desalojos"`  // páginas del proceso desalojadas
	Escrituras int `json:"escrituras"` // escrituras a disco de páginas del proceso
}

// Estadisticas son los contadores globales de la simulación. Sólo crecen.
type Estadisticas struct {
	Accesos         int                   `json:"accesos"`
	Fallos          int                   `json:"fallos"`
	AccesosDisco    int                   `json:"accesos_disco"`
	Envejecimientos int                   `json:"envejecimientos"`
	Desalojos       map[NivelDesalojo]int `json:"desalojos"`
	PorProceso      []MetricasProceso     `json:"por_proceso"`
}

func nuevasEstadisticas(procesos int) Estadisticas {
	return Estadisticas{
		Desalojos:  make(map[NivelDesalojo]int),
		PorProceso: make([]MetricasProceso, procesos),
	}
}

// TotalDesalojos suma los desalojos de todos los niveles
func (e Estadisticas) TotalDesalojos() int {
	total := 0
	for _, n := range e.Desalojos {
		total += n
	}
	return total
}

func (e Estadisticas) copiar() Estadisticas {
	copia := e
	copia.Desalojos = maps.Clone(e.Desalojos)
	copia.PorProceso = slices.Clone(e.PorProceso)
	return copia
}

// Estadisticas devuelve una copia de los contadores actuales
func (s *Simulador) Estadisticas() Estadisticas {
	return s.estadisticas.copiar()
}

func (s *Simulador) registrarAcceso(pid int) {
	s.estadisticas.Accesos++
	s.estadisticas.PorProceso[pid].Accesos++
}

func (s *Simulador) registrarFallo(pid int) {
	s.estadisticas.Fallos++
	s.estadisticas.PorProceso[pid].Fallos++
}

func (s *Simulador) registrarDesalojo(victima Propietario, nivel NivelDesalojo) {
	s.estadisticas.Desalojos[nivel]++
	s.estadisticas.PorProceso[victima.PID].Desalojos++
	if nivel.RequiereEscritura() {
		s.estadisticas.PorProceso[victima.PID].Escrituras++
	}
}
