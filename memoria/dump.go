package memoria

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/LucasIBorrat/pfsim/utils"
)

// Instantanea es una copia independiente del estado del simulador
type Instantanea struct {
	Tablas       [][]EntradaTabla `json:"tablas"`
	Marcos       []Marco          `json:"marcos"`
	Estadisticas Estadisticas     `json:"estadisticas"`
}

// Instantanea copia tablas, marcos y contadores; modificarla no afecta al simulador.
func (s *Simulador) Instantanea() Instantanea {
	tablas := make([][]EntradaTabla, len(s.tablas))
	for pid, tabla := range s.tablas {
		tablas[pid] = append([]EntradaTabla(nil), tabla...)
	}

	marcos := make([]Marco, len(s.marcos))
	for i, marco := range s.marcos {
		marcos[i] = marco
		if marco.Propietario != nil {
			propietario := *marco.Propietario
			marcos[i].Propietario = &propietario
		}
	}

	return Instantanea{
		Tablas:       tablas,
		Marcos:       marcos,
		Estadisticas: s.estadisticas.copiar(),
	}
}

// Volcar escribe en w los contadores, la tabla de marcos y las entradas válidas.
func (s *Simulador) Volcar(w io.Writer) error {
	buf := bufio.NewWriter(w)
	e := s.estadisticas

	fmt.Fprintf(buf, "## Accesos: %d - Fallos: %d - Accesos a disco: %d - Desalojos: %d\n\n",
		e.Accesos, e.Fallos, e.AccesosDisco, e.TotalDesalojos())

	tw := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MARCO\tLIBRE\tREF\tMOD\tPID\tPAGINA")
	for i, marco := range s.marcos {
		pid, pagina := "-", "-"
		if marco.Propietario != nil {
			pid = fmt.Sprint(marco.Propietario.PID)
			pagina = fmt.Sprint(marco.Propietario.Pagina)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i, siNo(marco.Libre), siNo(marco.Referenciado), siNo(marco.Modificado), pid, pagina)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(buf, "\n## Entradas válidas")
	for pid, tabla := range s.tablas {
		for pagina, entrada := range tabla {
			if entrada.Valido {
				fmt.Fprintf(buf, "PID: %d - Página: %d -> Marco: %d\n", pid, pagina, entrada.Marco)
			}
		}
	}

	return buf.Flush()
}

const maxVolcadosPorInstante = 1000

// EscribirVolcado crea <dir>/pfsim-<timestamp>.dmp con el contenido de Volcar y devuelve la ruta.
// Nunca pisa un volcado existente: si el nombre está tomado agrega un sufijo -1, -2, ...
func (s *Simulador) EscribirVolcado(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error al crear directorio para dumps: %w", err)
	}

	dumpFile, rutaCompleta, err := crearArchivoVolcado(dir, time.Now().Format("20060102-150405.000"))
	if err != nil {
		return "", err
	}

	if err := s.Volcar(dumpFile); err != nil {
		dumpFile.Close()
		return "", fmt.Errorf("error al escribir en archivo de dump: %w", err)
	}
	if err := dumpFile.Close(); err != nil {
		return "", fmt.Errorf("error al cerrar archivo de dump: %w", err)
	}

	utils.InfoLog.Info("Memory dump completado", "archivo", rutaCompleta)
	return rutaCompleta, nil
}

func crearArchivoVolcado(dir string, instante string) (*os.File, string, error) {
	for intento := 0; intento < maxVolcadosPorInstante; intento++ {
		nombreArchivo := fmt.Sprintf("pfsim-%s.dmp", instante)
		if intento > 0 {
			nombreArchivo = fmt.Sprintf("pfsim-%s-%d.dmp", instante, intento)
		}
		rutaCompleta := filepath.Join(dir, nombreArchivo)

		archivo, err := os.OpenFile(rutaCompleta, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("error al crear archivo de dump: %w", err)
		}
		return archivo, rutaCompleta, nil
	}
	return nil, "", fmt.Errorf("error al crear archivo de dump: %d volcados en %s", maxVolcadosPorInstante, instante)
}

func siNo(b bool) string {
	if b {
		return "si"
	}
	return "no"
}
