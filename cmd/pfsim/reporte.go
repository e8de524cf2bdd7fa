package main

import (
	"fmt"
	"io"

	"github.com/LucasIBorrat/pfsim/memoria"
)

func imprimirReporte(w io.Writer, e memoria.Estadisticas) error {
	_, err := fmt.Fprintf(w, "Page accesses: %d\nPage faults: %d\nDisk accesses: %d\n",
		e.Accesos, e.Fallos, e.AccesosDisco)
	return err
}
