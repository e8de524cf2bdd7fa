package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/LucasIBorrat/pfsim/memoria"
	"github.com/LucasIBorrat/pfsim/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	flags := flag.NewFlagSet("pfsim", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Uso: pfsim [opciones] <archivo_traza>\n")
		fmt.Fprintf(stderr, "     pfsim -servir [-config configs/pfsim.json]\n\n")
		flags.PrintDefaults()
	}

	rutaConfig := flags.String("config", "", "archivo de configuración JSON")
	nivelLog := flags.String("log-level", "", "nivel de log (debug, info, warn, error)")
	dirVolcado := flags.String("volcado", "", "directorio donde dejar un volcado al terminar")
	verificar := flags.Bool("verificar", false, "verificar la consistencia de las tablas después de cada acceso")
	servir := flags.Bool("servir", false, "levantar el servicio HTTP de memoria en lugar de reproducir una traza")
	remoto := flags.String("remoto", "", "reproducir la traza contra un servicio (ej: http://127.0.0.1:8002)")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if err := validarCombinacion(*servir, *remoto, *verificar, *dirVolcado, flags.NArg()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		flags.Usage()
		return 2
	}

	config, err := cargarConfig(*rutaConfig)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *nivelLog != "" {
		config.LogLevel = *nivelLog
	}
	if *dirVolcado != "" {
		config.DumpPath = *dirVolcado
	}

	cerrarLog, err := utils.InicializarLogger(config.LogLevel, "pfsim", config.LogPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer cerrarLog()

	if *servir {
		err = servirMemoria(config)
	} else {
		if *remoto != "" {
			err = reproducirRemoto(*remoto, flags.Arg(0), stdout)
		} else {
			err = simular(config, flags.Arg(0), *dirVolcado != "", *verificar, stdout)
		}
	}

	if err != nil {
		if errors.Is(err, memoria.ErrInvarianteViolado) {
			utils.ErrorLog.Error("Error interno fatal", "error", err)
		} else {
			utils.ErrorLog.Error("La simulación no pudo completarse", "error", err)
		}
		return 1
	}
	return 0
}

// validarCombinacion rechaza flags que el modo elegido ignoraría
func validarCombinacion(servir bool, remoto string, verificar bool, dirVolcado string, argumentos int) error {
	switch {
	case servir && remoto != "":
		return errors.New("-servir y -remoto son excluyentes")
	case servir && argumentos != 0:
		return errors.New("-servir no recibe archivo de traza")
	case servir && verificar:
		return errors.New("-verificar no aplica con -servir")
	case !servir && argumentos != 1:
		return errors.New("se esperaba exactamente un archivo de traza")
	case remoto != "" && (verificar || dirVolcado != ""):
		return errors.New("-verificar y -volcado no aplican con -remoto")
	}
	return nil
}

// simular reproduce la traza completa y recién al final imprime el reporte.
func simular(config *PfsimConfig, rutaTraza string, volcar bool, verificar bool, stdout io.Writer) error {
	archivo, err := os.Open(rutaTraza)
	if err != nil {
		return fmt.Errorf("archivo de traza inválido: %w", err)
	}
	defer archivo.Close()

	sim, err := memoria.NuevoSimulador(config.Configuracion)
	if err != nil {
		return err
	}

	if err := reproducirTraza(sim, archivo, verificar); err != nil {
		return err
	}

	if volcar {
		if _, err := sim.EscribirVolcado(config.DumpPath); err != nil {
			return err
		}
	}

	utils.InfoLog.Info("Traza reproducida", "archivo", rutaTraza, "desalojos", sim.Estadisticas().TotalDesalojos())
	return imprimirReporte(stdout, sim.Estadisticas())
}

func reproducirTraza(sim *memoria.Simulador, r io.Reader, verificar bool) error {
	return LeerTraza(r, sim.Configuracion().BitsDesplazamiento, func(op memoria.Operacion) error {
		if _, err := sim.Acceder(op); err != nil {
			return err
		}
		if verificar {
			return sim.VerificarConsistencia()
		}
		return nil
	})
}
