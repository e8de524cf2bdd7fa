package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LucasIBorrat/pfsim/memoria"
	"github.com/LucasIBorrat/pfsim/utils"
)

// motorMemoria es lo que el servicio usa del simulador
type motorMemoria interface {
	Acceder(op memoria.Operacion) (memoria.ResultadoAcceso, error)
	Estadisticas() memoria.Estadisticas
	EscribirVolcado(dir string) (string, error)
	VerificarConsistencia() error
	Reiniciar()
	Configuracion() memoria.Configuracion
}

// servicioMemoria expone un único simulador por HTTP. El semáforo garantiza
// que las operaciones se apliquen de a una aunque lleguen en paralelo.
// Tras un error fatal del simulador sólo se atiende MensajeReiniciar (y el handshake).
type servicioMemoria struct {
	sim        motorMemoria
	semaforo   *utils.Semaforo
	dumpPath   string
	fallaFatal error // protegido por semaforo
}

type respuestaHandshake struct {
	Status string `json:"status"`
	memoria.Configuracion
}

func nuevoServicioMemoria(config *PfsimConfig) (*servicioMemoria, error) {
	sim, err := memoria.NuevoSimulador(config.Configuracion)
	if err != nil {
		return nil, err
	}
	return servicioSobre(sim, config.DumpPath), nil
}

func servicioSobre(sim motorMemoria, dumpPath string) *servicioMemoria {
	return &servicioMemoria{
		sim:      sim,
		semaforo: utils.NewSemaforo(1),
		dumpPath: dumpPath,
	}
}

// estadoUtilizable se llama con el semáforo tomado
func (sm *servicioMemoria) estadoUtilizable() error {
	if sm.fallaFatal != nil {
		return fmt.Errorf("memoria inutilizable hasta reiniciar: %w", sm.fallaFatal)
	}
	return nil
}

func (sm *servicioMemoria) registrarHandlers(server *utils.HTTPServer) {
	server.RegisterHTTPHandler(utils.MensajeHandshake, sm.handlerHandshake)
	server.RegisterHTTPHandler(utils.MensajeAcceso, sm.handlerAcceso)
	server.RegisterHTTPHandler(utils.MensajeEstadisticas, sm.handlerEstadisticas)
	server.RegisterHTTPHandler(utils.MensajeVolcado, sm.handlerVolcado)
	server.RegisterHTTPHandler(utils.MensajeReiniciar, sm.handlerReiniciar)

	utils.InfoLog.Info("Handlers registrados correctamente")
}

func (sm *servicioMemoria) handlerHandshake(msg *utils.Mensaje) (interface{}, error) {
	utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)
	return respuestaHandshake{Status: "OK", Configuracion: sm.sim.Configuracion()}, nil
}

func (sm *servicioMemoria) handlerAcceso(msg *utils.Mensaje) (interface{}, error) {
	op, err := operacionDesdeMensaje(msg)
	if err != nil {
		return nil, err
	}

	var resultado memoria.ResultadoAcceso
	sm.semaforo.Con(func() {
		if err = sm.estadoUtilizable(); err != nil {
			return
		}
		resultado, err = sm.sim.Acceder(op)
		if errors.Is(err, memoria.ErrInvarianteViolado) {
			sm.fallaFatal = err
			utils.ErrorLog.Error("Error interno fatal", "origen", msg.Origen, "error", err)
		}
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLog.Debug("Acceso aplicado", "origen", msg.Origen, "pid", op.PID, "pagina", op.Pagina, "fallo", resultado.Fallo)
	return resultado, nil
}

func (sm *servicioMemoria) handlerEstadisticas(msg *utils.Mensaje) (interface{}, error) {
	var e memoria.Estadisticas
	var err error
	sm.semaforo.Con(func() {
		if err = sm.estadoUtilizable(); err != nil {
			return
		}
		e = sm.sim.Estadisticas()
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (sm *servicioMemoria) handlerVolcado(msg *utils.Mensaje) (interface{}, error) {
	dir := sm.dumpPath
	if datos, ok := msg.Datos.(map[string]interface{}); ok {
		if d, ok := utils.DatoTexto(datos, "dir"); ok && d != "" {
			dir = d
		}
	}
	if dir == "" {
		return nil, fmt.Errorf("no hay DUMP_PATH configurado")
	}

	var ruta string
	var err error
	sm.semaforo.Con(func() {
		if err = sm.estadoUtilizable(); err != nil {
			return
		}
		ruta, err = sm.sim.EscribirVolcado(dir)
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"status": "OK", "archivo": ruta}, nil
}

func (sm *servicioMemoria) handlerReiniciar(msg *utils.Mensaje) (interface{}, error) {
	sm.semaforo.Con(func() {
		sm.sim.Reiniciar()
		sm.fallaFatal = nil
	})
	utils.InfoLog.Info("Memoria reiniciada", "origen", msg.Origen)
	return map[string]interface{}{"status": "OK"}, nil
}

func operacionDesdeMensaje(msg *utils.Mensaje) (memoria.Operacion, error) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return memoria.Operacion{}, fmt.Errorf("datos del acceso no proporcionados")
	}

	pid, ok := utils.DatoEntero(datos, "pid")
	if !ok {
		return memoria.Operacion{}, fmt.Errorf("pid no proporcionado o formato incorrecto")
	}
	pagina, ok := utils.DatoEntero(datos, "pagina")
	if !ok {
		return memoria.Operacion{}, fmt.Errorf("página no proporcionada o formato incorrecto")
	}
	etiqueta, ok := utils.DatoTexto(datos, "tipo")
	if !ok {
		return memoria.Operacion{}, fmt.Errorf("tipo de acceso no proporcionado")
	}
	tipo, err := memoria.ParsearAcceso(etiqueta)
	if err != nil {
		return memoria.Operacion{}, err
	}

	return memoria.Operacion{PID: pid, Pagina: pagina, Tipo: tipo}, nil
}

// servirMemoria atiende mensajes hasta recibir SIGINT o SIGTERM
func servirMemoria(config *PfsimConfig) error {
	servicio, err := nuevoServicioMemoria(config)
	if err != nil {
		return err
	}

	server := utils.NewHTTPServer(config.IPMemoria, config.PuertoMemoria, "Memoria")
	servicio.registrarHandlers(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errServidor := make(chan error, 1)
	go func() {
		errServidor <- server.Start()
	}()

	select {
	case err := <-errServidor:
		return err
	case <-ctx.Done():
	}

	utils.InfoLog.Info("Cerrando servidor de memoria")
	ctxCierre, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctxCierre)
}
