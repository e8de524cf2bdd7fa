package utils

// Semaforo implementa un semáforo contador con canales.
// Wait ocupa un lugar, Signal lo libera; con capacidad 1 funciona como mutex.
type Semaforo struct {
	c chan struct{}
}

// NewSemaforo crea un semáforo con capacidad inicial
func NewSemaforo(capacidad int) *Semaforo {
	if capacidad <= 0 {
		capacidad = 1
	}
	return &Semaforo{
		c: make(chan struct{}, capacidad),
	}
}

// Wait (P) bloquea si no quedan lugares
func (s *Semaforo) Wait() {
	s.c <- struct{}{}
}

// Signal (V) libera un lugar
func (s *Semaforo) Signal() {
	select {
	case <-s.c:
	default:
		// nada tomado
	}
}

// Con ejecuta fn con el semáforo tomado.
func (s *Semaforo) Con(fn func()) {
	s.Wait()
	defer s.Signal()
	fn()
}
