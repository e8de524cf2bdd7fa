package utils

import (
	"sync"
	"testing"
	"time"
)

// terminaPronto indica si fn termina antes del límite
func terminaPronto(fn func()) bool {
	hecho := make(chan struct{})
	go func() {
		fn()
		close(hecho)
	}()
	select {
	case <-hecho:
		return true
	case <-time.After(200 * time.Millisecond):
		return false
	}
}

func TestSemaforo_WaitSignal(t *testing.T) {
	s := NewSemaforo(1)
	s.Wait()

	if terminaPronto(s.Wait) {
		t.Fatal("Expected second Wait to block while held")
	}
	s.Signal() // lo toma el Wait pendiente
	s.Signal()
	if !terminaPronto(s.Wait) {
		t.Error("Expected Wait to proceed after Signal")
	}
}

func TestSemaforo_Con(t *testing.T) {
	s := NewSemaforo(1)
	contador := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Con(func() { contador++ })
			}
		}()
	}
	wg.Wait()

	if contador != 5000 {
		t.Errorf("Expected 5000, got %d", contador)
	}
	if !terminaPronto(func() { s.Con(func() {}) }) {
		t.Error("Expected semaphore to be released after Con")
	}
}
