package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/LucasIBorrat/pfsim/memoria"
)

func TestLeerTraza(t *testing.T) {
	entrada := "0 0x0000 R\n\n1 3ff W\n  3 FFFF r  \n2 0X0200 w\n"

	var ops []memoria.Operacion
	err := LeerTraza(strings.NewReader(entrada), 9, func(op memoria.Operacion) error {
		ops = append(ops, op)
		return nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	esperado := []memoria.Operacion{
		{PID: 0, Pagina: 0, Tipo: memoria.Lectura},
		{PID: 1, Pagina: 1, Tipo: memoria.Escritura},
		{PID: 3, Pagina: 127, Tipo: memoria.Lectura},
		{PID: 2, Pagina: 1, Tipo: memoria.Escritura},
	}
	if !reflect.DeepEqual(ops, esperado) {
		t.Errorf("Expected %+v, got %+v", esperado, ops)
	}
}

func TestLeerTraza_LineasInvalidas(t *testing.T) {
	casos := []string{
		"0 0x10",
		"0 0x10 R extra",
		"256 0x10 R",
		"-1 0x10 R",
		"a 0x10 R",
		"0 zz R",
		"0 0x100000000 R",
		"0 0x10 X",
	}

	for _, linea := range casos {
		llamadas := 0
		err := LeerTraza(strings.NewReader("0 0 R\n"+linea+"\n"), 9, func(memoria.Operacion) error {
			llamadas++
			return nil
		})
		if !errors.Is(err, ErrLineaInvalida) {
			t.Errorf("%q: expected ErrLineaInvalida, got: %v", linea, err)
			continue
		}
		if !strings.Contains(err.Error(), "línea 2") {
			t.Errorf("%q: expected the error to name line 2, got: %v", linea, err)
		}
		if llamadas != 1 {
			t.Errorf("%q: expected only the first line to be processed, got %d", linea, llamadas)
		}
	}
}

func TestLeerTraza_PropagaErrorDelProcesador(t *testing.T) {
	errCorte := errors.New("corte")
	err := LeerTraza(strings.NewReader("0 0 R\n1 0 R\n"), 9, func(op memoria.Operacion) error {
		if op.PID == 1 {
			return errCorte
		}
		return nil
	})
	if !errors.Is(err, errCorte) || !strings.Contains(err.Error(), "línea 2") {
		t.Errorf("Expected wrapped error on line 2, got: %v", err)
	}
}
