package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/LucasIBorrat/pfsim/memoria"
)

var ErrLineaInvalida = errors.New("línea de traza inválida")

// LeerTraza decodifica la traza línea por línea ("<pid> <dirección hex> <R|W>")
// y pasa cada operación a procesar. Las líneas vacías se ignoran; cualquier
// error corta la lectura indicando el número de línea.
func LeerTraza(r io.Reader, bitsDesplazamiento uint, procesar func(memoria.Operacion) error) error {
	scanner := bufio.NewScanner(r)
	numeroLinea := 0

	for scanner.Scan() {
		numeroLinea++
		linea := strings.TrimSpace(scanner.Text())
		if linea == "" {
			continue
		}

		op, err := parsearLinea(linea, bitsDesplazamiento)
		if err != nil {
			return fmt.Errorf("línea %d: %w", numeroLinea, err)
		}

		if err := procesar(op); err != nil {
			return fmt.Errorf("línea %d: %w", numeroLinea, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error al leer la traza: %w", err)
	}
	return nil
}

func parsearLinea(linea string, bitsDesplazamiento uint) (memoria.Operacion, error) {
	campos := strings.Fields(linea)
	if len(campos) != 3 {
		return memoria.Operacion{}, fmt.Errorf("%w: se esperaban 3 campos, hay %d (%q)", ErrLineaInvalida, len(campos), linea)
	}

	pid, err := strconv.ParseUint(campos[0], 10, 8)
	if err != nil {
		return memoria.Operacion{}, fmt.Errorf("%w: pid %q", ErrLineaInvalida, campos[0])
	}

	hex := strings.TrimPrefix(strings.ToLower(campos[1]), "0x")
	direccion, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return memoria.Operacion{}, fmt.Errorf("%w: dirección %q", ErrLineaInvalida, campos[1])
	}

	tipo, err := memoria.ParsearAcceso(campos[2])
	if err != nil {
		return memoria.Operacion{}, fmt.Errorf("%w: %v", ErrLineaInvalida, err)
	}

	return memoria.Operacion{
		PID:    int(pid),
		Pagina: memoria.PaginaDeDireccion(direccion, bitsDesplazamiento),
		Tipo:   tipo,
	}, nil
}
