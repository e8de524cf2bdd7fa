package memoria

import (
	"fmt"
	"strings"
)

// TipoAcceso distingue lecturas de escrituras
type TipoAcceso int

const (
	Lectura TipoAcceso = iota
	Escritura
)

func (t TipoAcceso) String() string {
	switch t {
	case Lectura:
		return "R"
	case Escritura:
		return "W"
	default:
		return fmt.Sprintf("TipoAcceso(%d)", int(t))
	}
}

// ParsearAcceso convierte la etiqueta de la traza ("R" o "W") en un TipoAcceso
func ParsearAcceso(etiqueta string) (TipoAcceso, error) {
	switch strings.ToUpper(etiqueta) {
	case "R":
		return Lectura, nil
	case "W":
		return Escritura, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrAccesoInvalido, etiqueta)
	}
}

// Operacion es un acceso ya decodificado de la traza
type Operacion struct {
	PID    int
	Pagina int // número de página virtual
	Tipo   TipoAcceso
}

// EntradaTabla representa una entrada en la tabla de páginas de un proceso
type EntradaTabla struct {
	Valido bool // Indica si la página tiene marco asignado
	Marco  int  // Sólo significativo si Valido
}

// Propietario identifica la página que ocupa un marco (mapeo inverso)
type Propietario struct {
	PID    int
	Pagina int
}

// Marco representa un marco de memoria física
type Marco struct {
	Libre        bool
	Modificado   bool         // bit de modificado (dirty)
	Referenciado bool         // accedido desde el último envejecimiento
	Propietario  *Propietario // nil mientras el marco está libre
}

// NivelDesalojo indica qué pasada del algoritmo eligió a la víctima
type NivelDesalojo int

const (
	SinDesalojo             NivelDesalojo = iota
	NivelLimpio                           // no referenciado, no modificado
	NivelSucio                            // no referenciado, modificado
	NivelReferenciadoSucio                // referenciado, modificado
	NivelReferenciadoLimpio               // referenciado, no modificado: sólo si no hay otro candidato
)

func (n NivelDesalojo) String() string {
	switch n {
	case SinDesalojo:
		return "ninguno"
	case NivelLimpio:
		return "limpio"
	case NivelSucio:
		return "sucio"
	case NivelReferenciadoSucio:
		return "referenciado-sucio"
	case NivelReferenciadoLimpio:
		return "referenciado-limpio"
	default:
		return fmt.Sprintf("NivelDesalojo(%d)", int(n))
	}
}

// MarshalText permite usar NivelDesalojo como clave de mapas JSON
func (n NivelDesalojo) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *NivelDesalojo) UnmarshalText(texto []byte) error {
	for candidato := SinDesalojo; candidato <= NivelReferenciadoLimpio; candidato++ {
		if candidato.String() == string(texto) {
			*n = candidato
			return nil
		}
	}
	return fmt.Errorf("nivel de desalojo desconocido: %q", texto)
}

// RequiereEscritura indica si desalojar en este nivel cuesta una escritura a disco
func (n NivelDesalojo) RequiereEscritura() bool {
	return n == NivelSucio || n == NivelReferenciadoSucio
}
