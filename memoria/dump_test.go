package memoria

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstantanea_EsIndependiente(t *testing.T) {
	s := nuevoSimuladorTest(t, 2, 200)
	acceder(t, s, 1, 4, Escritura)

	foto := s.Instantanea()
	foto.Tablas[1][4].Valido = false
	foto.Marcos[0].Propietario.PID = 3
	foto.Estadisticas.PorProceso[1].Accesos = 99
	foto.Estadisticas.Desalojos[NivelSucio] = 5

	if err := s.VerificarConsistencia(); err != nil {
		t.Errorf("Expected simulator untouched by snapshot edits, got: %v", err)
	}
	e := s.Estadisticas()
	if e.PorProceso[1].Accesos != 1 || e.Desalojos[NivelSucio] != 0 {
		t.Errorf("Expected counters untouched by snapshot edits, got %+v", e)
	}
}

func TestVolcar(t *testing.T) {
	s := nuevoSimuladorTest(t, 2, 200)
	acceder(t, s, 1, 4, Escritura)

	var buf bytes.Buffer
	if err := s.Volcar(&buf); err != nil {
		t.Fatalf("Volcar: %v", err)
	}

	salida := buf.String()
	esperados := []string{
		"## Accesos: 1 - Fallos: 1 - Accesos a disco: 1 - Desalojos: 0",
		"MARCO",
		"PID: 1 - Página: 4 -> Marco: 0",
	}
	for _, esperado := range esperados {
		if !strings.Contains(salida, esperado) {
			t.Errorf("Expected dump to contain %q, got:\n%s", esperado, salida)
		}
	}
}

func TestEscribirVolcado(t *testing.T) {
	s := nuevoSimuladorTest(t, 2, 200)
	acceder(t, s, 0, 0, Lectura)

	dir := filepath.Join(t.TempDir(), "dumps")
	ruta, err := s.EscribirVolcado(dir)
	if err != nil {
		t.Fatalf("EscribirVolcado: %v", err)
	}
	if filepath.Dir(ruta) != dir || filepath.Ext(ruta) != ".dmp" {
		t.Errorf("Expected a .dmp file inside %s, got %s", dir, ruta)
	}

	contenido, err := os.ReadFile(ruta)
	if err != nil {
		t.Fatalf("Failed to read dump: %v", err)
	}
	if !strings.Contains(string(contenido), "PID: 0 - Página: 0 -> Marco: 0") {
		t.Errorf("Expected dump to list the valid entry, got:\n%s", contenido)
	}
}

func TestEscribirVolcado_NoPisaArchivosDelMismoInstante(t *testing.T) {
	dir := t.TempDir()
	instante := "20260101-000000.000"

	primero, rutaPrimero, err := crearArchivoVolcado(dir, instante)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	primero.WriteString("primero")
	primero.Close()

	segundo, rutaSegundo, err := crearArchivoVolcado(dir, instante)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	segundo.Close()

	if rutaSegundo == rutaPrimero || filepath.Base(rutaSegundo) != "pfsim-"+instante+"-1.dmp" {
		t.Errorf("Expected a -1 suffix for the second dump, got %s and %s", rutaPrimero, rutaSegundo)
	}
	if contenido, _ := os.ReadFile(rutaPrimero); string(contenido) != "primero" {
		t.Errorf("Expected first dump untouched, got %q", contenido)
	}
}

func TestEscribirVolcado_Seguidos(t *testing.T) {
	s := nuevoSimuladorTest(t, 2, 200)
	dir := t.TempDir()

	rutas := make(map[string]bool)
	for i := 0; i < 5; i++ {
		ruta, err := s.EscribirVolcado(dir)
		if err != nil {
			t.Fatalf("EscribirVolcado: %v", err)
		}
		rutas[ruta] = true
	}

	archivos, err := filepath.Glob(filepath.Join(dir, "*.dmp"))
	if err != nil || len(archivos) != 5 || len(rutas) != 5 {
		t.Errorf("Expected 5 distinct dump files, got %v (%v)", archivos, err)
	}
}
