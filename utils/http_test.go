package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func nuevoServidorPrueba(t *testing.T) *HTTPClient {
	t.Helper()

	server := NewHTTPServer("127.0.0.1", 0, "Memoria")
	server.RegisterHTTPHandler(MensajeAcceso, func(msg *Mensaje) (interface{}, error) {
		datos, ok := msg.Datos.(map[string]interface{})
		if !ok {
			return nil, errors.New("sin datos")
		}
		pagina, ok := DatoEntero(datos, "pagina")
		if !ok {
			return nil, errors.New("página inválida")
		}
		return map[string]interface{}{"marco": pagina * 2, "origen": msg.Origen}, nil
	})

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL, "cliente")
}

func TestHTTP_IdaYVuelta(t *testing.T) {
	cliente := nuevoServidorPrueba(t)

	if err := cliente.VerificarConexion(); err != nil {
		t.Fatalf("Expected healthy server, got: %v", err)
	}

	var respuesta struct {
		Marco  int    `json:"marco"`
		Origen string `json:"origen"`
	}
	if err := cliente.EnviarHTTPMensaje(MensajeAcceso, "acceso", map[string]interface{}{"pagina": 21}, &respuesta); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if respuesta.Marco != 42 || respuesta.Origen != "cliente" {
		t.Errorf("Unexpected response: %+v", respuesta)
	}
}

func TestHTTP_Errores(t *testing.T) {
	cliente := nuevoServidorPrueba(t)

	if err := cliente.EnviarHTTPMensaje(MensajeVolcado, "volcado", nil, nil); err == nil {
		t.Error("Expected error for unregistered message type, got nil")
	}
	if err := cliente.EnviarHTTPMensaje(MensajeAcceso, "acceso", map[string]interface{}{"pagina": "x"}, nil); err == nil {
		t.Error("Expected error from failing handler, got nil")
	}

	resp, err := http.Get(cliente.BaseURL + "/mensaje")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", resp.StatusCode)
	}
}

func TestHTTP_SinServidor(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	cliente := NewHTTPClient(url, "cliente")
	if err := cliente.VerificarConexion(); err == nil {
		t.Error("Expected error against closed server, got nil")
	}
}
