package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/knockout-login/internal/config"
)

type httpServer struct {
	server *http.Server
}

// newHTTPServer builds the HTTPS server from the resolved configuration.
// The TLS certificate is assembled from the PEM text carried by the record,
// so no file is touched after option resolution.
func newHTTPServer(handler http.Handler, cfg *config.Config) (*httpServer, error) {
	cert, err := tls.X509KeyPair([]byte(cfg.HTTPS.Cert), []byte(cfg.HTTPS.Key))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTLSMaterial, err)
	}

	return &httpServer{
		server: &http.Server{
			Addr:    ":" + strconv.Itoa(cfg.Port),
			Handler: handler,
			TLSConfig: &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			},
		},
	}, nil
}

func (h *httpServer) RunServer() {
	// cert and key paths are empty: the key pair already lives in TLSConfig
	if err := h.server.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
		fmt.Printf("HTTPS server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		fmt.Printf("HTTPS server Shutdown: %v\n", err)
	}
}
