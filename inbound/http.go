// Package inbound delivers raw callback URLs to the dispatcher. The protocol
// leaves the delivery mechanism to the platform (on macOS a get-URL apple
// event); HTTPSource is a cross-platform stand-in listening on localhost.
package inbound

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Handler consumes one raw callback URL per delivered event.
type Handler interface {
	OnInbound(raw string)
}

// HTTPSource receives callback URLs over a local HTTP endpoint and forwards
// them to the handler, one invocation per delivery. The raw URL is taken from
// the url query parameter or, if absent, the request body.
type HTTPSource struct {
	listenAddr string
	handler    Handler
	logger     *zap.SugaredLogger

	srv     *http.Server
	baseURL string
}

// NewHTTPSource creates a source listening on listenAddr (host:port, port 0
// picks a free one). A nil logger disables logging.
func NewHTTPSource(listenAddr string, handler Handler, logger *zap.SugaredLogger) *HTTPSource {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &HTTPSource{listenAddr: listenAddr, handler: handler, logger: logger}
}

// Start binds the listener and serves until ctx is cancelled.
func (s *HTTPSource) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return err
	}
	s.baseURL = "http://" + ln.Addr().String()

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", s.handleCallback)
	s.srv = &http.Server{Handler: mux}
	go func() {
		_ = s.srv.Serve(ln)
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		_ = s.srv.Shutdown(shutdownCtx)
		cancel()
	}()
	s.logger.Debugw("inbound source listening", "url", s.baseURL)
	return nil
}

// BaseURL returns the bound endpoint, valid after Start.
func (s *HTTPSource) BaseURL() string {
	return s.baseURL
}

func (s *HTTPSource) handleCallback(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}
		raw = string(data)
	}
	if raw == "" {
		http.Error(w, "missing callback url", http.StatusBadRequest)
		return
	}
	s.handler.OnInbound(raw)
	w.WriteHeader(http.StatusNoContent)
}
