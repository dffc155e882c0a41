// Package oauth runs the local HTTP server that receives the
// authorization-code redirect during login.
package oauth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/lorenzomotta/AUSER/internal/logger"
)

// CallbackServer is a local HTTP server that catches the OAuth redirect.
// The identity provider sends the browser back to the redirect URI root,
// so the handler is mounted on "/".
type CallbackServer struct {
	port          int
	expectedState string
	codeChan      chan string
	errChan       chan error
	server        *http.Server
	listener      net.Listener
}

// NewCallbackServer creates a callback server for the given redirect
// URI and the state issued at the start of the flow.
func NewCallbackServer(redirectURI, expectedState string) (*CallbackServer, error) {
	parsed, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("parsing redirect URI: %w", err)
	}

	port := 80
	if p := parsed.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parsing redirect port: %w", err)
		}
	}

	return &CallbackServer{
		port:          port,
		expectedState: expectedState,
		codeChan:      make(chan string, 1),
		errChan:       make(chan error, 1),
	}, nil
}

// Start begins listening on the redirect port.
func (s *CallbackServer) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("starting callback listener: %w", err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleCallback)

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Warn("callback server: %v", err)
		}
	}()

	logger.Debug("callback server listening on port %d", s.port)
	return nil
}

// handleCallback processes the redirect from the identity provider.
func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if errParam := query.Get("error"); errParam != "" {
		desc := query.Get("error_description")
		s.sendError(fmt.Errorf("authorization failed: %s (%s)", errParam, desc))
		http.Error(w, "Authorization failed. You can close this window.", http.StatusBadRequest)
		return
	}

	if state := query.Get("state"); state != s.expectedState {
		s.sendError(fmt.Errorf("state mismatch in callback"))
		http.Error(w, "Invalid state. You can close this window.", http.StatusBadRequest)
		return
	}

	code := query.Get("code")
	if code == "" {
		s.sendError(fmt.Errorf("callback received no authorization code"))
		http.Error(w, "No authorization code. You can close this window.", http.StatusBadRequest)
		return
	}

	select {
	case s.codeChan <- code:
	default:
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, successHTML)
}

func (s *CallbackServer) sendError(err error) {
	select {
	case s.errChan <- err:
	default:
	}
}

// WaitForCode blocks until the authorization code arrives, the callback
// reports an error, the timeout elapses, or ctx is cancelled.
func (s *CallbackServer) WaitForCode(ctx context.Context, timeout time.Duration) (string, error) {
	select {
	case code := <-s.codeChan:
		return code, nil
	case err := <-s.errChan:
		return "", err
	case <-time.After(timeout):
		return "", fmt.Errorf("timed out waiting for authorization after %s", timeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Stop shuts down the callback server.
func (s *CallbackServer) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the port the server listens on.
func (s *CallbackServer) Port() int {
	return s.port
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	return cmd.Start()
}

const successHTML = `<!DOCTYPE html>
<html>
<head><title>AUSER - accesso completato</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
	<h1>Accesso completato</h1>
	<p>Puoi chiudere questa finestra e tornare al terminale.</p>
</body>
</html>`
