// Package httpapi exposes the parameter channel over HTTP.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/leandrodaf/lilymidi/internal/command"
	"github.com/leandrodaf/lilymidi/internal/session"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"github.com/rs/cors"
	"go.uber.org/multierr"
)

const maxCommandSize = 64 << 10

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Detail []string `json:"detail"`
}

type api struct {
	session *session.Session
	handler *command.Handler
	logger  contracts.Logger
}

// NewRouter serves:
//
//	POST /commands         one command line, replies with its text output
//	GET  /parameters       the session snapshot
//	GET  /values/{enum}    the registered values of an enumeration
func NewRouter(s *session.Session, h *command.Handler, logger contracts.Logger) http.Handler {
	a := &api{session: s, handler: h, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/commands", a.handleCommand).Methods(http.MethodPost)
	router.HandleFunc("/parameters", a.handleParameters).Methods(http.MethodGet)
	router.HandleFunc("/values/{enum}", a.handleValues).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}

// Serve runs the API on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, handler http.Handler, logger contracts.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP parameter channel listening", logger.Field().String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

func (a *api) handleCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var reply bytes.Buffer
	if err := a.handler.ApplyTo(&reply, string(body)); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(reply.Bytes())
}

func (a *api) handleParameters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.session.Snapshot())
}

func (a *api) handleValues(w http.ResponseWriter, r *http.Request) {
	values, err := command.Values(mux.Vars(r)["enum"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	errs := multierr.Errors(err)
	detail := make([]string, len(errs))
	for i, e := range errs {
		detail[i] = e.Error()
	}
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
