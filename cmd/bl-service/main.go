// Command bl-service serves printable freight documents over HTTP. It
// aggregates shipment data from the back-office API and streams Bill of
// Lading and Container Release Order PDFs as named downloads.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ristarlog/billdoc"
	"github.com/ristarlog/billdoc/shipapi"
)

// Config is the service configuration file.
type Config struct {
	Listen   string       `yaml:"listen"`
	Upstream shipapi.Conf `yaml:"upstream"`
	// ProfilePath points at the issuing-company profile; empty keeps the
	// compiled-in defaults.
	ProfilePath string `yaml:"profilePath"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{
		Listen:   ":8080",
		Upstream: shipapi.Conf{Host: "http://localhost:8000"},
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

type server struct {
	client *shipapi.Client
	prof   *billdoc.Profile
	log    *zap.Logger
}

// generateBLRequest is the POST body of the BL endpoint.
type generateBLRequest struct {
	Form   billdoc.FormData `json:"form"`
	BLForm *billdoc.BLForm  `json:"blForm"`
}

func (s *server) handleGenerateBL(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid shipment id", http.StatusBadRequest)
		return
	}

	var req generateBLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req.Form.ShipmentID = shipmentID

	blType := billdoc.BLType(r.URL.Query().Get("type"))
	if blType == "" {
		blType = billdoc.BLOriginal
	}
	copyNumber := 0
	if v := r.URL.Query().Get("copy"); v != "" {
		copyNumber, err = strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid copy number", http.StatusBadRequest)
			return
		}
	}

	gen, err := billdoc.GenerateBL(r.Context(), s.client, blType, req.Form, req.BLForm, copyNumber, s.prof)
	if err != nil {
		// Structural problems are caller input; only upstream failures are
		// a gateway condition.
		var verr *billdoc.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("BL generation failed",
			zap.Int("shipmentId", shipmentID), zap.Error(err))
		http.Error(w, "document generation failed", http.StatusBadGateway)
		return
	}

	s.log.Info("BL generated",
		zap.Int("shipmentId", shipmentID),
		zap.String("type", string(blType)),
		zap.Int("copy", copyNumber),
		zap.Int("pages", gen.PageCount()),
		zap.String("file", gen.FileName()))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+gen.FileName()+`"`)
	if err := gen.WriteTo(w); err != nil {
		s.log.Error("failed to stream document", zap.Error(err))
	}
}

func (s *server) handleGenerateCRO(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid shipment id", http.StatusBadRequest)
		return
	}

	bundle, err := s.client.FetchAll(r.Context(), shipmentID)
	if err != nil {
		s.log.Error("CRO generation failed",
			zap.Int("shipmentId", shipmentID), zap.Error(err))
		http.Error(w, "document generation failed", http.StatusBadGateway)
		return
	}

	order := billdoc.BuildReleaseOrder(bundle)
	gen := billdoc.NewCROGenerator(order, s.prof)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+order.FileName()+`"`)
	if err := gen.WriteTo(w); err != nil {
		s.log.Error("failed to stream release order", zap.Error(err))
	}
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","version":%q}`, billdoc.Version)
}

func main() {
	configPath := flag.String("config", "", "path to service config YAML")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	prof, err := billdoc.LoadProfile(cfg.ProfilePath)
	if err != nil {
		logger.Fatal("failed to load profile", zap.Error(err))
	}

	s := &server{
		client: shipapi.NewClient(cfg.Upstream, logger),
		prof:   prof,
		log:    logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/shipments/{id:[0-9]+}/documents/bl", s.handleGenerateBL).Methods(http.MethodPost)
	r.HandleFunc("/shipments/{id:[0-9]+}/documents/cro", s.handleGenerateCRO).Methods(http.MethodPost)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("server failed", zap.Error(err))
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}
