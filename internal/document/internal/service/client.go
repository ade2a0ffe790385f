// Copyright 2024 intusaps
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/intusaps/intus-website/internal/document/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrFileTroppoGrande    = errors.New("file troppo grande")
	ErrEstensioneNonValida = errors.New("estensione non valida")
	ErrNomeFileNonValido   = errors.New("nome file non valido")
	ErrParametriNonValidi  = errors.New("parametri eliminazione non validi")
)

// Upload descrive un file da caricare sull'archivio, con metadati opzionali.
type Upload struct {
	NomeFile    string
	Contenuto   io.Reader
	Dimensione  int64
	Nome        string
	Descrizione string
	Categoria   string
}

type StatoLimite struct {
	UploadUsati     int       `json:"upload_usati"`
	UploadRimanenti int       `json:"upload_rimanenti"`
	Reset           time.Time `json:"reset"`
}

type EsitoUpload struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName,omitempty"`
	Error    string `json:"error,omitempty"`
}

type StatoSalute struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

//go:generate mockgen -source=./client.go -package=svcmocks -destination=./mocks/service.mock.go Service
type Service interface {
	// UploadDocumento carica un file nell'archivio pubblico.
	UploadDocumento(ctx context.Context, up Upload) (EsitoUpload, error)
	// UploadAllegato carica un allegato di una candidatura.
	UploadAllegato(ctx context.Context, up Upload) (EsitoUpload, error)
	Lista(ctx context.Context) ([]domain.Documento, error)
	Elimina(ctx context.Context, source, filename string) error
	Salute(ctx context.Context) StatoSalute
	StatoLimite() StatoLimite
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *uploadLimiter
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		limiter: newUploadLimiter(),
	}
}

func (c *client) UploadDocumento(ctx context.Context, up Upload) (EsitoUpload, error) {
	return c.upload(ctx, "/api/upload-documento", up, true)
}

func (c *client) UploadAllegato(ctx context.Context, up Upload) (EsitoUpload, error) {
	return c.upload(ctx, "/api/upload-allegato", up, false)
}

func (c *client) upload(ctx context.Context, endpoint string, up Upload, conMetadati bool) (EsitoUpload, error) {
	if err := c.limiter.Consenti(); err != nil {
		return EsitoUpload{}, err
	}
	if err := validaFile(up); err != nil {
		return EsitoUpload{}, err
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", up.NomeFile)
	if err != nil {
		return EsitoUpload{}, errors.Wrap(err, "preparazione multipart")
	}
	if _, err := io.Copy(part, up.Contenuto); err != nil {
		return EsitoUpload{}, errors.Wrap(err, "copia contenuto file")
	}
	if conMetadati {
		if up.Nome != "" {
			_ = w.WriteField("name", sanitizeInput(up.Nome, 100))
		}
		if up.Descrizione != "" {
			_ = w.WriteField("description", sanitizeInput(up.Descrizione, 500))
		}
		if up.Categoria != "" {
			_ = w.WriteField("category", sanitizeInput(up.Categoria, 50))
		}
	}
	if err := w.Close(); err != nil {
		return EsitoUpload{}, errors.Wrap(err, "chiusura multipart")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &body)
	if err != nil {
		return EsitoUpload{}, errors.Wrap(err, "costruzione richiesta upload")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.setAuth(req)

	var esito EsitoUpload
	if err := c.do(req, &esito); err != nil {
		return EsitoUpload{}, err
	}
	if esito.Success {
		c.limiter.Registra()
	}
	return esito, nil
}

func (c *client) Lista(ctx context.Context) ([]domain.Documento, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/documents", nil)
	if err != nil {
		return nil, errors.Wrap(err, "costruzione richiesta lista")
	}
	c.setAuth(req)

	var payload struct {
		Success   bool               `json:"success"`
		Documents []domain.Documento `json:"documents"`
		Error     string             `json:"error,omitempty"`
	}
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}
	return payload.Documents, nil
}

var (
	sourceSafe   = regexp.MustCompile(`[^a-zA-Z]`)
	filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
)

func (c *client) Elimina(ctx context.Context, source, filename string) error {
	source = sourceSafe.ReplaceAllString(source, "")
	filename = filenameSafe.ReplaceAllString(filename, "")
	if source == "" || filename == "" {
		return ErrParametriNonValidi
	}
	url := fmt.Sprintf("%s/api/documents/%s/%s", c.baseURL, source, filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return errors.Wrap(err, "costruzione richiesta eliminazione")
	}
	c.setAuth(req)
	return c.do(req, &struct{}{})
}

// Salute non richiede autenticazione e non ritorna mai errore: un backend
// irraggiungibile è uno stato, non un fallimento.
func (c *client) Salute(ctx context.Context) StatoSalute {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return StatoSalute{Status: "ERROR", Error: err.Error(), Timestamp: time.Now().Format(time.RFC3339)}
	}
	var stato StatoSalute
	if err := c.do(req, &stato); err != nil {
		return StatoSalute{Status: "ERROR", Error: err.Error(), Timestamp: time.Now().Format(time.RFC3339)}
	}
	return stato
}

func (c *client) StatoLimite() StatoLimite {
	usati, rimanenti, reset := c.limiter.Stato()
	return StatoLimite{
		UploadUsati:     usati,
		UploadRimanenti: rimanenti,
		Reset:           reset,
	}
}

func (c *client) setAuth(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}

func (c *client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "chiamata archivio documentale")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return errors.Errorf("archivio documentale: %s", apiErr.Error)
		}
		return errors.Errorf("archivio documentale: HTTP %d", resp.StatusCode)
	}
	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decodifica risposta archivio")
}

func validaFile(up Upload) error {
	if up.Dimensione > domain.MaxDimensioneFile {
		return ErrFileTroppoGrande
	}
	if len(up.NomeFile) == 0 || len(up.NomeFile) > domain.MaxLunghezzaNomeFile {
		return ErrNomeFileNonValido
	}
	ext := strings.ToLower(filepath.Ext(up.NomeFile))
	for _, ok := range domain.EstensioniAmmesse() {
		if ext == ok {
			return nil
		}
	}
	return ErrEstensioneNonValida
}

var scriptTag = regexp.MustCompile(`(?is)<script\b.*?</script>`)

// sanitizeInput replica la pulizia dei metadati del client storico: via gli
// script, via le parentesi angolari, troncamento alla lunghezza massima.
func sanitizeInput(in string, maxLen int) string {
	in = scriptTag.ReplaceAllString(in, "")
	in = strings.NewReplacer("<", "", ">", "").Replace(in)
	in = strings.TrimSpace(in)
	if len(in) > maxLen {
		in = in[:maxLen]
	}
	return in
}
