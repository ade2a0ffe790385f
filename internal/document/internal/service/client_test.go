package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/intusaps/intus-website/internal/document/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientUploadDocumento(t *testing.T) {
	t.Parallel()
	var ricevuta *http.Request
	var campi map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ricevuta = r.Clone(context.Background())
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		campi = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			campi[k] = v[0]
		}
		_ = json.NewEncoder(w).Encode(EsitoUpload{Success: true, FileName: "statuto.pdf"})
	}))
	defer srv.Close()

	svc := NewClient(srv.URL, "chiave-segreta", srv.Client())
	esito, err := svc.UploadDocumento(context.Background(), Upload{
		NomeFile:    "statuto.pdf",
		Contenuto:   strings.NewReader("%PDF-1.4"),
		Dimensione:  8,
		Nome:        "Statuto <script>alert(1)</script>2024",
		Descrizione: "Lo <statuto> vigente",
		Categoria:   "istituzionale",
	})
	require.NoError(t, err)
	assert.True(t, esito.Success)
	assert.Equal(t, "statuto.pdf", esito.FileName)

	assert.Equal(t, "/api/upload-documento", ricevuta.URL.Path)
	assert.Equal(t, "chiave-segreta", ricevuta.Header.Get("X-API-Key"))
	// i metadati arrivano già ripuliti
	assert.Equal(t, "Statuto 2024", campi["name"])
	assert.Equal(t, "Lo statuto vigente", campi["description"])
	assert.Equal(t, "istituzionale", campi["category"])

	// l'upload riuscito consuma il limite
	assert.Equal(t, 1, svc.StatoLimite().UploadUsati)
}

func TestClientUploadAllegatoSenzaMetadati(t *testing.T) {
	t.Parallel()
	var campi map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		campi = r.MultipartForm.Value
		assert.Equal(t, "/api/upload-allegato", r.URL.Path)
		_ = json.NewEncoder(w).Encode(EsitoUpload{Success: true})
	}))
	defer srv.Close()

	svc := NewClient(srv.URL, "k", srv.Client())
	_, err := svc.UploadAllegato(context.Background(), Upload{
		NomeFile:   "preventivo.pdf",
		Contenuto:  strings.NewReader("x"),
		Dimensione: 1,
		Nome:       "non deve partire",
	})
	require.NoError(t, err)
	assert.NotContains(t, campi, "name")
}

func TestClientUploadValidazione(t *testing.T) {
	t.Parallel()
	svc := NewClient("http://archivio.invalid", "k", nil)

	testCases := []struct {
		name    string
		up      Upload
		wantErr error
	}{
		{
			name: "file oltre il tetto",
			up: Upload{
				NomeFile:   "grande.pdf",
				Contenuto:  strings.NewReader(""),
				Dimensione: domain.MaxDimensioneFile + 1,
			},
			wantErr: ErrFileTroppoGrande,
		},
		{
			name: "estensione non ammessa",
			up: Upload{
				NomeFile:   "virus.exe",
				Contenuto:  strings.NewReader(""),
				Dimensione: 10,
			},
			wantErr: ErrEstensioneNonValida,
		},
		{
			name: "nome file vuoto",
			up: Upload{
				Contenuto:  strings.NewReader(""),
				Dimensione: 10,
			},
			wantErr: ErrNomeFileNonValido,
		},
		{
			name: "nome file troppo lungo",
			up: Upload{
				NomeFile:   strings.Repeat("a", domain.MaxLunghezzaNomeFile+1) + ".pdf",
				Contenuto:  strings.NewReader(""),
				Dimensione: 10,
			},
			wantErr: ErrNomeFileNonValido,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadDocumento(context.Background(), tc.up)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClientLista(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("X-API-Key"))
		_, _ = w.Write([]byte(`{"success":true,"documents":[{"id":"1","name":"Statuto","source":"blob"}]}`))
	}))
	defer srv.Close()

	svc := NewClient(srv.URL, "k", srv.Client())
	docs, err := svc.Lista(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Statuto", docs[0].Name)
}

func TestClientListaErroreAPI(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"API key non valida"}`))
	}))
	defer srv.Close()

	svc := NewClient(srv.URL, "sbagliata", srv.Client())
	_, err := svc.Lista(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key non valida")
}

func TestClientElimina(t *testing.T) {
	t.Parallel()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := NewClient(srv.URL, "k", srv.Client())

	// i parametri vengono ridotti ai soli caratteri sicuri
	require.NoError(t, svc.Elimina(context.Background(), "blob123", "../statuto 2024.pdf"))
	assert.Equal(t, "/api/documents/blob/..statuto2024.pdf", path)

	// parametri che si svuotano del tutto vengono rifiutati senza chiamate
	err := svc.Elimina(context.Background(), "123", "statuto.pdf")
	assert.ErrorIs(t, err, ErrParametriNonValidi)
}

func TestClientSalute(t *testing.T) {
	t.Parallel()

	t.Run("backend sano", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			// nessuna API key sull'endpoint di salute
			_, _ = w.Write([]byte(`{"status":"OK","timestamp":"2026-02-14T10:00:00Z"}`))
		}))
		defer srv.Close()

		svc := NewClient(srv.URL, "k", srv.Client())
		stato := svc.Salute(context.Background())
		assert.Equal(t, "OK", stato.Status)
	})

	t.Run("backend irraggiungibile non è un errore", func(t *testing.T) {
		t.Parallel()
		svc := NewClient("http://127.0.0.1:1", "k", nil)
		stato := svc.Salute(context.Background())
		assert.Equal(t, "ERROR", stato.Status)
		assert.NotEmpty(t, stato.Error)
	})
}

func TestSanitizeInput(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pulito", sanitizeInput("  pulito  ", 100))
	assert.Equal(t, "ab", sanitizeInput("abcdef", 2))
	assert.Equal(t, "tebsto/b", sanitizeInput("te<b>sto</b>", 100))
	assert.Equal(t, "prima  dopo", sanitizeInput("prima <script>alert(1)</script> dopo", 100))
	assert.Equal(t, "prima  dopo", sanitizeInput("prima <SCRIPT\nsrc=x>alert(1)</SCRIPT> dopo", 100))
}
