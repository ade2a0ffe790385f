package service

import (
	"context"
	"sync"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
)

// ReviewEngine opera sull'elenco completo delle candidature per la dashboard
// admin: caricamento, filtro, espansione progressiva delle card e salvataggio
// delle valutazioni. L'identità del valutatore è iniettata alla costruzione,
// non letta da stato globale.
type ReviewEngine struct {
	svc        Service
	valutatore string

	mu       sync.Mutex
	proposte []domain.Proposta
	espanse  map[int64]struct{}
}

func NewReviewEngine(svc Service, valutatore string) *ReviewEngine {
	return &ReviewEngine{
		svc:        svc,
		valutatore: valutatore,
		espanse:    make(map[int64]struct{}),
	}
}

// Carica rimpiazza l'elenco in memoria con quello persistito.
func (r *ReviewEngine) Carica(ctx context.Context) error {
	proposte, err := r.svc.Lista(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.proposte = proposte
	r.mu.Unlock()
	return nil
}

func (r *ReviewEngine) Proposte() []domain.Proposta {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Proposta, len(r.proposte))
	copy(out, r.proposte)
	return out
}

// Filtra applica i predicati di ricerca all'elenco caricato.
func (r *ReviewEngine) Filtra(f domain.Filtro) []domain.Proposta {
	return f.Applica(r.Proposte())
}

// ToggleEspansa commuta lo stato di espansione della card e ritorna il nuovo
// stato. Puro stato di UI, nessuna persistenza.
func (r *ReviewEngine) ToggleEspansa(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.espanse[id]; ok {
		delete(r.espanse, id)
		return false
	}
	r.espanse[id] = struct{}{}
	return true
}

func (r *ReviewEngine) Espansa(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.espanse[id]
	return ok
}

// SalvaValutazione persiste la valutazione e solo a conferma avvenuta
// aggiorna la copia in memoria. In caso di errore l'elenco resta invariato.
func (r *ReviewEngine) SalvaValutazione(ctx context.Context, id int64, v domain.Valutazione) error {
	v.Valutatore = r.valutatore
	salvata, err := r.svc.SalvaValutazione(ctx, id, v)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.proposte {
		if r.proposte[i].ID == id {
			r.proposte[i].Valutazione = &salvata
			break
		}
	}
	return nil
}
