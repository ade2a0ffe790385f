package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
)

// Errori recuperabili del form: l'operazione viene rifiutata e lo stato
// della bozza resta invariato.
var (
	ErrLimiteSuperato       = fmt.Errorf("limite massimo di elementi raggiunto")
	ErrElementoObbligatorio = fmt.Errorf("l'elemento non può essere rimosso: la lista deve restare non vuota")
	ErrListaSconosciuta     = fmt.Errorf("lista sconosciuta")
	ErrIndiceNonValido      = fmt.Errorf("indice fuori dai limiti")
	ErrCampoSconosciuto     = fmt.Errorf("campo sconosciuto")
	ErrInvioInCorso         = fmt.Errorf("un invio è già in corso")
)

// ErroreValidazione trasporta la mappa campo -> messaggio prodotta dallo
// schema di validazione.
type ErroreValidazione struct {
	Campi domain.CampiErrati
}

func (e *ErroreValidazione) Error() string {
	return fmt.Sprintf("candidatura non valida: %d campi errati", len(e.Campi))
}

// Nomi delle liste dinamiche della bozza.
const (
	ListaCoprogramma       = "coprogramma"
	ListaPartecipanti      = "partecipanti"
	ListaFigureSupporto    = "figureSupporto"
	ListaSpeseAttrezzature = "speseAttrezzature"
	ListaSpeseServizi      = "speseServizi"
)

// Form possiede lo stato mutabile della candidatura in compilazione.
// Le liste sono sequenze ordinate indirizzate per indice. Un solo invio
// alla volta: Submit rifiuta chiamate concorrenti finché la precedente
// non è conclusa.
type Form struct {
	mu      sync.Mutex
	bozza   domain.Proposta
	inInvio bool
	svc     Service
}

func NewForm(svc Service) *Form {
	return &Form{
		bozza: domain.NuovaBozza(),
		svc:   svc,
	}
}

// Bozza ritorna una copia dello stato corrente, per il rendering e per il
// riepilogo finanziario live.
func (f *Form) Bozza() domain.Proposta {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bozza
}

// AppendItem accoda un elemento vuoto alla lista indicata. Le liste di spesa
// rifiutano oltre le 15 voci.
func (f *Form) AppendItem(lista string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch lista {
	case ListaCoprogramma:
		f.bozza.Coprogramma = append(f.bozza.Coprogramma, domain.AttivitaCoprogramma{})
	case ListaPartecipanti:
		f.bozza.Partecipanti = append(f.bozza.Partecipanti, domain.Partecipante{})
	case ListaFigureSupporto:
		f.bozza.FigureSupporto = append(f.bozza.FigureSupporto, domain.FiguraSupporto{})
	case ListaSpeseAttrezzature:
		if len(f.bozza.SpeseAttrezzature) >= domain.MaxVociSpesa {
			return ErrLimiteSuperato
		}
		f.bozza.SpeseAttrezzature = append(f.bozza.SpeseAttrezzature, domain.VoceSpesa{})
	case ListaSpeseServizi:
		if len(f.bozza.SpeseServizi) >= domain.MaxVociSpesa {
			return ErrLimiteSuperato
		}
		f.bozza.SpeseServizi = append(f.bozza.SpeseServizi, domain.VoceSpesa{})
	default:
		return ErrListaSconosciuta
	}
	return nil
}

// AppendAllegato registra un file già caricato sul backend documenti.
func (f *Form) AppendAllegato(a domain.Allegato) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.bozza.Allegati) >= domain.MaxAllegati {
		return ErrLimiteSuperato
	}
	f.bozza.Allegati = append(f.bozza.Allegati, a)
	return nil
}

// RemoveItem elimina l'elemento all'indice dato. Il primo elemento di
// coprogramma e partecipanti non è rimovibile: quelle liste hanno minimo 1.
func (f *Form) RemoveItem(lista string, idx int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch lista {
	case ListaCoprogramma:
		if idx == 0 {
			return ErrElementoObbligatorio
		}
		next, err := rimuovi(f.bozza.Coprogramma, idx)
		if err != nil {
			return err
		}
		f.bozza.Coprogramma = next
	case ListaPartecipanti:
		if idx == 0 {
			return ErrElementoObbligatorio
		}
		next, err := rimuovi(f.bozza.Partecipanti, idx)
		if err != nil {
			return err
		}
		f.bozza.Partecipanti = next
	case ListaFigureSupporto:
		next, err := rimuovi(f.bozza.FigureSupporto, idx)
		if err != nil {
			return err
		}
		f.bozza.FigureSupporto = next
	case ListaSpeseAttrezzature:
		next, err := rimuovi(f.bozza.SpeseAttrezzature, idx)
		if err != nil {
			return err
		}
		f.bozza.SpeseAttrezzature = next
	case ListaSpeseServizi:
		next, err := rimuovi(f.bozza.SpeseServizi, idx)
		if err != nil {
			return err
		}
		f.bozza.SpeseServizi = next
	default:
		return ErrListaSconosciuta
	}
	return nil
}

func rimuovi[T any](xs []T, idx int) ([]T, error) {
	if idx < 0 || idx >= len(xs) {
		return nil, ErrIndiceNonValido
	}
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:idx]...)
	return append(out, xs[idx+1:]...), nil
}

// UpdateField imposta un campo scalare o annidato indirizzato per percorso,
// es. "titoloProgetto", "referente.email", "partecipanti.2.telefono".
func (f *Form) UpdateField(path, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	parts := strings.Split(path, ".")
	switch parts[0] {
	case "titoloProgetto":
		f.bozza.TitoloProgetto = value
	case "descrizioneProgetto":
		f.bozza.DescrizioneProgetto = value
	case "dataInizio":
		f.bozza.DataInizio = value
	case "dataFine":
		f.bozza.DataFine = value
	case "autorizzazioni":
		f.bozza.Autorizzazioni = value
	case "numeroPartecipanti":
		f.bozza.NumeroPartecipanti = value
	case "descrizioneGruppo":
		f.bozza.DescrizioneGruppo = value
	case "luogoSvolgimento":
		f.bozza.LuogoSvolgimento = value
	case "categoria":
		f.bozza.Categoria = value
	case "categoriaDescrizione":
		f.bozza.CategoriaDescrizione = value
	case "tipoEvento":
		f.bozza.TipoEvento = value
	case "descrizioneEvento":
		f.bozza.DescrizioneEvento = value
	case "altro":
		f.bozza.Altro = value
	case "referente":
		return aggiornaReferente(&f.bozza.Referente, parts, value)
	case "speseGenerali":
		return aggiornaSpeseGenerali(&f.bozza.SpeseGenerali, parts, value)
	case ListaCoprogramma:
		return aggiornaIndicizzato(f.bozza.Coprogramma, parts, func(a *domain.AttivitaCoprogramma, campo string) error {
			switch campo {
			case "attivita":
				a.Attivita = value
			case "descrizione":
				a.Descrizione = value
			case "mesi":
				a.Mesi = value
			default:
				return ErrCampoSconosciuto
			}
			return nil
		})
	case ListaPartecipanti:
		return aggiornaIndicizzato(f.bozza.Partecipanti, parts, func(p *domain.Partecipante, campo string) error {
			switch campo {
			case "nome":
				p.Nome = value
			case "cognome":
				p.Cognome = value
			case "email":
				p.Email = value
			case "telefono":
				p.Telefono = value
			case "dataNascita":
				p.DataNascita = value
			default:
				return ErrCampoSconosciuto
			}
			return nil
		})
	case ListaFigureSupporto:
		return aggiornaIndicizzato(f.bozza.FigureSupporto, parts, func(fs *domain.FiguraSupporto, campo string) error {
			switch campo {
			case "nome":
				fs.Nome = value
			case "cognome":
				fs.Cognome = value
			case "email":
				fs.Email = value
			case "telefono":
				fs.Telefono = value
			case "ruolo":
				fs.Ruolo = value
			default:
				return ErrCampoSconosciuto
			}
			return nil
		})
	case ListaSpeseAttrezzature:
		return aggiornaIndicizzato(f.bozza.SpeseAttrezzature, parts, aggiornaVoce(value))
	case ListaSpeseServizi:
		return aggiornaIndicizzato(f.bozza.SpeseServizi, parts, aggiornaVoce(value))
	default:
		return ErrCampoSconosciuto
	}
	return nil
}

func aggiornaVoce(value string) func(v *domain.VoceSpesa, campo string) error {
	return func(v *domain.VoceSpesa, campo string) error {
		switch campo {
		case "descrizione":
			v.Descrizione = value
		case "costo":
			v.Costo = value
		case "quantita":
			v.Quantita = value
		default:
			return ErrCampoSconosciuto
		}
		return nil
	}
}

func aggiornaReferente(r *domain.Referente, parts []string, value string) error {
	if len(parts) != 2 {
		return ErrCampoSconosciuto
	}
	switch parts[1] {
	case "nome":
		r.Nome = value
	case "cognome":
		r.Cognome = value
	case "email":
		r.Email = value
	case "telefono":
		r.Telefono = value
	case "dataNascita":
		r.DataNascita = value
	case "codiceFiscale":
		r.CodiceFiscale = value
	default:
		return ErrCampoSconosciuto
	}
	return nil
}

func aggiornaSpeseGenerali(g *domain.SpeseGenerali, parts []string, value string) error {
	if len(parts) != 2 {
		return ErrCampoSconosciuto
	}
	switch parts[1] {
	case "siae":
		g.Siae = value
	case "assicurazione":
		g.Assicurazione = value
	case "rimborsoSpese":
		g.RimborsoSpese = value
	default:
		return ErrCampoSconosciuto
	}
	return nil
}

func aggiornaIndicizzato[T any](xs []T, parts []string, set func(*T, string) error) error {
	if len(parts) != 3 {
		return ErrCampoSconosciuto
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 || idx >= len(xs) {
		return ErrIndiceNonValido
	}
	return set(&xs[idx], parts[2])
}

// Submit valida la bozza e la invia. In caso di errore (di validazione o di
// persistenza) lo stato resta intatto, così l'utente può correggere e
// ritentare. A invio riuscito il chiamante azzera il form con Reset.
func (f *Form) Submit(ctx context.Context) (domain.Proposta, error) {
	f.mu.Lock()
	if f.inInvio {
		f.mu.Unlock()
		return domain.Proposta{}, ErrInvioInCorso
	}
	f.inInvio = true
	bozza := f.bozza
	f.mu.Unlock()

	salvata, err := f.svc.Presenta(ctx, bozza)

	f.mu.Lock()
	f.inInvio = false
	f.mu.Unlock()
	if err != nil {
		return domain.Proposta{}, err
	}
	return salvata, nil
}

// Reset riporta il form allo stato iniziale.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bozza = domain.NuovaBozza()
	f.inInvio = false
}
