package service

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrLimiteUpload indica che la finestra corrente ha esaurito gli upload.
var ErrLimiteUpload = errors.New("limite upload raggiunto, riprovare più tardi")

const (
	maxUploadPerFinestra = 10
	durataFinestra       = 15 * time.Minute
)

// uploadLimiter è un contatore a finestra fissa: il backend documentale
// applica lo stesso limite, questo evita di sprecare chiamate destinate
// a fallire.
type uploadLimiter struct {
	mu        sync.Mutex
	conteggio int
	inizio    time.Time
	now       func() time.Time
}

func newUploadLimiter() *uploadLimiter {
	return &uploadLimiter{now: time.Now}
}

func (l *uploadLimiter) Consenti() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.inizio) > durataFinestra {
		l.conteggio = 0
		l.inizio = now
	}
	if l.conteggio >= maxUploadPerFinestra {
		return ErrLimiteUpload
	}
	return nil
}

// Registra va chiamato solo dopo un upload andato a buon fine.
func (l *uploadLimiter) Registra() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conteggio++
}

// Stato ritorna upload usati, rimanenti e l'istante di reset della finestra.
func (l *uploadLimiter) Stato() (usati, rimanenti int, reset time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.now().Sub(l.inizio) > durataFinestra {
		return 0, maxUploadPerFinestra, l.now().Add(durataFinestra)
	}
	return l.conteggio, maxUploadPerFinestra - l.conteggio, l.inizio.Add(durataFinestra)
}
