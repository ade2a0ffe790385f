package export

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/intusaps/intus-website/internal/callidee/internal/domain"
	"golang.org/x/sync/errgroup"
)

// EsitoVerifica riassume la diagnostica di raggiungibilità degli allegati.
type EsitoVerifica struct {
	Raggiungibili    int `json:"raggiungibili"`
	NonRaggiungibili int `json:"non_raggiungibili"`
}

// VerificaAllegati sonda gli URL degli allegati prima di un export. È pura
// diagnostica: i fallimenti vengono contati, mai propagati come errore.
func VerificaAllegati(ctx context.Context, client *http.Client, p domain.Proposta) EsitoVerifica {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	var ok, ko atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, a := range p.Allegati {
		url := a.URL
		g.Go(func() error {
			req, err := http.NewRequestWithContext(gctx, http.MethodHead, url, nil)
			if err != nil {
				ko.Add(1)
				return nil
			}
			resp, err := client.Do(req)
			if err != nil || resp.StatusCode >= 400 {
				ko.Add(1)
			} else {
				ok.Add(1)
			}
			if resp != nil {
				_ = resp.Body.Close()
			}
			return nil
		})
	}
	_ = g.Wait()
	return EsitoVerifica{
		Raggiungibili:    int(ok.Load()),
		NonRaggiungibili: int(ko.Load()),
	}
}
