package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadLimiter(t *testing.T) {
	t.Parallel()
	adesso := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	l := newUploadLimiter()
	l.now = func() time.Time { return adesso }

	for i := 0; i < maxUploadPerFinestra; i++ {
		require.NoError(t, l.Consenti())
		l.Registra()
	}
	assert.ErrorIs(t, l.Consenti(), ErrLimiteUpload)

	usati, rimanenti, _ := l.Stato()
	assert.Equal(t, maxUploadPerFinestra, usati)
	assert.Zero(t, rimanenti)

	// allo scadere della finestra il contatore riparte
	adesso = adesso.Add(durataFinestra + time.Second)
	assert.NoError(t, l.Consenti())
	usati, rimanenti, reset := l.Stato()
	assert.Zero(t, usati)
	assert.Equal(t, maxUploadPerFinestra, rimanenti)
	assert.True(t, reset.After(adesso))
}

func TestUploadLimiterRegistraSoloSuccessi(t *testing.T) {
	t.Parallel()
	l := newUploadLimiter()
	// Consenti da solo non consuma la finestra
	for i := 0; i < maxUploadPerFinestra*2; i++ {
		require.NoError(t, l.Consenti())
	}
	usati, _, _ := l.Stato()
	assert.Zero(t, usati)
}
