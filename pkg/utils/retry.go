package utils

import (
	"context"
	"time"
)

// Retry ejecuta fn hasta attempts veces, esperando delay entre intentos.
// Solo se usa al arrancar (p.ej. ping a Redis); la publicación no reintenta.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-time.After(delay):
			// espera antes del siguiente intento
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
