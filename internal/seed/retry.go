package seed

import (
	"log"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 200 * time.Millisecond
)

// remplacé dans les tests
var sleep = time.Sleep

// withRetry réessaie une mutation du store avec backoff exponentiel.
// Chaque mutation est réessayée individuellement, jamais une séquence
// entière.
func withRetry(operation string, fn func() error) error {
	var err error
	delay := retryBaseDelay
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt < retryAttempts {
			log.Printf("⚠️ %s : tentative %d/%d échouée (%v), nouvel essai dans %s",
				operation, attempt, retryAttempts, err, delay)
			sleep(delay)
			delay *= 2
		}
	}
	return err
}
