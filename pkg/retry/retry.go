// Package retry fornece reexecução com backoff fixo para operações que podem
// falhar de forma transitória (tipicamente chamadas HTTP a serviços externos).
package retry

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultAttempts = 3
	DefaultDelay    = 5 * time.Second
)

// Options controla o número de tentativas e a pausa entre elas. Sleep é
// substituível em testes.
type Options struct {
	Attempts int
	Delay    time.Duration
	Label    string
	Sleep    func(time.Duration)
}

func (o *Options) normalize() {
	if o.Attempts <= 0 {
		o.Attempts = DefaultAttempts
	}
	if o.Delay <= 0 {
		o.Delay = DefaultDelay
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
}

// Do executa a operação até obter sucesso ou esgotar as tentativas, com pausa
// fixa entre elas. Retorna o último erro quando todas falham.
func Do[T any](op func() (T, error), opts Options) (T, error) {
	opts.normalize()

	var result T
	var err error

	for attempt := 1; attempt <= opts.Attempts; attempt++ {
		result, err = op()
		if err == nil {
			return result, nil
		}

		if attempt < opts.Attempts {
			logrus.WithFields(logrus.Fields{
				"label":   opts.Label,
				"attempt": attempt,
				"error":   err.Error(),
			}).Warn("operação falhou, aguardando para tentar novamente")
			opts.Sleep(opts.Delay)
		}
	}

	return result, err
}
