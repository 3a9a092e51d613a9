package producer

import (
	"dashboard-srv/internal/export"
	pkgKafka "dashboard-srv/pkg/kafka"
	"dashboard-srv/pkg/log"
)

// Producer interface for export domain
type Producer interface {
	export.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new export producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
