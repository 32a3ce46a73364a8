package sink

import (
	"context"

	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/entity"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/sink_mocks.go -package=mocks

type ReadingSink interface {
	Write(ctx context.Context, fix *entity.Fix, reading valueobject.Accuracy) error
}
