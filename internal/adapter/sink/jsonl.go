package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/marcos-nsantos/field-notes-sensors/internal/adapter/dto/response"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/entity"
	"github.com/marcos-nsantos/field-notes-sensors/internal/domain/valueobject"
)

// JSONLines writes one reading document per line.
type JSONLines struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewJSONLines(w io.Writer) *JSONLines {
	return &JSONLines{enc: json.NewEncoder(w)}
}

func (s *JSONLines) Write(ctx context.Context, fix *entity.Fix, reading valueobject.Accuracy) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(response.ReadingFromValue(fix, reading)); err != nil {
		return fmt.Errorf("encoding reading: %w", err)
	}
	return nil
}
