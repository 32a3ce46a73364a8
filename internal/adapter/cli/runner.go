package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/field-notes-sensors/internal/adapter/dto/request"
	"github.com/marcos-nsantos/field-notes-sensors/internal/pkg/apperror"
	"github.com/marcos-nsantos/field-notes-sensors/internal/usecase/accuracy"
)

const maxLineSize = 1 << 20

type Converter interface {
	Convert(ctx context.Context, input accuracy.ConvertInput) (*accuracy.Result, error)
}

type RunnerConfig struct {
	Converter     Converter
	Logger        *zap.Logger
	DefaultStatus int
	Strict        bool
}

// Runner reads JSON-lines fixes and converts each into an accuracy reading.
type Runner struct {
	converter     Converter
	logger        *zap.Logger
	defaultStatus int
	strict        bool
}

func NewRunner(cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		converter:     cfg.Converter,
		logger:        logger,
		defaultStatus: cfg.DefaultStatus,
		strict:        cfg.Strict,
	}
}

type Summary struct {
	Lines     int
	Converted int
	Unknown   int
	Skipped   int
}

// Run converts lines until the input ends or ctx is cancelled. Cancellation
// is honoured while a read is blocked; the reading goroutine then exits on its
// next read.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Summary, error) {
	var summary Summary

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := scanLines(ctx, in)

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		var sl scannedLine
		var ok bool
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		case sl, ok = <-lines:
		}
		if !ok {
			return summary, nil
		}
		if sl.err != nil {
			return summary, apperror.Internal(fmt.Errorf("reading input: %w", sl.err))
		}

		line := bytes.TrimSpace(sl.text)
		summary.Lines++
		if len(line) == 0 {
			continue
		}

		result, err := r.convertLine(ctx, line)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return summary, err
			}
			if !isInputError(err) {
				return summary, apperror.Internal(err)
			}
			if r.strict {
				return summary, apperror.InvalidInput(summary.Lines, err)
			}
			r.logger.Warn("skipping fix", zap.Int("line", summary.Lines), zap.Error(err))
			summary.Skipped++
			continue
		}

		summary.Converted++
		if !result.Reading.HasValue() {
			summary.Unknown++
		}
		r.logger.Debug("converted fix",
			zap.Stringer("fix_id", result.Fix.ID),
			zap.Stringer("reading", result.Reading),
		)
	}
}

type scannedLine struct {
	text []byte
	err  error
}

func scanLines(ctx context.Context, in io.Reader) <-chan scannedLine {
	out := make(chan scannedLine)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		for scanner.Scan() {
			text := append([]byte(nil), scanner.Bytes()...)
			select {
			case out <- scannedLine{text: text}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case out <- scannedLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return out
}

func (r *Runner) convertLine(ctx context.Context, line []byte) (*accuracy.Result, error) {
	var req request.FixRequest
	if err := json.Unmarshal(line, &req); err != nil {
		return nil, &decodeError{err: err}
	}

	status := r.defaultStatus
	if req.Status != nil {
		status = *req.Status
	}

	return r.converter.Convert(ctx, accuracy.ConvertInput{
		FixID:      req.ID,
		SequenceID: req.SequenceID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Altitude:   req.Altitude,
		Accuracy:   req.Accuracy,
		Status:     status,
		CapturedAt: req.CapturedAt,
	})
}
