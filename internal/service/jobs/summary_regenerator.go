package jobs

import (
	"context"
	"errors"
	"rolodex/internal/domain/entity"
	"rolodex/internal/infrastructure/openai"
	"rolodex/internal/utils"
	"time"

	"github.com/labstack/gommon/log"
)

// RateLimitPause is the fixed wait applied when the completion API
// reports a rate limit. No exponential growth, no jitter.
const RateLimitPause = 15 * time.Second

type NoteRepository interface {
	FindAll() ([]*entity.Note, error)
	Save(note *entity.Note) error
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
	GenerateTitle(ctx context.Context, text string) (string, error)
}

// SummaryRegenerator re-runs title and summary generation over every
// stored note, sequentially. It is a maintenance operation, triggered
// over the API rather than on a schedule.
type SummaryRegenerator struct {
	NoteRepo NoteRepository
	AI       Summarizer
	Pause    time.Duration
}

func NewSummaryRegenerator(noteRepo NoteRepository, ai Summarizer) *SummaryRegenerator {
	return &SummaryRegenerator{
		NoteRepo: noteRepo,
		AI:       ai,
		Pause:    RateLimitPause,
	}
}

// Run processes notes one by one; a failing note is counted and
// skipped, it never aborts the sweep.
func (r *SummaryRegenerator) Run(ctx context.Context) (processed, failed int, err error) {
	notes, err := r.NoteRepo.FindAll()
	if err != nil {
		return 0, 0, err
	}

	log.Infof("Regenerating summaries for %d notes", len(notes))

	for _, note := range notes {
		if ctx.Err() != nil {
			return processed, failed, ctx.Err()
		}

		if rerr := r.regenerate(ctx, note); rerr != nil {
			log.Errorf("failed to regenerate note %d: %v", note.ID, rerr)
			failed++
			continue
		}
		processed++
	}
	return processed, failed, nil
}

func (r *SummaryRegenerator) regenerate(ctx context.Context, note *entity.Note) error {
	summary, err := r.completeWithPause(ctx, note.Content, r.AI.Summarize)
	if err != nil {
		return err
	}

	title, err := r.completeWithPause(ctx, note.Content, r.AI.GenerateTitle)
	if err != nil {
		return err
	}

	note.Summary = summary
	note.Title = title
	note.UpdatedAt = utils.NowUTC()
	return r.NoteRepo.Save(note)
}

// completeWithPause retries a call once after the fixed pause when the
// API reports a rate limit.
func (r *SummaryRegenerator) completeWithPause(
	ctx context.Context,
	text string,
	call func(context.Context, string) (string, error),
) (string, error) {
	out, err := call(ctx, text)
	if errors.Is(err, openai.ErrRateLimited) {
		log.Warnf("rate limited, pausing %s before continuing", r.Pause)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.Pause):
		}
		out, err = call(ctx, text)
	}
	return out, err
}
