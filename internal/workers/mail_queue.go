package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-ask-box/internal/adapter"
	"github.com/MKhiriev/go-ask-box/internal/logger"
)

const (
	defaultMailQueueSize = 64
	mailSendTimeout      = 30 * time.Second
)

var ErrMailQueueFull = errors.New("mail queue is full")

type mailJob struct {
	email    string
	username string
	token    string
}

// MailQueue is an [adapter.Mailer] that hands confirmation mails to a
// background worker, so requests never wait for the relay.
type MailQueue struct {
	next adapter.Mailer
	jobs chan mailJob

	logger *logger.Logger
}

// NewMailQueue wraps next. size bounds the number of pending mails.
func NewMailQueue(next adapter.Mailer, size int, logger *logger.Logger) *MailQueue {
	if size <= 0 {
		size = defaultMailQueueSize
	}

	return &MailQueue{
		next:   next,
		jobs:   make(chan mailJob, size),
		logger: logger,
	}
}

// SendEmailConfirmation enqueues the mail. It fails with ErrMailQueueFull
// instead of blocking when the queue is saturated.
func (q *MailQueue) SendEmailConfirmation(_ context.Context, email, username, token string) error {
	select {
	case q.jobs <- mailJob{email: email, username: username, token: token}:
		return nil
	default:
		return ErrMailQueueFull
	}
}

// Run delivers queued mails until ctx is done. Mails still queued at that
// point are dropped and counted in the log.
func (q *MailQueue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			if pending := len(q.jobs); pending > 0 {
				q.logger.Warn().Int("pending", pending).Msg("mail queue stopped with undelivered mails")
			}
			return
		case job := <-q.jobs:
			q.deliver(ctx, job)
		}
	}
}

func (q *MailQueue) deliver(ctx context.Context, job mailJob) {
	ctx, cancel := context.WithTimeout(ctx, mailSendTimeout)
	defer cancel()

	if err := q.next.SendEmailConfirmation(ctx, job.email, job.username, job.token); err != nil {
		q.logger.Err(err).Str("username", job.username).Msg("confirmation mail was not delivered")
		return
	}
	q.logger.Debug().Str("username", job.username).Msg("confirmation mail delivered")
}
