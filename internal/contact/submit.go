package contact

import (
	"context"
	"errors"
	"log/slog"
)

// Submitter runs the contact flow: relay first when configured, mailto otherwise.
type Submitter struct {
	relay     RelayConfig
	sender    Sender
	recipient string
	logger    *slog.Logger

	// OnStatus, when set, observes intermediate outcomes such as OutcomeSending.
	OnStatus func(Outcome)
}

// NewSubmitter builds a Submitter. A nil relay is treated as RelayNotConfigured.
func NewSubmitter(relay RelayConfig, sender Sender, recipient string, logger *slog.Logger) *Submitter {
	if relay == nil {
		relay = RelayNotConfigured{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{
		relay:     relay,
		sender:    sender,
		recipient: recipient,
		logger:    logger,
	}
}

// Recipient is the fixed address used by the mailto fallback.
func (s *Submitter) Recipient() string { return s.recipient }

// Submit performs one submission attempt. msg is trusted to have passed form
// constraints already. Every relay failure is absorbed into a fallback.
func (s *Submitter) Submit(ctx context.Context, msg Message) Result {
	cfg, ok := s.relay.(RelayConfigured)
	if !ok || s.sender == nil {
		s.logger.Info("contact relay not configured, using mailto")
		return s.fallback(OutcomeIdle, ReasonNotConfigured, msg, nil)
	}

	s.report(OutcomeSending)
	err := s.sender.Send(ctx, cfg, msg)
	if err == nil {
		s.logger.Info("contact message sent", "outcome", OutcomeSent)
		s.report(OutcomeSent)
		return Result{Outcome: OutcomeSent}
	}

	reason := ReasonTransport
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		reason = ReasonRejected
	}
	s.logger.Warn("contact relay failed, using mailto", "reason", reason, "error", err)
	s.report(OutcomeFailedFallback)
	return s.fallback(OutcomeFailedFallback, reason, msg, err)
}

func (s *Submitter) fallback(outcome Outcome, reason FallbackReason, msg Message, err error) Result {
	return Result{
		Outcome: outcome,
		Fallback: &Fallback{
			Reason:    reason,
			MailtoURL: BuildMailto(s.recipient, msg),
			Err:       err,
		},
	}
}

func (s *Submitter) report(o Outcome) {
	if s.OnStatus != nil {
		s.OnStatus(o)
	}
}
