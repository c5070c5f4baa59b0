package services

import (
	"narike/portfolio-api/internal/models"
)

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeQuotaExceeded
	OutcomeTransientFailure
	OutcomePermanentFailure
)

// JobMatchOutcome is the result of one analysis run. Exactly one variant is
// ever populated; the constructors below are the only way to build one, so a
// "success with an error message" state cannot exist.
type JobMatchOutcome struct {
	kind       OutcomeKind
	evaluation models.MatchEvaluation
	tailoredCv models.TailoredCv
	document   models.FileAttachment
	retryAfter string
	reason     string
}

func SuccessOutcome(evaluation models.MatchEvaluation, tailoredCv models.TailoredCv, document models.FileAttachment) *JobMatchOutcome {
	return &JobMatchOutcome{
		kind:       OutcomeSuccess,
		evaluation: evaluation,
		tailoredCv: tailoredCv,
		document:   document,
	}
}

// QuotaExceededOutcome carries an optional human-readable retry hint,
// e.g. "30 seconds". Empty when the provider gave none.
func QuotaExceededOutcome(retryAfter string) *JobMatchOutcome {
	return &JobMatchOutcome{kind: OutcomeQuotaExceeded, retryAfter: retryAfter}
}

func TransientFailureOutcome(reason string) *JobMatchOutcome {
	return &JobMatchOutcome{kind: OutcomeTransientFailure, reason: reason}
}

func PermanentFailureOutcome(reason string) *JobMatchOutcome {
	return &JobMatchOutcome{kind: OutcomePermanentFailure, reason: reason}
}

func (o *JobMatchOutcome) Kind() OutcomeKind { return o.kind }

func (o *JobMatchOutcome) Evaluation() models.MatchEvaluation { return o.evaluation }

func (o *JobMatchOutcome) TailoredCv() models.TailoredCv { return o.tailoredCv }

func (o *JobMatchOutcome) Document() models.FileAttachment { return o.document }

func (o *JobMatchOutcome) RetryAfter() string { return o.retryAfter }

func (o *JobMatchOutcome) Reason() string { return o.reason }
