package services

import "youthhub/contexts/listings/opportunity-service/domain/entities"

// Decision is the outcome of evaluating a moderation transition against the
// current record state.
type Decision int

const (
	// DecisionApply means the transition is legal and must be persisted.
	DecisionApply Decision = iota
	// DecisionNoop means the record already carries the target status; the
	// call succeeds without a store write.
	DecisionNoop
	// DecisionIllegal means no such transition exists. Terminal states never
	// move back through the moderation surface; re-review requires delete
	// and re-submit.
	DecisionIllegal
)

// EvaluateTransition implements the moderation state machine:
// pending -> approved and pending -> rejected are the only real transitions,
// and repeating a decision on a record already in the target state is a
// successful no-op.
func EvaluateTransition(current entities.Status, target entities.Status) Decision {
	if current == target {
		return DecisionNoop
	}
	if current == entities.StatusPending &&
		(target == entities.StatusApproved || target == entities.StatusRejected) {
		return DecisionApply
	}
	return DecisionIllegal
}
