package decisionx

import (
	"github.com/clinia/featuretoggles/featureflagx"
	"github.com/clinia/featuretoggles/utilx"
)

const (
	FlagNextGenEcomm                 = featureflagx.FeatureFlag("next-gen-ecomm")
	FlagUseNewSRAlgorithm            = featureflagx.FeatureFlag("use-new-SR-algorithm")
	DecisionIncludeOrderCancellation = "include-order-cancellation-in-email"
	DecisionUseNewSplineReticulation = "use-new-spline-reticulation"
)

// FeatureDecisions is the business vocabulary over the flag table. Consumers ask it
// questions and never see flag names.
type FeatureDecisions struct {
	includeOrderCancellation *Decision
	useNewSplineReticulation *Decision
}

func NewFeatureDecisions(toggles featureflagx.Toggles) *FeatureDecisions {
	return &FeatureDecisions{
		includeOrderCancellation: utilx.Must(NewDecision(DecisionIncludeOrderCancellation, toggles, FlagNextGenEcomm)),
		useNewSplineReticulation: utilx.Must(NewDecision(DecisionUseNewSplineReticulation, toggles, FlagUseNewSRAlgorithm)),
	}
}

func (fd *FeatureDecisions) IncludeOrderCancellationInEmail() bool {
	return fd.includeOrderCancellation.Enabled()
}

func (fd *FeatureDecisions) UseNewSplineReticulation() bool {
	return fd.useNewSplineReticulation.Enabled()
}

// OrderCancellationInEmail exposes the decision itself, for factories that resolve it once.
func (fd *FeatureDecisions) OrderCancellationInEmail() *Decision {
	return fd.includeOrderCancellation
}

func (fd *FeatureDecisions) NewSplineReticulation() *Decision {
	return fd.useNewSplineReticulation
}
