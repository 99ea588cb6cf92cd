package message

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/dualgraph/srmp/cfn"
	"github.com/dualgraph/srmp/relax"
)

// SendRestricted computes the message edge would send if minimization were
// restricted to labelings consistent with sol, without mutating the store.
// Used during primal extraction (spec.md's "Extracting primal solution"),
// grounded on original_source's Messages::send_restricted.
func (s *Store) SendRestricted(edge relax.Edge, sol *cfn.Solution) []float64 {
	alpha := edge.From
	reparam := s.initReparam(alpha)
	s.addAllIncoming(reparam, alpha)
	s.subAllOtherOutgoing(reparam, alpha, edge.ID)
	out := s.restrictedMin(reparam, alpha, edge.To, sol)
	s.scratchPut(reparam)
	return out
}

// ComputeRestrictedReparam computes node's reparametrization for primal
// extraction: node's own factor minus every outgoing message, plus every
// incoming message — restricted-minimized along any incoming edge whose
// source factor is only partially labeled by sol. Grounded on
// original_source's Messages::compute_restricted_reparam.
func (s *Store) ComputeRestrictedReparam(node int, sol *cfn.Solution) []float64 {
	reparam := s.initReparam(node)
	s.subAllOutgoing(reparam, node)
	for _, e := range s.g.Incoming(node) {
		alphaScope := s.nodeScope(e.From)
		numLabeled := sol.NumLabeled(alphaScope)
		if numLabeled > 0 && numLabeled < len(alphaScope) {
			restricted := s.SendRestricted(e, sol)
			floats.Add(reparam, restricted)
		} else {
			floats.Add(reparam, s.messages[e.ID])
		}
	}
	return reparam
}

// restrictedMin projects theta (shaped like alphaNode's factor table) down
// to betaNode's shape, minimizing over every alpha labeling consistent with
// sol's labeled variables and holding sol's labels fixed. Ported from
// original_source's GeneralMessage::restricted_min, which supports an
// arbitrary-arity beta (message_nd.rs's unary-only special case is
// subsumed: see DESIGN.md).
func (s *Store) restrictedMin(theta []float64, alphaNode, betaNode int, sol *cfn.Solution) []float64 {
	alphaScope := s.nodeScope(alphaNode)
	betaScope := s.nodeScope(betaNode)
	alphaArity := len(alphaScope)

	kbFactorArr := make([]int, 0, alphaArity)
	kFactorArr := make([]int, 0, alphaArity)
	kArr := make([]int, 0, alphaArity)
	labeling := make([]int, 0, alphaArity)

	kFactor := 1
	k := 0
	kb := 0
	betaVarIdx := len(betaScope) - 1

	for ai := alphaArity - 1; ai >= 0; ai-- {
		kbFactor := 1
		for alphaScope[ai] != betaScope[betaVarIdx] {
			kbFactor *= s.net.DomainSize(betaScope[betaVarIdx])
			if betaVarIdx == 0 {
				kbFactor = 0
				break
			}
			betaVarIdx--
		}

		v := alphaScope[ai]
		if sol.IsLabeled(v) {
			label := sol.Label(v)
			kb += label * kbFactor
			k += label * kFactor
		} else {
			kbFactorArr = append(kbFactorArr, kbFactor)
			kFactorArr = append(kFactorArr, kFactor)
			kArr = append(kArr, s.net.DomainSize(v))
			labeling = append(labeling, 0)
		}
		kFactor *= s.net.DomainSize(v)
	}

	thetaBeta := make([]float64, s.nodeTableLen(betaNode))
	for i := range thetaBeta {
		thetaBeta[i] = math.Inf(1)
	}
	thetaBeta[kb] = theta[k]

	n := len(labeling)
	i := 0
	for i < n {
		if labeling[i] < kArr[i]-1 {
			labeling[i]++
			k += kFactorArr[i]
			kb += kbFactorArr[i]
			if totalOrderLess(theta[k], thetaBeta[kb]) {
				thetaBeta[kb] = theta[k]
			}
			i = 0
		} else {
			k -= labeling[i] * kFactorArr[i]
			kb -= labeling[i] * kbFactorArr[i]
			labeling[i] = 0
			i++
		}
	}
	return thetaBeta
}

// UpdateSolutionRestrictedMin labels every currently unlabeled variable in
// node's scope with the argmin of reparam (node's restricted
// reparametrization), breaking ties toward the first labeling found in
// descending-variable enumeration order. Ported from original_source's
// GeneralMessage::update_solution_restricted_minimum.
func (s *Store) UpdateSolutionRestrictedMin(reparam []float64, node int, sol *cfn.Solution) {
	scope := s.nodeScope(node)
	arity := len(scope)

	k := 0
	kFactorArr := make([]int, 0, arity)
	kArr := make([]int, 0, arity)
	indexArr := make([]int, 0, arity)
	labeling := make([]int, 0, arity)
	kFactor := 1

	for i := arity - 1; i >= 0; i-- {
		v := scope[i]
		if sol.IsLabeled(v) {
			k += sol.Label(v) * kFactor
		} else {
			sol.SetLabel(v, 0)
			kArr = append(kArr, s.net.DomainSize(v))
			kFactorArr = append(kFactorArr, kFactor)
			indexArr = append(indexArr, v)
			labeling = append(labeling, 0)
		}
		kFactor *= s.net.DomainSize(v)
	}

	n := len(labeling)
	if n == 0 {
		// Every variable in scope was already labeled; nothing to update.
		return
	}
	if n == arity {
		kBest := indexMinTotalOrder(reparam)
		for i := arity - 1; i >= 0; i-- {
			v := scope[i]
			sol.SetLabel(v, kBest%s.net.DomainSize(v))
			if i == 0 {
				return
			}
			kBest /= s.net.DomainSize(v)
		}
		return
	}

	vBest := reparam[k]
	i := 0
	for {
		if labeling[i] < kArr[i]-1 {
			labeling[i]++
			k += kFactorArr[i]
			if totalOrderLess(reparam[k], vBest) {
				vBest = reparam[k]
				for j := 0; j < n; j++ {
					sol.SetLabel(indexArr[j], labeling[j])
				}
			}
			i = 0
		} else {
			k -= labeling[i] * kFactorArr[i]
			labeling[i] = 0
			i++
			if i == n {
				break
			}
		}
	}
}
