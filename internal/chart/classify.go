package chart

import (
	"github.com/nimblemo/bodygraph/internal/bodygraph"
)

// facts are the derived structural conditions the classifiers decide over.
type facts struct {
	defined       map[bodygraph.Center]bool
	active        []bodygraph.Channel
	motorToThroat bool
}

func deriveFacts(defined map[bodygraph.Center]bool, active []bodygraph.Channel) facts {
	return facts{
		defined:       defined,
		active:        active,
		motorToThroat: bodygraph.MotorToThroat(defined, active),
	}
}

// typeRules is the ordered decision table for Type. Order is significant:
// rules are evaluated top to bottom and the first match wins.
var typeRules = []struct {
	result Type
	match  func(f facts) bool
}{
	{Reflector, func(f facts) bool {
		return len(f.defined) == 0
	}},
	{Manifestor, func(f facts) bool {
		return !f.defined[bodygraph.Sacral] && f.motorToThroat
	}},
	{ManifestingGenerator, func(f facts) bool {
		return f.defined[bodygraph.Sacral] && f.motorToThroat
	}},
	{Generator, func(f facts) bool {
		return f.defined[bodygraph.Sacral]
	}},
	{Projector, func(f facts) bool {
		return true
	}},
}

// ClassifyType assigns the energy type from the defined-center set and the
// active channels.
func ClassifyType(defined map[bodygraph.Center]bool, active []bodygraph.Channel) Type {
	f := deriveFacts(defined, active)
	for _, r := range typeRules {
		if r.match(f) {
			return r.result
		}
	}
	return Projector // unreachable: the last rule always matches
}

// authorityRules is the ordered decision table for Authority. Each rule's
// condition already assumes every earlier rule failed, which is what makes
// the plain center checks sufficient.
var authorityRules = []struct {
	result Authority
	match  func(f facts) bool
}{
	{Emotional, func(f facts) bool {
		return f.defined[bodygraph.SolarPlexus]
	}},
	{SacralAuthority, func(f facts) bool {
		return f.defined[bodygraph.Sacral]
	}},
	{Splenic, func(f facts) bool {
		return f.defined[bodygraph.Spleen]
	}},
	{Ego, func(f facts) bool {
		return f.defined[bodygraph.Heart] &&
			(bodygraph.Connected(f.active, bodygraph.Heart, bodygraph.Throat) ||
				bodygraph.Connected(f.active, bodygraph.Heart, bodygraph.G))
	}},
	{SelfProjected, func(f facts) bool {
		return f.defined[bodygraph.G] &&
			bodygraph.Connected(f.active, bodygraph.G, bodygraph.Throat)
	}},
	{Mental, func(f facts) bool {
		return len(f.defined) > 0
	}},
	{NoInnerAuthority, func(f facts) bool {
		return true
	}},
}

// ClassifyAuthority assigns the inner authority from the defined-center set
// and the active channels.
func ClassifyAuthority(defined map[bodygraph.Center]bool, active []bodygraph.Channel) Authority {
	f := deriveFacts(defined, active)
	for _, r := range authorityRules {
		if r.match(f) {
			return r.result
		}
	}
	return NoInnerAuthority // unreachable: the last rule always matches
}
