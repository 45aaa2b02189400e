package skipset

import (
	randv2 "math/rand/v2"
)

// DefaultSkipFactor is the default promotion denominator: a tower extends
// one more layer with probability 1/DefaultSkipFactor.
const DefaultSkipFactor = 2

// seedScramble decorrelates the two PCG stream words derived from a single
// user-supplied seed.
const seedScramble = uint64(0x9e3779b97f4a7c15)

// coin decides tower promotion. Each flip is an independent Bernoulli trial
// with success probability 1/factor, drawn from an instance-scoped source.
type coin struct {
	src    randv2.Source
	factor uint64
}

func newCoin(cfg Config) coin {
	src := cfg.src
	if src == nil {
		if cfg.seeded {
			src = randv2.NewPCG(cfg.seed, cfg.seed^seedScramble)
		} else {
			src = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
		}
	}
	return coin{src: src, factor: cfg.skipFactor}
}

// flip reports one promotion trial. The factor==2 path spends a single bit
// per flip; trials stay independent because every call draws a fresh word.
func (c *coin) flip() bool {
	if c.factor == 2 {
		return c.src.Uint64()&1 == 0
	}
	return c.src.Uint64()%c.factor == 0
}
