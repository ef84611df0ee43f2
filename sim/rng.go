package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the seed a run is reproduced from. The same key, menu,
// roster, configuration and command sequence always give the same run.
type SimulationKey int64

// NewSimulationKey wraps a seed.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random streams. Each draws from its own generator, so adding autopilot
// steps never changes which groups arrive or what they order.
const (
	// SubsystemArrivals sizes arriving groups. It is seeded with the key
	// itself, so a plain rand.NewSource(seed) reproduces the arrivals.
	SubsystemArrivals = "arrivals"

	// SubsystemChoice picks dishes for seated clients.
	SubsystemChoice = "choice"

	// SubsystemDriver draws tables and arrivals for the autopilot.
	SubsystemDriver = "driver"
)

// PartitionedRNG hands out one generator per named stream, created on first
// use and reused afterwards. Not safe for concurrent use; the simulator is
// single-threaded.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates the streams for key.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the generator for a stream, creating it on first use.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.subsystems[name]
	if !ok {
		rng = rand.New(rand.NewSource(p.seedFor(name)))
		p.subsystems[name] = rng
	}
	return rng
}

// Key returns the key the streams were derived from.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// seedFor mixes the stream name into the key: key XOR fnv1a64(name), except
// for arrivals which use the key unchanged.
func (p *PartitionedRNG) seedFor(name string) int64 {
	if name == SubsystemArrivals {
		return int64(p.key)
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(p.key) ^ int64(h.Sum64())
}
