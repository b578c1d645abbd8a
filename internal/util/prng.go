// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package util implements small utilities shared across the module that
// don't belong to any one domain package.
package util

// PRNG is a xorshift64* generator (Vigna, 2014): no warm-up required,
// period 2^64-1, passes Dieharder/SmallCrush. attack/magic is the only
// consumer, which needs a seedable, deterministic stream so a failed
// magic search restarts from the same point every run.
type PRNG struct {
	seed uint64
}

// Seed resets the generator to start the stream at s.
func (p *PRNG) Seed(s uint64) {
	p.seed = s
}

// Uint64 returns the next pseudo-random value in the stream.
func (p *PRNG) Uint64() uint64 {
	p.seed ^= p.seed >> 12
	p.seed ^= p.seed << 25
	p.seed ^= p.seed >> 27
	return p.seed * 2685821657736338717
}

// SparseUint64 returns a pseudo-random value biased toward few set
// bits, by ANDing three independent draws together. Magic search
// converges faster on sparse candidates for wide blocker masks.
func (p *PRNG) SparseUint64() uint64 {
	return p.Uint64() & p.Uint64() & p.Uint64()
}
