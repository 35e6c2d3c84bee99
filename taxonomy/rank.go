// Copyright 2026 The Centrifuger Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package taxonomy

// Rank is a taxonomic rank tag from the closed NCBI-style enumeration
// (Taxonomy.hpp's RANK_* constants).
type Rank uint8

const (
	RankUnknown Rank = iota
	RankStrain
	RankSpecies
	RankGenus
	RankFamily
	RankOrder
	RankClass
	RankPhylum
	RankKingdom
	RankDomain
	RankForma
	RankInfraClass
	RankInfraOrder
	RankParvOrder
	RankSubClass
	RankSubFamily
	RankSubGenus
	RankSubKingdom
	RankSubOrder
	RankSubPhylum
	RankSubSpecies
	RankSubTribe
	RankSuperClass
	RankSuperFamily
	RankSuperKingdom
	RankSuperOrder
	RankSuperPhylum
	RankTribe
	RankVarietas
	RankLife
	rankMax
)

// String returns the NCBI rank name, matching
// Taxonomy.hpp::GetTaxRankString.
func (r Rank) String() string {
	switch r {
	case RankStrain:
		return "strain"
	case RankSpecies:
		return "species"
	case RankGenus:
		return "genus"
	case RankFamily:
		return "family"
	case RankOrder:
		return "order"
	case RankClass:
		return "class"
	case RankPhylum:
		return "phylum"
	case RankKingdom:
		return "kingdom"
	case RankDomain:
		return "domain"
	case RankForma:
		return "forma"
	case RankInfraClass:
		return "infraclass"
	case RankInfraOrder:
		return "infraorder"
	case RankParvOrder:
		return "parvorder"
	case RankSubClass:
		return "subclass"
	case RankSubFamily:
		return "subfamily"
	case RankSubGenus:
		return "subgenus"
	case RankSubKingdom:
		return "subkingdom"
	case RankSubOrder:
		return "suborder"
	case RankSubPhylum:
		return "subphylum"
	case RankSubSpecies:
		return "subspecies"
	case RankSubTribe:
		return "subtribe"
	case RankSuperClass:
		return "superclass"
	case RankSuperFamily:
		return "superfamily"
	case RankSuperKingdom:
		return "superkingdom"
	case RankSuperOrder:
		return "superorder"
	case RankSuperPhylum:
		return "superphylum"
	case RankTribe:
		return "tribe"
	case RankVarietas:
		return "varietas"
	case RankLife:
		return "life"
	default:
		return "no rank"
	}
}

// ParseRank is the inverse of String, matching
// Taxonomy.hpp::GetTaxRankId.
func ParseRank(s string) Rank {
	for r := RankStrain; r < rankMax; r++ {
		if r.String() == s {
			return r
		}
	}
	return RankUnknown
}

// reducedOrder collapses the closed rank enumeration to the 9-level
// total order spec.md 3/GLOSSARY calls for (strain < species < genus <
// family < order < class < phylum < kingdom < domain, with forma, tribe,
// subtribe, varietas and unknown at the domain level), the same collapse
// Taxonomy.hpp::InitTaxRankNum performs by assigning sub/super variants
// the same ordinal as their parent rank.
var reducedOrder [rankMax]uint8

func init() {
	var next uint8
	set := func(r Rank) { reducedOrder[r] = next }
	bump := func(r Rank) { reducedOrder[r] = next; next++ }

	set(RankSubSpecies)
	bump(RankStrain)

	bump(RankSpecies)

	set(RankSubGenus)
	bump(RankGenus)

	set(RankSubFamily)
	set(RankFamily)
	bump(RankSuperFamily)

	set(RankSubOrder)
	set(RankInfraOrder)
	set(RankParvOrder)
	set(RankOrder)
	bump(RankSuperOrder)

	set(RankInfraClass)
	set(RankSubClass)
	set(RankClass)
	bump(RankSuperClass)

	set(RankSubPhylum)
	set(RankPhylum)
	bump(RankSuperPhylum)

	set(RankSubKingdom)
	set(RankKingdom)
	bump(RankSuperKingdom)

	set(RankDomain)
	set(RankForma)
	set(RankSubTribe)
	set(RankTribe)
	set(RankVarietas)
	set(RankUnknown)
}

// order returns r's position in the reduced 9-level total order, used
// to bound AncestorAtRank/LCA climbs.
func (r Rank) order() uint8 { return reducedOrder[r] }
