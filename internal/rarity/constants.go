package rarity

import "math"

// Roll thresholds expressed near the top of the 32-bit range. A draw at or
// above a boundary lands in that tier; checks run from rarest down.
//
//	Legendary ~0.01%  UltraRare ~0.1%  Rare ~1%  Uncommon ~15%  Common ~84%
const (
	LegendaryThreshold uint32 = math.MaxUint32 - math.MaxUint32/10000
	UltraRareThreshold uint32 = math.MaxUint32 - math.MaxUint32/1000
	RareThreshold      uint32 = math.MaxUint32 - math.MaxUint32/100
	UncommonThreshold  uint32 = math.MaxUint32 - math.MaxUint32/100*15
)
