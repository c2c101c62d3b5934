package reforge

import "math"

// AdjustOutgoingDamage adds the cumulative weapon bonus of weaponLevel to base
func (s *service) AdjustOutgoingDamage(base float64, weaponLevel int) float64 {
	if weaponLevel <= 0 {
		return base
	}
	return base + s.config.Current().CumulativeWeaponBonus(weaponLevel)
}

// AdjustIncomingDamage subtracts the cumulative armor bonus of every worn
// piece, never going below MinIncomingDamage. Without any bonus the amount
// is returned unchanged.
func (s *service) AdjustIncomingDamage(amount float64, armorLevels ...int) float64 {
	table := s.config.Current()

	reduction := 0.0
	for _, level := range armorLevels {
		if level > 0 {
			reduction += table.CumulativeArmorBonus(level)
		}
	}
	if reduction <= 0 {
		return amount
	}
	return math.Max(MinIncomingDamage, amount-reduction)
}
