package services

import (
	"fmt"

	"talent-stake/domain/entities"
)

// SplitPot divides a job pot between referrer and candidate. The candidate gets the
// floor of its share and the referrer gets everything else, including any remainder.
func SplitPot(pot entities.Amount, referrerSharePercent uint64) (referrerAmount, candidateAmount entities.Amount, err error) {
	if referrerSharePercent == 0 || referrerSharePercent >= 100 {
		return entities.Amount{}, entities.Amount{}, fmt.Errorf("referrer share %d%% out of range", referrerSharePercent)
	}

	candidateAmount, err = pot.MulDiv(100-referrerSharePercent, 100)
	if err != nil {
		return entities.Amount{}, entities.Amount{}, err
	}
	referrerAmount, err = pot.Sub(candidateAmount)
	if err != nil {
		return entities.Amount{}, entities.Amount{}, err
	}
	return referrerAmount, candidateAmount, nil
}
