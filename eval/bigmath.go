package eval

import "math/big"

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// primeFactors returns the prime factorization of n (n >= 2) with
// multiplicity, ascending, by plain trial division — Product's Integer rule
// (spec §4.3.1) has no performance requirement to meet, per the
// optimisation Non-goal.
func primeFactors(n *big.Int) []*big.Int {
	var factors []*big.Int
	remaining := new(big.Int).Set(n)
	d := new(big.Int).Set(big2)
	for {
		sq := new(big.Int).Mul(d, d)
		if sq.Cmp(remaining) > 0 {
			break
		}
		for {
			q, r := new(big.Int), new(big.Int)
			q.DivMod(remaining, d, r)
			if r.Sign() != 0 {
				break
			}
			factors = append(factors, new(big.Int).Set(d))
			remaining = q
		}
		d = new(big.Int).Add(d, big1)
	}
	if remaining.Cmp(big1) > 0 {
		factors = append(factors, remaining)
	}
	return factors
}
