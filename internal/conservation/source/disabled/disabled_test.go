package disabled

import (
	"testing"

	"botanica/internal/conservation/source/contract"
)

func TestDisabledContract(t *testing.T) {
	suite := contract.Suite{
		SourceID: ID,
		Source:   New(),
		Missing:  []string{"Cannabis sativa", "Welwitschia mirabilis", "Quercus robur"},
	}
	suite.Run(t)
}
