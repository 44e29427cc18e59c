package session

import (
	"encoding/json"
	"fmt"
)

// Chain identifies one of the two networks of the transfer form.
type Chain uint8

const (
	ChainA Chain = iota
	ChainB
)

// Complement returns the other chain of the pair.
func (c Chain) Complement() Chain {
	if c == ChainA {
		return ChainB
	}
	return ChainA
}

func (c Chain) Valid() bool {
	return c == ChainA || c == ChainB
}

func (c Chain) String() string {
	switch c {
	case ChainA:
		return "chainA"
	case ChainB:
		return "chainB"
	default:
		return fmt.Sprintf("chain(%d)", uint8(c))
	}
}

// ParseChain parses the form value of a chain selector.
func ParseChain(value string) (Chain, bool) {
	switch value {
	case "chainA":
		return ChainA, true
	case "chainB":
		return ChainB, true
	default:
		return 0, false
	}
}

func (c Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Chain) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	chain, ok := ParseChain(value)
	if !ok {
		return fmt.Errorf("invalid chain: %q", value)
	}
	*c = chain
	return nil
}

// ChainBalances holds the native balance of the connected wallet on both chains as decimal ETH strings.
type ChainBalances struct {
	ChainA string `json:"chainA"`
	ChainB string `json:"chainB"`
}

// ZeroBalances is used before the first fetch and whenever a fetch fails.
func ZeroBalances() ChainBalances {
	return ChainBalances{ChainA: "0", ChainB: "0"}
}

// Of returns the balance of the given chain.
func (b ChainBalances) Of(chain Chain) string {
	if chain == ChainA {
		return b.ChainA
	}
	return b.ChainB
}
