package catalogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"puck-staking/caching"
	"puck-staking/goutils/datamodel"
)

var (
	ErrInvalidCatalogue = errors.New("invalid catalogue")
	ErrDuplicateToken   = errors.New("duplicate token in catalogue")
	ErrMultipleRewards  = errors.New("more than one reward token in catalogue")
	ErrEmptyCatalogue   = errors.New("catalogue has no tokens")
	ErrUnknownToken     = errors.New("token is not in the catalogue")
	ErrNoRewardToken    = errors.New("catalogue has no reward token")
)

type file struct {
	Tokens []datamodel.TokenDescriptor `json:"tokens" validate:"dive"`
}

// Catalogue is the immutable, ordered set of tokens the service tracks.
type Catalogue struct {
	tokens []datamodel.TokenDescriptor
	index  map[common.Address]int
}

// Load reads and validates the catalogue asset at path.
func Load(disk caching.DiskCache, path string) (*Catalogue, error) {
	data, err := disk.Read(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("failed to read token catalogue")

		return nil, err
	}

	return Parse(data)
}

func Parse(data []byte) (*Catalogue, error) {
	f := new(file)

	err := json.Unmarshal(data, f)
	if err != nil {
		log.WithError(err).Error("failed to unmarshal token catalogue")

		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogue, err)
	}

	err = validator.New().Struct(f)
	if err != nil {
		log.WithError(err).Error("token catalogue failed validation")

		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogue, err)
	}

	return New(f.Tokens)
}

// New builds a catalogue from tokens, keeping their order.
func New(tokens []datamodel.TokenDescriptor) (*Catalogue, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyCatalogue
	}

	c := &Catalogue{
		tokens: make([]datamodel.TokenDescriptor, len(tokens)),
		index:  make(map[common.Address]int, len(tokens)),
	}

	rewards := 0

	for i, token := range tokens {
		if _, ok := c.index[token.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateToken, token.ID.Hex())
		}

		if token.Reward {
			rewards++
		}

		c.tokens[i] = token
		c.index[token.ID] = i
	}

	if rewards > 1 {
		return nil, ErrMultipleRewards
	}

	log.WithField("tokens", len(c.tokens)).Info("token catalogue loaded")

	return c, nil
}

// Tokens returns a copy of the catalogue in its declared order.
func (c *Catalogue) Tokens() []datamodel.TokenDescriptor {
	tokens := make([]datamodel.TokenDescriptor, len(c.tokens))
	copy(tokens, c.tokens)

	return tokens
}

func (c *Catalogue) Lookup(id common.Address) (datamodel.TokenDescriptor, error) {
	i, ok := c.index[id]
	if !ok {
		return datamodel.TokenDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownToken, id.Hex())
	}

	return c.tokens[i], nil
}

// LookupName finds a token by display name. An exact match wins over a case-insensitive one.
func (c *Catalogue) LookupName(name string) (datamodel.TokenDescriptor, error) {
	folded := -1

	for i, token := range c.tokens {
		if token.DisplayName == name {
			return token, nil
		}

		if folded < 0 && strings.EqualFold(token.DisplayName, name) {
			folded = i
		}
	}

	if name == "" || folded < 0 {
		return datamodel.TokenDescriptor{}, fmt.Errorf("%w: %q", ErrUnknownToken, name)
	}

	return c.tokens[folded], nil
}

func (c *Catalogue) RewardToken() (datamodel.TokenDescriptor, error) {
	for _, token := range c.tokens {
		if token.Reward {
			return token, nil
		}
	}

	return datamodel.TokenDescriptor{}, ErrNoRewardToken
}

// WithMetadata returns a new catalogue where missing fields are filled from metadata.
// Fields present in the catalogue asset always win.
func (c *Catalogue) WithMetadata(metadata map[common.Address]Metadata) *Catalogue {
	enriched := &Catalogue{
		tokens: c.Tokens(),
		index:  c.index,
	}

	for i, token := range enriched.tokens {
		meta, ok := metadata[token.ID]
		if !ok {
			continue
		}

		if token.DisplayName == "" {
			token.DisplayName = meta.Name
		}

		if token.Symbol == "" {
			token.Symbol = meta.Symbol
		}

		if token.Decimals == nil && meta.Decimals != nil {
			decimals := *meta.Decimals
			token.Decimals = &decimals
		}

		enriched.tokens[i] = token
	}

	return enriched
}
