package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"
)

// Metadata is the token document served at baseURL + token address.
type Metadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals *int32 `json:"decimals" validate:"omitempty,min=0,max=77"`
}

type MetadataResolver struct {
	client      *retryablehttp.Client
	baseURL     string
	concurrency int
	validate    *validator.Validate
}

func NewMetadataResolver(client *retryablehttp.Client, baseURL string, concurrency int) *MetadataResolver {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &MetadataResolver{
		client:      client,
		baseURL:     baseURL,
		concurrency: concurrency,
		validate:    validator.New(),
	}
}

// Resolve fetches metadata for every catalogue token with a missing name, symbol or decimals.
// Tokens whose metadata cannot be fetched or fails validation are left out of the result.
func (r *MetadataResolver) Resolve(ctx context.Context, c *Catalogue) map[common.Address]Metadata {
	resolved := make(map[common.Address]Metadata)
	if r.baseURL == "" {
		return resolved
	}

	mu := sync.Mutex{}
	swg := sizedwaitgroup.New(r.concurrency)

	for _, token := range c.Tokens() {
		if token.DisplayName != "" && token.Symbol != "" && token.Decimals != nil {
			continue
		}

		swg.Add()

		go func(id common.Address) {
			defer swg.Done()

			meta, err := r.fetch(ctx, id)
			if err != nil {
				log.WithError(err).WithField("token", id.Hex()).Warn("failed to fetch token metadata, using defaults")

				return
			}

			err = r.validate.Struct(meta)
			if err != nil {
				log.WithError(err).WithField("token", id.Hex()).Warn("token metadata failed validation, using defaults")

				return
			}

			mu.Lock()
			resolved[id] = *meta
			mu.Unlock()
		}(token.ID)
	}

	swg.Wait()

	log.WithField("resolved", len(resolved)).Debug("token metadata resolved")

	return resolved
}

func (r *MetadataResolver) fetch(ctx context.Context, id common.Address) (*Metadata, error) {
	url := strings.TrimSuffix(r.baseURL, "/") + "/" + id.Hex()

	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Request = req.Request.WithContext(ctx)

	req.Header.Add("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata endpoint returned status %d", res.StatusCode)
	}

	meta := new(Metadata)

	err = json.NewDecoder(res.Body).Decode(meta)
	if err != nil {
		return nil, err
	}

	return meta, nil
}
