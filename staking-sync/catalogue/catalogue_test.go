package catalogue

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puck-staking/goutils/mock"
)

const validCatalogue = `{
  "tokens": [
    {"name": "Anaheim", "address": "0x00000000000000000000000000000000000000a1", "image": "anaheim.png"},
    {"name": "Boston", "address": "0x00000000000000000000000000000000000000a2", "image": "boston.png", "decimals": 6},
    {"address": "0x00000000000000000000000000000000000000a3"},
    {"name": "PUCK", "address": "0x00000000000000000000000000000000000000ff", "image": "puck.png", "reward": true}
  ]
}`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(validCatalogue))
	require.NoError(t, err)

	tokens := c.Tokens()
	require.Len(t, tokens, 4)
	assert.Equal(t, "Anaheim", tokens[0].DisplayName)
	assert.Equal(t, int32(6), tokens[1].Scale())
	assert.Equal(t, int32(18), tokens[0].Scale())

	reward, err := c.RewardToken()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xff"), reward.ID)

	boston, err := c.Lookup(common.HexToAddress("0xa2"))
	require.NoError(t, err)
	assert.Equal(t, "Boston", boston.DisplayName)

	_, err = c.Lookup(common.HexToAddress("0xbeef"))
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestParseRejectsInvalidCatalogues(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectedErr error
	}{
		{
			name:        "malformed json",
			data:        `{"tokens": [`,
			expectedErr: ErrInvalidCatalogue,
		},
		{
			name:        "malformed address",
			data:        `{"tokens": [{"name": "Bad", "address": "0x..."}]}`,
			expectedErr: ErrInvalidCatalogue,
		},
		{
			name:        "missing address",
			data:        `{"tokens": [{"name": "Nowhere"}]}`,
			expectedErr: ErrInvalidCatalogue,
		},
		{
			name:        "decimals out of range",
			data:        `{"tokens": [{"address": "0x00000000000000000000000000000000000000a1", "decimals": 90}]}`,
			expectedErr: ErrInvalidCatalogue,
		},
		{
			name:        "empty",
			data:        `{"tokens": []}`,
			expectedErr: ErrEmptyCatalogue,
		},
		{
			name: "duplicate address",
			data: `{"tokens": [
				{"address": "0x00000000000000000000000000000000000000a1"},
				{"address": "0x00000000000000000000000000000000000000A1"}
			]}`,
			expectedErr: ErrDuplicateToken,
		},
		{
			name: "two reward tokens",
			data: `{"tokens": [
				{"address": "0x00000000000000000000000000000000000000a1", "reward": true},
				{"address": "0x00000000000000000000000000000000000000a2", "reward": true}
			]}`,
			expectedErr: ErrMultipleRewards,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))

			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads through the disk cache", func(t *testing.T) {
		disk := mock.DiskMock{
			ReadMock: func(filepath string) ([]byte, error) {
				assert.Equal(t, "/config/catalogue.json", filepath)

				return []byte(validCatalogue), nil
			},
		}

		c, err := Load(disk, "/config/catalogue.json")
		require.NoError(t, err)
		assert.Len(t, c.Tokens(), 4)
	})

	t.Run("read failure", func(t *testing.T) {
		readErr := errors.New("no such file")

		disk := mock.DiskMock{
			ReadMock: func(filepath string) ([]byte, error) {
				return nil, readErr
			},
		}

		_, err := Load(disk, "/config/catalogue.json")
		assert.ErrorIs(t, err, readErr)
	})
}

func TestLookupName(t *testing.T) {
	c, err := Parse([]byte(`{
  "tokens": [
    {"name": "Boston", "address": "0x00000000000000000000000000000000000000a1"},
    {"name": "boston", "address": "0x00000000000000000000000000000000000000a2"},
    {"name": "Calgary", "address": "0x00000000000000000000000000000000000000a3"}
  ]
}`))
	require.NoError(t, err)

	token, err := c.LookupName("boston")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xa2"), token.ID)

	token, err = c.LookupName("CALGARY")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xa3"), token.ID)

	_, err = c.LookupName("Hartford")
	assert.ErrorIs(t, err, ErrUnknownToken)

	_, err = c.LookupName("")
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestNoRewardToken(t *testing.T) {
	c, err := Parse([]byte(`{"tokens": [{"address": "0x00000000000000000000000000000000000000a1"}]}`))
	require.NoError(t, err)

	_, err = c.RewardToken()
	assert.ErrorIs(t, err, ErrNoRewardToken)
}

func TestMetadataResolver(t *testing.T) {
	six := int32(6)
	documents := map[string]Metadata{
		common.HexToAddress("0xa1").Hex(): {Name: "Ignored", Symbol: "ANA", Decimals: &six},
		common.HexToAddress("0xa3").Hex(): {Name: "Calgary", Symbol: "CGY"},
	}

	requested := make(chan string, 10)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/metadata/")
		requested <- id

		doc, ok := documents[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		_ = json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	c, err := Parse([]byte(validCatalogue))
	require.NoError(t, err)

	client := retryablehttp.NewClient()
	client.RetryMax = 0

	resolver := NewMetadataResolver(client, server.URL+"/metadata/", 2)
	metadata := resolver.Resolve(context.Background(), c)
	close(requested)

	assert.Len(t, requested, 4)
	assert.Len(t, metadata, 2)

	enriched := c.WithMetadata(metadata)
	tokens := enriched.Tokens()

	assert.Equal(t, "Anaheim", tokens[0].DisplayName)
	assert.Equal(t, "ANA", tokens[0].Symbol)
	assert.Equal(t, int32(6), tokens[0].Scale())
	assert.Equal(t, "Calgary", tokens[2].DisplayName)
	assert.Equal(t, int32(18), tokens[2].Scale())
	assert.Equal(t, "", c.Tokens()[2].DisplayName)
}

func TestMetadataResolverRejectsInvalidDecimals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name": "Calgary", "symbol": "CGY", "decimals": 90}`))
	}))
	defer server.Close()

	c, err := Parse([]byte(`{"tokens": [{"address": "0x00000000000000000000000000000000000000a3"}]}`))
	require.NoError(t, err)

	client := retryablehttp.NewClient()
	client.RetryMax = 0

	metadata := NewMetadataResolver(client, server.URL, 1).Resolve(context.Background(), c)
	assert.Empty(t, metadata)

	token := c.WithMetadata(metadata).Tokens()[0]
	assert.Nil(t, token.Decimals)
	assert.Equal(t, int32(18), token.Scale())
}

func TestMetadataResolverWithoutBaseURL(t *testing.T) {
	c, err := Parse([]byte(validCatalogue))
	require.NoError(t, err)

	resolver := NewMetadataResolver(retryablehttp.NewClient(), "", 1)
	assert.Empty(t, resolver.Resolve(context.Background(), c))
}
