package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/mock"
)

func TestMetadataHandler(t *testing.T) {
	t.Run("Should show the model metadata", func(t *testing.T) {
		hubClient := mock.HubClient{}
		hubClient.MetadataFn = func(ctx context.Context) (hub.Metadata, error) {
			return hub.Metadata{"provinces": []interface{}{"Ha Noi"}}, nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/diagnose", auth.Session{})
		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, `01:23:45 UTC INFO  DTI model metadata
---
{
  "provinces": [
    "Ha Noi"
  ]
}
`, out.String())
	})

	t.Run("Should return the client error", func(t *testing.T) {
		hubClient := mock.HubClient{}
		hubClient.MetadataFn = func(ctx context.Context) (hub.Metadata, error) {
			return nil, errors.New("model unavailable")
		}

		clients, _ := mock.NewClients(t, hubClient, "/diagnose", auth.Session{})
		_, ui := mock.NewUI()

		cmd := &Command{}
		assert.Equal(t, errors.New("model unavailable"), cmd.Handler(mock.NewProfile(t), ui, clients))
	})
}
