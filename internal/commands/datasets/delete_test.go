package datasets

import (
	"context"
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/mock"
)

func TestDeleteHandler(t *testing.T) {
	t.Run("Should delete the dataset once confirmed", func(t *testing.T) {
		var deletedID string
		hubClient := mock.HubClient{}
		hubClient.DeleteDatasetFn = func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/data", auth.Session{AccessToken: "access"})
		out, ui := mock.NewUI()
		ui.ConfirmFn = func(message string, defaultValue bool) (bool, error) {
			assert.Equal(t, "Are you sure you want to delete dataset ds-1?", message)
			assert.False(t, defaultValue, "expected the confirmation to default to no")
			return true, nil
		}

		cmd := &CommandDelete{idInputs{ID: "ds-1"}}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, "ds-1", deletedID)
		assert.Equal(t, "01:23:45 UTC INFO  Successfully deleted dataset ds-1\n", out.String())
	})

	t.Run("Should not delete the dataset when declined", func(t *testing.T) {
		hubClient := mock.HubClient{}
		hubClient.DeleteDatasetFn = func(ctx context.Context, id string) error {
			t.Fatal("unexpected delete")
			return nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/data", auth.Session{AccessToken: "access"})
		out, ui := mock.NewUI()
		ui.ConfirmFn = func(message string, defaultValue bool) (bool, error) { return false, nil }

		cmd := &CommandDelete{idInputs{ID: "ds-1"}}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))
		assert.Equal(t, "", out.String())
	})
}

func TestViewAndDownloadHandlers(t *testing.T) {
	t.Run("Should record a dataset view", func(t *testing.T) {
		var viewedID string
		hubClient := mock.HubClient{}
		hubClient.RecordDatasetViewFn = func(ctx context.Context, id string) error {
			viewedID = id
			return nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/data", auth.Session{})
		out, ui := mock.NewUI()

		cmd := &CommandView{idInputs{ID: "ds-1"}}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, "ds-1", viewedID)
		assert.Equal(t, "01:23:45 UTC INFO  Recorded a view of dataset ds-1\n", out.String())
	})

	t.Run("Should show the dataset download link", func(t *testing.T) {
		hubClient := mock.HubClient{}
		hubClient.DatasetDownloadURLFn = func(ctx context.Context, id string) (string, error) {
			return "https://files.example.com/" + id + ".csv", nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/data", auth.Session{})
		out, ui := mock.NewUI()

		cmd := &CommandDownload{idInputs{ID: "ds-1"}}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, "01:23:45 UTC INFO  Download dataset ds-1 from: https://files.example.com/ds-1.csv\n", out.String())
	})
}
