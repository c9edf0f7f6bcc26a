package mock

import (
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/cli"

	"github.com/spf13/afero"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name,
// stored in an in-memory filesystem
func NewProfile(t *testing.T) *cli.Profile {
	t.Helper()

	profile := cli.NewProfileWithFs(primitive.NewObjectID().Hex(), "/config", afero.NewMemMapFs())
	if err := profile.Load(); err != nil {
		t.Fatalf("failed to load profile: %s", err)
	}
	return profile
}
