package users

import (
	"context"
	"testing"

	"github.com/ldxinsight/ldx-cli/internal/auth"
	"github.com/ldxinsight/ldx-cli/internal/cloud/hub"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/assert"
	"github.com/ldxinsight/ldx-cli/internal/utils/test/mock"
)

func TestListHandler(t *testing.T) {
	t.Run("Should show a table of the users", func(t *testing.T) {
		hubClient := mock.HubClient{}
		hubClient.UsersFn = func(ctx context.Context) ([]hub.User, error) {
			return []hub.User{
				{ID: "1", Name: "Nguyen Van A", Email: "a@hit.edu.vn"},
				{ID: "12", Name: "Tran Thi B", Email: "b@hit.edu.vn"},
			}, nil
		}

		clients, _ := mock.NewClients(t, hubClient, "/users", auth.Session{AccessToken: "access"})
		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

		assert.Equal(t, `01:23:45 UTC INFO  Found 2 users
  ID  Name          Email
  --  ------------  ------------
  1   Nguyen Van A  a@hit.edu.vn
  12  Tran Thi B    b@hit.edu.vn
`, out.String())
	})

	t.Run("Should show when no users exist", func(t *testing.T) {
		hubClient := mock.HubClient{}
		hubClient.UsersFn = func(ctx context.Context) ([]hub.User, error) { return nil, nil }

		clients, _ := mock.NewClients(t, hubClient, "/users", auth.Session{AccessToken: "access"})
		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))
		assert.Equal(t, "01:23:45 UTC INFO  No users found\n", out.String())
	})
}

func TestDescribeHandler(t *testing.T) {
	user := hub.User{ID: "42", Name: "Nguyen Van A", Email: "a@hit.edu.vn"}

	for _, tc := range []struct {
		description  string
		cmd          CommandDescribe
		expectedByID string
		expectedCode string
		byID         bool
	}{
		{
			description: "Should describe the logged in user by default",
		},
		{
			description:  "Should describe a user by student code",
			cmd:          CommandDescribe{code: "20210042"},
			expectedCode: "20210042",
		},
		{
			description:  "Should describe a user by id",
			cmd:          CommandDescribe{id: "42"},
			expectedByID: "42",
			byID:         true,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var calledByID bool
			var capturedID, capturedCode string

			hubClient := mock.HubClient{}
			hubClient.UserFn = func(ctx context.Context, studentCode string) (hub.User, error) {
				capturedCode = studentCode
				return user, nil
			}
			hubClient.UserByIDFn = func(ctx context.Context, id string) (hub.User, error) {
				calledByID = true
				capturedID = id
				return user, nil
			}

			clients, _ := mock.NewClients(t, hubClient, "/users", auth.Session{AccessToken: "access"})
			out, ui := mock.NewUI()

			cmd := tc.cmd
			assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, clients))

			assert.Equal(t, tc.byID, calledByID)
			assert.Equal(t, tc.expectedByID, capturedID)
			assert.Equal(t, tc.expectedCode, capturedCode)
			assert.Contains(t, out.String(), `"name": "Nguyen Van A"`)
		})
	}

	t.Run("Should not accept both an id and a student code", func(t *testing.T) {
		clients, _ := mock.NewClients(t, mock.HubClient{}, "/users", auth.Session{AccessToken: "access"})
		_, ui := mock.NewUI()

		cmd := &CommandDescribe{id: "42", code: "20210042"}
		assert.Equal(t, errIDAndCode, cmd.Handler(mock.NewProfile(t), ui, clients))
	})
}
