package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/CatchMeX/mubiaoguanli-backend/internal/controllers/v1"
	"github.com/CatchMeX/mubiaoguanli-backend/internal/models"
	"github.com/CatchMeX/mubiaoguanli-backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestTeamsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTeamsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTeam(t, v1.TeamEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/teams", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TeamListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestTeamsCreate() {
	team := createTestTeam(suite.T(), v1.TeamEditable{Name: "Operations", Note: "Data center and IT"})

	assert.Equal(suite.T(), "Operations", team.Data.Name)
	assert.Equal(suite.T(), "Data center and IT", team.Data.Note)
	assert.NotEqual(suite.T(), uuid.Nil, team.Data.ID)
}

func (suite *TestSuiteStandard) TestTeamsCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken JSON", `{ broken`, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
		{"Missing name", []v1.TeamEditable{{Note: "no name"}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/teams", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTeamsCreateDuplicateName() {
	createTestTeam(suite.T(), v1.TeamEditable{Name: "Sales"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/teams", []v1.TeamEditable{{Name: "Sales"}})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTeamsGetSingle() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing team", team.Data.ID.String(), http.StatusOK},
		{"Non-existing team", uuid.NewString(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/teams/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTeamsGetFilter() {
	createTestTeam(suite.T(), v1.TeamEditable{Name: "Operations", Note: "infra"})
	createTestTeam(suite.T(), v1.TeamEditable{Name: "Sales", Note: "field"})
	createTestTeam(suite.T(), v1.TeamEditable{Name: "Staging", Archived: true})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Name match", "name=Operations", 1},
		{"Partial name", "name=S", 2},
		{"Archived", "archived=true", 1},
		{"Note", "note=infra", 1},
		{"Search", "search=field", 1},
		{"All", "", 3},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/teams?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TeamListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTeamsUpdate() {
	team := createTestTeam(suite.T(), v1.TeamEditable{Name: "Ops"})

	recorder := test.Request(suite.T(), http.MethodPatch, team.Data.Links.Self, map[string]any{
		"name": "Operations",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.TeamResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "Operations", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestTeamsDelete() {
	team := createTestTeam(suite.T(), v1.TeamEditable{})

	recorder := test.Request(suite.T(), http.MethodDelete, team.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, team.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
