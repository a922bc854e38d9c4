package v1_test

import (
	"net/http"
	"testing"

	"github.com/CatchMeX/mubiaoguanli-backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1/teams", "OPTIONS, GET, POST"},
		{"http://example.com/v1/allocation-configs", "OPTIONS, GET, POST"},
		{"http://example.com/v1/allocation-records", "GET"},
		{"http://example.com/v1/costs", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/revenues", "OPTIONS, GET, POST"},
		{"http://example.com/v1/financial-matters", "OPTIONS, GET, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, recorder.Header().Get("allow"), tt.response)
		})
	}
}

// TestMethodNotAllowed tests some endpoints with disallowed HTTP methods
// to verify that the HTTP 405 - Method Not Allowed status is returned
// correctly
func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	tests := []struct {
		path   string
		method string
	}{
		{"http://example.com/", http.MethodPost},
		{"http://example.com/v1", http.MethodPost},
		{"http://example.com/v1/teams", http.MethodPut},
		{"http://example.com/v1/allocation-records", http.MethodPost},
		{"http://example.com/v1/costs", http.MethodHead},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path+" "+tt.method, func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, "")

			test.AssertHTTPStatus(t, &recorder, http.StatusMethodNotAllowed)
		})
	}
}
