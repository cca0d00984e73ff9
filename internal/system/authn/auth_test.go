/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package authn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/xml-ingestion-service/internal/system/config"
)

func setupAuthConfig(t *testing.T) {

	t.Helper()
	config.OverrideRuntime(config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "unit-test-secret",
			TokenLifetime: 60,
			Operators: []config.OperatorConfig{
				{Username: "admin", Password: "adminpass", Roles: []string{"admin"}},
				{Username: "viewer", Password: "viewerpass", Roles: []string{"operator"}},
			},
		},
	})
}

func TestIssueAndValidateTokenRoundTrip(t *testing.T) {

	setupAuthConfig(t)

	token, err := IssueToken(Principal{Username: "admin", Roles: []string{"admin"}})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", principal.Username)
	assert.Equal(t, []string{"admin"}, principal.Roles)
}

func TestValidateTokenRejectsTamperedTokens(t *testing.T) {

	setupAuthConfig(t)

	token, err := IssueToken(Principal{Username: "admin", Roles: []string{"admin"}})
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSecrets(t *testing.T) {

	setupAuthConfig(t)
	token, err := IssueToken(Principal{Username: "admin"})
	require.NoError(t, err)

	config.OverrideRuntime(config.Config{
		Auth: config.AuthConfig{JWTSecret: "a-different-secret"},
	})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {

	setupAuthConfig(t)

	principal := Authenticate("admin", "adminpass")
	require.NotNil(t, principal)
	assert.Equal(t, []string{"admin"}, principal.Roles)

	assert.Nil(t, Authenticate("admin", "wrong"))
	assert.Nil(t, Authenticate("ghost", "adminpass"))
}
