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
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/xml-ingestion-service/internal/system/config"
	"github.com/wso2/xml-ingestion-service/internal/system/log"
)

const defaultTokenLifetime = int64(8 * 60 * 60)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// IssueToken signs a session token for the given principal using the
// configured HMAC secret.
func IssueToken(principal Principal) (string, error) {

	authConfig := config.GetRuntime().Config.Auth
	lifetime := authConfig.TokenLifetime
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   principal.Username,
		"roles": principal.Roles,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(lifetime) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authConfig.JWTSecret))
}

// ValidateToken verifies the token signature and expiry and returns the
// embedded principal.
func ValidateToken(tokenString string) (*Principal, error) {

	logger := log.GetLogger()
	authConfig := config.GetRuntime().Config.Auth

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(authConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Session token validation failed.", log.Error(err))
		return nil, fmt.Errorf("invalid session token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		logger.Debug("Session token has no subject claim.")
		return nil, fmt.Errorf("invalid session token")
	}

	principal := &Principal{Username: sub}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				principal.Roles = append(principal.Roles, role)
			}
		}
	}

	return principal, nil
}

// Authenticate resolves the configured operator matching the credentials.
// Returns nil when the credentials do not match any operator.
func Authenticate(username, password string) *Principal {

	authConfig := config.GetRuntime().Config.Auth
	for _, op := range authConfig.Operators {
		if op.Username == username && op.Password == password {
			return &Principal{Username: op.Username, Roles: op.Roles}
		}
	}
	return nil
}
