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

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wso2/xml-ingestion-service/internal/system/authn"
	"github.com/wso2/xml-ingestion-service/internal/system/constants"
)

func TestValidatePermission(t *testing.T) {

	admin := &authn.Principal{Username: "admin", Roles: []string{constants.RoleAdmin}}
	operator := &authn.Principal{Username: "op", Roles: []string{constants.RoleOperator}}

	tests := []struct {
		name      string
		principal *authn.Principal
		operation string
		allowed   bool
	}{
		{"admin reads configuration", admin, constants.OpReadConfiguration, true},
		{"admin writes clients", admin, constants.OpWriteClients, true},
		{"admin writes mapping config", admin, constants.OpWriteMappingConfig, true},
		{"operator reads configuration", operator, constants.OpReadConfiguration, true},
		{"operator uploads files", operator, constants.OpUploadFiles, true},
		{"operator reads files", operator, constants.OpReadFiles, true},
		{"operator cannot write clients", operator, constants.OpWriteClients, false},
		{"operator cannot write interfaces", operator, constants.OpWriteInterfaces, false},
		{"operator cannot write mapping config", operator, constants.OpWriteMappingConfig, false},
		{"nil principal", nil, constants.OpReadConfiguration, false},
		{"no roles", &authn.Principal{Username: "x"}, constants.OpReadFiles, false},
		{"unknown operation", admin, "unknown:op", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, ValidatePermission(tt.principal, tt.operation))
		})
	}
}
